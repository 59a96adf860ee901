package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"othello/agent"
	"othello/experiments"
	"othello/game"
	"othello/gamemaster"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "selfplay", "selfplay, depth, evaluation or pruning")
	black := flag.String("black", "medium", "Difficulty of the black agent in self-play")
	white := flag.String("white", "easy", "Difficulty of the white agent in self-play")
	duration := flag.Duration("duration", 0, "Wall-clock limit per search (0 for none)")
	standard := flag.Bool("standard", false, "Pass the turn when the side to move is stuck")
	games := flag.Int("games", 0, "Games per experiment match-up (0 for default)")
	out := flag.String("out", "experiments", "Experiment output directory")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	var rules game.Rules = game.NewSuddenDeathRules()
	if *standard {
		rules = game.NewStandardRules()
	}

	opts := experiments.Options{Root: *out, NumGames: *games, Rules: rules}
	switch *mode {
	case "selfplay":
		err = selfPlay(*black, *white, *duration, rules)
	case "depth":
		err = report(experiments.RunDepthExperiment(opts))
	case "evaluation":
		err = report(experiments.RunEvaluationExperiment(opts))
	case "pruning":
		err = report(experiments.RunPruningExperiment(opts))
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func report(dir string, err error) error {
	if err == nil {
		log.Info().Msgf("records written to %s", dir)
	}
	return err
}

// selfPlay drives a live game session with one agent per side.
func selfPlay(blackLevel, whiteLevel string, duration time.Duration, rules game.Rules) error {
	agents := map[game.Side]agent.Agent{}
	for side, level := range map[game.Side]string{game.Black: blackLevel, game.White: whiteLevel} {
		d, err := agent.ParseDifficulty(level)
		if err != nil {
			return err
		}
		agents[side] = agent.NewDifficultyAgent(d, agent.WithSearchDuration(duration))
	}

	session := gamemaster.NewLocalEngine(rules)
	state, getUpdate := session.Init()
	for {
		move, metric := agents[state.Turn].FindMove(state)
		if err := session.Play(move); err != nil {
			return err
		}
		update, ok := getUpdate()
		if !ok {
			return fmt.Errorf("no update after move %+v", move)
		}
		log.Info().Msgf("%s plays %c%d (%d nodes, %s)", state.Turn, 'A'+move.Col, move.Row+1, metric.Nodes, metric.Duration)
		if update.Passed {
			log.Info().Msgf("%s passes", state.Turn.Opponent())
		}
		log.Debug().Msg("\n" + update.State.Board.String())

		state = update.State
		if session.Winner() != game.Undecided {
			break
		}
	}

	black, white := state.Score()
	log.Info().Msgf("game over! winner: %s (%d-%d)", session.Winner(), black, white)
	fmt.Print(state.Board)
	return nil
}
