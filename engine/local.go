package engine

import (
	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine plays two agents against each other in process.
type LocalEngine struct {
	State    game.GameState
	Rules    game.Rules
	Agents   map[game.Side]agent.Agent
	MaxTurns int
}

func NewLocalEngine(black, white agent.Agent, rules game.Rules) *LocalEngine {
	if black == nil || white == nil {
		panic("need an agent for each side")
	}
	if rules == nil {
		rules = game.NewSuddenDeathRules()
	}
	return &LocalEngine{
		State: game.NewGame(),
		Rules: rules,
		Agents: map[game.Side]agent.Agent{
			game.Black: black,
			game.White: white,
		},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop until the rules end the game.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Turn,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.Turn)

	turnCount := 1
	for ; turnCount <= e.MaxTurns; turnCount++ {
		advanced := e.Rules.Advance(e.State)
		if advanced.Turn != e.State.Turn {
			log.Debug().Msgf("%s has no legal move and passes", e.State.Turn)
			gameMetric.Passes++
		}
		e.State = advanced
		if e.Rules.IsOver(e.State) {
			break
		}

		move, searchMetric := e.Agents[e.State.Turn].FindMove(e.State)
		next, err := e.State.Play(move)
		if err != nil {
			// The agent returned an invalid move, fall back to the first legal one
			log.Warn().Err(err).Msgf("%s returned an invalid move", e.State.Turn)
			move = e.State.LegalMoves()[0]
			next, _ = e.State.Play(move)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       e.State.Turn,
			Move:         move,
			SearchMetric: searchMetric,
		})
		gameMetric.TotalMoves++
		e.State = next
	}

	winner := game.Undecided
	if e.Rules.IsOver(e.State) {
		winner = e.State.Decide()
	} else {
		log.Warn().Msgf("stopped after %d turns without a winner", e.MaxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.BlackDiscs, gameMetric.WhiteDiscs = e.State.Score()

	log.Info().Msgf("game over after %d moves, winner: %s (%d-%d)", gameMetric.TotalMoves, winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)

	return winner, gameMetric, moveMetrics
}
