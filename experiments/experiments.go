package experiments

import (
	"fmt"
	"othello/agent"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
)

// Options shared by every experiment.
type Options struct {
	Root     string // Output directory root
	NumGames int    // Per match up
	Rules    game.Rules
}

func (o Options) withDefaults() Options {
	if o.Root == "" {
		o.Root = "experiments"
	}
	if o.NumGames <= 0 {
		o.NumGames = meta.NUM_GAMES
	}
	if o.Rules == nil {
		o.Rules = game.NewSuddenDeathRules()
	}
	return o
}

var baseline = metrics.AgentConfig{ID: 0, Random: true, Seed: 1}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: meta.EASY_DEPTH, Evaluation: string(agent.Material)},
	{ID: 2, Depth: meta.MEDIUM_DEPTH, Evaluation: string(agent.Material)},
	{ID: 3, Depth: meta.HARD_DEPTH, Evaluation: string(agent.Material)},
}

// RunDepthExperiment pairs each difficulty depth against the random baseline.
func RunDepthExperiment(opts Options) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}
	return runExperiment("depth", opts, append(depthConfigs, baseline), matchUps)
}

// RunEvaluationExperiment pairs the material evaluation against the fixed
// perspective one at equal depth.
func RunEvaluationExperiment(opts Options) (string, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range []int{meta.EASY_DEPTH, meta.MEDIUM_DEPTH} {
		material := metrics.AgentConfig{ID: 2*i + 1, Depth: depth, Evaluation: string(agent.Material)}
		fixed := metrics.AgentConfig{ID: 2*i + 2, Depth: depth, Evaluation: string(agent.Fixed)}
		configs = append(configs, material, fixed)
		matchUps = append(matchUps, []metrics.AgentConfig{material, fixed})
	}
	return runExperiment("evaluation", opts, configs, matchUps)
}

// RunPruningExperiment plays pruned against unpruned search so the move
// records show the node counts of both at the same depth.
func RunPruningExperiment(opts Options) (string, error) {
	pruned := metrics.AgentConfig{ID: 1, Depth: meta.MEDIUM_DEPTH, Evaluation: string(agent.Material)}
	full := metrics.AgentConfig{ID: 2, Depth: meta.MEDIUM_DEPTH, Evaluation: string(agent.Material), NoPruning: true}
	configs := []metrics.AgentConfig{pruned, full}
	return runExperiment("pruning", opts, configs, [][]metrics.AgentConfig{{pruned, full}})
}

func runExperiment(name string, opts Options, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	opts = opts.withDefaults()

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < opts.NumGames; i++ {
			// Alternate colors so neither agent always moves first
			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}
			count++

			winner, gameMetric, moveMetrics := runGame(black, white, opts.Rules, count)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(opts.Root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	// Store experiment metadata
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(black, white metrics.AgentConfig, rules game.Rules, gameID int) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocalEngine(newAgent(black, gameID), newAgent(white, gameID), rules)
	return e.Run()
}

// newAgent reseeds random agents per game so games differ but replay.
func newAgent(config metrics.AgentConfig, gameID int) agent.Agent {
	if config.Random {
		config.Seed += uint64(gameID)
	}
	return agent.NewAgent(config)
}
