package gamemaster

import (
	"errors"
	"fmt"
	"othello/game"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Update is published after every accepted move.
type Update struct {
	Move   game.Move
	State  game.GameState // Position the next player moves from
	Hash   game.StateHash
	Passed bool // The opponent had no legal move and the mover plays again
}

// UpdateGetter returns the next pending update without blocking. It returns
// false when no update is pending or the game is over and all were read.
type UpdateGetter func() (Update, bool)

// Engine runs a live game for external players.
type Engine interface {
	Init() (game.GameState, UpdateGetter)
	Play(game.Move) error
}

type localEngine struct {
	mu       sync.Mutex
	rules    game.Rules
	state    game.GameState
	updateCh chan Update
	gameOver bool
}

func NewLocalEngine(rules game.Rules) *localEngine {
	if rules == nil {
		rules = game.NewSuddenDeathRules()
	}
	return &localEngine{rules: rules}
}

func (e *localEngine) Init() (game.GameState, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = game.NewGame()
	e.gameOver = false
	// Every move fills a cell, so a game never publishes more updates
	ch := make(chan Update, game.Size*game.Size)
	e.updateCh = ch

	return e.state, func() (Update, bool) {
		select {
		case u, ok := <-ch:
			return u, ok
		default:
			// No updates yet
			return Update{}, false
		}
	}
}

// Play applies a move for the side to move. An illegal move leaves the game
// unchanged and the same side must try again.
func (e *localEngine) Play(move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.updateCh == nil {
		return fmt.Errorf("game not initialized")
	}
	if e.gameOver {
		return ErrGameOver
	}

	next, err := e.state.Play(move)
	if err != nil {
		return fmt.Errorf("illegal move for %s: %w", e.state.Turn, err)
	}
	advanced := e.rules.Advance(next)
	e.state = advanced

	e.updateCh <- Update{
		Move:   move,
		State:  advanced,
		Hash:   advanced.Hash(),
		Passed: advanced.Turn != next.Turn,
	}

	if e.rules.IsOver(e.state) {
		e.gameOver = true
		close(e.updateCh)
		black, white := e.state.Score()
		log.Info().Msgf("game over, winner: %s (%d-%d)", e.state.Decide(), black, white)
	}
	return nil
}

// State returns a copy of the current position.
func (e *localEngine) State() game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Winner is Undecided while the game is running.
func (e *localEngine) Winner() game.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.gameOver {
		return game.Undecided
	}
	return e.state.Decide()
}
