package gamemaster

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"hive/game"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// UpdateGetter returns the oldest unread update. ok is false when there is
// nothing new.
type UpdateGetter func() (move game.Move, state *game.GameState, ok bool)

type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	state *game.GameState
}

// LocalEngine owns the authoritative game state and only accepts moves the
// generator would produce.
type LocalEngine struct {
	rules    game.Rules
	mu       sync.Mutex
	state    *game.GameState
	updates  []update
	gameOver bool
}

func NewLocalEngine(rules game.Rules) *LocalEngine {
	return &LocalEngine{rules: rules}
}

// Init starts a new game and returns a copy of the empty board.
func (e *LocalEngine) Init() (*game.GameState, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = game.NewGameState(e.rules)
	e.updates = nil
	e.gameOver = false

	return e.state.Copy(), func() (game.Move, *game.GameState, bool) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if len(e.updates) == 0 {
			return game.Move{}, nil, false
		}
		u := e.updates[0]
		e.updates = e.updates[1:]
		return u.move, u.state, true
	}
}

// Play validates move against the legal moves of the current position and
// applies it. game.PassMove is accepted only when there is no legal move.
func (e *LocalEngine) Play(move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return fmt.Errorf("play %v: game not initialised", move)
	}
	if e.gameOver {
		return fmt.Errorf("play %v: %w", move, ErrGameOver)
	}

	legalMoves := e.state.LegalMoves()
	switch {
	case move.Action == game.PassAction:
		if len(legalMoves) > 0 {
			return fmt.Errorf("%w: pass with %d legal moves available", ErrIllegalMove, len(legalMoves))
		}
		e.state.Pass()
	case !slices.Contains(legalMoves, move):
		return fmt.Errorf("%w: %v for %v", ErrIllegalMove, move, e.state.Player())
	default:
		e.state.ApplyMove(move)
	}

	if e.state.Winner() != game.WinnerNone {
		e.gameOver = true
	}
	e.updates = append(e.updates, update{move: move, state: e.state.Copy()})
	return nil
}

// State returns a copy of the current position.
func (e *LocalEngine) State() *game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Copy()
}

func (e *LocalEngine) GameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gameOver
}
