// Package game holds the full game snapshot: the chess position plus
// clocks, move history and engine configuration. Like board.Position, a
// State is an immutable value; every transition returns a new one, so old
// snapshots can be retained for undo, replay and speculative search.
package game

import (
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
)

// TimeControl is the per-side starting time.
type TimeControl struct {
	Initial time.Duration
}

// State is a complete snapshot of a game at one point in time.
type State struct {
	Position board.Position

	// Remaining clock time per side.
	WhiteRemaining time.Duration
	BlackRemaining time.Duration

	// TurnStart marks when the current turn began; the elapsed time since
	// it is charged to the mover on the next transition.
	TurnStart time.Time

	// History records every applied move in order.
	History []board.Move

	// Engine configuration, carried so a rebuilt game keeps its settings.
	TimeControl TimeControl
	Mode        engine.Mode
	Depth       int
}

// New creates the initial game state: standard starting position, full
// castling rights, no en-passant target, both clocks set from the time
// control, turn start stamped now.
func New(tc TimeControl) State {
	return NewAt(tc, time.Now())
}

// NewAt is New with an explicit turn-start timestamp.
func NewAt(tc TimeControl, now time.Time) State {
	return State{
		Position:       board.NewPosition(),
		WhiteRemaining: tc.Initial,
		BlackRemaining: tc.Initial,
		TurnStart:      now,
		TimeControl:    tc,
		Depth:          1,
	}
}

// Apply produces the state after the given move, charging the wall-clock
// time since the turn started to the mover. The move is assumed legal;
// Apply never re-validates it.
func (s State) Apply(m board.Move) State {
	return s.ApplyAt(m, time.Now())
}

// ApplyAt is Apply with an explicit timestamp, making the transition a pure
// function of its inputs. The elapsed time since TurnStart is subtracted
// from the mover's remaining time, the move is applied to the position, the
// history grows by one entry, and the turn start is restamped.
func (s State) ApplyAt(m board.Move, now time.Time) State {
	next := s

	elapsed := now.Sub(s.TurnStart)
	if s.Position.SideToMove == board.White {
		next.WhiteRemaining -= elapsed
	} else {
		next.BlackRemaining -= elapsed
	}

	next.Position = s.Position.Apply(m)
	next.TurnStart = now

	// Full slice expression so the append never writes into a backing array
	// shared with an older snapshot.
	next.History = append(s.History[:len(s.History):len(s.History)], m)

	return next
}

// Rebuild reconstructs a state purely from an ordered move list by
// replaying it from the initial position. Only the configuration fields of
// the template (time control, mode, depth) are preserved. The move list is
// trusted: replayed moves are not re-validated, so a corrupted list yields
// an undefined position rather than an error.
func Rebuild(moves []board.Move, template State) State {
	s := NewAt(template.TimeControl, template.TurnStart)
	s.Mode = template.Mode
	s.Depth = template.Depth

	for _, m := range moves {
		s = s.ApplyAt(m, s.TurnStart)
	}
	return s
}

// SideToMove returns the color whose turn it is.
func (s *State) SideToMove() board.Color {
	return s.Position.SideToMove
}

// Remaining returns the remaining time for the given color.
func (s *State) Remaining(c board.Color) time.Duration {
	if c == board.White {
		return s.WhiteRemaining
	}
	return s.BlackRemaining
}
