package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveStatus classifies the outcome of Player.MakeMove.
type MoveStatus int

const (
	MoveDone MoveStatus = iota
	MoveIllegal
	MoveLeavesPlayerInCheck
)

// IsDone reports whether the move was played.
func (s MoveStatus) IsDone() bool {
	return s == MoveDone
}

// String returns the name of a move status.
func (s MoveStatus) String() string {
	switch s {
	case MoveDone:
		return "DONE"
	case MoveIllegal:
		return "ILLEGAL_MOVE"
	case MoveLeavesPlayerInCheck:
		return "LEAVES_PLAYER_IN_CHECK"
	}
	return fmt.Sprintf("MoveStatus(%d)", int(s))
}

// MoveTransition is the result of attempting a move: the resulting board (or
// the unchanged one on failure), the move attempted and the outcome.
type MoveTransition struct {
	Board  *Board
	Move   Move
	Status MoveStatus
}

// Err converts a failed status into the matching sentinel error. It returns
// nil for a completed move.
func (t MoveTransition) Err() error {
	switch t.Status {
	case MoveDone:
		return nil
	case MoveIllegal:
		return fmt.Errorf("%s: %w", t.Move.UCI(), errors.ErrIllegalMove)
	case MoveLeavesPlayerInCheck:
		return fmt.Errorf("%s: %w", t.Move.UCI(), errors.ErrLeavesKingInCheck)
	}
	return fmt.Errorf("%s: unknown status %v", t.Move.UCI(), t.Status)
}
