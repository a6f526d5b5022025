// Package output writes the result of a run as text or JSON.
package output

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Report is the outcome of one run: the line played from the starting
// position and what was computed about the final one.
type Report struct {
	Start *engine.Board
	Plies []engine.MoveTransition

	// ListMoves includes the safe moves of the final position.
	ListMoves bool

	// Perft is nil unless a perft count was run.
	Perft *PerftReport
}

// PerftReport holds a perft total and, when divided, the count below each
// root move.
type PerftReport struct {
	Depth  int
	Divide []engine.DivideEntry
	Total  engine.PerftResult
}

// NewReport starts a report at the given position.
func NewReport(start *engine.Board) *Report {
	return &Report{Start: start}
}

// Record appends a completed transition to the line.
func (r *Report) Record(t engine.MoveTransition) {
	r.Plies = append(r.Plies, t)
}

// Final returns the position after the last recorded move.
func (r *Report) Final() *engine.Board {
	if len(r.Plies) == 0 {
		return r.Start
	}
	return r.Plies[len(r.Plies)-1].Board
}

// safeMoveNames returns the coordinate form of each safe move of the side
// to move, sorted.
func safeMoveNames(b *engine.Board) []string {
	moves := b.CurrentPlayer().SafeMoves()
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.UCI())
	}
	sort.Strings(names)
	return names
}
