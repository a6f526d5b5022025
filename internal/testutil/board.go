package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustBoard builds a board from FEN, failing the test on error.
func MustBoard(t *testing.T, fen string) *engine.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return b
}

// MustPlay plays a sequence of coordinate moves from b and returns the final
// board. Each move must complete.
func MustPlay(t *testing.T, b *engine.Board, moves ...string) *engine.Board {
	t.Helper()
	for _, text := range moves {
		m, err := engine.ParseMove(b, text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		tr := b.CurrentPlayer().MakeMove(m)
		if err := tr.Err(); err != nil {
			t.Fatalf("MakeMove(%s): %v", text, err)
		}
		b = tr.Board
	}
	return b
}

// MoveStrings returns the coordinate form of each move.
func MoveStrings(moves []engine.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	return out
}

// AssertMoves compares the coordinate forms of moves against want, ignoring
// order.
func AssertMoves(t *testing.T, moves []engine.Move, want ...string) {
	t.Helper()
	got := MoveStrings(moves)
	sorted := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, got, sorted, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}
