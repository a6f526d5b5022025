package engine_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// oracleMoves returns the legal moves of an independent move generator in
// coordinate notation.
func oracleMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("oracle rejected %q: %v", fen, err)
	}
	game := notnil.NewGame(opt)
	var moves []string
	for _, m := range game.ValidMoves() {
		moves = append(moves, m.String())
	}
	sort.Strings(moves)
	return moves
}

func safeMoves(b *engine.Board) []string {
	moves := testutil.MoveStrings(b.CurrentPlayer().SafeMoves())
	sort.Strings(moves)
	return moves
}

func TestMovesMatchOracle(t *testing.T) {
	roots := []string{
		engine.InitialFEN,
		kiwipete,
		position3,
		position4,
		position5,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1",
		"8/8/8/KPp4r/8/8/8/7k w - c6 0 1",
		"1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}

	for _, root := range roots {
		t.Run(root, func(t *testing.T) {
			b := testutil.MustBoard(t, root)
			compareWithOracle(t, b)

			// Every position one move deeper, which exercises the boards
			// produced by Execute and their FEN encoding.
			for _, m := range b.CurrentPlayer().SafeMoves() {
				tr := b.CurrentPlayer().MakeMove(m)
				if !tr.Status.IsDone() {
					t.Fatalf("safe move %s not done: %v", m.UCI(), tr.Status)
				}
				compareWithOracle(t, tr.Board)
			}
		})
	}
}

func compareWithOracle(t *testing.T, b *engine.Board) {
	t.Helper()
	fen := engine.BoardToFEN(b)
	want := oracleMoves(t, fen)
	got := safeMoves(b)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s: moves mismatch (-oracle +engine):\n%s", fen, diff)
	}
}
