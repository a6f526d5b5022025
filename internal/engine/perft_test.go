package engine_test

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const (
	kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
		long  bool
	}{
		{"initial depth 0", engine.InitialFEN, 0, 1, false},
		{"initial depth 1", engine.InitialFEN, 1, 20, false},
		{"initial depth 2", engine.InitialFEN, 2, 400, false},
		{"initial depth 3", engine.InitialFEN, 3, 8902, true},
		{"kiwipete depth 1", kiwipete, 1, 48, false},
		{"kiwipete depth 2", kiwipete, 2, 2039, false},
		{"position 3 depth 1", position3, 1, 14, false},
		{"position 3 depth 2", position3, 2, 191, false},
		{"position 3 depth 3", position3, 3, 2812, true},
		{"position 4 depth 1", position4, 1, 6, false},
		{"position 4 depth 2", position4, 2, 264, false},
		{"position 5 depth 1", position5, 1, 44, false},
		{"position 5 depth 2", position5, 2, 1486, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.long && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			t.Parallel()
			b := testutil.MustBoard(t, tt.fen)
			if got := engine.Perft(b, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestPerftStats(t *testing.T) {
	b := testutil.MustBoard(t, kiwipete)
	got := engine.PerftStats(b, 1)
	want := engine.PerftResult{Nodes: 48, Captures: 8, EnPassants: 0, Castles: 2, Promotions: 0, Checks: 0}
	testutil.AssertEqual(t, got, want)

	got = engine.PerftStats(b, 2)
	want = engine.PerftResult{Nodes: 2039, Captures: 351, EnPassants: 1, Castles: 91, Promotions: 0, Checks: 3}
	testutil.AssertEqual(t, got, want)
}

func TestPerftDivide(t *testing.T) {
	b := engine.NewStandardBoard()
	entries := engine.PerftDivide(b, 2)
	testutil.AssertEqual(t, len(entries), 20)

	var total uint64
	for _, e := range entries {
		testutil.AssertEqual(t, e.Nodes, uint64(20), "divide %s", e.Move.UCI())
		total += e.Nodes
	}
	testutil.AssertEqual(t, total, engine.Perft(b, 2))
	testutil.AssertEqual(t, len(engine.PerftDivide(b, 0)), 0)
}

func TestPerftResultAdd(t *testing.T) {
	r := engine.PerftResult{Nodes: 1, Captures: 2}
	r.Add(engine.PerftResult{Nodes: 3, Checks: 4, Castles: 1})
	testutil.AssertEqual(t, r, engine.PerftResult{Nodes: 4, Captures: 2, Castles: 1, Checks: 4})
}
