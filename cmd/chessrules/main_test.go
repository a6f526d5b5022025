package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// testConfig returns a config writing to buffers instead of the terminal.
func testConfig(fen string, moves ...string) (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg := config.NewConfig()
	cfg.FEN = fen
	cfg.Moves = moves
	cfg.Output.File = out
	cfg.LogFile = log
	cfg.Perft.Workers = 2
	return cfg, out, log
}

func TestRun_Reports(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  []string
	}{
		{
			name: "initial position",
			fen:  engine.InitialFEN,
			want: []string{"FEN: " + engine.InitialFEN, "Status: InProgress"},
		},
		{
			name:  "fool's mate",
			fen:   engine.InitialFEN,
			moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			want: []string{
				"FEN: rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
				"Status: Checkmate",
			},
		},
		{
			name: "stalemate",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: []string{"Status: Stalemate"},
		},
		{
			name:  "check",
			fen:   engine.InitialFEN,
			moves: []string{"e2e4", "f7f6", "d1h5"},
			want:  []string{"Status: Check"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, out, _ := testConfig(tt.fen, tt.moves...)
			testutil.AssertNoError(t, run(cfg))
			for _, w := range tt.want {
				testutil.AssertContains(t, out.String(), w)
			}
		})
	}
}

func TestRun_MoveErrors(t *testing.T) {
	tests := []struct {
		name    string
		moves   []string
		wantPly int
		wantErr error
	}{
		{"not a legal move", []string{"e2e5"}, 1, chesserrors.ErrIllegalMove},
		{"wrong side", []string{"e2e4", "d2d4"}, 2, chesserrors.ErrIllegalMove},
		{"bad square", []string{"e2e4", "z9e5"}, 2, chesserrors.ErrInvalidSquare},
		{"garbage", []string{"castle"}, 1, chesserrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, _ := testConfig(engine.InitialFEN, tt.moves...)
			err := run(cfg)
			testutil.AssertErrorIs(t, err, tt.wantErr)

			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("run() error = %v, want *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.Ply, tt.wantPly)
			testutil.AssertEqual(t, moveErr.Move, tt.moves[tt.wantPly-1])
		})
	}
}

func TestRun_InvalidFEN(t *testing.T) {
	cfg, _, _ := testConfig("not a fen")
	testutil.AssertErrorIs(t, run(cfg), chesserrors.ErrInvalidFEN)
}

func TestRun_ListMoves(t *testing.T) {
	cfg, out, _ := testConfig(engine.InitialFEN)
	cfg.ListMoves = true
	testutil.AssertNoError(t, run(cfg))
	testutil.AssertContains(t, out.String(), "Moves (20): a2a3 a2a4 b1a3 b1c3 ")
}

func TestRun_ListMovesCheckmate(t *testing.T) {
	cfg, out, _ := testConfig(engine.InitialFEN, "f2f3", "e7e5", "g2g4", "d8h4")
	cfg.ListMoves = true
	testutil.AssertNoError(t, run(cfg))
	testutil.AssertContains(t, out.String(), "Moves (0): \n")
}

func TestRun_Draw(t *testing.T) {
	cfg, out, _ := testConfig(engine.InitialFEN)
	cfg.Output.Draw = true
	testutil.AssertNoError(t, run(cfg))
	testutil.AssertContains(t, out.String(), " 8 | r | n | b | q | k | b | n | r |")
	testutil.AssertContains(t, out.String(), "     a   b   c   d   e   f   g   h")
}

func TestRun_Show(t *testing.T) {
	cfg, out, _ := testConfig(engine.InitialFEN, "e2e4")
	cfg.Output.Draw = true
	cfg.Output.Show = "f1"
	testutil.AssertNoError(t, run(cfg))
	// After 1. e4 the f1 bishop reaches e2, d3, c4, b5 and a6.
	testutil.AssertContains(t, out.String(), " 6 | * |")
	testutil.AssertContains(t, out.String(), " 2 | P | P | P | P | * | P | P | P |")
}

func TestRun_Perft(t *testing.T) {
	cfg, out, log := testConfig(engine.InitialFEN)
	cfg.Perft.Depth = 3
	testutil.AssertNoError(t, run(cfg))
	testutil.AssertContains(t, out.String(), "perft(3) = 8,902\n")
	testutil.AssertContains(t, log.String(), "d=3 nodes=8,902")
	testutil.AssertFalse(t, strings.Contains(out.String(), "a2a3:"), "divide output without -divide")
}

func TestRun_PerftDivide(t *testing.T) {
	cfg, out, _ := testConfig(engine.InitialFEN)
	cfg.Perft.Depth = 2
	cfg.Perft.Divide = true
	testutil.AssertNoError(t, run(cfg))
	testutil.AssertContains(t, out.String(), "a2a3: 20\n")
	testutil.AssertContains(t, out.String(), "g1f3: 20\n")
	testutil.AssertContains(t, out.String(), "perft(2) = 400\n")
}

func TestRun_JSON(t *testing.T) {
	cfg, out, _ := testConfig(engine.InitialFEN, "e2e4", "e7e5")
	cfg.Output.JSON = true
	cfg.Perft.Depth = 1
	testutil.AssertNoError(t, run(cfg))

	var got output.JSONReport
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &got))
	testutil.AssertEqual(t, got.InitialFEN, engine.InitialFEN)
	testutil.AssertEqual(t, len(got.Moves), 2)
	testutil.AssertEqual(t, got.Moves[1].Color, "black")
	testutil.AssertEqual(t, got.Moves[1].SAN, "e5")
	testutil.AssertEqual(t, got.FinalFEN, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	testutil.AssertEqual(t, got.Perft.Nodes, uint64(29))
}

func TestLogf_Verbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      string
	}{
		{"quiet", 0, ""},
		{"summary", 1, "played 2 moves\n"},
		{"commentary", 2, "ply 1: e2e4 (e4)\nply 2: g8f6 (Nf6)\nplayed 2 moves\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, log := testConfig(engine.InitialFEN, "e2e4", "g8f6")
			cfg.Verbosity = tt.verbosity
			testutil.AssertNoError(t, run(cfg))
			testutil.AssertEqual(t, log.String(), tt.want)
		})
	}
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, len(cfg.Moves), 0)
	testutil.AssertEqual(t, cfg.Verbosity, 1)
	testutil.AssertFalse(t, cfg.Output.Draw)
	testutil.AssertEqual(t, cfg.Perft.Depth, 0)
	testutil.AssertTrue(t, cfg.Perft.Workers >= 1)
	testutil.AssertNoError(t, cfg.Validate())
}
