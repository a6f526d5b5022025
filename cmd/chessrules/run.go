package main

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// run plays the configured moves and writes the report.
func run(cfg *config.Config) error {
	board, err := engine.NewBoardFromFEN(cfg.FEN)
	if err != nil {
		return err
	}

	report, err := playMoves(cfg, board)
	if err != nil {
		return err
	}
	report.ListMoves = cfg.ListMoves

	if cfg.Perft.Depth > 0 {
		if report.Perft, err = runPerft(cfg, report.Final()); err != nil {
			return err
		}
	}

	return output.NewWriter(cfg.Output).WriteReport(report)
}

// playMoves applies cfg.Moves in order, stopping at the first one that
// cannot be played.
func playMoves(cfg *config.Config, board *engine.Board) (*output.Report, error) {
	report := output.NewReport(board)
	for i, text := range cfg.Moves {
		ply := i + 1
		m, err := engine.ParseMove(board, text)
		if err != nil {
			return nil, &errors.MoveError{Err: err, Ply: ply, Move: text, FEN: engine.BoardToFEN(board)}
		}

		t := board.CurrentPlayer().MakeMove(m)
		if err := t.Err(); err != nil {
			return nil, &errors.MoveError{Err: err, Ply: ply, Move: text, FEN: engine.BoardToFEN(board)}
		}
		logf(cfg, 2, "ply %d: %s (%s)\n", ply, m.UCI(), m)
		report.Record(t)
		board = t.Board
	}
	logf(cfg, 1, "played %d moves\n", len(cfg.Moves))
	return report, nil
}

// logf writes a diagnostic line when the verbosity is at least level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity < level || cfg.LogFile == nil {
		return
	}
	fmt.Fprintf(cfg.LogFile, format, args...)
}
