package main

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// runPerft counts move paths from board and logs the breakdown by move kind.
func runPerft(cfg *config.Config, board *engine.Board) (*output.PerftReport, error) {
	start := time.Now()
	entries, total, err := worker.ParallelPerft(board, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	report := &output.PerftReport{Depth: cfg.Perft.Depth, Total: total}
	if cfg.Perft.Divide {
		report.Divide = entries
	}

	rate := 0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = int(float64(total.Nodes) / secs)
	}
	if cfg.Verbosity >= 1 && cfg.LogFile != nil {
		p := message.NewPrinter(language.English)
		p.Fprintf(cfg.LogFile, "d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d workers=%d (%.3fs elapsed)\n",
			cfg.Perft.Depth, total.Nodes, rate, total.Captures, total.EnPassants, total.Castles,
			total.Promotions, total.Checks, cfg.Perft.Workers, elapsed.Seconds())
	}
	return report, nil
}
