// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

var (
	// Position
	fenString = flag.String("fen", engine.InitialFEN, "Starting position in FEN")
	moveList  = flag.String("moves", "", "Space-separated coordinate moves to play, e.g. \"e2e4 e7e5\"")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	listMoves  = flag.Bool("list", false, "List the safe moves of the side to move")
	drawBoard  = flag.Bool("draw", false, "Draw the final position")
	colour     = flag.Bool("colour", false, "Draw the board in colour")
	flip       = flag.Bool("flip", false, "Draw the board from Black's side")
	jsonOutput = flag.Bool("json", false, "Write the report as JSON")
	showSquare = flag.String("show", "", "Highlight where the piece on this square can move, e.g. \"g1\"")

	// Perft
	perftDepth   = flag.Int("perft", 0, "Count move paths to this depth (0 = off)")
	divide       = flag.Bool("divide", false, "Show the perft count below each root move")
	perftWorkers = flag.Int("workers", 0, "Perft worker goroutines (0 = one per CPU)")

	// General
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summary, 2=every move")
	version   = flag.Bool("version", false, "Print version and exit")
	help      = flag.Bool("help", false, "Show usage")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	cfg.FEN = *fenString
	cfg.Moves = strings.Fields(*moveList)
	cfg.ListMoves = *listMoves
	cfg.Verbosity = *verbosity

	applyOutputFlags(cfg)
	applyPerftFlags(cfg)
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Draw = *drawBoard || *colour || *flip || *showSquare != ""
	cfg.Output.Colour = *colour
	cfg.Output.Flip = *flip
	cfg.Output.JSON = *jsonOutput
	cfg.Output.Show = *showSquare
}

func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	if *perftWorkers != 0 {
		cfg.Perft.Workers = *perftWorkers
	}
}
