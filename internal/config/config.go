// Package config provides configuration for the chessrules command.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// FEN is the starting position.
	FEN string

	// Moves are coordinate moves ("e2e4") played from FEN in order.
	Moves []string

	// ListMoves prints the safe moves of the side to move.
	ListMoves bool

	Output OutputConfig
	Perft  PerftConfig

	// LogFile receives diagnostics and progress lines.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		FEN:       engine.InitialFEN,
		Output:    *NewOutputConfig(),
		Perft:     *NewPerftConfig(),
		LogFile:   os.Stderr,
	}
}

// Validate reports the first inconsistent setting, wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Verbosity < 0 || c.Verbosity > 2:
		return fmt.Errorf("verbosity %d out of range 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	case c.FEN == "":
		return fmt.Errorf("empty starting position: %w", errors.ErrInvalidConfig)
	case c.Perft.Depth < 0:
		return fmt.Errorf("negative perft depth %d: %w", c.Perft.Depth, errors.ErrInvalidConfig)
	case c.Perft.Workers < 1:
		return fmt.Errorf("need at least one perft worker, got %d: %w", c.Perft.Workers, errors.ErrInvalidConfig)
	case c.Output.File == nil || c.LogFile == nil:
		return fmt.Errorf("missing output stream: %w", errors.ErrInvalidConfig)
	}
	if c.Output.Show != "" {
		if _, err := chess.ParseSquare(c.Output.Show); err != nil {
			return fmt.Errorf("show %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// PerftConfig holds settings for move-path counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft.
	Depth int

	// Divide prints the count below each root move.
	Divide bool

	// Workers is the number of goroutines counting root subtrees.
	Workers int
}

// NewPerftConfig returns perft disabled, with one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: runtime.NumCPU()}
}
