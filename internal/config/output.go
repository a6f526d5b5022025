package config

import (
	"io"
	"os"
)

// OutputConfig holds settings for the report and its board diagram.
type OutputConfig struct {
	// File receives the program's results.
	File io.Writer

	// Draw prints a diagram of the final position.
	Draw bool

	// Colour paints the diagram's squares.
	Colour bool

	// Flip draws the diagram from Black's side.
	Flip bool

	// JSON writes the report as a JSON document instead of text.
	JSON bool

	// Show names a square whose piece's destinations are highlighted on
	// the diagram ("" for none).
	Show string
}

// NewOutputConfig returns output to stdout with no diagram.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{File: os.Stdout}
}
