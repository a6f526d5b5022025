package output

import (
	"encoding/json"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/render"
)

// ReportWriter is the interface for writing reports.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(cfg config.OutputConfig) ReportWriter {
	if cfg.JSON {
		return NewJSONWriter(cfg.File)
	}
	tw := NewTextWriter(cfg.File, cfg.Draw, render.Options{Colour: cfg.Colour, Flip: cfg.Flip})
	if sq, err := chess.ParseSquare(cfg.Show); err == nil {
		tw.Show(sq)
	}
	return tw
}

// TextWriter writes reports as labelled lines, with an optional diagram.
// Counts are printed with digit grouping.
type TextWriter struct {
	w    io.Writer
	p    *message.Printer
	draw bool
	opts render.Options
	show chess.Square
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, draw bool, opts render.Options) *TextWriter {
	return &TextWriter{
		w:    w,
		p:    message.NewPrinter(language.English),
		draw: draw,
		opts: opts,
		show: chess.NoSquare,
	}
}

// Show highlights the destinations of the piece on sq in the final
// position's diagram.
func (tw *TextWriter) Show(sq chess.Square) *TextWriter {
	tw.show = sq
	return tw
}

// WriteReport writes the final position of r.
func (tw *TextWriter) WriteReport(r *Report) error {
	final := r.Final()
	if tw.draw {
		opts := tw.opts
		if tw.show != chess.NoSquare {
			opts.Highlight = render.Destinations(final, tw.show)
		}
		if err := render.Draw(tw.w, final, opts); err != nil {
			return err
		}
	}

	if _, err := tw.p.Fprintf(tw.w, "FEN: %s\nStatus: %s\n", engine.BoardToFEN(final), final.Status()); err != nil {
		return err
	}

	if r.ListMoves {
		moves := safeMoveNames(final)
		if _, err := tw.p.Fprintf(tw.w, "Moves (%d): %s\n", len(moves), strings.Join(moves, " ")); err != nil {
			return err
		}
	}

	if r.Perft != nil {
		return tw.writePerft(r.Perft)
	}
	return nil
}

func (tw *TextWriter) writePerft(pr *PerftReport) error {
	for _, e := range pr.Divide {
		if _, err := tw.p.Fprintf(tw.w, "%s: %d\n", e.Move.UCI(), e.Nodes); err != nil {
			return err
		}
	}
	_, err := tw.p.Fprintf(tw.w, "perft(%d) = %d\n", pr.Depth, pr.Total.Nodes)
	return err
}

// JSONWriter writes each report as an indented JSON document.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport encodes r.
func (jw *JSONWriter) WriteReport(r *Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r))
}
