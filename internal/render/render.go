// Package render draws boards for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Options controls how a board is drawn.
type Options struct {
	// Colour paints light and dark squares. Without it the board is drawn
	// as a plain ASCII grid.
	Colour bool
	// Highlight marks squares, typically the destinations of a piece.
	Highlight []chess.Square
	// Flip draws the board from Black's side.
	Flip bool
}

const border = "   +---+---+---+---+---+---+---+---+\n"

// Draw writes a diagram of b to w.
func Draw(w io.Writer, b *engine.Board, opts Options) error {
	_, err := io.WriteString(w, Sprint(b, opts))
	return err
}

// Sprint returns the diagram Draw would write.
func Sprint(b *engine.Board, opts Options) string {
	var highlight chess.SquareSet
	for _, sq := range opts.Highlight {
		highlight.Add(sq)
	}
	if opts.Colour {
		return colourDiagram(b, &highlight, opts.Flip)
	}
	return plainDiagram(b, &highlight, opts.Flip)
}

// rows returns the board rows top to bottom as seen by the viewer.
func rows(flip bool) []int {
	out := make([]int, chess.NumRanks)
	for i := range out {
		if flip {
			out[i] = chess.NumRanks - 1 - i
		} else {
			out[i] = i
		}
	}
	return out
}

func files(flip bool) []int {
	return rows(flip)
}

func symbol(b *engine.Board, sq chess.Square) string {
	if p, ok := b.PieceAt(sq); ok {
		return string(p.Letter())
	}
	return " "
}

func fileLabels(flip bool) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for _, f := range files(flip) {
		fmt.Fprintf(&sb, "  %c ", 'a'+f)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func plainDiagram(b *engine.Board, highlight *chess.SquareSet, flip bool) string {
	var sb strings.Builder
	for _, row := range rows(flip) {
		sb.WriteString(border)
		fmt.Fprintf(&sb, " %d |", chess.NumRanks-row)
		for _, file := range files(flip) {
			sq := chess.Square(row*chess.NumFiles + file)
			sym := symbol(b, sq)
			if highlight.Has(sq) && sym == " " {
				sym = "*"
			}
			fmt.Fprintf(&sb, " %s |", sym)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(border)
	sb.WriteString(fileLabels(flip))
	return sb.String()
}

func colourDiagram(b *engine.Board, highlight *chess.SquareSet, flip bool) string {
	light := color.New(color.FgBlack, color.BgHiWhite)
	dark := color.New(color.FgBlack, color.BgGreen)
	marked := color.New(color.FgBlack, color.BgYellow)
	label := color.New(color.Bold)
	for _, c := range []*color.Color{light, dark, marked, label} {
		c.EnableColor()
	}

	var sb strings.Builder
	for _, row := range rows(flip) {
		sb.WriteString(label.Sprintf(" %d ", chess.NumRanks-row))
		for _, file := range files(flip) {
			sq := chess.Square(row*chess.NumFiles + file)
			cell := dark
			if (row+file)%2 == 0 {
				cell = light
			}
			if highlight.Has(sq) {
				cell = marked
			}
			sb.WriteString(cell.Sprintf(" %s ", symbol(b, sq)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for _, f := range files(flip) {
		sb.WriteString(label.Sprintf(" %c ", 'a'+f))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Destinations returns the squares the piece on sq can safely move to.
func Destinations(b *engine.Board, sq chess.Square) []chess.Square {
	p, ok := b.PieceAt(sq)
	if !ok {
		return nil
	}
	var out []chess.Square
	for _, m := range b.Player(p.Alliance).SafeMoves() {
		if m.From() == sq {
			out = append(out, m.To())
		}
	}
	return out
}
