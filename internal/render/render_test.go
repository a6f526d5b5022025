package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestPlainDiagram(t *testing.T) {
	var buf bytes.Buffer
	err := Draw(&buf, engine.NewStandardBoard(), Options{})
	testutil.AssertNoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[0], border[:len(border)-1])
	testutil.AssertEqual(t, lines[1], " 8 | r | n | b | q | k | b | n | r |")
	testutil.AssertEqual(t, lines[13], " 2 | P | P | P | P | P | P | P | P |")
	testutil.AssertEqual(t, lines[15], " 1 | R | N | B | Q | K | B | N | R |")
	testutil.AssertEqual(t, lines[17], "     a   b   c   d   e   f   g   h ")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("plain diagram contains escape sequences")
	}
}

func TestPlainDiagramFlipped(t *testing.T) {
	out := Sprint(engine.NewStandardBoard(), Options{Flip: true})
	lines := strings.Split(out, "\n")
	testutil.AssertEqual(t, lines[1], " 1 | R | N | B | K | Q | B | N | R |")
	testutil.AssertEqual(t, lines[17], "     h   g   f   e   d   c   b   a ")
}

func TestHighlightDestinations(t *testing.T) {
	b := engine.NewStandardBoard()
	dests := Destinations(b, chess.MustParseSquare("g1"))
	testutil.AssertEqual(t, len(dests), 2)

	out := Sprint(b, Options{Highlight: dests})
	lines := strings.Split(out, "\n")
	testutil.AssertEqual(t, lines[11], " 3 |   |   |   |   |   | * |   | * |")

	testutil.AssertEqual(t, len(Destinations(b, chess.MustParseSquare("e4"))), 0)
}

func TestColourDiagram(t *testing.T) {
	out := Sprint(engine.NewStandardBoard(), Options{Colour: true})
	testutil.AssertContains(t, out, "\x1b[")
	testutil.AssertContains(t, out, " k ")
	testutil.AssertEqual(t, strings.Count(out, "\n"), 9)
}
