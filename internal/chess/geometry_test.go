package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestSquareNames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sq   Square
		name string
		file int
		rank int
	}{
		{0, "a8", 0, 8},
		{7, "h8", 7, 8},
		{27, "d5", 3, 5},
		{36, "e4", 4, 4},
		{56, "a1", 0, 1},
		{60, "e1", 4, 1},
		{63, "h1", 7, 1},
	}

	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.name {
			t.Errorf("Square(%d).String() = %q, want %q", int(tt.sq), got, tt.name)
		}
		if got := tt.sq.File(); got != tt.file {
			t.Errorf("%s.File() = %d, want %d", tt.name, got, tt.file)
		}
		if got := tt.sq.Rank(); got != tt.rank {
			t.Errorf("%s.Rank() = %d, want %d", tt.name, got, tt.rank)
		}
		got, err := ParseSquare(tt.name)
		if err != nil || got != tt.sq {
			t.Errorf("ParseSquare(%q) = %d, %v; want %d", tt.name, int(got), err, int(tt.sq))
		}
	}
}

func TestSquareRoundTrip(t *testing.T) {
	t.Parallel()
	for sq := Square(0); sq < NumTiles; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil || got != sq {
			t.Errorf("ParseSquare(%s) = %d, %v; want %d", sq, int(got), err, int(sq))
		}
	}
}

func TestInvalidSquares(t *testing.T) {
	t.Parallel()
	for _, sq := range []Square{NoSquare, 64, -10, 200} {
		if sq.Valid() || IsValidSquare(sq) {
			t.Errorf("Square(%d) reported valid", int(sq))
		}
		if got := sq.String(); got != "??" {
			t.Errorf("Square(%d).String() = %q, want ??", int(sq), got)
		}
	}

	for _, name := range []string{"", "e", "e9", "i1", "E4", "e44", "??"} {
		sq, err := ParseSquare(name)
		if !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", name, err)
		}
		if sq != NoSquare {
			t.Errorf("ParseSquare(%q) = %d, want NoSquare", name, int(sq))
		}
	}
}

func TestMustParseSquarePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("MustParseSquare(\"z0\") did not panic")
		}
	}()
	MustParseSquare("z0")
}

func TestFileAndRankTables(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		set     *SquareSet
		members []Square
	}{
		{"FirstFile", &FirstFile, []Square{0, 8, 16, 24, 32, 40, 48, 56}},
		{"SecondFile", &SecondFile, []Square{1, 9, 17, 25, 33, 41, 49, 57}},
		{"SeventhFile", &SeventhFile, []Square{6, 14, 22, 30, 38, 46, 54, 62}},
		{"EighthFile", &EighthFile, []Square{7, 15, 23, 31, 39, 47, 55, 63}},
		{"FirstRank", &FirstRank, []Square{56, 57, 58, 59, 60, 61, 62, 63}},
		{"SecondRank", &SecondRank, []Square{48, 49, 50, 51, 52, 53, 54, 55}},
		{"SeventhRank", &SeventhRank, []Square{8, 9, 10, 11, 12, 13, 14, 15}},
		{"EighthRank", &EighthRank, []Square{0, 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		count := 0
		for sq := Square(0); sq < NumTiles; sq++ {
			if tt.set.Has(sq) {
				count++
			}
		}
		if count != 8 {
			t.Errorf("%s has %d members, want 8", tt.name, count)
		}
		for _, sq := range tt.members {
			if !tt.set.Has(sq) {
				t.Errorf("%s.Has(%s) = false", tt.name, sq)
			}
		}
	}
}

func TestSquareSet(t *testing.T) {
	t.Parallel()
	var s SquareSet
	s.Add(12)
	s.Add(NoSquare)
	s.Add(64)

	if !s.Has(12) {
		t.Error("Has(12) = false after Add")
	}
	if s.Has(13) || s.Has(NoSquare) || s.Has(64) {
		t.Error("SquareSet reports squares that were never added")
	}
}
