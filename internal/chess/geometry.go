// Package chess provides the core value types of the rules engine: board
// coordinates, sides, pieces and tiles.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board dimensions.
const (
	NumTiles = 64
	NumFiles = 8
	NumRanks = 8
)

// Square is a board coordinate in 0..63, numbered row by row starting at a8
// and ending at h1.
type Square int

// NoSquare marks the absence of a coordinate (for example the destination of
// the null move).
const NoSquare Square = -1

// SquareSet is a membership table over all 64 squares.
type SquareSet [NumTiles]bool

// Has reports whether sq is a member of the set. Invalid squares are never
// members.
func (s *SquareSet) Has(sq Square) bool {
	return sq.Valid() && s[sq]
}

// Add marks sq as a member of the set.
func (s *SquareSet) Add(sq Square) {
	if sq.Valid() {
		s[sq] = true
	}
}

// File membership tables, used by the move generators to detect offsets that
// would wrap around the edge of the board.
var (
	FirstFile   = initFile(0)
	SecondFile  = initFile(1)
	SeventhFile = initFile(6)
	EighthFile  = initFile(7)
)

// Rank membership tables. FirstRank is White's back rank.
var (
	FirstRank   = initRank(1)
	SecondRank  = initRank(2)
	ThirdRank   = initRank(3)
	FourthRank  = initRank(4)
	FifthRank   = initRank(5)
	SixthRank   = initRank(6)
	SeventhRank = initRank(7)
	EighthRank  = initRank(8)
)

func initFile(file int) SquareSet {
	var set SquareSet
	for sq := file; sq < NumTiles; sq += NumFiles {
		set[sq] = true
	}
	return set
}

func initRank(rank int) SquareSet {
	var set SquareSet
	start := (NumRanks - rank) * NumFiles
	for i := 0; i < NumFiles; i++ {
		set[start+i] = true
	}
	return set
}

var (
	algebraicNotation = initAlgebraicNotation()
	squareByName      = initSquareByName()
)

func initAlgebraicNotation() [NumTiles]string {
	var names [NumTiles]string
	for sq := 0; sq < NumTiles; sq++ {
		file := byte('a' + sq%NumFiles)
		rank := byte('0' + NumRanks - sq/NumFiles)
		names[sq] = string([]byte{file, rank})
	}
	return names
}

func initSquareByName() map[string]Square {
	m := make(map[string]Square, NumTiles)
	for sq, name := range algebraicNotation {
		m[name] = Square(sq)
	}
	return m
}

// IsValidSquare returns true for coordinates 0..63.
func IsValidSquare(sq Square) bool {
	return sq >= 0 && sq < NumTiles
}

// Valid is a method form of IsValidSquare.
func (sq Square) Valid() bool {
	return IsValidSquare(sq)
}

// File returns the zero-based file of the square (0 = a, 7 = h).
func (sq Square) File() int {
	return int(sq) % NumFiles
}

// Rank returns the one-based rank of the square (1 = White's back rank).
func (sq Square) Rank() int {
	return NumRanks - int(sq)/NumFiles
}

// String returns the algebraic name of the square ("a8".."h1"), or "??" for
// a coordinate outside the board.
func (sq Square) String() string {
	if !sq.Valid() {
		return "??"
	}
	return algebraicNotation[sq]
}

// ParseSquare converts an algebraic name such as "e4" to its coordinate.
func ParseSquare(name string) (Square, error) {
	sq, ok := squareByName[name]
	if !ok {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on an unknown name. It is
// intended for constants and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
