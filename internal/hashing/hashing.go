// Package hashing provides Zobrist hashing of engine boards and a
// concurrency-safe table of perft results keyed by position.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

type zobristKeys struct {
	pieces    [2][chess.King + 1][chess.NumTiles]uint64
	blackMove uint64
	castling  [4]uint64
	enPassant [chess.NumFiles]uint64
}

var keys = newZobristKeys(zobristSeed)

// newZobristKeys fills the key table from a splitmix64 sequence.
func newZobristKeys(seed uint64) *zobristKeys {
	state := seed
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	k := &zobristKeys{}
	for a := range k.pieces {
		for t := range k.pieces[a] {
			for sq := range k.pieces[a][t] {
				k.pieces[a][t][sq] = next()
			}
		}
	}
	k.blackMove = next()
	for i := range k.castling {
		k.castling[i] = next()
	}
	for i := range k.enPassant {
		k.enPassant[i] = next()
	}
	return k
}

// castlingCorners lists the king and rook squares behind each castling
// right, in FEN order (KQkq).
var castlingCorners = [4]struct {
	alliance   chess.Alliance
	king, rook chess.Square
}{
	{chess.White, 60, 63},
	{chess.White, 60, 56},
	{chess.Black, 4, 7},
	{chess.Black, 4, 0},
}

// Hash returns the Zobrist hash of b. It covers piece placement, the side
// to move, castling rights and the en passant file; the clocks are ignored,
// so two boards with equal hashes have the same legal continuations.
func Hash(b *engine.Board) uint64 {
	var h uint64
	for _, a := range []chess.Alliance{chess.White, chess.Black} {
		for _, p := range b.ActivePieces(a) {
			h ^= keys.pieces[p.Alliance][p.Type][p.Square]
		}
	}

	if b.CurrentPlayer().Alliance() == chess.Black {
		h ^= keys.blackMove
	}

	for i, c := range castlingCorners {
		if unmoved(b, c.king, chess.King, c.alliance) && unmoved(b, c.rook, chess.Rook, c.alliance) {
			h ^= keys.castling[i]
		}
	}

	if pawn, ok := b.EnPassantPawn(); ok {
		h ^= keys.enPassant[pawn.Square.File()]
	}
	return h
}

func unmoved(b *engine.Board, sq chess.Square, t chess.PieceType, a chess.Alliance) bool {
	p, ok := b.PieceAt(sq)
	return ok && p.Type == t && p.Alliance == a && !p.Moved
}
