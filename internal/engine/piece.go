package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction offsets in square indices.
var (
	knightOffsets   = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets     = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	bishopOffsets   = []int{-9, -7, 7, 9}
	rookOffsets     = []int{-8, -1, 1, 8}
	queenOffsets    = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	promotionPieces = chess.PromotionTypes
)

// edgeExclusion lists offsets that must not be taken from any square in
// files, because the raw index arithmetic would land on the far edge of a
// neighbouring rank.
type edgeExclusion struct {
	files   *chess.SquareSet
	offsets []int
}

var (
	// Offsets that step one file to the left or right.
	oneFileExclusions = []edgeExclusion{
		{&chess.FirstFile, []int{-9, -1, 7}},
		{&chess.EighthFile, []int{-7, 1, 9}},
	}

	knightExclusions = []edgeExclusion{
		{&chess.FirstFile, []int{-17, -10, 6, 15}},
		{&chess.SecondFile, []int{-10, 6}},
		{&chess.SeventhFile, []int{-6, 10}},
		{&chess.EighthFile, []int{-15, -6, 10, 17}},
	}
)

func isExcluded(exclusions []edgeExclusion, sq chess.Square, offset int) bool {
	for _, e := range exclusions {
		if !e.files.Has(sq) {
			continue
		}
		for _, o := range e.offsets {
			if o == offset {
				return true
			}
		}
	}
	return false
}

// calculatePieceMoves returns the standard moves of p on b.
func calculatePieceMoves(b *Board, p chess.Piece) []Move {
	switch p.Type {
	case chess.Pawn:
		return calculatePawnMoves(b, p)
	case chess.Knight:
		return calculateSteppingMoves(b, p, knightOffsets, knightExclusions)
	case chess.Bishop:
		return calculateSlidingMoves(b, p, bishopOffsets)
	case chess.Rook:
		return calculateSlidingMoves(b, p, rookOffsets)
	case chess.Queen:
		return calculateSlidingMoves(b, p, queenOffsets)
	case chess.King:
		return calculateSteppingMoves(b, p, kingOffsets, oneFileExclusions)
	}
	return nil
}

// calculateSlidingMoves walks each direction until the edge of the board, a
// friendly piece (not included) or an enemy piece (captured).
func calculateSlidingMoves(b *Board, p chess.Piece, offsets []int) []Move {
	var moves []Move
	for _, offset := range offsets {
		sq := p.Square
		for {
			if isExcluded(oneFileExclusions, sq, offset) {
				break
			}
			sq += chess.Square(offset)
			if !sq.Valid() {
				break
			}
			target, occupied := b.tiles[sq].Piece()
			if !occupied {
				moves = append(moves, newMove(b, NormalMove, p, sq))
				continue
			}
			if target.Alliance != p.Alliance {
				moves = append(moves, newCapture(b, CaptureMove, p, sq, target))
			}
			break
		}
	}
	return moves
}

// calculateSteppingMoves tries each offset once.
func calculateSteppingMoves(b *Board, p chess.Piece, offsets []int, exclusions []edgeExclusion) []Move {
	var moves []Move
	for _, offset := range offsets {
		if isExcluded(exclusions, p.Square, offset) {
			continue
		}
		sq := p.Square + chess.Square(offset)
		if !sq.Valid() {
			continue
		}
		target, occupied := b.tiles[sq].Piece()
		switch {
		case !occupied:
			moves = append(moves, newMove(b, NormalMove, p, sq))
		case target.Alliance != p.Alliance:
			moves = append(moves, newCapture(b, CaptureMove, p, sq, target))
		}
	}
	return moves
}
