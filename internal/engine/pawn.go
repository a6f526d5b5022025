package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Pawn offsets, multiplied by the alliance direction.
const (
	pawnPush     = 8
	pawnJump     = 16
	pawnCapture7 = 7
	pawnCapture9 = 9
)

// pawnCaptureExcluded reports whether the diagonal offset would wrap around
// the board edge for a pawn of the given alliance on sq.
func pawnCaptureExcluded(sq chess.Square, alliance chess.Alliance, offset int) bool {
	switch offset {
	case pawnCapture7:
		return (chess.FirstFile.Has(sq) && alliance.IsBlack()) ||
			(chess.EighthFile.Has(sq) && alliance.IsWhite())
	case pawnCapture9:
		return (chess.FirstFile.Has(sq) && alliance.IsWhite()) ||
			(chess.EighthFile.Has(sq) && alliance.IsBlack())
	}
	return true
}

// pawnAttacks returns the diagonal squares a pawn threatens, whether or not
// they are occupied.
func pawnAttacks(p chess.Piece) []chess.Square {
	var squares []chess.Square
	for _, offset := range []int{pawnCapture7, pawnCapture9} {
		if pawnCaptureExcluded(p.Square, p.Alliance, offset) {
			continue
		}
		sq := p.Square + chess.Square(p.Alliance.Direction()*offset)
		if sq.Valid() {
			squares = append(squares, sq)
		}
	}
	return squares
}

// calculatePawnMoves returns the pushes, double push, captures, en passant
// captures and promotions available to pawn p.
func calculatePawnMoves(b *Board, p chess.Piece) []Move {
	var moves []Move
	dir := p.Alliance.Direction()

	push := p.Square + chess.Square(dir*pawnPush)
	if push.Valid() && !b.tiles[push].IsOccupied() {
		if p.Alliance.PromotionRank().Has(push) {
			moves = appendPromotions(moves, b, p, push, chess.Piece{})
		} else {
			moves = append(moves, newMove(b, PawnMove, p, push))
		}

		jump := p.Square + chess.Square(dir*pawnJump)
		if !p.Moved && p.Alliance.PawnStartRank().Has(p.Square) &&
			jump.Valid() && !b.tiles[jump].IsOccupied() {
			moves = append(moves, newMove(b, PawnJump, p, jump))
		}
	}

	for _, dest := range pawnAttacks(p) {
		target, occupied := b.tiles[dest].Piece()
		if occupied {
			if target.Alliance == p.Alliance {
				continue
			}
			if p.Alliance.PromotionRank().Has(dest) {
				moves = appendPromotions(moves, b, p, dest, target)
			} else {
				moves = append(moves, newCapture(b, PawnCapture, p, dest, target))
			}
			continue
		}
		if ep, ok := b.EnPassantPawn(); ok && ep.Alliance != p.Alliance &&
			ep.Square == dest-chess.Square(dir*pawnPush) {
			moves = append(moves, newCapture(b, EnPassantPawnMove, p, dest, ep))
		}
	}

	return moves
}

func appendPromotions(moves []Move, b *Board, p chess.Piece, dest chess.Square, captured chess.Piece) []Move {
	for _, t := range promotionPieces {
		moves = append(moves, newPromotion(b, p, dest, captured, t))
	}
	return moves
}
