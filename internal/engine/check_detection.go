package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// calculateAttackedSquares returns the squares the opponent threatens: the
// destination of every standard move that could capture there, plus every
// pawn diagonal whether or not anything stands on it. Pawn pushes never
// attack.
func calculateAttackedSquares(b *Board, opponent chess.Alliance, opponentMoves []Move) chess.SquareSet {
	var attacked chess.SquareSet
	for _, m := range opponentMoves {
		if m.piece.Type == chess.Pawn {
			continue
		}
		attacked.Add(m.dest)
	}
	for _, p := range b.ActivePieces(opponent) {
		if p.Type != chess.Pawn {
			continue
		}
		for _, sq := range pawnAttacks(p) {
			attacked.Add(sq)
		}
	}
	return attacked
}

// calculateAttacksOnTile returns the opponent moves that land on sq.
func calculateAttacksOnTile(sq chess.Square, opponentMoves []Move) []Move {
	var attacks []Move
	for _, m := range opponentMoves {
		if m.dest == sq {
			attacks = append(attacks, m)
		}
	}
	return attacks
}
