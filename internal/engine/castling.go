package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castleRule describes one castle for one side.
type castleRule struct {
	class     MoveClass
	kingStart chess.Square
	kingDest  chess.Square
	rookStart chess.Square
	rookDest  chess.Square
	empty     []chess.Square // squares strictly between king and rook
	transit   []chess.Square // squares the king crosses or lands on
}

var castleRules = map[chess.Alliance][]castleRule{
	chess.White: {
		{KingsideCastle, 60, 62, 63, 61, []chess.Square{61, 62}, []chess.Square{61, 62}},
		{QueensideCastle, 60, 58, 56, 59, []chess.Square{57, 58, 59}, []chess.Square{58, 59}},
	},
	chess.Black: {
		{KingsideCastle, 4, 6, 7, 5, []chess.Square{5, 6}, []chess.Square{5, 6}},
		{QueensideCastle, 4, 2, 0, 3, []chess.Square{1, 2, 3}, []chess.Square{2, 3}},
	},
}

// calculateKingCastleMoves returns the castles available to p. The king must
// be unmoved on its home square and not in check, every square between king
// and rook must be empty, no square the king crosses may be attacked, and an
// unmoved rook of the same side must stand on its home square.
func (p *Player) calculateKingCastleMoves() []Move {
	if p.king.Moved || p.inCheck {
		return nil
	}

	var moves []Move
	for _, rule := range castleRules[p.alliance] {
		if p.king.Square != rule.kingStart {
			continue
		}
		if !p.allEmpty(rule.empty) || p.anyAttacked(rule.transit) {
			continue
		}
		rook, ok := p.board.tiles[rule.rookStart].Piece()
		if !ok || rook.Type != chess.Rook || rook.Alliance != p.alliance || rook.Moved {
			continue
		}
		moves = append(moves, newCastle(p.board, rule.class, p.king, rule.kingDest, rook, rule.rookDest))
	}
	return moves
}

func (p *Player) allEmpty(squares []chess.Square) bool {
	for _, sq := range squares {
		if p.board.tiles[sq].IsOccupied() {
			return false
		}
	}
	return true
}

func (p *Player) anyAttacked(squares []chess.Square) bool {
	for _, sq := range squares {
		if p.attacked.Has(sq) {
			return true
		}
	}
	return false
}
