package engine

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Player is the view of a board from one side: its king, its legal moves
// (castles included) and whether it is in check. Players are derived when a
// board is built and share its immutability.
type Player struct {
	board      *Board
	alliance   chess.Alliance
	king       chess.Piece
	legalMoves []Move
	attacked   chess.SquareSet
	inCheck    bool

	escapeOnce sync.Once
	hasEscape  bool
}

// newPlayer expects the board to hold exactly one king for alliance.
func newPlayer(b *Board, alliance chess.Alliance, own, opponent []Move) *Player {
	p := &Player{
		board:    b,
		alliance: alliance,
		king:     establishKing(b.ActivePieces(alliance)),
		attacked: calculateAttackedSquares(b, alliance.Opposite(), opponent),
	}
	p.inCheck = p.attacked.Has(p.king.Square)

	p.legalMoves = make([]Move, 0, len(own)+2)
	p.legalMoves = append(p.legalMoves, own...)
	p.legalMoves = append(p.legalMoves, p.calculateKingCastleMoves()...)
	return p
}

func establishKing(pieces []chess.Piece) chess.Piece {
	for _, piece := range pieces {
		if piece.Type == chess.King {
			return piece
		}
	}
	return chess.Piece{Square: chess.NoSquare}
}

// Alliance returns the side of the player.
func (p *Player) Alliance() chess.Alliance { return p.alliance }

// Board returns the board the player belongs to.
func (p *Player) Board() *Board { return p.board }

// King returns the player's king.
func (p *Player) King() chess.Piece { return p.king }

// ActivePieces returns the player's pieces.
func (p *Player) ActivePieces() []chess.Piece { return p.board.ActivePieces(p.alliance) }

// Opponent returns the other player on the same board.
func (p *Player) Opponent() *Player { return p.board.Player(p.alliance.Opposite()) }

// LegalMoves returns the player's moves before self-check filtering,
// castles included.
func (p *Player) LegalMoves() []Move {
	return append([]Move(nil), p.legalMoves...)
}

// IsMoveLegal reports whether m is in the player's legal move set.
func (p *Player) IsMoveLegal(m Move) bool {
	_, ok := p.findLegal(m)
	return ok
}

func (p *Player) findLegal(m Move) (Move, bool) {
	for _, legal := range p.legalMoves {
		if legal.Equal(m) {
			return legal, true
		}
	}
	return NoMove, false
}

// AttacksOnTile returns the opponent's standard moves that land on sq.
func (p *Player) AttacksOnTile(sq chess.Square) []Move {
	var standard []Move
	for _, m := range p.Opponent().legalMoves {
		if !m.IsCastle() {
			standard = append(standard, m)
		}
	}
	return calculateAttacksOnTile(sq, standard)
}

// IsSquareAttacked reports whether the opponent threatens sq.
func (p *Player) IsSquareAttacked(sq chess.Square) bool {
	return p.attacked.Has(sq)
}

// IsInCheck reports whether the player's king is attacked.
func (p *Player) IsInCheck() bool { return p.inCheck }

// IsInCheckmate reports whether the player is in check with no move that
// escapes it.
func (p *Player) IsInCheckmate() bool {
	return p.inCheck && !p.hasEscapeMoves()
}

// IsInStalemate reports whether the player is not in check but has no move
// that keeps its king safe.
func (p *Player) IsInStalemate() bool {
	return !p.inCheck && !p.hasEscapeMoves()
}

// hasEscapeMoves plays out every legal move. The result is computed once
// per player.
func (p *Player) hasEscapeMoves() bool {
	p.escapeOnce.Do(func() {
		for _, m := range p.legalMoves {
			if p.transition(m).Status.IsDone() {
				p.hasEscape = true
				return
			}
		}
	})
	return p.hasEscape
}

// SafeMoves returns the legal moves that do not leave the king in check.
func (p *Player) SafeMoves() []Move {
	var moves []Move
	for _, m := range p.legalMoves {
		if p.transition(m).Status.IsDone() {
			moves = append(moves, m)
		}
	}
	return moves
}

// MakeMove plays m for this player. The transition reports MoveIllegal when
// it is not this player's turn or m is not one of its legal moves, and
// MoveLeavesPlayerInCheck when m would expose its king; in both cases the
// transition carries the unchanged board.
func (p *Player) MakeMove(m Move) MoveTransition {
	if p.board.nextMove != p.alliance {
		return MoveTransition{Board: p.board, Move: m, Status: MoveIllegal}
	}
	return p.transition(m)
}

func (p *Player) transition(m Move) MoveTransition {
	legal, ok := p.findLegal(m)
	if !ok {
		return MoveTransition{Board: p.board, Move: m, Status: MoveIllegal}
	}
	m = legal
	// Only reachable from positions where the opponent was left in check.
	if captured, ok := m.Captured(); ok && captured.Type == chess.King {
		return MoveTransition{Board: p.board, Move: m, Status: MoveIllegal}
	}

	after := m.Execute()
	if after.Player(p.alliance).IsInCheck() {
		return MoveTransition{Board: p.board, Move: m, Status: MoveLeavesPlayerInCheck}
	}
	return MoveTransition{Board: after, Move: m, Status: MoveDone}
}
