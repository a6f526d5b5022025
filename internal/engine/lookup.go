package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LookupMove returns the legal move of either side from one square to
// another, or NoMove if there is none. A promotion square yields the queen
// promotion; use LookupPromotion for the others.
func LookupMove(b *Board, from, to chess.Square) Move {
	for _, m := range b.AllLegalMoves() {
		if m.From() == from && m.To() == to {
			return m
		}
	}
	return NoMove
}

// LookupPromotion is like LookupMove but selects the promotion to the given
// piece type.
func LookupPromotion(b *Board, from, to chess.Square, promotion chess.PieceType) Move {
	for _, m := range b.AllLegalMoves() {
		if m.From() == from && m.To() == to && m.promotion == promotion {
			return m
		}
	}
	return NoMove
}

// ParseMove looks up a move given in coordinate notation such as "e2e4" or
// "e7e8n". A missing promotion letter selects the queen.
func ParseMove(b *Board, text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NoMove, fmt.Errorf("%q: %w", text, errors.ErrIllegalMove)
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return NoMove, err
	}

	var m Move
	if len(text) == 5 {
		promotion := chess.PieceTypeFromLetter(text[4])
		if promotion == chess.NoPieceType || promotion == chess.Pawn || promotion == chess.King {
			return NoMove, fmt.Errorf("%q: bad promotion piece: %w", text, errors.ErrIllegalMove)
		}
		m = LookupPromotion(b, from, to, promotion)
	} else {
		m = LookupMove(b, from, to)
	}

	if m.IsNull() {
		return NoMove, fmt.Errorf("%q: %w", text, errors.ErrIllegalMove)
	}
	return m, nil
}
