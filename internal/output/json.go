package output

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONReport represents a report in JSON format.
type JSONReport struct {
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves"`
	FinalFEN   string     `json:"finalFEN"`
	Status     string     `json:"status"`
	LegalMoves []string   `json:"legalMoves,omitempty"`
	Perft      *JSONPerft `json:"perft,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// JSONPerft represents perft counts in JSON format.
type JSONPerft struct {
	Depth      int               `json:"depth"`
	Nodes      uint64            `json:"nodes"`
	Captures   uint64            `json:"captures"`
	EnPassants uint64            `json:"enPassants"`
	Castles    uint64            `json:"castles"`
	Promotions uint64            `json:"promotions"`
	Checks     uint64            `json:"checks"`
	Divide     map[string]uint64 `json:"divide,omitempty"`
}

// ReportToJSON converts a report to JSON format.
func ReportToJSON(r *Report) *JSONReport {
	final := r.Final()
	jr := &JSONReport{
		InitialFEN: engine.BoardToFEN(r.Start),
		Moves:      make([]JSONMove, 0, len(r.Plies)),
		FinalFEN:   engine.BoardToFEN(final),
		Status:     final.Status().String(),
	}

	for _, t := range r.Plies {
		jr.Moves = append(jr.Moves, MoveToJSON(t))
	}

	if r.ListMoves {
		jr.LegalMoves = safeMoveNames(final)
	}

	if pr := r.Perft; pr != nil {
		jr.Perft = &JSONPerft{
			Depth:      pr.Depth,
			Nodes:      pr.Total.Nodes,
			Captures:   pr.Total.Captures,
			EnPassants: pr.Total.EnPassants,
			Castles:    pr.Total.Castles,
			Promotions: pr.Total.Promotions,
			Checks:     pr.Total.Checks,
		}
		if len(pr.Divide) > 0 {
			jr.Perft.Divide = make(map[string]uint64, len(pr.Divide))
			for _, e := range pr.Divide {
				jr.Perft.Divide[e.Move.UCI()] = e.Nodes
			}
		}
	}
	return jr
}

// MoveToJSON converts a completed transition to JSON format. The move
// number and colour come from the position the move was played in.
func MoveToJSON(t engine.MoveTransition) JSONMove {
	m := t.Move
	before := m.Board()
	jm := JSONMove{
		MoveNumber: before.FullmoveNumber(),
		Color:      strings.ToLower(m.Piece().Alliance.String()),
		SAN:        m.String(),
		UCI:        m.UCI(),
		From:       m.From().String(),
		To:         m.To().String(),
		Piece:      pieceTypeName(m.Piece().Type),
		FEN:        engine.BoardToFEN(t.Board),
	}
	if captured, ok := m.Captured(); ok {
		jm.Captured = pieceTypeName(captured.Type)
	}
	if promo := m.Promotion(); promo != chess.NoPieceType {
		jm.Promotion = pieceTypeName(promo)
	}
	return jm
}

func pieceTypeName(t chess.PieceType) string {
	return strings.ToLower(t.String())
}
