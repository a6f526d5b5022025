package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveClass categorizes the different kinds of move.
type MoveClass int

const (
	NullMove MoveClass = iota
	NormalMove
	CaptureMove
	PawnMove
	PawnJump
	PawnCapture
	EnPassantPawnMove
	PawnMoveWithPromotion
	KingsideCastle
	QueensideCastle
)

// String returns the name of a move class.
func (c MoveClass) String() string {
	names := []string{"NullMove", "NormalMove", "CaptureMove", "PawnMove", "PawnJump",
		"PawnCapture", "EnPassantPawnMove", "PawnMoveWithPromotion", "KingsideCastle", "QueensideCastle"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move is an immutable description of a transition from the board it was
// generated on. Executing a move never modifies that board.
type Move struct {
	board     *Board
	class     MoveClass
	piece     chess.Piece
	dest      chess.Square
	captured  chess.Piece     // zero unless the move captures
	rook      chess.Piece     // castling rook, zero unless castling
	rookDest  chess.Square    // castling rook destination
	promotion chess.PieceType // NoPieceType unless promoting
}

// NoMove is the null move, returned by lookups that match no legal move.
var NoMove = Move{class: NullMove, dest: chess.NoSquare}

func newMove(b *Board, class MoveClass, piece chess.Piece, dest chess.Square) Move {
	return Move{board: b, class: class, piece: piece, dest: dest}
}

func newCapture(b *Board, class MoveClass, piece chess.Piece, dest chess.Square, captured chess.Piece) Move {
	return Move{board: b, class: class, piece: piece, dest: dest, captured: captured}
}

func newPromotion(b *Board, pawn chess.Piece, dest chess.Square, captured chess.Piece, to chess.PieceType) Move {
	return Move{board: b, class: PawnMoveWithPromotion, piece: pawn, dest: dest, captured: captured, promotion: to}
}

func newCastle(b *Board, class MoveClass, king chess.Piece, dest chess.Square, rook chess.Piece, rookDest chess.Square) Move {
	return Move{board: b, class: class, piece: king, dest: dest, rook: rook, rookDest: rookDest}
}

// Class returns the kind of move.
func (m Move) Class() MoveClass { return m.class }

// Board returns the board the move was generated on.
func (m Move) Board() *Board { return m.board }

// Piece returns the moving piece as it stands before the move.
func (m Move) Piece() chess.Piece { return m.piece }

// From returns the origin square, or NoSquare for the null move.
func (m Move) From() chess.Square {
	if m.class == NullMove {
		return chess.NoSquare
	}
	return m.piece.Square
}

// To returns the destination square.
func (m Move) To() chess.Square { return m.dest }

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m.class == NullMove }

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool { return !m.captured.IsZero() }

// Captured returns the piece removed by the move, if any.
func (m Move) Captured() (chess.Piece, bool) { return m.captured, m.IsCapture() }

// IsCastle reports whether the move is a king-side or queen-side castle.
func (m Move) IsCastle() bool {
	return m.class == KingsideCastle || m.class == QueensideCastle
}

// CastleRook returns the rook taking part in a castle and its destination.
func (m Move) CastleRook() (chess.Piece, chess.Square, bool) {
	if !m.IsCastle() {
		return chess.Piece{}, chess.NoSquare, false
	}
	return m.rook, m.rookDest, true
}

// Promotion returns the piece type a pawn promotes to, or NoPieceType.
func (m Move) Promotion() chess.PieceType { return m.promotion }

// Equal reports whether two moves describe the same transition: same moving
// piece, origin and destination, and the same captured piece, castling rook
// and promotion.
func (m Move) Equal(other Move) bool {
	return m.From() == other.From() &&
		m.dest == other.dest &&
		m.piece.Same(other.piece) &&
		m.captured.Same(other.captured) &&
		m.rook.Same(other.rook) &&
		m.promotion == other.promotion
}

// Execute returns the board that results from playing the move. It panics
// with ErrNullMove when called on the null move.
func (m Move) Execute() *Board {
	mover := m.piece.Alliance

	switch m.class {
	case NullMove:
		panic(fmt.Errorf("execute: %w", errors.ErrNullMove))

	case NormalMove, PawnMove:
		b := m.carryOver()
		b.SetPiece(m.piece.MoveTo(m.dest))
		return m.finish(b, mover)

	case CaptureMove, PawnCapture, EnPassantPawnMove:
		// The captured piece is removed from its own square, which for en
		// passant is not the destination.
		b := m.carryOver(m.captured)
		b.SetPiece(m.piece.MoveTo(m.dest))
		return m.finish(b, mover)

	case PawnJump:
		b := m.carryOver()
		moved := m.piece.MoveTo(m.dest)
		b.SetPiece(moved)
		b.SetEnPassantPawn(moved)
		return m.finish(b, mover)

	case PawnMoveWithPromotion:
		b := m.carryOver(m.captured)
		promoted := chess.Piece{Type: m.promotion, Alliance: mover, Square: m.dest, Moved: true}
		b.SetPiece(promoted)
		return m.finish(b, mover)

	case KingsideCastle, QueensideCastle:
		b := m.carryOver(m.rook)
		b.SetPiece(m.piece.MoveTo(m.dest))
		b.SetPiece(m.rook.MoveTo(m.rookDest))
		return m.finish(b, mover)
	}

	panic(fmt.Sprintf("execute: unknown move class %d", m.class))
}

// carryOver starts a builder holding every piece on the board except the
// moving piece and any listed pieces.
func (m Move) carryOver(omit ...chess.Piece) *Builder {
	b := NewBuilder()
	for _, alliance := range []chess.Alliance{chess.White, chess.Black} {
		for _, p := range m.board.ActivePieces(alliance) {
			if p.Same(m.piece) || containsPiece(omit, p) {
				continue
			}
			b.SetPiece(p)
		}
	}
	return b
}

func containsPiece(pieces []chess.Piece, p chess.Piece) bool {
	for _, q := range pieces {
		if !q.IsZero() && q.Same(p) {
			return true
		}
	}
	return false
}

// finish sets the side to move and the clocks, then builds the new board.
func (m Move) finish(b *Builder, mover chess.Alliance) *Board {
	halfmove := m.board.halfmoveClock + 1
	if m.piece.Type == chess.Pawn || m.IsCapture() {
		halfmove = 0
	}
	fullmove := m.board.fullmoveNumber
	if mover == chess.Black {
		fullmove++
	}
	b.SetNextMove(mover.Opposite())
	b.SetClocks(halfmove, fullmove)
	return b.mustBuild()
}

// String returns a short human-readable form of the move: "Nf3", "Bxe5",
// "e4", "exd5", "e8=Q", "0-0" or "0-0-0".
func (m Move) String() string {
	switch m.class {
	case NullMove:
		return "--"
	case KingsideCastle:
		return "0-0"
	case QueensideCastle:
		return "0-0-0"
	}

	var sb strings.Builder
	if m.piece.Type == chess.Pawn {
		if m.IsCapture() {
			sb.WriteByte(byte('a' + m.piece.Square.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.dest.String())
		if m.promotion != chess.NoPieceType {
			sb.WriteByte('=')
			sb.WriteByte(m.promotion.Letter())
		}
		return sb.String()
	}

	sb.WriteByte(m.piece.Type.Letter())
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.dest.String())
	return sb.String()
}

// UCI returns the move in coordinate notation, e.g. "e2e4" or "e7e8q". The
// null move is "0000".
func (m Move) UCI() string {
	if m.class == NullMove {
		return "0000"
	}
	s := m.From().String() + m.dest.String()
	if m.promotion != chess.NoPieceType {
		s += strings.ToLower(string(m.promotion.Letter()))
	}
	return s
}
