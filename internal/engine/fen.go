package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingRights mirrors the third FEN field.
type castlingRights struct {
	whiteKing, whiteQueen, blackKing, blackQueen bool
}

// NewBoardFromFEN creates a board from a FEN string. Missing trailing fields
// take their initial-position defaults. Castling rights become the Moved
// flags of kings and rooks, and the en passant target identifies the pawn
// that just double-pushed.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	placement, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}

	halfmove, fullmove, err := parseClocks(parts)
	if err != nil {
		return nil, err
	}

	b := NewBuilder().SetNextMove(toMove).SetClocks(halfmove, fullmove)
	for sq, p := range placement {
		p.Moved = !startsUnmoved(p, rights)
		b.SetPiece(p)
		placement[sq] = p
	}

	if pawn, ok, err := parseEnPassant(parts, toMove, placement); err != nil {
		return nil, err
	} else if ok {
		b.SetEnPassantPawn(pawn)
	}

	board, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
func MustBoardFromFEN(fen string) *Board {
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) (map[chess.Square]chess.Piece, error) {
	placement := make(map[chess.Square]chess.Piece)
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.NumRanks {
		return nil, fmt.Errorf("expected %d ranks, got %d: %w", chess.NumRanks, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		file := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				t := chess.PieceTypeFromLetter(byte(c))
				if t == chess.NoPieceType {
					return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.NumFiles {
					return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}
				alliance := chess.White
				if unicode.IsLower(c) {
					alliance = chess.Black
				}
				sq := chess.Square(row*chess.NumFiles + file)
				placement[sq] = chess.NewPiece(t, alliance, sq)
				file++
			}
		}
		if file != chess.NumFiles {
			return nil, fmt.Errorf("rank %d has %d files: %w", chess.NumRanks-row, file, errors.ErrInvalidFEN)
		}
	}
	return placement, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Alliance, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights parses the castling availability field. A missing
// field grants nothing.
func parseCastlingRights(parts []string) (castlingRights, error) {
	var rights castlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.whiteKing = true
		case 'Q':
			rights.whiteQueen = true
		case 'k':
			rights.blackKing = true
		case 'q':
			rights.blackQueen = true
		default:
			return rights, fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// startsUnmoved decides the Moved flag of a freshly placed piece. Pawns are
// unmoved on their start rank; kings and rooks only when a castling right
// still names them.
func startsUnmoved(p chess.Piece, rights castlingRights) bool {
	switch p.Type {
	case chess.Pawn:
		return p.Alliance.PawnStartRank().Has(p.Square)
	case chess.King:
		if p.Alliance == chess.White {
			return p.Square == 60 && (rights.whiteKing || rights.whiteQueen)
		}
		return p.Square == 4 && (rights.blackKing || rights.blackQueen)
	case chess.Rook:
		switch p.Square {
		case 63:
			return p.Alliance == chess.White && rights.whiteKing
		case 56:
			return p.Alliance == chess.White && rights.whiteQueen
		case 7:
			return p.Alliance == chess.Black && rights.blackKing
		case 0:
			return p.Alliance == chess.Black && rights.blackQueen
		}
		return false
	}
	return false
}

// parseEnPassant resolves the en passant target square to the pawn that
// stands just beyond it. A target with no such pawn is ignored.
func parseEnPassant(parts []string, toMove chess.Alliance, placement map[chess.Square]chess.Piece) (chess.Piece, bool, error) {
	if len(parts) < 4 || parts[3] == "-" {
		return chess.Piece{}, false, nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return chess.Piece{}, false, fmt.Errorf("en passant %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	mover := toMove.Opposite()
	pawnSq := target + chess.Square(mover.Direction()*chess.NumFiles)
	p, ok := placement[pawnSq]
	if !ok || p.Type != chess.Pawn || p.Alliance != mover {
		return chess.Piece{}, false, nil
	}
	return p, true, nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(parts []string) (int, int, error) {
	halfmove, fullmove := 0, 1
	var err error
	if len(parts) >= 5 {
		if halfmove, err = strconv.Atoi(parts[4]); err != nil || halfmove < 0 {
			return 0, 0, fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
	}
	if len(parts) >= 6 {
		if fullmove, err = strconv.Atoi(parts[5]); err != nil || fullmove < 1 {
			return 0, 0, fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
	}
	return halfmove, fullmove, nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.halfmoveClock, board.fullmoveNumber)

	return sb.String()
}

func writePiecePositions(sb *strings.Builder, board *Board) {
	for row := 0; row < chess.NumRanks; row++ {
		emptyCount := 0
		for file := 0; file < chess.NumFiles; file++ {
			p, ok := board.tiles[row*chess.NumFiles+file].Piece()
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.NumRanks-1 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, board *Board) {
	if board.nextMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

func writeCastlingRights(sb *strings.Builder, board *Board) {
	hasCastling := false
	for _, c := range []struct {
		letter   byte
		alliance chess.Alliance
		king     chess.Square
		rook     chess.Square
	}{
		{'K', chess.White, 60, 63},
		{'Q', chess.White, 60, 56},
		{'k', chess.Black, 4, 7},
		{'q', chess.Black, 4, 0},
	} {
		if unmovedOn(board, c.king, chess.King, c.alliance) && unmovedOn(board, c.rook, chess.Rook, c.alliance) {
			sb.WriteByte(c.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

func unmovedOn(board *Board, sq chess.Square, t chess.PieceType, a chess.Alliance) bool {
	p, ok := board.tiles[sq].Piece()
	return ok && p.Type == t && p.Alliance == a && !p.Moved
}

func writeEnPassant(sb *strings.Builder, board *Board) {
	if pawn, ok := board.EnPassantPawn(); ok {
		target := pawn.Square - chess.Square(pawn.Alliance.Direction()*chess.NumFiles)
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
}
