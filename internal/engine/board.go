// Package engine implements the chess rules: move generation, move
// application, and check, checkmate and stalemate detection.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board is an immutable snapshot of a position: 64 tiles, the pieces of each
// side, and the two players derived from them. Boards are only produced by a
// Builder and are safe to share between goroutines.
type Board struct {
	tiles       [chess.NumTiles]chess.Tile
	whitePieces []chess.Piece
	blackPieces []chess.Piece

	whitePlayer *Player
	blackPlayer *Player
	nextMove    chess.Alliance

	// The pawn that double-pushed on the previous move, if any.
	enPassantPawn  chess.Piece
	halfmoveClock  int
	fullmoveNumber int
}

// Builder assembles a piece placement and the side to move, and produces a
// Board. A Builder may be reused; each Build returns an independent Board.
type Builder struct {
	config         map[chess.Square]chess.Piece
	nextMove       chess.Alliance
	enPassantPawn  chess.Piece
	halfmoveClock  int
	fullmoveNumber int
}

// NewBuilder returns an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{
		config:         make(map[chess.Square]chess.Piece),
		nextMove:       chess.White,
		fullmoveNumber: 1,
	}
}

// SetPiece places p on its square, replacing any piece already there.
func (b *Builder) SetPiece(p chess.Piece) *Builder {
	b.config[p.Square] = p
	return b
}

// SetNextMove sets the side to move.
func (b *Builder) SetNextMove(a chess.Alliance) *Builder {
	b.nextMove = a
	return b
}

// SetEnPassantPawn records the pawn that just made a double push.
func (b *Builder) SetEnPassantPawn(p chess.Piece) *Builder {
	b.enPassantPawn = p
	return b
}

// SetClocks sets the halfmove clock and fullmove number.
func (b *Builder) SetClocks(halfmove, fullmove int) *Builder {
	b.halfmoveClock = halfmove
	b.fullmoveNumber = fullmove
	return b
}

// Build produces the board. It fails with ErrInvalidKings unless each side
// has exactly one king.
func (b *Builder) Build() (*Board, error) {
	return newBoard(b)
}

// mustBuild is used when rebuilding from a legal move, which can never
// change the number of kings.
func (b *Builder) mustBuild() *Board {
	board, err := newBoard(b)
	if err != nil {
		panic(err)
	}
	return board
}

func newBoard(b *Builder) (*Board, error) {
	board := &Board{
		nextMove:       b.nextMove,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
	}

	for i := range board.tiles {
		sq := chess.Square(i)
		if p, ok := b.config[sq]; ok {
			board.tiles[i] = chess.NewTile(sq, &p)
		} else {
			board.tiles[i] = chess.NewTile(sq, nil)
		}
	}
	board.whitePieces = activePieces(&board.tiles, chess.White)
	board.blackPieces = activePieces(&board.tiles, chess.Black)

	for _, alliance := range []chess.Alliance{chess.White, chess.Black} {
		if n := countKings(board.ActivePieces(alliance)); n != 1 {
			return nil, errors.Wrapf(errors.ErrInvalidKings, "%s has %d kings", alliance, n)
		}
	}

	// Only keep the en passant pawn if it is still standing where it landed.
	if ep := b.enPassantPawn; ep.Type == chess.Pawn && ep.Square.Valid() {
		if p, ok := board.tiles[ep.Square].Piece(); ok && p.Same(ep) {
			board.enPassantPawn = p
		}
	}

	whiteStandard := board.calculateLegalMoves(board.whitePieces)
	blackStandard := board.calculateLegalMoves(board.blackPieces)

	board.whitePlayer = newPlayer(board, chess.White, whiteStandard, blackStandard)
	board.blackPlayer = newPlayer(board, chess.Black, blackStandard, whiteStandard)

	return board, nil
}

func activePieces(tiles *[chess.NumTiles]chess.Tile, alliance chess.Alliance) []chess.Piece {
	var pieces []chess.Piece
	for _, t := range tiles {
		if p, ok := t.Piece(); ok && p.Alliance == alliance {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

func countKings(pieces []chess.Piece) int {
	n := 0
	for _, p := range pieces {
		if p.Type == chess.King {
			n++
		}
	}
	return n
}

// calculateLegalMoves returns the standard (non-castling) moves of pieces.
func (b *Board) calculateLegalMoves(pieces []chess.Piece) []Move {
	var moves []Move
	for _, p := range pieces {
		moves = append(moves, calculatePieceMoves(b, p)...)
	}
	return moves
}

// NewStandardBoard returns the initial position with White to move.
func NewStandardBoard() *Board {
	b := NewBuilder()
	backRank := []chess.PieceType{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for file, t := range backRank {
		b.SetPiece(chess.NewPiece(t, chess.Black, chess.Square(file)))
		b.SetPiece(chess.NewPiece(chess.Pawn, chess.Black, chess.Square(8+file)))
		b.SetPiece(chess.NewPiece(chess.Pawn, chess.White, chess.Square(48+file)))
		b.SetPiece(chess.NewPiece(t, chess.White, chess.Square(56+file)))
	}
	b.SetNextMove(chess.White)
	return b.mustBuild()
}

// Tile returns the tile at sq. It panics if sq is off the board.
func (b *Board) Tile(sq chess.Square) chess.Tile {
	return b.tiles[sq]
}

// PieceAt returns the piece on sq, if any. Invalid squares are empty.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, bool) {
	if !sq.Valid() {
		return chess.Piece{}, false
	}
	return b.tiles[sq].Piece()
}

// ActivePieces returns the pieces of the given side in square order.
func (b *Board) ActivePieces(alliance chess.Alliance) []chess.Piece {
	if alliance == chess.White {
		return append([]chess.Piece(nil), b.whitePieces...)
	}
	return append([]chess.Piece(nil), b.blackPieces...)
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	return len(b.whitePieces) + len(b.blackPieces)
}

// WhitePlayer returns the player for White.
func (b *Board) WhitePlayer() *Player { return b.whitePlayer }

// BlackPlayer returns the player for Black.
func (b *Board) BlackPlayer() *Player { return b.blackPlayer }

// Player returns the player for the given side.
func (b *Board) Player(alliance chess.Alliance) *Player {
	if alliance == chess.White {
		return b.whitePlayer
	}
	return b.blackPlayer
}

// CurrentPlayer returns the player whose turn it is.
func (b *Board) CurrentPlayer() *Player {
	return b.Player(b.nextMove)
}

// AllLegalMoves returns White's legal moves followed by Black's, castles
// included and self-check not filtered.
func (b *Board) AllLegalMoves() []Move {
	moves := b.whitePlayer.LegalMoves()
	return append(moves, b.blackPlayer.legalMoves...)
}

// EnPassantPawn returns the pawn that double-pushed on the previous move.
func (b *Board) EnPassantPawn() (chess.Piece, bool) {
	return b.enPassantPawn, !b.enPassantPawn.IsZero()
}

// HalfmoveClock returns the number of halfmoves since the last pawn move or
// capture.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the move number, starting at 1 and incremented
// after each Black move.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// String renders the board as an 8x8 grid of piece letters, White in upper
// case, Black in lower case and "-" for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for i, t := range b.tiles {
		fmt.Fprintf(&sb, "%3s", t.String())
		if (i+1)%chess.NumFiles == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
