package chess

// Piece is an immutable description of a piece on a particular square.
// Moving a piece never changes a Piece value; MoveTo returns a new one.
type Piece struct {
	Type     PieceType
	Alliance Alliance
	Square   Square

	// Moved is true once the piece has made a move. Kings and rooks lose
	// their castling eligibility and pawns their double push.
	Moved bool
}

// NewPiece returns an unmoved piece.
func NewPiece(t PieceType, a Alliance, sq Square) Piece {
	return Piece{Type: t, Alliance: a, Square: sq}
}

// Same reports whether p and other are the same piece: same type, alliance
// and square. The Moved flag does not take part in identity.
func (p Piece) Same(other Piece) bool {
	return p.Type == other.Type && p.Alliance == other.Alliance && p.Square == other.Square
}

// IsZero reports whether p is the zero Piece, used where no piece is present.
func (p Piece) IsZero() bool {
	return p.Type == NoPieceType
}

// MoveTo returns the copy of p that stands on dest after a move.
func (p Piece) MoveTo(dest Square) Piece {
	p.Square = dest
	p.Moved = true
	return p
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return p.Type.Value()
}

// Letter returns the piece letter, upper case for White and lower case for
// Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Alliance == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns the piece letter followed by its square, e.g. "Ne4".
func (p Piece) String() string {
	if p.IsZero() {
		return "-"
	}
	return string(p.Letter()) + p.Square.String()
}
