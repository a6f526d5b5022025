package chess

// Alliance represents the side a piece or player belongs to.
type Alliance int

const (
	Black Alliance = iota
	White
)

// String returns the string representation of an alliance.
func (a Alliance) String() string {
	if a == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other alliance.
func (a Alliance) Opposite() Alliance {
	if a == White {
		return Black
	}
	return White
}

// IsWhite reports whether a is White.
func (a Alliance) IsWhite() bool { return a == White }

// IsBlack reports whether a is Black.
func (a Alliance) IsBlack() bool { return a == Black }

// Direction returns the sign of a forward step in square indices:
// White advances toward a8 (decreasing indices), Black toward h1.
func (a Alliance) Direction() int {
	if a == White {
		return -1
	}
	return 1
}

// PawnStartRank returns the rank pawns of this alliance start on.
func (a Alliance) PawnStartRank() *SquareSet {
	if a == White {
		return &SecondRank
	}
	return &SeventhRank
}

// PromotionRank returns the rank on which pawns of this alliance promote.
func (a Alliance) PromotionRank() *SquareSet {
	if a == White {
		return &EighthRank
	}
	return &FirstRank
}

// PieceType identifies one of the six kinds of chess piece.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the name of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single upper-case letter for a piece type.
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the material value of a piece type. Kings carry a large
// sentinel value so they always sort first.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 100
	case Knight, Bishop:
		return 300
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 10000
	default:
		return 0
	}
}

// PieceTypeFromLetter converts a piece letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// PromotionTypes lists the piece types a pawn may promote to, strongest first.
var PromotionTypes = []PieceType{Queen, Rook, Bishop, Knight}
