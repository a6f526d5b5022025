package engine

// GameStatus describes the position from the point of view of the side to
// move.
type GameStatus int

const (
	InProgress GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of a game status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "InProgress"
	}
}

// Status returns the game status for the side to move.
func (b *Board) Status() GameStatus {
	p := b.CurrentPlayer()
	switch {
	case p.IsInCheckmate():
		return Checkmate
	case p.IsInStalemate():
		return Stalemate
	case p.IsInCheck():
		return Check
	}
	return InProgress
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(b *Board) bool {
	return b.CurrentPlayer().IsInCheckmate()
}

// IsStalemate returns true if the side to move is stalemated.
func IsStalemate(b *Board) bool {
	return b.CurrentPlayer().IsInStalemate()
}
