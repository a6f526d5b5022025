package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PerftResult counts the leaf nodes of a move-path enumeration along with
// the kind of move that produced each leaf.
type PerftResult struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Add accumulates other into r.
func (r *PerftResult) Add(other PerftResult) {
	r.Nodes += other.Nodes
	r.Captures += other.Captures
	r.EnPassants += other.EnPassants
	r.Castles += other.Castles
	r.Promotions += other.Promotions
	r.Checks += other.Checks
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Perft returns the number of legal move paths of the given depth from b.
func Perft(b *Board, depth int) uint64 {
	return PerftStats(b, depth).Nodes
}

// PerftStats is like Perft but also classifies the final move of each path.
func PerftStats(b *Board, depth int) PerftResult {
	var r PerftResult
	if depth <= 0 {
		r.Nodes = 1
		return r
	}

	p := b.CurrentPlayer()
	for _, m := range p.legalMoves {
		t := p.transition(m)
		if !t.Status.IsDone() {
			continue
		}
		r.Add(PerftFrom(t, depth))
	}
	return r
}

// PerftFrom counts the paths of the given depth that begin with the move of
// a completed transition.
func PerftFrom(t MoveTransition, depth int) PerftResult {
	if depth <= 1 {
		return leafStats(t)
	}
	return PerftStats(t.Board, depth-1)
}

func leafStats(t MoveTransition) PerftResult {
	r := PerftResult{Nodes: 1}
	m := t.Move
	if m.IsCapture() {
		r.Captures++
	}
	if m.class == EnPassantPawnMove {
		r.EnPassants++
	}
	if m.IsCastle() {
		r.Castles++
	}
	if m.promotion != chess.NoPieceType {
		r.Promotions++
	}
	if t.Board.CurrentPlayer().IsInCheck() {
		r.Checks++
	}
	return r
}

// PerftDivide returns the node count below each safe root move, in move
// generation order.
func PerftDivide(b *Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	p := b.CurrentPlayer()
	var entries []DivideEntry
	for _, m := range p.legalMoves {
		t := p.transition(m)
		if !t.Status.IsDone() {
			continue
		}
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(t.Board, depth-1)})
	}
	return entries
}
