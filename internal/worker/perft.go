package worker

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// minCachedDepth is the shallowest subtree looked up in the table.
const minCachedDepth = 1

// CountSubtree counts the paths below one root move without a table.
func CountSubtree(item WorkItem) ProcessResult {
	return NewSubtreeCounter(nil)(item)
}

// NewSubtreeCounter returns the ProcessFunc used by ParallelPerft. Subtree
// results are shared between workers through table; a nil table disables
// sharing.
func NewSubtreeCounter(table *hashing.Table) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, Move: item.Transition.Move}
		if err := item.Transition.Err(); err != nil {
			res.Error = fmt.Errorf("root move %d: %w", item.Index, err)
			return res
		}
		res.Stats = countFrom(item.Transition, item.Depth, table)
		return res
	}
}

func countFrom(t engine.MoveTransition, depth int, table *hashing.Table) engine.PerftResult {
	if table == nil || depth <= 1 {
		return engine.PerftFrom(t, depth)
	}
	return countBelow(t.Board, depth-1, table)
}

func countBelow(b *engine.Board, depth int, table *hashing.Table) engine.PerftResult {
	if depth < minCachedDepth {
		return engine.PerftStats(b, depth)
	}

	hash := hashing.Hash(b)
	if r, ok := table.Get(hash, depth); ok {
		return r
	}

	var r engine.PerftResult
	p := b.CurrentPlayer()
	for _, m := range p.LegalMoves() {
		t := p.MakeMove(m)
		if !t.Status.IsDone() {
			continue
		}
		r.Add(countFrom(t, depth, table))
	}
	table.Put(hash, depth, r)
	return r
}

// ParallelPerft counts the move paths of the given depth from b, spreading
// the root moves over workers goroutines that share one transposition
// table. It returns the per-move breakdown in move generation order along
// with the total.
func ParallelPerft(b *engine.Board, depth, workers int) ([]engine.DivideEntry, engine.PerftResult, error) {
	var total engine.PerftResult
	if depth <= 0 {
		total.Nodes = 1
		return nil, total, nil
	}

	var items []WorkItem
	player := b.CurrentPlayer()
	for _, m := range player.LegalMoves() {
		t := player.MakeMove(m)
		if !t.Status.IsDone() {
			continue
		}
		items = append(items, WorkItem{Transition: t, Depth: depth, Index: len(items)})
	}

	pool := NewPool(workers, len(items)+1, NewSubtreeCounter(hashing.NewTable(0)))
	pool.Start()
	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	entries := make([]engine.DivideEntry, len(items))
	for res := range pool.Results() {
		entries[res.Index] = engine.DivideEntry{Move: res.Move, Nodes: res.Stats.Nodes}
		total.Add(res.Stats)
	}
	if err := pool.Err(); err != nil {
		return nil, engine.PerftResult{}, err
	}
	return entries, total, nil
}
