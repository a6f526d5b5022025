// Package worker runs perft subtrees on a bounded pool of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one root move whose subtree is to be counted.
type WorkItem struct {
	Transition engine.MoveTransition
	Depth      int // Depth counted from the root, including the root move
	Index      int // Position of the move in generation order
}

// ProcessResult is the count for one root move.
type ProcessResult struct {
	Index int
	Move  engine.Move
	Stats engine.PerftResult
	Error error
}

// ProcessFunc counts one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool counts work items on a fixed number of goroutines. The first result
// carrying an error stops the pool: items not yet started are dropped and
// the error is kept for Err.
type Pool struct {
	numWorkers  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup

	stopped  atomic.Bool
	errOnce  sync.Once
	firstErr error
}

// NewPool creates a pool with the given number of workers and channel
// capacity, both clamped to at least 1.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem, bufferSize),
		resultChan:  make(chan ProcessResult, bufferSize),
		processFunc: processFunc,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		res := p.processFunc(item)
		if res.Error != nil {
			p.fail(res.Error)
			continue
		}
		p.resultChan <- res
	}
}

func (p *Pool) fail(err error) {
	p.errOnce.Do(func() {
		p.firstErr = err
		p.Stop()
	})
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes the workers skip any item they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether the pool was stopped by Stop or an error.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close stops accepting work, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel successful results are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Err returns the first error reported by a work item. It is safe to call
// once Results has been drained.
func (p *Pool) Err() error {
	return p.firstErr
}
