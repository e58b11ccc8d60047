// Package worker provides a worker pool for replaying move scripts in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/duel-chess-go/internal/parser"
)

// WorkItem represents a script to be replayed.
type WorkItem struct {
	Script *parser.Script
	Index  int // Original index for tracking
}

// ProcessResult represents the result of replaying a script.
type ProcessResult struct {
	Script *parser.Script
	Index  int
	Report interface{} // Opaque replay payload; typed by consumer
	Error  error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel replay.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
	stopOnError bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnError stops the pool after the first result carrying an error.
// Items not yet started are skipped.
func WithStopOnError() PoolOption {
	return func(p *Pool) {
		p.stopOnError = true
	}
}

// NewPool creates a worker pool. processFunc is required; the defaults are
// one worker and a buffer of twice the worker count.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize == 0 {
		p.bufferSize = 2 * p.numWorkers
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Workers stop processing, but keep
// draining, once ctx is cancelled or Stop is called.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() || ctx.Err() != nil {
			continue
		}
		result := p.processFunc(ctx, item)
		if result.Error != nil && p.stopOnError {
			p.Stop()
		}
		p.resultChan <- result
	}
}

// Submit submits a work item for processing. It blocks while the work
// channel is full and returns ctx.Err() if ctx is cancelled first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals workers to stop processing new items.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run replays every script on a fresh pool and returns the results in
// script order. Scripts skipped because ctx was cancelled or the pool was
// stopped have no entry.
func Run(ctx context.Context, scripts []*parser.Script, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, s := range scripts {
			if err := pool.Submit(ctx, WorkItem{Script: s, Index: i}); err != nil {
				return
			}
		}
	}()

	slots := make([]*ProcessResult, len(scripts))
	for result := range pool.Results() {
		result := result
		slots[result.Index] = &result
	}

	results := make([]ProcessResult, 0, len(scripts))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}
