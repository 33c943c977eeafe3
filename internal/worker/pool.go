// Package worker provides a generic bounded worker pool that keeps results in
// submission order.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work with its position in the input.
type Job[T any] struct {
	Index int
	Data  T
}

// Result is the outcome of one Job.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// ProcessFunc handles one job.
type ProcessFunc[I, O any] func(ctx context.Context, job Job[I]) (O, error)

// ProgressFunc is called after each job completes.
type ProgressFunc func(completed, total int)

// PoolOptions configures pool behavior.
type PoolOptions struct {
	Workers    int
	BufferSize int // If 0, defaults to Workers
}

// Pool runs jobs on a fixed number of goroutines.
type Pool[I, O any] struct {
	workers    int
	bufferSize int
	process    ProcessFunc[I, O]
	onProgress ProgressFunc
}

// NewPool creates a new worker pool.
func NewPool[I, O any](opts PoolOptions, process ProcessFunc[I, O]) *Pool[I, O] {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = opts.Workers
	}
	return &Pool[I, O]{
		workers:    opts.Workers,
		bufferSize: opts.BufferSize,
		process:    process,
	}
}

// SetProgressCallback sets a callback to be called after each job completes.
func (p *Pool[I, O]) SetProgressCallback(fn ProgressFunc) {
	p.onProgress = fn
}

// Run processes jobs and returns their results indexed like the input.
// Jobs not started before ctx is done fail with ctx.Err().
func (p *Pool[I, O]) Run(ctx context.Context, jobs []Job[I]) []Result[O] {
	total := len(jobs)
	results := make([]Result[O], total)
	if total == 0 {
		return results
	}

	jobCh := make(chan Job[I], p.bufferSize)
	resultCh := make(chan Result[O], p.bufferSize)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				if err := ctx.Err(); err != nil {
					resultCh <- Result[O]{Index: job.Index, Err: err}
					continue
				}
				value, err := p.process(ctx, job)
				resultCh <- Result[O]{Index: job.Index, Value: value, Err: err}
			}
		}()
	}

	go func() {
		for _, job := range jobs {
			jobCh <- job
		}
		close(jobCh)
		wg.Wait()
		close(resultCh)
	}()

	completed := 0
	for r := range resultCh {
		if r.Index >= 0 && r.Index < total {
			results[r.Index] = r
		}
		completed++
		if p.onProgress != nil {
			p.onProgress(completed, total)
		}
	}
	return results
}

// Process runs process over items and returns ordered results, failures
// included. Workers are capped at len(items).
func Process[I, O any](ctx context.Context, items []I, workers int, process ProcessFunc[I, O], onProgress ProgressFunc) []Result[O] {
	if len(items) == 0 {
		return nil
	}
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make([]Job[I], len(items))
	for i, item := range items {
		jobs[i] = Job[I]{Index: i, Data: item}
	}

	pool := NewPool[I, O](PoolOptions{Workers: workers, BufferSize: len(items)}, process)
	pool.SetProgressCallback(onProgress)
	return pool.Run(ctx, jobs)
}
