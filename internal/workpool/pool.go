// Package workpool provides a small fixed-size goroutine pool used by
// cmd/proofexport to validate and render multiple theorem transcripts
// concurrently. Unlike the teacher's dynamic search-space worker pool
// (internal/parallel.WorkerPool, which scales workers up and down against
// queue depth to backpressure an unbounded goal tree), there is no tree to
// backpressure here: the exporter has a known, small, independent batch of
// jobs — one ProofBuilder run per registered theorem — so the pool is
// fixed-size for its whole lifetime.
package workpool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned by Submit once the pool has been shut down.
var ErrPoolShutdown = errors.New("workpool: pool is shut down")

// Pool runs submitted tasks across a fixed number of worker goroutines.
type Pool struct {
	taskChan     chan func()
	shutdownChan chan struct{}
	workerWg     sync.WaitGroup
	once         sync.Once
}

// New creates a Pool with size worker goroutines. If size is 0 or
// negative, it defaults to the number of CPU cores.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	p := &Pool{
		taskChan:     make(chan func(), size*4),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		p.workerWg.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.workerWg.Done()
	for {
		select {
		case task, ok := <-p.taskChan:
			if !ok {
				return
			}
			runTask(task)
		case <-p.shutdownChan:
			return
		}
	}
}

func runTask(task func()) {
	defer func() {
		recover() // a task panicking must not take the whole pool down
	}()
	task()
}

// Submit enqueues task for execution, blocking until a worker slot is free,
// ctx is cancelled, or the pool is shut down.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case <-p.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case p.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops accepting new tasks and waits for in-flight tasks to
// finish. Safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdownChan)
		p.workerWg.Wait()
	})
}

// Job is one unit of independent work to run across the pool.
type Job struct {
	Name string
	Run  func() error
}

// Result is the outcome of running one Job.
type Result struct {
	Name string
	Err  error
}

// RunAll runs every job in jobs across a Pool of the given size and
// returns one Result per job, in the same order as jobs. A job whose Run
// panics is reported as a failed Result rather than crashing the batch.
func RunAll(ctx context.Context, size int, jobs []Job) []Result {
	pool := New(size)
	defer pool.Shutdown()

	results := make([]Result, len(jobs))
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		i, job := i, job
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			results[i] = Result{Name: job.Name, Err: runJob(job)}
		})
		if err != nil {
			wg.Done()
			results[i] = Result{Name: job.Name, Err: err}
		}
	}

	wg.Wait()
	return results
}

func runJob(job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
	}()
	return job.Run()
}
