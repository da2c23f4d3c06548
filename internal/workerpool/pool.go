package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

var (
	ErrQueueFull = errors.New("workerpool: queue is full")
	ErrClosed    = errors.New("workerpool: pool is closed")
)

type Pool struct {
	jobs    chan Job
	kill    chan struct{} // used by Resize to retire workers
	rootCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	workers int32
	busy    int32

	mu       sync.RWMutex
	resizeMu sync.Mutex
	closed   bool
}

func New(workerCnt, queueSize int) *Pool {
	if workerCnt <= 0 {
		workerCnt = 1
	}
	if queueSize <= 0 {
		queueSize = workerCnt * 4
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:    make(chan Job, queueSize),
		kill:    make(chan struct{}, workerCnt*2),
		rootCtx: ctx,
		cancel:  cancel,
	}
	atomic.StoreInt32(&p.workers, int32(workerCnt))
	p.spawn(workerCnt)
	return p
}

func (p *Pool) spawn(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.kill:
			return
		case <-p.rootCtx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.run(job)
		}
	}
}

func (p *Pool) run(job Job) {
	if job.Ctx == nil {
		job.Ctx = context.Background()
	}
	if err := job.Ctx.Err(); err != nil {
		job.reply(Response{Err: err})
		return
	}
	atomic.AddInt32(&p.busy, 1)
	v, err := job.Run(job.Ctx)
	atomic.AddInt32(&p.busy, -1)
	job.reply(Response{Value: v, Err: err})
}

// Submit queues the job, waiting for room until the job context is done.
func (p *Pool) Submit(j Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	if j.Ctx == nil {
		j.Ctx = context.Background()
	}
	select {
	case p.jobs <- j:
		return nil
	case <-j.Ctx.Done():
		return j.Ctx.Err()
	}
}

// TrySubmit queues the job without blocking.
func (p *Pool) TrySubmit(j Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.jobs <- j:
		return nil
	default:
		return ErrQueueFull
	}
}

// Resize changes the number of workers. Calls are serialized; shrinking
// waits until the retired workers finish their current job.
func (p *Pool) Resize(n int) {
	if n <= 0 {
		return
	}
	p.resizeMu.Lock()
	defer p.resizeMu.Unlock()

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return
	}
	cur := int(atomic.LoadInt32(&p.workers))
	if n > cur {
		p.spawn(n - cur)
	}
	atomic.StoreInt32(&p.workers, int32(n))
	p.mu.RUnlock()

	// kill signals are sent without p.mu so Submit and Close keep going
	for i := 0; i < cur-n; i++ {
		select {
		case p.kill <- struct{}{}:
		case <-p.rootCtx.Done():
			return
		}
	}
}

type Stats struct {
	Workers       int
	Busy          int
	QueueSize     int
	QueueCapacity int
}

func (p *Pool) Stats() Stats {
	return Stats{
		Workers:       int(atomic.LoadInt32(&p.workers)),
		Busy:          int(atomic.LoadInt32(&p.busy)),
		QueueSize:     len(p.jobs),
		QueueCapacity: cap(p.jobs),
	}
}

// Close stops accepting jobs and waits for the queue to drain. When ctx
// expires first, workers are stopped and the remaining jobs are dropped.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-done
		return ctx.Err()
	}
}
