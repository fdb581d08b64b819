package dispatch

import (
	"context"
	"sync"
)

type Executor interface {
	// Schedule fn to run on the executor. Must not block.
	Post(fn func())
}

// Dispatcher is a single execution context: posted functions run one at a time, in FIFO order,
// on the goroutine calling Run (or Drain).
type Dispatcher struct {
	mutex sync.Mutex
	queue []func()
	wake  chan struct{}

	onPanic func(recovered any)
}

// onPanic is called on the dispatcher goroutine when a posted function panics. May be nil.
func NewDispatcher(onPanic func(recovered any)) *Dispatcher {
	return &Dispatcher{
		queue:   []func(){},
		wake:    make(chan struct{}, 1),
		onPanic: onPanic,
	}
}

func (d *Dispatcher) Post(fn func()) {
	if fn == nil {
		return
	}

	d.mutex.Lock()
	d.queue = append(d.queue, fn)
	d.mutex.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
		// Already signalled
	}
}

// Run processes posted functions until ctx is done
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		d.Drain()

		select {
		case <-ctx.Done():
			return
		case <-d.wake:
		}
	}
}

// Drain runs all queued functions, including those posted while draining, on the calling goroutine.
// Returns the number of functions run.
func (d *Dispatcher) Drain() int {
	ran := 0
	for {
		fn, ok := d.pop()
		if !ok {
			return ran
		}
		d.runOne(fn)
		ran++
	}
}

func (d *Dispatcher) Pending() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return len(d.queue)
}

func (d *Dispatcher) pop() (func(), bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.queue) == 0 {
		return nil, false
	}

	fn := d.queue[0]
	d.queue[0] = nil
	d.queue = d.queue[1:]
	return fn, true
}

func (d *Dispatcher) runOne(fn func()) {
	defer func() {
		if recovered := recover(); recovered != nil && d.onPanic != nil {
			d.onPanic(recovered)
		}
	}()
	fn()
}

// WorkerPool runs posted functions on background goroutines, at most size at a time
type WorkerPool struct {
	slots chan struct{}
	wg    sync.WaitGroup
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	return &WorkerPool{
		slots: make(chan struct{}, size),
	}
}

func (p *WorkerPool) Post(fn func()) {
	if fn == nil {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.slots <- struct{}{}
		defer func() {
			<-p.slots
		}()

		fn()
	}()
}

// Wait for all posted functions to finish
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

type inlineExecutor struct{}

func (inlineExecutor) Post(fn func()) {
	if fn != nil {
		fn()
	}
}

// Inline returns an executor running functions immediately on the posting goroutine
func Inline() Executor {
	return inlineExecutor{}
}

// Compute a value on worker and hand it to callback on main
func RunInBackground[T any](worker Executor, main Executor, compute func() T, callback func(T)) {
	worker.Post(func() {
		result := compute()
		main.Post(func() {
			callback(result)
		})
	})
}

// Type assertions
var _ Executor = (*Dispatcher)(nil)
var _ Executor = (*WorkerPool)(nil)
