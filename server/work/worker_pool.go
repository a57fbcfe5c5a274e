package work

import (
	"fmt"
	"strings"
	"sync"
)

const QUEUE_SIZE = 100

type WorkerPool struct {
	handlers map[string]Handler
	queue    chan *job
	workers  []*worker
	started  bool
	mu       sync.RWMutex
}

func newWorkerPool(concurrency int) *WorkerPool {
	wp := &WorkerPool{
		handlers: make(map[string]Handler),
		queue:    make(chan *job, QUEUE_SIZE),
	}

	for i := 0; i < concurrency; i++ {
		wp.workers = append(wp.workers, newWorker(wp))
	}

	return wp
}

// registerHandler binds a name to a job handler for all workers in pool
func (wp *WorkerPool) registerHandler(name string, handler Handler) error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if _, ok := wp.handlers[name]; ok {
		return ErrDuplicateHandler
	}

	wp.handlers[name] = handler
	return nil
}

func (wp *WorkerPool) handler(name string) (Handler, bool) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	handler, ok := wp.handlers[name]
	return handler, ok
}

// enqueue adds a job to the queue, to be picked up by the next free worker
func (wp *WorkerPool) enqueue(params JobParams) error {
	if strings.TrimSpace(params.Name) == "" || strings.TrimSpace(params.Handler) == "" {
		return fmt.Errorf("both a name & handler is required for a job")
	}

	if _, ok := wp.handler(params.Handler); !ok {
		return fmt.Errorf("%w: %v", ErrUnknownHandler, params.Handler)
	}

	if !wp.push(&job{JobParams: params}) {
		return fmt.Errorf("queue is full, unable to enqueue %v", params.Name)
	}

	return nil
}

func (wp *WorkerPool) push(j *job) bool {
	select {
	case wp.queue <- j:
		return true
	default:
		return false
	}
}

// start starts all workers in pool i.e the workers can start processing jobs
func (wp *WorkerPool) start() {
	if wp.started {
		return
	}
	wp.started = true

	for _, worker := range wp.workers {
		worker.start()
	}
}

// stop stops all workers in pool i.e jobs will stop being processed
func (wp *WorkerPool) stop() {
	if !wp.started {
		return
	}

	wg := sync.WaitGroup{}
	for _, w := range wp.workers {
		wg.Add(1)
		go func(w *worker) {
			w.stop()
			wg.Done()
		}(w)
	}
	wg.Wait()
	wp.started = false
}
