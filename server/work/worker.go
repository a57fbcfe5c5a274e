package work

import (
	"errors"
	"fmt"

	"github.com/Daskott/aidline/colors"
	"github.com/Daskott/aidline/server/logger"
	"github.com/google/uuid"
)

const MAX_FAILS = 4

var (
	ErrDuplicateHandler = errors.New("handler with provided name already mapped")
	ErrUnknownHandler   = errors.New("no handler mapped to provided name")

	logg = logger.NewLogger()
)

type JobParams struct {
	Name    string
	Handler string
	Args    map[string]interface{}
}

type Handler func(map[string]interface{}) error

type job struct {
	JobParams
	fails int
}

type worker struct {
	id       string
	pool     *WorkerPool
	stopChan chan struct{}
}

func newWorker(pool *WorkerPool) *worker {
	return &worker{
		id:       makeIdentifier(),
		pool:     pool,
		stopChan: make(chan struct{}),
	}
}

// start starts the worker loop that pulls jobs from the queue & process them
func (w *worker) start() {
	go w.loop()
}

func (w *worker) stop() {
	w.stopChan <- struct{}{}
}

func (w *worker) loop() {
	w.logInfof("Starting worker")
	for {
		select {
		case <-w.stopChan:
			w.logInfof("Stopping worker")
			return
		case currentJob := <-w.pool.queue:
			w.processJob(currentJob)
		}
	}
}

func (w *worker) processJob(currentJob *job) {
	handler, ok := w.pool.handler(currentJob.Handler)
	if !ok {
		w.logError(fmt.Errorf("%w: %v", ErrUnknownHandler, currentJob.Handler))
		return
	}

	err := handler(currentJob.Args)
	if err != nil {
		w.logError(err)
		w.determineFailedJobFate(currentJob)
		return
	}

	w.logInfof("job %v completed", currentJob.Name)
}

// determineFailedJobFate requeues 'currentJob' until it has failed MAX_FAILS times
func (w *worker) determineFailedJobFate(currentJob *job) {
	currentJob.fails++

	if currentJob.fails >= MAX_FAILS {
		w.logInfof("job %v is dead after %v fails", currentJob.Name, currentJob.fails)
		return
	}

	if !w.pool.push(currentJob) {
		w.logInfof("queue is full, dropping job %v", currentJob.Name)
		return
	}
	w.logInfof("job %v requeued after %v fail(s)", currentJob.Name, currentJob.fails)
}

func (w *worker) logInfof(template string, args ...interface{}) {
	prefix := colors.Yellow(fmt.Sprintf("[worker %v] ", w.id))
	logg.Infof(prefix+template, args...)
}

func (w *worker) logError(err error) {
	prefix := colors.Red(fmt.Sprintf("[worker %v] ", w.id))
	logg.Error(prefix, err)
}

func makeIdentifier() string {
	return uuid.NewString()[:8]
}
