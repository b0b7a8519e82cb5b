// Package queue runs deferred work, such as display transfers, one task at a time in the
// order it was enqueued.
//
// A queue fails on the first task that returns an error: the error is kept, every task after
// it is discarded and the error is reported by all following calls.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// DefaultSize is the channel capacity used for sizes below 1.
const DefaultSize = 16

// ErrClosed is returned when using a closed queue.
var ErrClosed = errors.New("queue: closed")

// Task is a unit of deferred work.
type Task func() error

type item struct {
	name string
	task Task
	done chan struct{}
}

// Queue is a bounded queue with a single consumer goroutine.
type Queue struct {
	mu     sync.RWMutex // guards tasks against send after close
	tasks  chan item
	closed bool
	done   chan struct{}

	errMu sync.Mutex
	err   error
}

// New starts a queue holding up to size pending tasks.
func New(size int) *Queue {
	if size < 1 {
		size = DefaultSize
	}
	q := &Queue{
		tasks: make(chan item, size),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for it := range q.tasks {
		if it.task != nil && q.Err() == nil {
			if err := it.task(); err != nil {
				q.fail(fmt.Errorf("queue: task %s failed: %w", it.name, err))
			} else if debug {
				log.Printf("queue: task %s done", it.name)
			}
		}
		if it.done != nil {
			close(it.done)
		}
	}
}

func (q *Queue) fail(err error) {
	q.errMu.Lock()
	if q.err == nil {
		q.err = err
		log.Println(err)
	}
	q.errMu.Unlock()
}

// Err returns the error of the first failed task.
func (q *Queue) Err() error {
	q.errMu.Lock()
	defer q.errMu.Unlock()
	return q.err
}

// Enqueue adds a task, it blocks while the queue is full.
func (q *Queue) Enqueue(name string, task Task) error {
	return q.send(context.Background(), item{name: name, task: task})
}

func (q *Queue) send(ctx context.Context, it item) error {
	if err := q.Err(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrClosed
	}
	select {
	case q.tasks <- it:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sync waits until all tasks enqueued before it have run, or until ctx is done, also while
// the queue is full.
func (q *Queue) Sync(ctx context.Context) error {
	done := make(chan struct{})
	if err := q.send(ctx, item{name: "sync", done: done}); err != nil {
		return err
	}
	select {
	case <-done:
		return q.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close runs the pending tasks, stops the consumer and returns the queue error.
func (q *Queue) Close() error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()
	<-q.done
	return q.Err()
}
