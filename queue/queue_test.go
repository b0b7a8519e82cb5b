package queue

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"
)

// bus records the start and end of every write.
type bus struct {
	mu     sync.Mutex
	events []string
}

func (b *bus) record(event string) {
	b.mu.Lock()
	b.events = append(b.events, event)
	b.mu.Unlock()
}

func (b *bus) write(name string, wait time.Duration) Task {
	return func() error {
		b.record(name + " start")
		time.Sleep(wait)
		b.record(name + " end")
		return nil
	}
}

func TestOrder(t *testing.T) {
	var (
		q = New(4)
		b = new(bus)
	)
	if err := q.Enqueue("T1", b.write("T1", 20*time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if err := q.Enqueue("T2", b.write("T2", 0)); err != nil {
		t.Fatal(err)
	}
	if err := q.Sync(context.Background()); err != nil {
		t.Fatal(err)
	}
	if want := []string{"T1 start", "T1 end", "T2 start", "T2 end"}; !reflect.DeepEqual(b.events, want) {
		t.Errorf("expected %q, got %q", want, b.events)
	}

	t.Run("many", func(it *testing.T) {
		var got []int
		for i := 0; i < 100; i++ {
			i := i
			if err := q.Enqueue(fmt.Sprint(i), func() error {
				got = append(got, i)
				return nil
			}); err != nil {
				it.Fatal(err)
			}
		}
		if err := q.Close(); err != nil {
			it.Fatal(err)
		}
		for i, v := range got {
			if i != v {
				it.Fatalf("expected task %d at position %d, got %d", i, i, v)
			}
		}
		if len(got) != 100 {
			it.Errorf("expected Close to drain 100 tasks, ran %d", len(got))
		}
	})
}

func TestFailure(t *testing.T) {
	var (
		q     = New(4)
		fault = errors.New("bus fault")
		ran   bool
	)
	defer q.Close()

	_ = q.Enqueue("write", func() error { return fault })
	_ = q.Enqueue("after", func() error {
		ran = true
		return nil
	})

	err := q.Sync(context.Background())
	if !errors.Is(err, fault) {
		t.Fatalf("expected bus fault, got %v", err)
	}
	if ran {
		t.Error("expected tasks after a failure to be discarded")
	}
	if err := q.Enqueue("later", func() error { return nil }); !errors.Is(err, fault) {
		t.Errorf("expected Enqueue to report the failure, got %v", err)
	}
	if err := q.Err(); err == nil || err.Error() != "queue: task write failed: bus fault" {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestSyncCanceled(t *testing.T) {
	var (
		q       = New(1)
		started = make(chan struct{})
		release = make(chan struct{})
	)
	_ = q.Enqueue("block", func() error {
		close(started)
		<-release
		return nil
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := q.Sync(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	t.Run("full", func(it *testing.T) {
		// The consumer is blocked and the channel holds one task.
		_ = q.Enqueue("pending", func() error { return nil })

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		start := time.Now()
		if err := q.Sync(ctx); !errors.Is(err, context.DeadlineExceeded) {
			it.Errorf("expected context.DeadlineExceeded, got %v", err)
		}
		if took := time.Since(start); took > time.Second {
			it.Errorf("expected sync to give up at its deadline, took %s", took)
		}
	})

	close(release)
	if err := q.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestClosed(t *testing.T) {
	q := New(0)
	if err := q.Close(); err != nil {
		t.Fatal(err)
	}
	if err := q.Enqueue("late", func() error { return nil }); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if err := q.Sync(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed from Sync, got %v", err)
	}
	if err := q.Close(); err != nil {
		t.Errorf("expected a second Close to succeed, got %v", err)
	}
}
