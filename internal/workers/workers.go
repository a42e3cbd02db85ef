package workers

import (
	"context"
	"sync"
)

// KeyedQueue is a [Queue] backed by a chain of completion channels per key.
// Idle keys hold no memory.
type KeyedQueue struct {
	mu    sync.Mutex
	tails map[string]chan struct{}
}

func NewKeyedQueue() *KeyedQueue {
	return &KeyedQueue{tails: make(map[string]chan struct{})}
}

// Do blocks until every earlier task for key has finished and then runs
// task. If ctx ends while waiting, task is skipped and ctx.Err() is
// returned; later tasks for key still wait for the earlier ones.
func (q *KeyedQueue) Do(ctx context.Context, key string, task func(ctx context.Context) error) error {
	q.mu.Lock()
	prev := q.tails[key]
	done := make(chan struct{})
	q.tails[key] = done
	q.mu.Unlock()

	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			go func() {
				<-prev
				q.release(key, done)
			}()
			return ctx.Err()
		}
	}
	defer q.release(key, done)

	return task(ctx)
}

func (q *KeyedQueue) release(key string, done chan struct{}) {
	close(done)

	q.mu.Lock()
	if q.tails[key] == done {
		delete(q.tails, key)
	}
	q.mu.Unlock()
}
