package liststore

import (
	"context"
	"sync"

	"github.com/idilsaglam/todokit/internal/model"
)

// Watch returns a channel that yields the current snapshot and then every
// new one. Only the latest undelivered snapshot is kept, so a slow reader
// never holds up a mutation. The channel is closed when ctx is done.
// A helper goroutine lives until then, so pass a context that ends; a
// Watch on context.Background() stays subscribed for the life of the process.
func (s *Store) Watch(ctx context.Context) <-chan model.TodoList {
	w := &watcher{ch: make(chan model.TodoList, 1)}
	unsub := s.Subscribe(w.push)
	w.push(s.Current())

	go func() {
		<-ctx.Done()
		unsub()
		w.close()
	}()
	return w.ch
}

type watcher struct {
	mu     sync.Mutex
	ch     chan model.TodoList
	closed bool
}

func (w *watcher) push(l model.TodoList) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.ch <- l:
		return
	default:
	}
	// drop the stale snapshot; we are the only sender so the retry fits
	select {
	case <-w.ch:
	default:
	}
	w.ch <- l
}

func (w *watcher) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.closed = true
		close(w.ch)
	}
}
