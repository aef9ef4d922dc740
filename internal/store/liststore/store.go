package liststore

import (
	"log/slog"
	"sync"

	"github.com/idilsaglam/todokit/internal/model"
)

// In-memory list store. One per scope, gone when the scope ends.
// Every mutation replaces the snapshot and notifies subscribers in order.
// Only one delivery loop runs at a time; a mutation made while it runs
// (from a subscriber or another goroutine) is picked up by that loop, so
// every subscriber's last snapshot is Current().

// Store owns the current TodoList and its subscribers.
type Store struct {
	mu         sync.Mutex
	list       model.TodoList
	version    uint64
	delivering bool
	subs       []subscriber
	nextID     uint64
	log        *slog.Logger
}

type subscriber struct {
	id uint64
	fn func(model.TodoList)
}

// Option configures a Store.
type Option func(*Store)

// WithSeed replaces the default seed list.
func WithSeed(items ...model.TodoItem) Option {
	return func(s *Store) { s.list = model.TodoList(items).Clone() }
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a store holding model.Seed() unless WithSeed says otherwise.
func New(opts ...Option) *Store {
	s := &Store{
		list: model.Seed(),
		log:  slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Current returns a copy of the present snapshot.
func (s *Store) Current() model.TodoList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Clone()
}

// Add appends item and broadcasts the new snapshot.
func (s *Store) Add(item model.TodoItem) model.TodoList {
	return s.replace("add", item, model.Append)
}

// Delete removes every item equal to item and broadcasts the result, even
// when nothing matched.
func (s *Store) Delete(item model.TodoItem) model.TodoList {
	return s.replace("delete", item, model.Without)
}

// Subscribe registers fn to receive every new snapshot. The returned func
// removes it again and is safe to call more than once.
func (s *Store) Subscribe(fn func(model.TodoList)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *Store) replace(op string, item model.TodoItem, f func(model.TodoList, model.TodoItem) model.TodoList) model.TodoList {
	s.mu.Lock()
	next := f(s.list, item)
	s.list = next
	s.version++
	busy := s.delivering
	s.delivering = true
	s.mu.Unlock()

	s.log.Debug("list changed", "op", op, "item", string(item), "len", len(next), "queued", busy)

	if !busy {
		s.deliver()
	}
	return next.Clone()
}

// deliver broadcasts until no mutation is left undelivered.
// It runs outside the lock so subscribers may read or mutate the store.
func (s *Store) deliver() {
	finished := false
	defer func() {
		if !finished {
			// a subscriber panicked; let the next mutation deliver again
			s.mu.Lock()
			s.delivering = false
			s.mu.Unlock()
		}
	}()

	var sent uint64
	for {
		s.mu.Lock()
		if s.version == sent {
			s.delivering = false
			s.mu.Unlock()
			finished = true
			return
		}
		sent = s.version
		snap := s.list
		subs := make([]subscriber, len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(snap.Clone())
		}
	}
}
