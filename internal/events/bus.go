// Package events broadcasts data invalidations inside the process so caches
// and open SSE streams can refetch after a write.
package events

import (
	"log/slog"
	"sync"
	"time"
)

// InvalidationEvent is the event name streamed to browsers.
const InvalidationEvent = "ac:data-invalidated"

// Invalidation scopes.
const (
	ScopeOffers    = "offers"
	ScopeClients   = "clients"
	ScopeProspects = "prospects"
	ScopeCaptacao  = "captacao"
)

// Invalidation tells subscribers that data of an owner changed.
type Invalidation struct {
	OwnerID   string    `json:"-"`
	Scopes    []string  `json:"scopes"`
	EntityIDs []string  `json:"entityIds,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HasScope reports whether scope is part of the invalidation.
func (i Invalidation) HasScope(scope string) bool {
	for _, s := range i.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// Publisher is what writers depend on.
type Publisher interface {
	Publish(ev Invalidation)
}

// Source is what caches and streams depend on.
type Source interface {
	Subscribe(fn func(Invalidation)) func()
}

type subscriber struct {
	id int
	fn func(Invalidation)
}

// Bus is a typed observer registry living as long as the process.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscriber
	logger *slog.Logger
	now    func() time.Time
}

// NewBus creates an empty bus. A nil logger falls back to slog.Default.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger, now: time.Now}
}

var (
	_ Publisher = (*Bus)(nil)
	_ Source    = (*Bus)(nil)
)

// Subscribe registers fn and returns a function removing it.
func (b *Bus) Subscribe(fn func(Invalidation)) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, s := range b.subs {
				if s.id == id {
					b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish delivers ev to every subscriber in registration order. A zero
// Timestamp is stamped with the current time.
func (b *Bus) Publish(ev Invalidation) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = b.now()
	}
	b.mu.RLock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		b.deliver(s, ev)
	}
}

func (b *Bus) deliver(s subscriber, ev Invalidation) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Invalidation subscriber panicked",
				slog.Any("panic", r),
				slog.String("owner_id", ev.OwnerID),
				slog.Any("scopes", ev.Scopes))
		}
	}()
	s.fn(ev)
}

// Len returns the number of live subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
