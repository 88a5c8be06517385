// Package events carries "data changed" notifications between the collection
// stores and whoever needs to react to writes (caches, polling clients).
package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrBusClosed is returned when subscribing to a closed bus.
var ErrBusClosed = errors.New("events: bus is closed")

// Op names the write that produced a change.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes one successful write against a collection.
type Change struct {
	Collection string    `json:"collection"`
	Op         Op        `json:"op"`
	ID         string    `json:"id"`
	Version    uint64    `json:"version"`
	At         time.Time `json:"at"`
}

// Handler reacts to a change. Handlers run synchronously on the publishing goroutine
// and must hand long work off elsewhere.
type Handler func(ctx context.Context, change Change)

// Bus is an in-process publish/subscribe channel with a version counter per collection.
type Bus struct {
	mu       sync.RWMutex
	handlers map[uint64]Handler
	nextSub  uint64
	versions map[string]uint64
	closed   bool
	logger   *zap.Logger
}

// NewBus constructs an empty bus.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		handlers: make(map[uint64]Handler),
		versions: make(map[string]uint64),
		logger:   logger,
	}
}

// Subscribe registers h and returns a function removing it again.
func (b *Bus) Subscribe(h Handler) (func(), error) {
	if h == nil {
		return nil, errors.New("events: handler cannot be nil")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBusClosed
	}
	b.nextSub++
	id := b.nextSub
	b.handlers[id] = h
	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}, nil
}

// Publish stamps the change with the next collection version and delivers it to every
// subscriber. A panicking handler is logged and does not affect the others.
func (b *Bus) Publish(ctx context.Context, change Change) Change {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return change
	}
	b.versions[change.Collection]++
	change.Version = b.versions[change.Collection]
	if change.At.IsZero() {
		change.At = time.Now().UTC()
	}
	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		b.deliver(ctx, h, change)
	}
	return change
}

func (b *Bus) deliver(ctx context.Context, h Handler, change Change) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("change handler panicked",
				zap.String("collection", change.Collection),
				zap.String("op", string(change.Op)),
				zap.Any("panic", r))
		}
	}()
	h(ctx, change)
}

// Versions returns a copy of the current version of every collection written so far.
func (b *Bus) Versions() map[string]uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]uint64, len(b.versions))
	for k, v := range b.versions {
		out[k] = v
	}
	return out
}

// Close drops all subscribers; later publishes are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[uint64]Handler)
}
