package repository

import (
	"context"
	"time"

	"github.com/campus-showcase/showcase-api/internal/models"
)

// OperationObserver records the latency and outcome of store operations.
type OperationObserver interface {
	ObserveStoreOperation(collection, op string, duration time.Duration, err error)
}

// InstrumentedCollection reports every call on the wrapped collection to an observer.
type InstrumentedCollection[R models.Record[R]] struct {
	inner    Collection[R]
	observer OperationObserver
}

// NewInstrumentedCollection wraps inner. A nil observer makes the wrapper transparent.
func NewInstrumentedCollection[R models.Record[R]](inner Collection[R], observer OperationObserver) *InstrumentedCollection[R] {
	return &InstrumentedCollection[R]{inner: inner, observer: observer}
}

func (c *InstrumentedCollection[R]) Name() string { return c.inner.Name() }

func (c *InstrumentedCollection[R]) ListAll(ctx context.Context) ([]R, error) {
	start := time.Now()
	records, err := c.inner.ListAll(ctx)
	c.observe("list", start, err)
	return records, err
}

func (c *InstrumentedCollection[R]) Add(ctx context.Context, r R) (R, error) {
	start := time.Now()
	stored, err := c.inner.Add(ctx, r)
	c.observe("add", start, err)
	return stored, err
}

func (c *InstrumentedCollection[R]) Update(ctx context.Context, r R) (R, error) {
	start := time.Now()
	stored, err := c.inner.Update(ctx, r)
	c.observe("update", start, err)
	return stored, err
}

func (c *InstrumentedCollection[R]) Delete(ctx context.Context, id int64) (bool, error) {
	start := time.Now()
	ok, err := c.inner.Delete(ctx, id)
	c.observe("delete", start, err)
	return ok, err
}

func (c *InstrumentedCollection[R]) observe(op string, start time.Time, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveStoreOperation(c.inner.Name(), op, time.Since(start), err)
}
