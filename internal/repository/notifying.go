package repository

import (
	"context"
	"strconv"

	"github.com/campus-showcase/showcase-api/internal/events"
	"github.com/campus-showcase/showcase-api/internal/models"
)

// Publisher announces collection changes.
type Publisher interface {
	Publish(ctx context.Context, change events.Change) events.Change
}

// NotifyingCollection publishes one change for every successful write of the wrapped collection.
type NotifyingCollection[R models.Record[R]] struct {
	inner     Collection[R]
	publisher Publisher
}

// NewNotifyingCollection wraps inner.
func NewNotifyingCollection[R models.Record[R]](inner Collection[R], publisher Publisher) *NotifyingCollection[R] {
	return &NotifyingCollection[R]{inner: inner, publisher: publisher}
}

func (c *NotifyingCollection[R]) Name() string { return c.inner.Name() }

func (c *NotifyingCollection[R]) ListAll(ctx context.Context) ([]R, error) {
	return c.inner.ListAll(ctx)
}

func (c *NotifyingCollection[R]) Add(ctx context.Context, r R) (R, error) {
	stored, err := c.inner.Add(ctx, r)
	if err != nil {
		return stored, err
	}
	id, _ := stored.RecordID()
	c.publish(ctx, events.OpAdd, id)
	return stored, nil
}

func (c *NotifyingCollection[R]) Update(ctx context.Context, r R) (R, error) {
	stored, err := c.inner.Update(ctx, r)
	if err != nil {
		return stored, err
	}
	id, _ := stored.RecordID()
	c.publish(ctx, events.OpUpdate, id)
	return stored, nil
}

func (c *NotifyingCollection[R]) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := c.inner.Delete(ctx, id)
	if err != nil {
		return ok, err
	}
	c.publish(ctx, events.OpDelete, id)
	return ok, nil
}

func (c *NotifyingCollection[R]) publish(ctx context.Context, op events.Op, id int64) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(ctx, events.Change{
		Collection: c.inner.Name(),
		Op:         op,
		ID:         strconv.FormatInt(id, 10),
	})
}
