package events

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBusDeliversAndVersions(t *testing.T) {
	bus := NewBus(zap.NewNop())
	var got []Change
	_, err := bus.Subscribe(func(_ context.Context, c Change) { got = append(got, c) })
	require.NoError(t, err)

	first := bus.Publish(context.Background(), Change{Collection: "winners", Op: OpAdd, ID: "1"})
	second := bus.Publish(context.Background(), Change{Collection: "winners", Op: OpDelete, ID: "1"})
	bus.Publish(context.Background(), Change{Collection: "gallery", Op: OpAdd, ID: "9"})

	require.Len(t, got, 3)
	assert.Equal(t, uint64(1), first.Version)
	assert.Equal(t, uint64(2), second.Version)
	assert.False(t, first.At.IsZero())
	assert.Equal(t, map[string]uint64{"winners": 2, "gallery": 1}, bus.Versions())
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus(nil)
	count := 0
	unsubscribe, err := bus.Subscribe(func(context.Context, Change) { count++ })
	require.NoError(t, err)

	bus.Publish(context.Background(), Change{Collection: "students", Op: OpAdd})
	unsubscribe()
	bus.Publish(context.Background(), Change{Collection: "students", Op: OpAdd})

	assert.Equal(t, 1, count)
}

func TestBusRecoversFromPanickingHandler(t *testing.T) {
	bus := NewBus(zap.NewNop())
	delivered := false
	_, _ = bus.Subscribe(func(context.Context, Change) { panic("boom") })
	_, _ = bus.Subscribe(func(context.Context, Change) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), Change{Collection: "activities", Op: OpUpdate, ID: "2"})
	})
	assert.True(t, delivered)
}

func TestBusClosed(t *testing.T) {
	bus := NewBus(nil)
	bus.Close()
	_, err := bus.Subscribe(func(context.Context, Change) {})
	assert.ErrorIs(t, err, ErrBusClosed)
	change := bus.Publish(context.Background(), Change{Collection: "winners"})
	assert.Zero(t, change.Version)
}

func TestBusConcurrentPublishers(t *testing.T) {
	bus := NewBus(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(context.Background(), Change{Collection: "participants", Op: OpAdd})
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(50), bus.Versions()["participants"])
}
