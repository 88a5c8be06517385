package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/pkg/storage"
)

// SnapshotStore persists whole collection snapshots by file name.
type SnapshotStore interface {
	Save(filename string, data []byte) (string, error)
	Read(filename string) ([]byte, error)
}

type snapshot[R any] struct {
	NextID  int64 `json:"next_id"`
	Records []R   `json:"records"`
}

// LocalCollection keeps a collection in memory and writes a JSON snapshot
// after every change.
type LocalCollection[R models.Record[R]] struct {
	name    string
	store   SnapshotStore
	logger  *zap.Logger
	mu      sync.RWMutex
	records []R
	orphans []R
	nextID  int64
}

// OpenLocalCollection loads the snapshot of the named collection. When the
// collection is empty and seed is non-empty, the seed records are stored under
// fresh identities.
func OpenLocalCollection[R models.Record[R]](name string, store SnapshotStore, seed []R, logger *zap.Logger) (*LocalCollection[R], error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &LocalCollection[R]{name: name, store: store, logger: logger, nextID: 1}
	if err := c.load(); err != nil {
		return nil, persistenceError(name, "load", err)
	}
	if len(c.records) == 0 && len(c.orphans) == 0 && len(seed) > 0 {
		for _, r := range seed {
			c.records = append(c.records, r.WithRecordID(c.nextID))
			c.nextID++
		}
		if err := c.persist(); err != nil {
			return nil, persistenceError(name, "seed", err)
		}
		logger.Info("seeded local collection", zap.String("collection", name), zap.Int("records", len(seed)))
	}
	return c, nil
}

func (c *LocalCollection[R]) Name() string { return c.name }

func (c *LocalCollection[R]) filename() string { return c.name + ".json" }

func (c *LocalCollection[R]) load() error {
	data, err := c.store.Read(c.filename())
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil
		}
		return err
	}
	var snap snapshot[R]
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	next := snap.NextID
	for _, r := range snap.Records {
		id, ok := r.RecordID()
		if !ok {
			c.orphans = append(c.orphans, r)
			continue
		}
		c.records = append(c.records, r)
		if id >= next {
			next = id + 1
		}
	}
	sort.SliceStable(c.records, func(i, j int) bool {
		a, _ := c.records[i].RecordID()
		b, _ := c.records[j].RecordID()
		return a < b
	})
	if next > c.nextID {
		c.nextID = next
	}
	if len(c.orphans) > 0 {
		c.logger.Warn("snapshot holds records without identity",
			zap.String("collection", c.name), zap.Int("records", len(c.orphans)))
	}
	return nil
}

// persist writes the snapshot. Records without identity are not written back.
func (c *LocalCollection[R]) persist() error {
	records := c.records
	if records == nil {
		records = []R{}
	}
	data, err := json.MarshalIndent(snapshot[R]{NextID: c.nextID, Records: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := c.store.Save(c.filename(), data); err != nil {
		return err
	}
	return nil
}

// ListAll returns the stored records followed by any identity-less records found in the snapshot.
func (c *LocalCollection[R]) ListAll(ctx context.Context) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, persistenceError(c.name, "list", err)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]R, 0, len(c.records)+len(c.orphans))
	out = append(out, c.records...)
	out = append(out, c.orphans...)
	return out, nil
}

func (c *LocalCollection[R]) Add(ctx context.Context, r R) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, persistenceError(c.name, "add", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := r.WithRecordID(c.nextID)
	c.records = append(c.records, stored)
	c.nextID++
	if err := c.persist(); err != nil {
		c.records = c.records[:len(c.records)-1]
		c.nextID--
		return zero, persistenceError(c.name, "add", err)
	}
	return stored, nil
}

func (c *LocalCollection[R]) Update(ctx context.Context, r R) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, persistenceError(c.name, "update", err)
	}
	id, ok := r.RecordID()
	if !ok {
		return zero, ErrNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return zero, ErrNotFound
	}
	previous := c.records[idx]
	c.records[idx] = r
	if err := c.persist(); err != nil {
		c.records[idx] = previous
		return zero, persistenceError(c.name, "update", err)
	}
	return r, nil
}

func (c *LocalCollection[R]) Delete(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, persistenceError(c.name, "delete", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return true, nil
	}
	previous := append([]R(nil), c.records...)
	c.records = append(c.records[:idx], c.records[idx+1:]...)
	if err := c.persist(); err != nil {
		c.records = previous
		return false, persistenceError(c.name, "delete", err)
	}
	return true, nil
}

// indexOf finds id in the id-ordered record slice.
func (c *LocalCollection[R]) indexOf(id int64) int {
	i := sort.Search(len(c.records), func(i int) bool {
		rid, _ := c.records[i].RecordID()
		return rid >= id
	})
	if i < len(c.records) {
		if rid, _ := c.records[i].RecordID(); rid == id {
			return i
		}
	}
	return -1
}
