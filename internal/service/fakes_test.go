package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/repository"
)

// memCollection is an in-memory Collection with failure injection.
type memCollection[R models.Record[R]] struct {
	mu      sync.Mutex
	name    string
	records map[int64]R
	extra   []R
	nextID  int64
	listErr error
	addErr  error
}

func newMemCollection[R models.Record[R]](name string, seed ...R) *memCollection[R] {
	c := &memCollection[R]{name: name, records: make(map[int64]R), nextID: 1}
	for _, r := range seed {
		if id, ok := r.RecordID(); ok {
			c.records[id] = r
			if id >= c.nextID {
				c.nextID = id + 1
			}
			continue
		}
		c.extra = append(c.extra, r)
	}
	return c
}

func (c *memCollection[R]) Name() string { return c.name }

func (c *memCollection[R]) ListAll(context.Context) ([]R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listErr != nil {
		return nil, &repository.PersistenceError{Collection: c.name, Op: "list", Err: c.listErr}
	}
	ids := make([]int64, 0, len(c.records))
	for id := range c.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]R, 0, len(ids)+len(c.extra))
	for _, id := range ids {
		out = append(out, c.records[id])
	}
	return append(out, c.extra...), nil
}

func (c *memCollection[R]) Add(_ context.Context, r R) (R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.addErr != nil {
		var zero R
		return zero, &repository.PersistenceError{Collection: c.name, Op: "add", Err: c.addErr}
	}
	stored := r.WithRecordID(c.nextID)
	c.records[c.nextID] = stored
	c.nextID++
	return stored, nil
}

func (c *memCollection[R]) Update(_ context.Context, r R) (R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero R
	id, ok := r.RecordID()
	if !ok {
		return zero, repository.ErrNotFound
	}
	if _, exists := c.records[id]; !exists {
		return zero, repository.ErrNotFound
	}
	c.records[id] = r
	return r, nil
}

func (c *memCollection[R]) Delete(_ context.Context, id int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.records, id)
	return true, nil
}

func (c *memCollection[R]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

var errBackendDown = errors.New("backend unavailable")

func ptr[T any](v T) *T { return &v }

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func studentRecord(id int64, pin, name string) models.StudentRecord {
	return models.StudentRecord{ID: ptr(id), PIN: ptr(pin), Name: ptr(name), Branch: ptr("CSE"), Year: ptr("3"), Section: ptr("A")}
}

func activityRecord(id int64, title, date, status string) models.ActivityRecord {
	return models.ActivityRecord{ID: ptr(id), Title: ptr(title), ActivityDate: day(date), Description: ptr(title + " description"), Status: ptr(status)}
}

func participantRecord(id, activityID int64, roll, award string) models.ParticipantRecord {
	return models.ParticipantRecord{
		ID: ptr(id), ActivityID: ptr(activityID), Name: ptr("Asha"), RollNumber: ptr(roll),
		Department: ptr("CSE"), College: ptr("Campus College"), Award: ptr(award),
	}
}
