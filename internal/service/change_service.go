package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/events"
	"github.com/campus-showcase/showcase-api/internal/mapper"
	"github.com/campus-showcase/showcase-api/pkg/jobs"
)

// JobInvalidatePerformance drops cached performance summaries.
const JobInvalidatePerformance = "performance.invalidate"

type changeBus interface {
	Subscribe(h events.Handler) (func(), error)
	Versions() map[string]uint64
}

type jobQueue interface {
	Handle(jobType string, h jobs.Handler)
	TryEnqueue(job jobs.Job) error
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}

// ChangeService reacts to collection changes and exposes collection versions
// to polling clients.
type ChangeService struct {
	bus     changeBus
	queue   jobQueue
	cache   cacheInvalidator
	metrics *MetricsService
	logger  *zap.Logger
}

// NewChangeService constructs a ChangeService. queue and cache may be nil when
// performance caching is disabled.
func NewChangeService(bus changeBus, queue jobQueue, cache cacheInvalidator, metrics *MetricsService, logger *zap.Logger) *ChangeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChangeService{bus: bus, queue: queue, cache: cache, metrics: metrics, logger: logger}
}

// Start subscribes to the bus and registers the invalidation job. The returned
// function unsubscribes.
func (s *ChangeService) Start() (func(), error) {
	if s.queue != nil {
		s.queue.Handle(JobInvalidatePerformance, s.invalidatePerformance)
	}
	unsubscribe, err := s.bus.Subscribe(s.HandleChange)
	if err != nil {
		return nil, fmt.Errorf("subscribe to changes: %w", err)
	}
	return unsubscribe, nil
}

// HandleChange runs on the publishing goroutine, so slow work is queued.
func (s *ChangeService) HandleChange(_ context.Context, change events.Change) {
	s.metrics.RecordChange(change.Collection, string(change.Op))
	s.logger.Debug("collection changed",
		zap.String("collection", change.Collection),
		zap.String("op", string(change.Op)),
		zap.String("id", change.ID),
		zap.Uint64("version", change.Version))

	if s.queue == nil || s.cache == nil || !affectsPerformance(change.Collection) {
		return
	}
	job := jobs.Job{ID: uuid.NewString(), Type: JobInvalidatePerformance, Payload: change}
	if err := s.queue.TryEnqueue(job); err != nil {
		s.logger.Warn("performance cache invalidation not queued", zap.String("collection", change.Collection), zap.Error(err))
	}
}

// Versions returns the change counter of every collection written since start.
func (s *ChangeService) Versions() map[string]uint64 {
	versions := s.bus.Versions()
	for _, name := range []string{
		mapper.CollectionWinners,
		mapper.CollectionActivities,
		mapper.CollectionGallery,
		mapper.CollectionParticipants,
		mapper.CollectionStudents,
	} {
		if _, ok := versions[name]; !ok {
			versions[name] = 0
		}
	}
	return versions
}

func (s *ChangeService) invalidatePerformance(ctx context.Context, _ jobs.Job) error {
	return s.cache.Invalidate(ctx, performanceCachePrefix+"*")
}

func affectsPerformance(collection string) bool {
	switch collection {
	case mapper.CollectionStudents, mapper.CollectionParticipants, mapper.CollectionActivities:
		return true
	}
	return false
}
