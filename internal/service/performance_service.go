package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/mapper"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/repository"
)

const performanceCachePrefix = "performance:"

// PerformanceCollections are the collections a performance summary is built from.
type PerformanceCollections struct {
	Students     repository.Collection[models.StudentRecord]
	Participants repository.Collection[models.ParticipantRecord]
	Activities   repository.Collection[models.ActivityRecord]
}

type performanceCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)
}

// PerformanceService aggregates a student's participations into a scored summary.
type PerformanceService struct {
	students     *entityStore[models.StudentRecord, models.Student]
	participants *entityStore[models.ParticipantRecord, models.Participant]
	activities   *entityStore[models.ActivityRecord, models.Activity]
	cache        performanceCache
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewPerformanceService constructs a PerformanceService. cache may be nil.
func NewPerformanceService(collections PerformanceCollections, cache performanceCache, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *PerformanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PerformanceService{
		students:     newEntityStore(collections.Students, mapper.Students(), "student", metrics, logger),
		participants: newEntityStore(collections.Participants, mapper.Participants(), "participant", metrics, logger),
		activities:   newEntityStore(collections.Activities, mapper.Activities(), "activity", metrics, logger),
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// PerformanceCacheKey returns the cache key of a student's summary.
func PerformanceCacheKey(pin string) string {
	return performanceCachePrefix + pin
}

// GetStudentPerformance builds the summary of the student with the given PIN.
// The PIN is matched exactly after trimming surrounding whitespace. An unknown
// PIN yields (nil, false, nil). The three collections are read independently,
// so a concurrent write may be reflected in one read and not another.
func (s *PerformanceService) GetStudentPerformance(ctx context.Context, pin string) (*models.PerformanceSummary, bool, error) {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return nil, false, nil
	}

	if s.cache != nil {
		var cached models.PerformanceSummary
		if s.cache.Get(ctx, PerformanceCacheKey(pin), &cached) {
			return &cached, true, nil
		}
	}

	student, ok, err := s.students.find(ctx, pin)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	participants, err := s.participants.list(ctx)
	if err != nil {
		return nil, false, err
	}
	activities, err := s.activities.list(ctx)
	if err != nil {
		return nil, false, err
	}
	byID := make(map[string]models.Activity, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
	}

	summary := &models.PerformanceSummary{Student: student, Participations: []models.Participation{}}
	for _, p := range participants {
		if p.RollNumber != student.PIN {
			continue
		}
		entry := models.Participation{
			ParticipantID: p.ID,
			ActivityID:    p.ActivityID,
			ActivityName:  fmt.Sprintf("Activity #%s", p.ActivityID),
			Department:    p.Department,
			College:       p.College,
			Award:         p.Award,
		}
		if activity, found := byID[p.ActivityID]; found {
			entry.ActivityName = activity.Name
			entry.ActivityDate = activity.Date
		}
		marks, known := p.Award.Marks()
		if !known {
			s.logger.Warn("participant has unknown award",
				zap.String("participant_id", p.ID), zap.String("award", string(p.Award)))
		}
		entry.Marks = marks
		summary.TotalMarks += marks
		summary.Participations = append(summary.Participations, entry)
	}
	sortParticipations(summary.Participations)

	if s.cache != nil {
		s.cache.Set(ctx, PerformanceCacheKey(pin), summary, s.cacheTTL)
	}
	return summary, true, nil
}

// sortParticipations orders by activity date, newest first, then activity name
// and participant id so equal dates have a stable order.
func sortParticipations(items []models.Participation) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.ActivityDate != b.ActivityDate {
			return a.ActivityDate.After(b.ActivityDate)
		}
		if a.ActivityName != b.ActivityName {
			return a.ActivityName < b.ActivityName
		}
		return compareIDs(a.ParticipantID, b.ParticipantID) < 0
	})
}

// compareIDs orders numeric identities numerically and anything else lexically.
func compareIDs(a, b string) int {
	ka, okA := mapper.ParseKey(a)
	kb, okB := mapper.ParseKey(b)
	if okA && okB {
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
