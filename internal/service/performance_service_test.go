package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/models"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

type performanceFixture struct {
	students     *memCollection[models.StudentRecord]
	participants *memCollection[models.ParticipantRecord]
	activities   *memCollection[models.ActivityRecord]
	metrics      *MetricsService
	svc          *PerformanceService
}

func newPerformanceFixture(cache performanceCache) *performanceFixture {
	f := &performanceFixture{
		students: newMemCollection("students",
			studentRecord(1, "21A51A0501", "Asha Rao"),
			studentRecord(2, "21A51A0502", "Ravi Kumar"),
			models.StudentRecord{PIN: ptr("ORPHAN"), Name: ptr("No Id")},
		),
		activities: newMemCollection("activities",
			activityRecord(1, "Code Quest 2024", "2024-01-15", "completed"),
			activityRecord(2, "Hackathon Weekend", "2024-02-20", "upcoming"),
		),
		participants: newMemCollection("participants",
			participantRecord(1, 1, "21A51A0501", "1st Place"),
			participantRecord(2, 2, "21A51A0501", "Participation"),
			participantRecord(3, 1, "21A51A0502", "2nd Place"),
		),
		metrics: NewMetricsService(),
	}
	f.svc = NewPerformanceService(PerformanceCollections{
		Students:     f.students,
		Participants: f.participants,
		Activities:   f.activities,
	}, cache, time.Minute, f.metrics, zap.NewNop())
	return f
}

func TestGetStudentPerformanceScoresAndOrders(t *testing.T) {
	f := newPerformanceFixture(nil)

	summary, found, err := f.svc.GetStudentPerformance(context.Background(), "21A51A0501")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Asha Rao", summary.Student.Name)
	assert.Equal(t, "21A51A0501", summary.Student.ID)
	assert.Equal(t, 12, summary.TotalMarks)
	require.Len(t, summary.Participations, 2)
	assert.Equal(t, "Hackathon Weekend", summary.Participations[0].ActivityName)
	assert.Equal(t, 2, summary.Participations[0].Marks)
	assert.Equal(t, "Code Quest 2024", summary.Participations[1].ActivityName)
	assert.Equal(t, 10, summary.Participations[1].Marks)
	assert.Equal(t, models.NewDate(2024, time.January, 15), summary.Participations[1].ActivityDate)
}

func TestGetStudentPerformanceUnknownPIN(t *testing.T) {
	f := newPerformanceFixture(nil)

	for _, pin := range []string{"NOPIN", "21a51a0501", "", "   ", "ORPHAN"} {
		summary, found, err := f.svc.GetStudentPerformance(context.Background(), pin)
		require.NoError(t, err, pin)
		assert.False(t, found, pin)
		assert.Nil(t, summary, pin)
	}
}

func TestGetStudentPerformanceTrimsPIN(t *testing.T) {
	f := newPerformanceFixture(nil)

	summary, found, err := f.svc.GetStudentPerformance(context.Background(), "  21A51A0502\n")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 7, summary.TotalMarks)
}

func TestGetStudentPerformanceWithoutParticipations(t *testing.T) {
	f := newPerformanceFixture(nil)
	_, _ = f.students.Add(context.Background(), studentRecord(0, "21A51A0599", "New Student"))

	summary, found, err := f.svc.GetStudentPerformance(context.Background(), "21A51A0599")
	require.NoError(t, err)
	require.True(t, found)
	assert.Zero(t, summary.TotalMarks)
	assert.NotNil(t, summary.Participations)
	assert.Empty(t, summary.Participations)
}

func TestGetStudentPerformanceDanglingActivity(t *testing.T) {
	f := newPerformanceFixture(nil)
	_, _ = f.participants.Add(context.Background(), participantRecord(0, 99, "21A51A0501", "3rd Place"))

	summary, found, err := f.svc.GetStudentPerformance(context.Background(), "21A51A0501")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 17, summary.TotalMarks)
	require.Len(t, summary.Participations, 3)
	last := summary.Participations[2]
	assert.Equal(t, "Activity #99", last.ActivityName)
	assert.True(t, last.ActivityDate.IsZero())
	assert.Equal(t, 5, last.Marks)
}

func TestGetStudentPerformanceUnknownAwardEarnsNothing(t *testing.T) {
	f := newPerformanceFixture(nil)
	_, _ = f.participants.Add(context.Background(), participantRecord(0, 1, "21A51A0502", "Gold Medal"))

	summary, _, err := f.svc.GetStudentPerformance(context.Background(), "21A51A0502")
	require.NoError(t, err)
	assert.Equal(t, 7, summary.TotalMarks)
	require.Len(t, summary.Participations, 2)
}

func TestGetStudentPerformanceTiesOrderedByNameThenID(t *testing.T) {
	f := newPerformanceFixture(nil)
	ctx := context.Background()
	_, _ = f.activities.Add(ctx, activityRecord(0, "Algorithm Championship", "2024-01-15", "completed"))
	_, _ = f.participants.Add(ctx, participantRecord(0, 3, "21A51A0501", "Participation"))
	_, _ = f.participants.Add(ctx, participantRecord(0, 1, "21A51A0501", "Participation"))

	summary, _, err := f.svc.GetStudentPerformance(ctx, "21A51A0501")
	require.NoError(t, err)
	require.Len(t, summary.Participations, 4)
	names := []string{}
	ids := []string{}
	for _, p := range summary.Participations {
		names = append(names, p.ActivityName)
		ids = append(ids, p.ParticipantID)
	}
	assert.Equal(t, []string{"Hackathon Weekend", "Algorithm Championship", "Code Quest 2024", "Code Quest 2024"}, names)
	assert.Equal(t, []string{"2", "4", "1", "5"}, ids)
}

func TestGetStudentPerformanceBackendFailure(t *testing.T) {
	f := newPerformanceFixture(nil)
	f.participants.listErr = errBackendDown

	summary, found, err := f.svc.GetStudentPerformance(context.Background(), "21A51A0501")
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.False(t, found)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrPersistence.Code, appErr.Code)
	assert.ErrorIs(t, err, errBackendDown)
}

func TestGetStudentPerformanceCountsCorruptRecords(t *testing.T) {
	f := newPerformanceFixture(nil)

	_, _, err := f.svc.GetStudentPerformance(context.Background(), "21A51A0501")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f.metrics.Snapshot().CorruptRecordsSkipped)
}

type mapCache struct {
	entries map[string]*models.PerformanceSummary
	sets    int
}

func (c *mapCache) Get(_ context.Context, key string, dest interface{}) bool {
	v, ok := c.entries[key]
	if !ok {
		return false
	}
	*dest.(*models.PerformanceSummary) = *v
	return true
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) {
	c.entries[key] = value.(*models.PerformanceSummary)
	c.sets++
}

func TestGetStudentPerformanceUsesCache(t *testing.T) {
	cache := &mapCache{entries: map[string]*models.PerformanceSummary{}}
	f := newPerformanceFixture(cache)

	first, found, err := f.svc.GetStudentPerformance(context.Background(), "21A51A0501")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, cache.sets)
	assert.Contains(t, cache.entries, PerformanceCacheKey("21A51A0501"))

	f.participants.listErr = errBackendDown
	second, found, err := f.svc.GetStudentPerformance(context.Background(), "21A51A0501")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first.TotalMarks, second.TotalMarks)
}
