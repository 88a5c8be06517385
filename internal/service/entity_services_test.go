package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-showcase/showcase-api/internal/models"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

func winnerRecord(id int64, name, date string, thisWeek bool) models.WinnerRecord {
	return models.WinnerRecord{ID: ptr(id), Name: ptr(name), Event: ptr("Code Quest"), Date: day(date), Year: ptr("2024"), IsWeekWinner: ptr(thisWeek)}
}

func TestWinnerServiceListOrdersNewestFirst(t *testing.T) {
	collection := newMemCollection("winners",
		winnerRecord(1, "Older", "2023-12-20", false),
		winnerRecord(2, "Newest", "2024-01-15", true),
		winnerRecord(3, "Middle", "2024-01-10", true),
		models.WinnerRecord{Name: ptr("No Id")},
	)
	svc := NewWinnerService(collection, nil, nil, nil)

	all, err := svc.List(context.Background(), models.WinnerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Newest", "Middle", "Older"}, []string{all[0].Name, all[1].Name, all[2].Name})
	assert.Equal(t, models.DefaultActivityType, all[0].ActivityType)

	week, err := svc.List(context.Background(), models.WinnerFilter{ThisWeekOnly: true})
	require.NoError(t, err)
	assert.Len(t, week, 2)
}

func TestWinnerServiceCreateAppliesDefaults(t *testing.T) {
	svc := NewWinnerService(newMemCollection[models.WinnerRecord]("winners"), nil, nil, nil)

	created, err := svc.Create(context.Background(), models.Winner{
		ID: "ignored", Name: "Yamini", Event: "Code Quest 2024", Date: models.NewDate(2024, time.January, 15), Year: "2024",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
	assert.Equal(t, models.DefaultActivityType, created.ActivityType)
	assert.False(t, created.IsThisWeekWinner)

	_, err = svc.Create(context.Background(), models.Winner{Name: "No date", Event: "x", Year: "2024"})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	pos := 4
	_, err = svc.Create(context.Background(), models.Winner{Name: "x", Event: "x", Year: "2024", Date: models.NewDate(2024, 1, 1), Position: &pos})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestWinnerServiceUpdateAndDelete(t *testing.T) {
	collection := newMemCollection("winners", winnerRecord(1, "Yamini", "2024-01-15", true))
	svc := NewWinnerService(collection, nil, nil, nil)
	ctx := context.Background()

	updated, err := svc.Update(ctx, "1", models.Winner{Name: "Yamini CSE-4", Event: "Code Quest", Year: "2024", Date: models.NewDate(2024, 1, 15)})
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "Yamini CSE-4", updated.Name)

	for _, id := range []string{"42", "abc", "0", ""} {
		_, err = svc.Update(ctx, id, models.Winner{Name: "x", Event: "x", Year: "2024", Date: models.NewDate(2024, 1, 15)})
		assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code, id)
	}

	require.NoError(t, svc.Delete(ctx, "abc"))
	require.NoError(t, svc.Delete(ctx, "1"))
	require.NoError(t, svc.Delete(ctx, "1"))
	assert.Zero(t, collection.len())
}

func TestActivityServiceListOrdering(t *testing.T) {
	collection := newMemCollection("activities",
		activityRecord(1, "Later upcoming", "2024-02-25", "upcoming"),
		activityRecord(2, "Soon upcoming", "2024-02-15", "upcoming"),
		activityRecord(3, "Old completed", "2024-01-08", "completed"),
		activityRecord(4, "Recent completed", "2024-01-15", "completed"),
	)
	svc := NewActivityService(collection, nil, nil, nil)
	ctx := context.Background()

	all, err := svc.List(ctx, models.ActivityFilter{})
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, a := range all {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Soon upcoming", "Later upcoming", "Recent completed", "Old completed"}, names)

	completed, err := svc.List(ctx, models.ActivityFilter{Status: models.ActivityStatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 2)
	assert.Equal(t, "Recent completed", completed[0].Name)

	_, err = svc.List(ctx, models.ActivityFilter{Status: "cancelled"})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestActivityServiceGetAndAddPhoto(t *testing.T) {
	collection := newMemCollection("activities", activityRecord(4, "Code Quest 2024", "2024-01-15", "completed"))
	svc := NewActivityService(collection, nil, nil, nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, "9")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	updated, err := svc.AddPhoto(ctx, "4", "/media/activities/1.png")
	require.NoError(t, err)
	updated, err = svc.AddPhoto(ctx, "4", "/media/activities/2.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"/media/activities/1.png", "/media/activities/2.png"}, updated.Photos)

	_, err = svc.AddPhoto(ctx, "4", " ")
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestActivityServiceCreateValidatesFormLink(t *testing.T) {
	svc := NewActivityService(newMemCollection[models.ActivityRecord]("activities"), nil, nil, nil)

	_, err := svc.Create(context.Background(), models.Activity{
		Name: "Talk", Date: models.NewDate(2024, 2, 25), Description: "Guest lecture", Status: models.ActivityStatusUpcoming, FormLink: "not a url",
	})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	created, err := svc.Create(context.Background(), models.Activity{
		Name: "Talk", Date: models.NewDate(2024, 2, 25), Description: "Guest lecture", Status: models.ActivityStatusUpcoming, FormLink: "https://forms.example.com/talk",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
}

func TestGalleryServiceListsNewestFirst(t *testing.T) {
	collection := newMemCollection[models.GalleryRecord]("gallery")
	svc := NewGalleryService(collection, nil, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.GalleryImage{URL: "/media/gallery/a.png"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.GalleryImage{URL: "/media/gallery/b.png", Caption: "Prize day"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.GalleryImage{})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	images, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "Prize day", images[0].Caption)
}

func TestParticipantServiceFilters(t *testing.T) {
	collection := newMemCollection("participants",
		participantRecord(1, 1, "21A51A0501", "1st Place"),
		participantRecord(2, 2, "21A51A0501", "Participation"),
		participantRecord(3, 1, "21A51A0502", "2nd Place"),
	)
	svc := NewParticipantService(collection, nil, nil, nil)
	ctx := context.Background()

	byActivity, err := svc.List(ctx, models.ParticipantFilter{ActivityID: "1"})
	require.NoError(t, err)
	assert.Len(t, byActivity, 2)

	byRoll, err := svc.List(ctx, models.ParticipantFilter{RollNumber: "21A51A0501"})
	require.NoError(t, err)
	assert.Len(t, byRoll, 2)
}

func TestParticipantServiceCreateValidatesAward(t *testing.T) {
	svc := NewParticipantService(newMemCollection[models.ParticipantRecord]("participants"), nil, nil, nil)
	base := models.Participant{ActivityID: "99", Name: "Asha", RollNumber: " 21A51A0501 ", Department: "CSE", College: "Campus", Award: models.AwardThird}

	created, err := svc.Create(context.Background(), base)
	require.NoError(t, err)
	assert.Equal(t, "21A51A0501", created.RollNumber)
	assert.Equal(t, "99", created.ActivityID)

	bad := base
	bad.Award = "Gold"
	_, err = svc.Create(context.Background(), bad)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	bad = base
	bad.Department = "ARTS"
	_, err = svc.Create(context.Background(), bad)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEntityStoreMapsPersistenceErrors(t *testing.T) {
	collection := newMemCollection[models.GalleryRecord]("gallery")
	collection.listErr = errBackendDown
	svc := NewGalleryService(collection, nil, nil, nil)

	_, err := svc.List(context.Background())
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrPersistence.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrPersistence.Status, appErr.Status)
}
