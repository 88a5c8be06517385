package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/mapper"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/repository"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

// ActivityService manages upcoming and completed activities.
type ActivityService struct {
	store     *entityStore[models.ActivityRecord, models.Activity]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewActivityService constructs an ActivityService.
func NewActivityService(collection repository.Collection[models.ActivityRecord], validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = models.NewValidator()
	}
	return &ActivityService{
		store:     newEntityStore(collection, mapper.Activities(), "activity", metrics, logger),
		validator: validate,
		logger:    logger,
	}
}

// List returns activities. Upcoming activities come first, soonest first,
// followed by completed ones, most recent first.
func (s *ActivityService) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be upcoming or completed")
	}
	activities, err := s.store.list(ctx)
	if err != nil {
		return nil, err
	}
	out := activities[:0]
	for _, a := range activities {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Status != b.Status {
			return a.Status == models.ActivityStatusUpcoming
		}
		if a.Status == models.ActivityStatusUpcoming {
			return a.Date.Before(b.Date)
		}
		return a.Date.After(b.Date)
	})
	return out, nil
}

// Get returns one activity.
func (s *ActivityService) Get(ctx context.Context, id string) (*models.Activity, error) {
	activity, ok, err := s.store.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.store.notFound()
	}
	return &activity, nil
}

// Create stores a new activity.
func (s *ActivityService) Create(ctx context.Context, a models.Activity) (*models.Activity, error) {
	a.ID = ""
	if err := s.validator.Struct(a); err != nil {
		return nil, validationError(err, "invalid activity payload")
	}
	created, err := s.store.create(ctx, a)
	if err != nil {
		return nil, err
	}
	s.logger.Info("activity created", zap.String("id", created.ID), zap.String("status", string(created.Status)))
	return &created, nil
}

// Update replaces the activity stored under id.
func (s *ActivityService) Update(ctx context.Context, id string, a models.Activity) (*models.Activity, error) {
	key, ok, err := s.store.resolveKey(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.store.notFound()
	}
	a.ID = id
	if err := s.validator.Struct(a); err != nil {
		return nil, validationError(err, "invalid activity payload")
	}
	updated, err := s.store.update(ctx, key, a)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddPhoto appends a photo reference to an activity.
func (s *ActivityService) AddPhoto(ctx context.Context, id, ref string) (*models.Activity, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "photo reference is required")
	}
	activity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	activity.Photos = append(activity.Photos, ref)
	return s.Update(ctx, id, *activity)
}

// Delete removes an activity. Participants referencing it are left untouched.
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	key, ok, err := s.store.resolveKey(ctx, id)
	if err != nil || !ok {
		return err
	}
	return s.store.remove(ctx, key)
}
