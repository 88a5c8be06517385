package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/mapper"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/repository"
)

// WinnerService manages recognised winners.
type WinnerService struct {
	store     *entityStore[models.WinnerRecord, models.Winner]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewWinnerService constructs a WinnerService.
func NewWinnerService(collection repository.Collection[models.WinnerRecord], validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *WinnerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = models.NewValidator()
	}
	return &WinnerService{
		store:     newEntityStore(collection, mapper.Winners(), "winner", metrics, logger),
		validator: validate,
		logger:    logger,
	}
}

// List returns winners newest first.
func (s *WinnerService) List(ctx context.Context, filter models.WinnerFilter) ([]models.Winner, error) {
	winners, err := s.store.list(ctx)
	if err != nil {
		return nil, err
	}
	out := winners[:0]
	for _, w := range winners {
		if filter.ThisWeekOnly && !w.IsThisWeekWinner {
			continue
		}
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// Create stores a new winner.
func (s *WinnerService) Create(ctx context.Context, w models.Winner) (*models.Winner, error) {
	w.ID = ""
	w.ApplyDefaults()
	if err := s.validator.Struct(w); err != nil {
		return nil, validationError(err, "invalid winner payload")
	}
	created, err := s.store.create(ctx, w)
	if err != nil {
		return nil, err
	}
	s.logger.Info("winner created", zap.String("id", created.ID), zap.String("event", created.Event))
	return &created, nil
}

// Update replaces the winner stored under id.
func (s *WinnerService) Update(ctx context.Context, id string, w models.Winner) (*models.Winner, error) {
	key, ok, err := s.store.resolveKey(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.store.notFound()
	}
	w.ID = id
	w.ApplyDefaults()
	if err := s.validator.Struct(w); err != nil {
		return nil, validationError(err, "invalid winner payload")
	}
	updated, err := s.store.update(ctx, key, w)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a winner. Unknown identities are ignored.
func (s *WinnerService) Delete(ctx context.Context, id string) error {
	key, ok, err := s.store.resolveKey(ctx, id)
	if err != nil || !ok {
		return err
	}
	return s.store.remove(ctx, key)
}
