package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/mapper"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/repository"
)

// ParticipantService manages activity participants. The activity reference is
// not checked against the activity collection.
type ParticipantService struct {
	store     *entityStore[models.ParticipantRecord, models.Participant]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewParticipantService constructs a ParticipantService.
func NewParticipantService(collection repository.Collection[models.ParticipantRecord], validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ParticipantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = models.NewValidator()
	}
	return &ParticipantService{
		store:     newEntityStore(collection, mapper.Participants(), "participant", metrics, logger),
		validator: validate,
		logger:    logger,
	}
}

// List returns participants in insertion order, optionally narrowed by activity or roll number.
func (s *ParticipantService) List(ctx context.Context, filter models.ParticipantFilter) ([]models.Participant, error) {
	participants, err := s.store.list(ctx)
	if err != nil {
		return nil, err
	}
	out := participants[:0]
	for _, p := range participants {
		if filter.ActivityID != "" && p.ActivityID != filter.ActivityID {
			continue
		}
		if filter.RollNumber != "" && p.RollNumber != filter.RollNumber {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *ParticipantService) Create(ctx context.Context, p models.Participant) (*models.Participant, error) {
	p.ID = ""
	normalizeParticipant(&p)
	if err := s.validator.Struct(p); err != nil {
		return nil, validationError(err, "invalid participant payload")
	}
	created, err := s.store.create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info("participant created", zap.String("id", created.ID), zap.String("activity_id", created.ActivityID))
	return &created, nil
}

func (s *ParticipantService) Update(ctx context.Context, id string, p models.Participant) (*models.Participant, error) {
	key, ok, err := s.store.resolveKey(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.store.notFound()
	}
	p.ID = id
	normalizeParticipant(&p)
	if err := s.validator.Struct(p); err != nil {
		return nil, validationError(err, "invalid participant payload")
	}
	updated, err := s.store.update(ctx, key, p)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ParticipantService) Delete(ctx context.Context, id string) error {
	key, ok, err := s.store.resolveKey(ctx, id)
	if err != nil || !ok {
		return err
	}
	return s.store.remove(ctx, key)
}

// normalizeParticipant trims the roll number, which is matched exactly against student PINs.
func normalizeParticipant(p *models.Participant) {
	p.RollNumber = strings.TrimSpace(p.RollNumber)
	p.ActivityID = strings.TrimSpace(p.ActivityID)
}
