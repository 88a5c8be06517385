package service

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/mapper"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/repository"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

// pqUniqueViolation is the SQLSTATE of a unique constraint violation.
const pqUniqueViolation = "23505"

// entityStore runs domain entities through a collection and its codec.
type entityStore[R models.Record[R], D any] struct {
	collection repository.Collection[R]
	codec      *mapper.Codec[R, D]
	metrics    *MetricsService
	logger     *zap.Logger
	label      string
}

func newEntityStore[R models.Record[R], D any](collection repository.Collection[R], codec *mapper.Codec[R, D], label string, metrics *MetricsService, logger *zap.Logger) *entityStore[R, D] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &entityStore[R, D]{collection: collection, codec: codec, metrics: metrics, logger: logger, label: label}
}

// list returns every valid entity in storage order.
func (s *entityStore[R, D]) list(ctx context.Context) ([]D, error) {
	records, err := s.collection.ListAll(ctx)
	if err != nil {
		return nil, s.storeError(err, "list")
	}
	entities, skipped := mapper.Filter(records, s.codec)
	if skipped > 0 {
		s.logger.Warn("skipped stored records without identity",
			zap.String("collection", s.codec.Collection()), zap.Int("skipped", skipped))
		s.metrics.RecordCorruptRecords(s.codec.Collection(), skipped)
	}
	return entities, nil
}

// find returns the entity with the given domain identity.
func (s *entityStore[R, D]) find(ctx context.Context, id string) (D, bool, error) {
	var zero D
	entities, err := s.list(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, e := range entities {
		if s.codec.EntityID(e) == id {
			return e, true, nil
		}
	}
	return zero, false, nil
}

func (s *entityStore[R, D]) create(ctx context.Context, entity D) (D, error) {
	var zero D
	stored, err := s.collection.Add(ctx, s.codec.ToStorage(entity))
	if err != nil {
		return zero, s.storeError(err, "create")
	}
	out, ok := s.codec.ToDomain(stored)
	if !ok {
		return zero, appErrors.Clone(appErrors.ErrInternal, "stored "+s.label+" has no identity")
	}
	return out, nil
}

// update replaces the record stored under key with entity.
func (s *entityStore[R, D]) update(ctx context.Context, key int64, entity D) (D, error) {
	var zero D
	stored, err := s.collection.Update(ctx, s.codec.ToStorage(entity).WithRecordID(key))
	if err != nil {
		return zero, s.storeError(err, "update")
	}
	out, ok := s.codec.ToDomain(stored)
	if !ok {
		return zero, appErrors.Clone(appErrors.ErrInternal, "stored "+s.label+" has no identity")
	}
	return out, nil
}

func (s *entityStore[R, D]) remove(ctx context.Context, key int64) error {
	if _, err := s.collection.Delete(ctx, key); err != nil {
		return s.storeError(err, "delete")
	}
	return nil
}

// resolveKey maps a domain identity onto its storage key. Numeric identities
// parse directly; business keys are looked up among the stored records.
func (s *entityStore[R, D]) resolveKey(ctx context.Context, id string) (int64, bool, error) {
	if s.codec.NumericIdentity() {
		key, ok := mapper.ParseKey(id)
		return key, ok, nil
	}
	if id == "" {
		return 0, false, nil
	}
	records, err := s.collection.ListAll(ctx)
	if err != nil {
		return 0, false, s.storeError(err, "list")
	}
	for _, r := range records {
		if s.codec.Identity(r) == id {
			key, ok := r.RecordID()
			return key, ok, nil
		}
	}
	return 0, false, nil
}

func (s *entityStore[R, D]) notFound() error {
	return appErrors.Clone(appErrors.ErrNotFound, s.label+" not found")
}

// storeError maps repository failures onto API errors.
func (s *entityStore[R, D]) storeError(err error, op string) error {
	var pqErr *pq.Error
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return s.notFound()
	case errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation:
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, s.label+" already exists")
	case repository.IsPersistence(err):
		s.logger.Error("store operation failed",
			zap.String("collection", s.codec.Collection()), zap.String("op", op), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to "+op+" "+s.label)
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to "+op+" "+s.label)
	}
}

func validationError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}
