package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/mapper"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/repository"
)

// GalleryService manages gallery images.
type GalleryService struct {
	store     *entityStore[models.GalleryRecord, models.GalleryImage]
	validator *validator.Validate
}

// NewGalleryService constructs a GalleryService.
func NewGalleryService(collection repository.Collection[models.GalleryRecord], validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *GalleryService {
	if validate == nil {
		validate = models.NewValidator()
	}
	return &GalleryService{
		store:     newEntityStore(collection, mapper.Gallery(), "gallery image", metrics, logger),
		validator: validate,
	}
}

// List returns gallery images, most recently added first.
func (s *GalleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	images, err := s.store.list(ctx)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(images)-1; i < j; i, j = i+1, j-1 {
		images[i], images[j] = images[j], images[i]
	}
	return images, nil
}

func (s *GalleryService) Create(ctx context.Context, img models.GalleryImage) (*models.GalleryImage, error) {
	img.ID = ""
	if err := s.validator.Struct(img); err != nil {
		return nil, validationError(err, "invalid gallery payload")
	}
	created, err := s.store.create(ctx, img)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *GalleryService) Update(ctx context.Context, id string, img models.GalleryImage) (*models.GalleryImage, error) {
	key, ok, err := s.store.resolveKey(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.store.notFound()
	}
	img.ID = id
	if err := s.validator.Struct(img); err != nil {
		return nil, validationError(err, "invalid gallery payload")
	}
	updated, err := s.store.update(ctx, key, img)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	key, ok, err := s.store.resolveKey(ctx, id)
	if err != nil || !ok {
		return err
	}
	return s.store.remove(ctx, key)
}
