package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/importer"
	"github.com/campus-showcase/showcase-api/internal/mapper"
	"github.com/campus-showcase/showcase-api/internal/models"
	"github.com/campus-showcase/showcase-api/internal/repository"
	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

// ImportResult summarises a bulk roster import. Accepted counts the rows that
// passed parsing, validation and the duplicate check, so Accepted plus the
// number of rejections equals TotalRows once the import has run to completion.
type ImportResult struct {
	TotalRows int                 `json:"totalRows"`
	Accepted  int                 `json:"accepted"`
	Inserted  int                 `json:"inserted"`
	Rejected  []importer.RowError `json:"rejected,omitempty"`
}

// StudentService manages the student roster. Students are addressed by PIN.
type StudentService struct {
	store     *entityStore[models.StudentRecord, models.Student]
	validator *validator.Validate
	logger    *zap.Logger
	// writeMu serialises the PIN uniqueness check with the write that follows it.
	writeMu sync.Mutex
}

// NewStudentService constructs a StudentService.
func NewStudentService(collection repository.Collection[models.StudentRecord], validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = models.NewValidator()
	}
	return &StudentService{
		store:     newEntityStore(collection, mapper.Students(), "student", metrics, logger),
		validator: validate,
		logger:    logger,
	}
}

// List returns the roster in insertion order.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.store.list(ctx)
}

// Get returns the student with the given PIN.
func (s *StudentService) Get(ctx context.Context, pin string) (*models.Student, error) {
	student, ok, err := s.store.find(ctx, strings.TrimSpace(pin))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.store.notFound()
	}
	return &student, nil
}

// Create adds a student. The PIN must not be in use.
func (s *StudentService) Create(ctx context.Context, student models.Student) (*models.Student, error) {
	normalizeStudent(&student)
	if err := s.validator.Struct(student); err != nil {
		return nil, validationError(err, "invalid student payload")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_, exists, err := s.store.resolveKey(ctx, student.PIN)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("student with PIN %s already exists", student.PIN))
	}
	created, err := s.store.create(ctx, student)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the student stored under pin. The PIN is the student's
// identity and cannot change; re-keying is a delete followed by a create.
func (s *StudentService) Update(ctx context.Context, pin string, student models.Student) (*models.Student, error) {
	pin = strings.TrimSpace(pin)
	normalizeStudent(&student)
	if err := s.validator.Struct(student); err != nil {
		return nil, validationError(err, "invalid student payload")
	}
	if student.PIN != pin {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student PIN cannot be changed")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	key, ok, err := s.store.resolveKey(ctx, pin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.store.notFound()
	}
	updated, err := s.store.update(ctx, key, student)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the student with the given PIN. Unknown PINs are ignored.
func (s *StudentService) Delete(ctx context.Context, pin string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	key, ok, err := s.store.resolveKey(ctx, strings.TrimSpace(pin))
	if err != nil || !ok {
		return err
	}
	return s.store.remove(ctx, key)
}

// BulkImport parses roster text and inserts every accepted row whose PIN is not
// already on the roster or earlier in the same input. Rejections are reported
// per row; a failing backend aborts the import with the rows inserted so far kept.
func (s *StudentService) BulkImport(ctx context.Context, text string) (*ImportResult, error) {
	parsed, err := importer.Parse(text)
	if err != nil {
		if errors.Is(err, importer.ErrNoValidRows) {
			return nil, appErrors.WithDetails(
				appErrors.Clone(appErrors.ErrValidation, "no valid student rows found; expected columns PIN, Name, Branch, Year, Section"),
				parsed.Rejected)
		}
		return nil, validationError(err, "invalid roster")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	existing, err := s.store.list(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing)+len(parsed.Candidates))
	for _, st := range existing {
		seen[st.PIN] = true
	}

	result := &ImportResult{
		TotalRows: parsed.TotalRows,
		Rejected:  append([]importer.RowError(nil), parsed.Rejected...),
	}
	for i, candidate := range parsed.Candidates {
		student := candidate.Student()
		if seen[student.PIN] {
			result.Rejected = append(result.Rejected, importer.RowError{
				Line:   parsed.CandidateLines[i],
				Reason: fmt.Sprintf("duplicate PIN %s", student.PIN),
			})
			continue
		}
		if err := s.validator.Struct(student); err != nil {
			result.Rejected = append(result.Rejected, importer.RowError{Line: parsed.CandidateLines[i], Reason: err.Error()})
			continue
		}
		result.Accepted++
		if _, err := s.store.create(ctx, student); err != nil {
			s.logger.Error("bulk import aborted", zap.Int("inserted", result.Inserted), zap.Error(err))
			return result, err
		}
		seen[student.PIN] = true
		result.Inserted++
	}

	s.logger.Info("student roster imported",
		zap.Int("total_rows", result.TotalRows),
		zap.Int("accepted", result.Accepted),
		zap.Int("inserted", result.Inserted))
	return result, nil
}

func normalizeStudent(s *models.Student) {
	s.PIN = strings.TrimSpace(s.PIN)
	s.Name = strings.TrimSpace(s.Name)
	s.Branch = strings.TrimSpace(s.Branch)
	s.Year = strings.TrimSpace(s.Year)
	s.Section = strings.TrimSpace(s.Section)
	s.ID = s.PIN
}
