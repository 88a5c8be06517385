package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/campus-showcase/showcase-api/pkg/errors"
)

// Upload categories accepted by UploadService.
var UploadCategories = []string{"winners", "activities", "posters", "gallery"}

var mimeExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type blobStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
	Delete(filename string) error
}

// UploadConfig bounds accepted uploads.
type UploadConfig struct {
	PublicBase   string
	MaxSizeBytes int64
	AllowedMIMEs []string
}

// UploadService stores images and returns the reference under which they are served.
type UploadService struct {
	storage blobStorage
	cfg     UploadConfig
	allowed map[string]bool
	logger  *zap.Logger
	now     func() time.Time
}

// NewUploadService constructs an UploadService.
func NewUploadService(storage blobStorage, cfg UploadConfig, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxSizeBytes <= 0 {
		cfg.MaxSizeBytes = 5 * 1024 * 1024
	}
	cfg.PublicBase = strings.TrimRight(cfg.PublicBase, "/")
	allowed := make(map[string]bool, len(cfg.AllowedMIMEs))
	for _, m := range cfg.AllowedMIMEs {
		allowed[strings.ToLower(m)] = true
	}
	if len(allowed) == 0 {
		for m := range mimeExtensions {
			allowed[m] = true
		}
	}
	return &UploadService{storage: storage, cfg: cfg, allowed: allowed, logger: logger, now: time.Now}
}

// Upload stores the blob under category and returns its public reference,
// <public base>/<category>/<unix millis>_<uuid><ext>. The content type is
// sniffed from the data; the declared size is checked against the limit and
// the stream is cut off past it.
func (s *UploadService) Upload(_ context.Context, category, originalName string, size int64, r io.Reader) (string, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if !validCategory(category) {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown upload category %q", category))
	}
	if size > s.cfg.MaxSizeBytes {
		return "", appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("file exceeds %d bytes", s.cfg.MaxSizeBytes))
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to read upload")
	}
	if n == 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "file is empty")
	}
	head = head[:n]
	mime := strings.ToLower(strings.SplitN(http.DetectContentType(head), ";", 2)[0])
	if !s.allowed[mime] {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("file type %s is not allowed", mime))
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" || len(ext) > 6 {
		ext = mimeExtensions[mime]
	}
	name := fmt.Sprintf("%d_%s%s", s.now().UnixMilli(), uuid.NewString(), ext)
	rel := path.Join(category, name)

	limited := &limitedReader{r: io.MultiReader(bytes.NewReader(head), r), remaining: s.cfg.MaxSizeBytes}
	if _, err := s.storage.SaveStream(rel, limited); err != nil {
		if rmErr := s.storage.Delete(rel); rmErr != nil {
			s.logger.Warn("failed to remove partial upload", zap.String("path", rel), zap.Error(rmErr))
		}
		if limited.exceeded {
			return "", appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("file exceeds %d bytes", s.cfg.MaxSizeBytes))
		}
		return "", appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to store upload")
	}

	ref := s.cfg.PublicBase + "/" + rel
	s.logger.Info("upload stored", zap.String("category", category), zap.String("ref", ref), zap.String("mime", mime))
	return ref, nil
}

func validCategory(category string) bool {
	for _, c := range UploadCategories {
		if c == category {
			return true
		}
	}
	return false
}

var errUploadTooLarge = fmt.Errorf("upload exceeds size limit")

// limitedReader fails once more than remaining bytes are read.
type limitedReader struct {
	r         io.Reader
	remaining int64
	exceeded  bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		l.exceeded = true
		return 0, errUploadTooLarge
	}
	return n, err
}
