package repository

import (
	"context"

	"github.com/campus-showcase/showcase-api/internal/models"
)

// Collection is keyed persistence for one record type. Implementations assign
// identities on Add, replace whole records on Update and treat Delete as idempotent.
type Collection[R models.Record[R]] interface {
	Name() string
	// ListAll returns every stored record in ascending identity order.
	ListAll(ctx context.Context) ([]R, error)
	// Add stores r under a freshly assigned identity and returns the stored record.
	Add(ctx context.Context, r R) (R, error)
	// Update replaces the record carrying r's identity. A missing record yields ErrNotFound.
	Update(ctx context.Context, r R) (R, error)
	// Delete removes the record with the given identity. Absent records are not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
