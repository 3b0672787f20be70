package document

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
)

type Repository interface {
	// Load returns the stored document, or a fresh empty one if nothing is stored.
	Load(ctx context.Context) (*models.Document, error)
	// Save replaces the stored document with doc.
	Save(ctx context.Context, doc *models.Document) error
	// Reset deletes the stored document. Resetting an empty store is not an error.
	Reset(ctx context.Context) error
}
