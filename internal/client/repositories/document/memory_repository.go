package document

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
)

// InMemoryRepository keeps the encoded document in memory. It goes through
// Encode/Decode like the file store, so it enforces the same load boundary.
type InMemoryRepository struct {
	data []byte
}

var _ Repository = (*InMemoryRepository)(nil)

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// NewInMemoryRepositoryWithData seeds the store with raw file contents.
func NewInMemoryRepositoryWithData(data []byte) *InMemoryRepository {
	return &InMemoryRepository{data: append([]byte(nil), data...)}
}

func (r *InMemoryRepository) Load(ctx context.Context) (*models.Document, error) {
	if r.data == nil {
		return models.NewDocument(), nil
	}
	return Decode(r.data)
}

func (r *InMemoryRepository) Save(ctx context.Context, doc *models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	r.data = data
	return nil
}

func (r *InMemoryRepository) Reset(ctx context.Context) error {
	r.data = nil
	return nil
}

// Bytes returns the last saved encoding, nil if nothing was saved.
func (r *InMemoryRepository) Bytes() []byte {
	return r.data
}
