package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/filex"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
)

const filePerm os.FileMode = 0o600

// writeFileAtomic is a test seam.
var writeFileAtomic = filex.WriteFileAtomic

// JSONFileRepository stores the document in one JSON file.
type JSONFileRepository struct {
	path string
	log  logging.Logger
}

var _ Repository = (*JSONFileRepository)(nil)

func NewJSONFileRepository(path string, log logging.Logger) *JSONFileRepository {
	return &JSONFileRepository{
		path: path,
		log:  log.With("component", "document.json", "path", path),
	}
}

func (r *JSONFileRepository) Path() string {
	return r.path
}

func (r *JSONFileRepository) Load(ctx context.Context) (*models.Document, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Info(ctx, "no data file yet, starting with an empty document")
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		var cse *CorruptStateError
		if errors.As(err, &cse) {
			cse.Path = r.path
		}
		r.log.Error(ctx, "data file rejected", "error", err)
		return nil, err
	}

	r.log.Debug(ctx, "document loaded", "users", len(doc.Users), "lists", len(doc.Lists), "bytes", len(data))
	return doc, nil
}

func (r *JSONFileRepository) Save(ctx context.Context, doc *models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(doc)
	if err != nil {
		return err
	}

	// ErrDirNotSynced comes after the rename: the new document is on disk.
	if err := writeFileAtomic(r.path, data, filePerm); err != nil {
		if !errors.Is(err, filex.ErrDirNotSynced) {
			return fmt.Errorf("save %s: %w", r.path, err)
		}
		r.log.Warn(ctx, "document saved, directory sync failed", "error", err)
	}

	r.log.Debug(ctx, "document saved", "bytes", len(data))
	return nil
}

func (r *JSONFileRepository) Reset(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", r.path, err)
	}
	r.log.Warn(ctx, "data file removed")
	return nil
}
