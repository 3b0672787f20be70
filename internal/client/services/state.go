// Package services implements the todo domain operations on top of a single
// in-memory Document.
//
// State owns the live Document and the Repository it came from. AuthService
// and ListService mutate the Document only through State.commit, which saves
// the whole Document after every change and rolls the in-memory copy back if
// the save fails. An operation that returns nil has therefore been persisted.
//
// State is not safe for concurrent use; the CLI drives it from one goroutine.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/client/repositories/document"
	"github.com/dmitrijs2005/todokeeper/internal/glyphs"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/google/uuid"
)

const (
	listIDPrefix = "list_"
	taskIDPrefix = "task_"
)

type State struct {
	repo  document.Repository
	doc   *models.Document
	log   logging.Logger
	now   func() time.Time
	glyph glyphs.Picker
}

type Option func(*State)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithGlyphPicker replaces the random glyph choice.
func WithGlyphPicker(p glyphs.Picker) Option {
	return func(s *State) { s.glyph = p }
}

// NewState loads the document from repo. A corrupt store is returned as an
// error matching common.ErrCorruptState and nothing is written.
func NewState(ctx context.Context, repo document.Repository, log logging.Logger, opts ...Option) (*State, error) {
	s := &State{
		repo:  repo,
		log:   log,
		now:   time.Now,
		glyph: glyphs.Random,
	}
	for _, opt := range opts {
		opt(s)
	}

	doc, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	s.doc = doc

	return s, nil
}

// Document exposes the live document for rendering. Callers must not modify it.
func (s *State) Document() *models.Document {
	return s.doc
}

// Reset deletes the stored document and starts over with an empty one.
func (s *State) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		s.log.Error(ctx, "reset failed", "error", err)
		return fmt.Errorf("reset: %w", err)
	}
	s.doc = models.NewDocument()
	s.log.Warn(ctx, "all data has been reset")
	return nil
}

// commit applies a mutation and persists the result. If apply fails or the
// save fails, the document is restored to its state before the call.
func (s *State) commit(ctx context.Context, op string, apply func(doc *models.Document) error) error {
	snapshot := s.doc.Clone()

	if err := apply(s.doc); err != nil {
		s.doc = snapshot
		return err
	}

	if err := s.repo.Save(ctx, s.doc); err != nil {
		s.doc = snapshot
		s.log.Error(ctx, "save failed, change rolled back", "op", op, "error", err)
		return fmt.Errorf("%s: save: %w", op, err)
	}

	return nil
}

func (s *State) timestamp() models.Timestamp {
	return models.NewTimestamp(s.now())
}

func newID(prefix string) string {
	return prefix + uuid.NewString()
}
