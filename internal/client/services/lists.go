package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/glyphs"
)

// ListService manages lists and their tasks.
//
// Every list-scoped call takes the acting username and fails with
// common.ErrForbidden unless it owns the list. Missing lists and tasks yield
// common.ErrListNotFound and common.ErrTaskNotFound.
type ListService interface {
	CreateList(ctx context.Context, owner, name string) (*models.List, error)
	DeleteList(ctx context.Context, listID, requester string) error
	Lists(owner string) []*models.List
	SelectList(ctx context.Context, listID, requester string) error
	CurrentList(requester string) (*models.List, bool)
	ClearSelection(ctx context.Context) error

	AddTask(ctx context.Context, listID, requester, text string, priority models.Priority) (*models.Task, error)
	ToggleTask(ctx context.Context, listID, requester, taskID string) (*models.Task, error)
	DeleteTask(ctx context.Context, listID, requester, taskID string) error
	ClearCompleted(ctx context.Context, listID, requester string) (int, error)
	ClearAll(ctx context.Context, listID, requester string) (int, error)

	Tasks(listID, requester string, filter models.TaskFilter) ([]*models.Task, error)
	Stats(listID, requester string) (models.Stats, error)
}

type listService struct {
	state *State
}

func NewListService(state *State) ListService {
	return &listService{state: state}
}

func ownedList(doc *models.Document, listID, requester string) (*models.List, error) {
	l, ok := doc.Lists[listID]
	if !ok {
		return nil, fmt.Errorf("list %q: %w", listID, common.ErrListNotFound)
	}
	if l.Owner != requester {
		return nil, fmt.Errorf("list %q: %w", listID, common.ErrForbidden)
	}
	return l, nil
}

// CreateList adds an empty list owned by owner and selects it.
func (s *listService) CreateList(ctx context.Context, owner, name string) (*models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrInvalidName
	}

	l := &models.List{
		ID:        newID(listIDPrefix),
		Name:      name,
		Tasks:     []*models.Task{},
		Emoji:     s.state.glyph(glyphs.ListGlyphs),
		CreatedAt: s.state.timestamp(),
		Owner:     owner,
	}

	err := s.state.commit(ctx, "create list", func(doc *models.Document) error {
		doc.Lists[l.ID] = l
		doc.Select(l.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.state.log.Info(ctx, "list created", "user", owner, "list_id", l.ID)
	return l, nil
}

// DeleteList removes the list and clears the selection if it pointed there.
func (s *listService) DeleteList(ctx context.Context, listID, requester string) error {
	err := s.state.commit(ctx, "delete list", func(doc *models.Document) error {
		if _, err := ownedList(doc, listID, requester); err != nil {
			return err
		}
		delete(doc.Lists, listID)
		if doc.Selected() == listID {
			doc.Select("")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.state.log.Info(ctx, "list deleted", "user", requester, "list_id", listID)
	return nil
}

// Lists returns the lists owned by owner, oldest first.
func (s *listService) Lists(owner string) []*models.List {
	var out []*models.List
	for _, l := range s.state.doc.Lists {
		if l.Owner == owner {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt.Time) {
			return out[i].CreatedAt.Before(out[j].CreatedAt.Time)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *listService) SelectList(ctx context.Context, listID, requester string) error {
	return s.state.commit(ctx, "select list", func(doc *models.Document) error {
		if _, err := ownedList(doc, listID, requester); err != nil {
			return err
		}
		doc.Select(listID)
		return nil
	})
}

// CurrentList resolves the selection. A selection that no longer exists or
// belongs to someone else is reported as absent; see ClearSelection.
func (s *listService) CurrentList(requester string) (*models.List, bool) {
	id := s.state.doc.Selected()
	if id == "" {
		return nil, false
	}
	l, err := ownedList(s.state.doc, id, requester)
	if err != nil {
		return nil, false
	}
	return l, true
}

func (s *listService) ClearSelection(ctx context.Context) error {
	if s.state.doc.CurrentList == nil {
		return nil
	}
	return s.state.commit(ctx, "clear selection", func(doc *models.Document) error {
		doc.Select("")
		return nil
	})
}

// AddTask appends a new incomplete task to the end of the list.
func (s *listService) AddTask(ctx context.Context, listID, requester, text string, priority models.Priority) (*models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrInvalidText
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidPriority, priority)
	}

	var task *models.Task
	err := s.state.commit(ctx, "add task", func(doc *models.Document) error {
		l, err := ownedList(doc, listID, requester)
		if err != nil {
			return err
		}

		id := newID(taskIDPrefix)
		for _, dup := l.FindTask(id); dup != nil; _, dup = l.FindTask(id) {
			id = newID(taskIDPrefix)
		}

		task = &models.Task{
			ID:        id,
			Text:      text,
			Priority:  priority,
			CreatedAt: s.state.timestamp(),
			Emoji:     s.state.glyph(glyphs.TaskGlyphs),
		}
		l.Tasks = append(l.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.state.log.Info(ctx, "task added", "user", requester, "list_id", listID, "task_id", task.ID)
	return task, nil
}

// ToggleTask flips completion and sets or clears CompletedAt.
func (s *listService) ToggleTask(ctx context.Context, listID, requester, taskID string) (*models.Task, error) {
	var task *models.Task
	err := s.state.commit(ctx, "toggle task", func(doc *models.Document) error {
		l, err := ownedList(doc, listID, requester)
		if err != nil {
			return err
		}
		if _, task = l.FindTask(taskID); task == nil {
			return fmt.Errorf("task %q: %w", taskID, common.ErrTaskNotFound)
		}
		task.Toggle(s.state.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.state.log.Info(ctx, "task toggled", "user", requester, "list_id", listID, "task_id", taskID, "completed", task.Completed)
	return task, nil
}

func (s *listService) DeleteTask(ctx context.Context, listID, requester, taskID string) error {
	err := s.state.commit(ctx, "delete task", func(doc *models.Document) error {
		l, err := ownedList(doc, listID, requester)
		if err != nil {
			return err
		}
		if l.RemoveTasks(func(t *models.Task) bool { return t.ID == taskID }) == 0 {
			return fmt.Errorf("task %q: %w", taskID, common.ErrTaskNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.state.log.Info(ctx, "task deleted", "user", requester, "list_id", listID, "task_id", taskID)
	return nil
}

// ClearCompleted removes every completed task and returns how many went.
func (s *listService) ClearCompleted(ctx context.Context, listID, requester string) (int, error) {
	return s.removeTasks(ctx, "clear completed", listID, requester, func(t *models.Task) bool { return t.Completed })
}

// ClearAll empties the list.
func (s *listService) ClearAll(ctx context.Context, listID, requester string) (int, error) {
	return s.removeTasks(ctx, "clear all", listID, requester, func(*models.Task) bool { return true })
}

func (s *listService) removeTasks(ctx context.Context, op, listID, requester string, drop func(*models.Task) bool) (int, error) {
	removed := 0
	err := s.state.commit(ctx, op, func(doc *models.Document) error {
		l, err := ownedList(doc, listID, requester)
		if err != nil {
			return err
		}
		removed = l.RemoveTasks(drop)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.state.log.Info(ctx, "tasks removed", "op", op, "user", requester, "list_id", listID, "count", removed)
	return removed, nil
}

// Tasks returns the tasks matching filter in list order.
func (s *listService) Tasks(listID, requester string, filter models.TaskFilter) ([]*models.Task, error) {
	l, err := ownedList(s.state.doc, listID, requester)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Task, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		if filter.Match(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *listService) Stats(listID, requester string) (models.Stats, error) {
	l, err := ownedList(s.state.doc, listID, requester)
	if err != nil {
		return models.Stats{}, err
	}
	return models.ComputeStats(l), nil
}
