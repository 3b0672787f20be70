package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/glyphs"
)

// tipPicker is a test seam for the motivational tip.
var tipPicker glyphs.Picker = glyphs.Random

// AddTask adds a task to the current list. The text comes from the arguments
// or a prompt; the priority prompt defaults to Medium.
func (a *App) AddTask(ctx context.Context, args []string) error {
	l, err := a.currentList()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if text == "" {
		if text, err = GetSimpleText(a.reader, "Task", a.out); err != nil {
			return err
		}
	}
	if strings.TrimSpace(text) == "" {
		return errEmptyTask
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Priority (High/Medium/Low) [%s]", models.DefaultPriority), a.out)
	if err != nil {
		return err
	}
	priority := models.DefaultPriority
	if answer != "" {
		if priority, err = models.ParsePriority(answer); err != nil {
			return err
		}
	}

	t, err := a.lists.AddTask(ctx, l.ID, a.userName, text, priority)
	if err != nil {
		return err
	}
	printlnFn(successStyle.Render("Added: " + t.Text))
	return nil
}

// ShowTasks prints the current list through the active filter. Numbers are
// positions in the whole list so they stay valid for "done" and "rm".
func (a *App) ShowTasks(ctx context.Context) error {
	l, err := a.currentList()
	if err != nil {
		return err
	}

	tasks, err := a.lists.Tasks(l.ID, a.userName, a.filter)
	if err != nil {
		return err
	}

	printlnFn(headerStyle.Render(fmt.Sprintf("%s %s", l.Emoji, l.Name)))
	switch {
	case len(l.Tasks) == 0:
		printlnFn("This list is empty. Add a task with 'add'")
	case len(tasks) == 0:
		printlnFn("No tasks match your filters")
	default:
		pos := make(map[string]int, len(l.Tasks))
		for i, t := range l.Tasks {
			pos[t.ID] = i + 1
		}
		for _, t := range tasks {
			printlnFn(renderTaskLine(pos[t.ID], t))
		}
	}

	if tip := tipPicker(glyphs.Tips); tip != "" {
		printlnFn(tipStyle.Render("💡 Motivational Tip: " + tip))
	}
	return nil
}

// Filter changes which tasks ShowTasks prints. Without arguments it prints
// the active filter.
func (a *App) Filter(ctx context.Context, args []string) error {
	f := a.filter
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "all":
			f = models.DefaultTaskFilter()
		case "pending":
			f.ShowPending, f.ShowCompleted = true, false
		case "completed", "done":
			f.ShowPending, f.ShowCompleted = false, true
		case "any":
			f.Priority = ""
		default:
			p, err := models.ParsePriority(arg)
			if err != nil {
				return errBadFilter
			}
			f.Priority = p
		}
	}
	a.filter = f
	printlnFn("Filter: " + describeFilter(f))
	return nil
}

func (a *App) ToggleTask(ctx context.Context, args []string) error {
	l, t, err := a.taskArg(args)
	if err != nil {
		return err
	}
	t, err = a.lists.ToggleTask(ctx, l.ID, a.userName, t.ID)
	if err != nil {
		return err
	}
	if t.Completed {
		printlnFn(successStyle.Render("✓ Completed: " + t.Text))
	} else {
		printlnFn("Reopened: " + t.Text)
	}
	return nil
}

func (a *App) DeleteTask(ctx context.Context, args []string) error {
	l, t, err := a.taskArg(args)
	if err != nil {
		return err
	}
	text := t.Text
	if err := a.lists.DeleteTask(ctx, l.ID, a.userName, t.ID); err != nil {
		return err
	}
	printlnFn("Deleted: " + text)
	return nil
}

func (a *App) ClearCompleted(ctx context.Context) error {
	l, err := a.currentList()
	if err != nil {
		return err
	}
	n, err := a.lists.ClearCompleted(ctx, l.ID, a.userName)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Removed %d completed task(s)", n))
	return nil
}

// ClearAll empties the current list after confirmation.
func (a *App) ClearAll(ctx context.Context) error {
	l, err := a.currentList()
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Remove all tasks from '%s'?", l.Name), a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}
	n, err := a.lists.ClearAll(ctx, l.ID, a.userName)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Removed %d task(s)", n))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	l, err := a.currentList()
	if err != nil {
		return err
	}
	s, err := a.lists.Stats(l.ID, a.userName)
	if err != nil {
		return err
	}
	printlnFn(headerStyle.Render(fmt.Sprintf("📊 %s", l.Name)))
	printlnFn(renderStats(s))
	return nil
}

// taskArg resolves "<n>" against the current list.
func (a *App) taskArg(args []string) (*models.List, *models.Task, error) {
	l, err := a.currentList()
	if err != nil {
		return nil, nil, err
	}
	if len(args) == 0 {
		return nil, nil, errNeedTaskNumber
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(l.Tasks) {
		return nil, nil, errBadTaskNumber
	}
	return l, l.Tasks[n-1], nil
}

func describeFilter(f models.TaskFilter) string {
	state := "all tasks"
	switch {
	case f.ShowPending && !f.ShowCompleted:
		state = "pending tasks"
	case f.ShowCompleted && !f.ShowPending:
		state = "completed tasks"
	case !f.ShowCompleted && !f.ShowPending:
		state = "no tasks"
	}
	if f.Priority == "" {
		return state + ", any priority"
	}
	return fmt.Sprintf("%s, %s priority", state, f.Priority)
}
