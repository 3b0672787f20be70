package models

// TaskFilter selects which tasks of a list are displayed. An empty Priority
// matches every priority.
type TaskFilter struct {
	ShowCompleted bool
	ShowPending   bool
	Priority      Priority
}

// DefaultTaskFilter shows everything.
func DefaultTaskFilter() TaskFilter {
	return TaskFilter{ShowCompleted: true, ShowPending: true}
}

func (f TaskFilter) Match(t *Task) bool {
	if t.Completed && !f.ShowCompleted {
		return false
	}
	if !t.Completed && !f.ShowPending {
		return false
	}
	return f.Priority == "" || t.Priority == f.Priority
}
