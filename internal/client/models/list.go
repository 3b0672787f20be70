package models

type List struct {
	// ID is the key of Document.Lists and is not repeated in the file.
	ID        string    `json:"-"`
	Name      string    `json:"name"`
	Tasks     []*Task   `json:"tasks"`
	Emoji     string    `json:"emoji"`
	CreatedAt Timestamp `json:"created_at"`
	Owner     string    `json:"owner"`
}

// FindTask returns the position and the task with the given id, or -1 and nil.
func (l *List) FindTask(id string) (int, *Task) {
	for i, t := range l.Tasks {
		if t.ID == id {
			return i, t
		}
	}
	return -1, nil
}

// RemoveTasks drops every task for which drop returns true, keeping the
// others in their relative order, and returns how many were removed.
func (l *List) RemoveTasks(drop func(*Task) bool) int {
	kept := l.Tasks[:0]
	for _, t := range l.Tasks {
		if !drop(t) {
			kept = append(kept, t)
		}
	}
	removed := len(l.Tasks) - len(kept)
	// release dropped pointers held by the backing array
	for i := len(kept); i < len(l.Tasks); i++ {
		l.Tasks[i] = nil
	}
	if kept == nil {
		kept = []*Task{}
	}
	l.Tasks = kept
	return removed
}

// Clone returns a deep copy of l. Tasks is never nil in the copy.
func (l *List) Clone() *List {
	c := *l
	c.Tasks = make([]*Task, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		c.Tasks = append(c.Tasks, t.Clone())
	}
	return &c
}
