package models

// Stats is a read-only aggregate over the tasks of one list, used for charts.
// ByPriority only carries priorities that occur at least once.
type Stats struct {
	Total      int
	Completed  int
	ByPriority map[Priority]int
}

// ComputeStats aggregates l in one pass.
func ComputeStats(l *List) Stats {
	s := Stats{ByPriority: map[Priority]int{}}
	for _, t := range l.Tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		}
		s.ByPriority[t.Priority]++
	}
	return s
}

func (s Stats) Pending() int {
	return s.Total - s.Completed
}

// Percent is the completed share rounded down, 0 for an empty list.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Completed * 100 / s.Total
}
