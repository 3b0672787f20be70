package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// Priority is the importance of a task. Only the three constants below are valid.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// DefaultPriority is preselected when the user does not choose one.
const DefaultPriority = PriorityMedium

// Priorities lists the valid priorities in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority accepts user input case-insensitively ("high", "LOW").
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	for _, p := range Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidPriority, s)
}
