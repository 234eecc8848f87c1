package core

import (
	"errors"
	"strings"
)

// Goal is one purchase checklist item.
type Goal struct {
	ID    string
	Title string
	Note  string
	Done  bool
}

var ErrEmptyTitle = errors.New("empty goal title")

// NewGoal builds a goal with a fresh id.
func NewGoal(title, note string) Goal {
	return Goal{ID: NewID(), Title: strings.TrimSpace(title), Note: note}
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
