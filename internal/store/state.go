// Package store holds the person list as immutable snapshots.
//
// Every operation takes the current snapshot and returns a new one; a snapshot is
// never modified after construction, so consumers can detect changes by pointer
// comparison alone.
package store

import (
	"fmt"
	"slices"

	"github.com/Rorical/RoriPersons/internal/models"
)

// Visibility is the two-valued display state of the list.
type Visibility int

const (
	Hidden Visibility = iota
	Shown
)

func (v Visibility) String() string {
	if v == Shown {
		return "shown"
	}
	return "hidden"
}

// State is one immutable snapshot of the application.
type State struct {
	persons     []models.Person
	showPersons bool
}

// Seed returns the fixed set of records the application starts with.
func Seed() []models.Person {
	return []models.Person{
		{ID: "adar", Name: "Max", Age: 28},
		{ID: "rerf", Name: "Manu", Age: 29},
		{ID: "rsdf", Name: "Stephanie", Age: 26},
	}
}

// New builds a hidden snapshot from persons. The slice is copied.
func New(persons []models.Person) (*State, error) {
	seen := make(map[string]struct{}, len(persons))
	for _, p := range persons {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("new state: %q: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}
	return &State{persons: slices.Clone(persons)}, nil
}

// WithVisibility returns a copy of s with the given visibility.
func (s *State) WithVisibility(v Visibility) *State {
	return &State{persons: s.persons, showPersons: v == Shown}
}

// Persons returns a copy of the records in display order.
func (s *State) Persons() []models.Person {
	return slices.Clone(s.persons)
}

func (s *State) Len() int {
	return len(s.persons)
}

func (s *State) At(i int) models.Person {
	return s.persons[i]
}

func (s *State) ShowPersons() bool {
	return s.showPersons
}

func (s *State) Visibility() Visibility {
	if s.showPersons {
		return Shown
	}
	return Hidden
}

// IndexOf returns the position of the record with id, or -1.
func (s *State) IndexOf(id string) int {
	return slices.IndexFunc(s.persons, func(p models.Person) bool {
		return p.ID == id
	})
}

// Equal reports whether both snapshots hold the same records and visibility.
func (s *State) Equal(other *State) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.showPersons == other.showPersons && slices.Equal(s.persons, other.persons)
}
