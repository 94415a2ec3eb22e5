package store

import (
	"fmt"
	"slices"
)

// DeletePerson removes the record at index. The result shares no backing array
// with s.
func DeletePerson(s *State, index int) (*State, error) {
	if index < 0 || index >= len(s.persons) {
		return nil, fmt.Errorf("delete person %d of %d: %w", index, len(s.persons), ErrIndexOutOfRange)
	}
	persons := slices.Clone(s.persons)
	persons = slices.Delete(persons, index, index+1)
	return &State{persons: persons, showPersons: s.showPersons}, nil
}

// RenamePerson replaces the record with id by a copy carrying name. The name is
// taken as is; an empty name is valid.
func RenamePerson(s *State, id, name string) (*State, error) {
	i := s.IndexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("rename person %q: %w", id, ErrRecordNotFound)
	}
	person := s.persons[i]
	person.Name = name

	persons := slices.Clone(s.persons)
	persons[i] = person
	return &State{persons: persons, showPersons: s.showPersons}, nil
}

// ToggleVisibility flips whether the list is shown.
func ToggleVisibility(s *State) *State {
	return &State{persons: s.persons, showPersons: !s.showPersons}
}
