package store

import "fmt"

// Action is a user intent that produces the next snapshot.
type Action interface {
	Apply(s *State) (*State, error)
	fmt.Stringer
}

type Delete struct {
	Index int
}

func (a Delete) Apply(s *State) (*State, error) {
	return DeletePerson(s, a.Index)
}

func (a Delete) String() string {
	return fmt.Sprintf("delete[%d]", a.Index)
}

type Rename struct {
	ID   string
	Name string
}

func (a Rename) Apply(s *State) (*State, error) {
	return RenamePerson(s, a.ID, a.Name)
}

func (a Rename) String() string {
	return fmt.Sprintf("rename[%s]", a.ID)
}

type Toggle struct{}

func (Toggle) Apply(s *State) (*State, error) {
	return ToggleVisibility(s), nil
}

func (Toggle) String() string {
	return "toggle"
}
