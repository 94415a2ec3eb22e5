// Package view derives render-ready data from a store snapshot.
package view

import (
	"strings"

	"github.com/Rorical/RoriPersons/internal/models"
	"github.com/Rorical/RoriPersons/internal/store"
)

type Color string

const (
	Red   Color = "red"
	Green Color = "green"
)

// Style classes applied to the paragraph under the heading.
const (
	ClassRed  = "red"
	ClassBold = "bold"
)

// ViewModel is everything a renderer needs to draw one snapshot.
type ViewModel struct {
	VisibleList       []models.Person // nil when the list is hidden
	ListShown         bool
	ToggleButtonColor Color
	StyleClasses      []string
}

// Derive computes the view model for s. It has no hidden inputs.
func Derive(s *store.State) ViewModel {
	vm := ViewModel{
		ToggleButtonColor: Green,
		StyleClasses:      styleClasses(s.Len()),
	}
	if s.ShowPersons() {
		vm.ListShown = true
		vm.VisibleList = s.Persons()
		vm.ToggleButtonColor = Red
	}
	return vm
}

func styleClasses(n int) []string {
	classes := []string{}
	if n <= 2 {
		classes = append(classes, ClassRed)
	}
	if n <= 1 {
		classes = append(classes, ClassBold)
	}
	return classes
}

// ClassName joins the style classes the way a class attribute would.
func (vm ViewModel) ClassName() string {
	return strings.Join(vm.StyleClasses, " ")
}
