package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriPersons/internal/models"
	"github.com/Rorical/RoriPersons/internal/store"
)

func seeded(t *testing.T) *store.State {
	t.Helper()
	s, err := store.New(store.Seed())
	require.NoError(t, err)
	return s
}

func TestDerive_Hidden(t *testing.T) {
	vm := Derive(seeded(t))

	assert.False(t, vm.ListShown)
	assert.Nil(t, vm.VisibleList)
	assert.Equal(t, Green, vm.ToggleButtonColor)
	assert.Empty(t, vm.StyleClasses)
	assert.Equal(t, "", vm.ClassName())
}

func TestDerive_ShownAfterToggle(t *testing.T) {
	vm := Derive(store.ToggleVisibility(seeded(t)))

	assert.True(t, vm.ListShown)
	assert.Equal(t, Red, vm.ToggleButtonColor)
	assert.Equal(t, store.Seed(), vm.VisibleList)
}

func TestDerive_Thresholds(t *testing.T) {
	s := seeded(t)

	s, err := store.DeletePerson(s, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{ClassRed}, Derive(s).StyleClasses)

	s, err = store.DeletePerson(s, 0)
	require.NoError(t, err)
	vm := Derive(s)
	assert.Equal(t, []string{ClassRed, ClassBold}, vm.StyleClasses)
	assert.Equal(t, "red bold", vm.ClassName())
	assert.Contains(t, vm.StyleClasses, ClassBold)

	s, err = store.DeletePerson(s, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{ClassRed, ClassBold}, Derive(s).StyleClasses)
}

func TestDerive_StyleClassesIgnoreVisibility(t *testing.T) {
	s, err := store.New([]models.Person{{ID: "a", Name: "Max", Age: 28}})
	require.NoError(t, err)

	assert.Equal(t, Derive(s).StyleClasses, Derive(store.ToggleVisibility(s)).StyleClasses)
}

func TestDerive_IsPure(t *testing.T) {
	s := store.ToggleVisibility(seeded(t))

	assert.Equal(t, Derive(s), Derive(s))
}

func TestDerive_VisibleListIsDetached(t *testing.T) {
	s := store.ToggleVisibility(seeded(t))

	vm := Derive(s)
	vm.VisibleList[0].Name = "Changed"

	assert.Equal(t, "Max", s.At(0).Name)
}
