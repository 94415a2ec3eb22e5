package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriPersons/internal/models"
)

func seeded(t *testing.T) *State {
	t.Helper()
	s, err := New(Seed())
	require.NoError(t, err)
	return s
}

func ids(s *State) []string {
	out := make([]string, 0, s.Len())
	for _, p := range s.Persons() {
		out = append(out, p.ID)
	}
	return out
}

func TestNew_StartsHidden(t *testing.T) {
	s := seeded(t)

	assert.Equal(t, 3, s.Len())
	assert.False(t, s.ShowPersons())
	assert.Equal(t, Hidden, s.Visibility())
}

func TestNew_CopiesInput(t *testing.T) {
	persons := Seed()
	s, err := New(persons)
	require.NoError(t, err)

	persons[0].Name = "Changed"

	assert.Equal(t, "Max", s.At(0).Name)
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]models.Person{{ID: "a"}, {ID: "a"}})

	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestPersons_ReturnsCopy(t *testing.T) {
	s := seeded(t)

	got := s.Persons()
	got[1].Name = "Changed"

	assert.Equal(t, "Manu", s.At(1).Name)
}

func TestDeletePerson_EveryIndex(t *testing.T) {
	for i := range 3 {
		s := seeded(t)
		before := ids(s)

		next, err := DeletePerson(s, i)
		require.NoError(t, err)

		want := append(append([]string{}, before[:i]...), before[i+1:]...)
		if diff := cmp.Diff(want, ids(next)); diff != "" {
			t.Errorf("delete %d (-want +got):\n%s", i, diff)
		}
		assert.Equal(t, before, ids(s), "prior snapshot changed")
	}
}

func TestDeletePerson_OutOfRange(t *testing.T) {
	s := seeded(t)

	for _, index := range []int{-1, 3, 99} {
		next, err := DeletePerson(s, index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Nil(t, next)
	}
	assert.Equal(t, []string{"adar", "rerf", "rsdf"}, ids(s))
}

func TestDeletePerson_EmptyList(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	_, err = DeletePerson(s, 0)

	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDeletePerson_KeepsVisibility(t *testing.T) {
	s := ToggleVisibility(seeded(t))

	next, err := DeletePerson(s, 0)
	require.NoError(t, err)

	assert.True(t, next.ShowPersons())
}

func TestRenamePerson(t *testing.T) {
	s, err := New([]models.Person{{ID: "a", Name: "Max", Age: 28}})
	require.NoError(t, err)

	next, err := RenamePerson(s, "a", "Maxi")
	require.NoError(t, err)

	assert.Equal(t, []models.Person{{ID: "a", Name: "Maxi", Age: 28}}, next.Persons())
	assert.Equal(t, "Max", s.At(0).Name)
}

func TestRenamePerson_LeavesOthersUnchanged(t *testing.T) {
	s := seeded(t)

	next, err := RenamePerson(s, "rerf", "")
	require.NoError(t, err)

	want := Seed()
	want[1].Name = ""
	if diff := cmp.Diff(want, next.Persons()); diff != "" {
		t.Errorf("rename (-want +got):\n%s", diff)
	}
}

func TestRenamePerson_UnknownID(t *testing.T) {
	s := seeded(t)

	next, err := RenamePerson(s, "nope", "Someone")

	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Nil(t, next)
	assert.Equal(t, Seed(), s.Persons())
}

func TestToggleVisibility_IsItsOwnInverse(t *testing.T) {
	s := seeded(t)

	once := ToggleVisibility(s)
	twice := ToggleVisibility(once)

	assert.True(t, once.ShowPersons())
	assert.Equal(t, Shown, once.Visibility())
	assert.True(t, twice.Equal(s))
	assert.NotSame(t, s, twice)
}

func TestOperations_ReturnNewSnapshots(t *testing.T) {
	s := seeded(t)

	deleted, err := DeletePerson(s, 0)
	require.NoError(t, err)
	renamed, err := RenamePerson(s, "adar", "Max")
	require.NoError(t, err)

	assert.NotSame(t, s, deleted)
	assert.NotSame(t, s, renamed)
	assert.NotSame(t, s, ToggleVisibility(s))
}

func TestActions(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		wantIDs []string
		wantErr error
	}{
		{name: "delete", action: Delete{Index: 1}, wantIDs: []string{"adar", "rsdf"}},
		{name: "delete out of range", action: Delete{Index: 5}, wantErr: ErrIndexOutOfRange},
		{name: "rename", action: Rename{ID: "rsdf", Name: "Steph"}, wantIDs: []string{"adar", "rerf", "rsdf"}},
		{name: "rename unknown", action: Rename{ID: "zzz"}, wantErr: ErrRecordNotFound},
		{name: "toggle", action: Toggle{}, wantIDs: []string{"adar", "rerf", "rsdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := tt.action.Apply(seeded(t))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(next))
		})
	}
}

func TestEqual(t *testing.T) {
	a := seeded(t)
	b := seeded(t)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(ToggleVisibility(b)))
	assert.False(t, a.Equal(nil))
}
