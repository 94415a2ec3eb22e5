package app

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriPersons/internal/core"
	"github.com/Rorical/RoriPersons/internal/dispatcher"
	"github.com/Rorical/RoriPersons/internal/eventbus"
	"github.com/Rorical/RoriPersons/internal/models"
	"github.com/Rorical/RoriPersons/internal/store"
	"github.com/Rorical/RoriPersons/internal/update"
)

type harness struct {
	model   *AppModel
	service *core.PersonService
	bus     *eventbus.EventBus
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, store.Seed())
}

func newHarnessWith(t *testing.T, persons []models.Person) *harness {
	t.Helper()
	initial, err := store.New(persons)
	require.NoError(t, err)

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := core.NewPersonService(initial, eb, clockwork.NewFakeClock(), logger)
	t.Cleanup(disp.Stop)

	h := &harness{
		model: &AppModel{
			appModel:   createInitialAppModel(),
			input:      newNameInput(),
			dispatcher: disp,
		},
		service: svc,
		bus:     eb,
	}
	svc.Start()
	t.Cleanup(svc.Stop)
	h.pump(t)
	return h
}

// pump feeds the next core event into the model.
func (h *harness) pump(t *testing.T) {
	t.Helper()
	select {
	case ev := <-h.bus.CoreToUI():
		h.model.Update(update.CoreEventMsg{Event: ev})
	case <-time.After(time.Second):
		t.Fatal("no core event")
	}
}

func (h *harness) key(t *testing.T, s string) {
	t.Helper()
	h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestView_InitiallyHidden(t *testing.T) {
	h := newHarness(t)

	out := h.model.View()

	assert.Contains(t, out, "Hi, I'm a RoriPersons App")
	assert.Contains(t, out, "Toggle Persons")
	assert.NotContains(t, out, "I'm Max")
	assert.Equal(t, "green", h.model.appModel.ButtonColor)
}

func TestView_ToggleThenDeleteTwice(t *testing.T) {
	h := newHarness(t)

	h.key(t, "t")
	h.pump(t)
	assert.Contains(t, h.model.View(), "I'm Max and I am 28 years old!")
	assert.Equal(t, "red", h.model.appModel.ButtonColor)

	h.key(t, "d")
	h.pump(t)
	h.key(t, "d")
	h.pump(t)

	assert.Equal(t, "red bold", h.model.appModel.ClassName)
	assert.Equal(t, 1, h.service.Snapshot().Len())
	assert.Contains(t, h.model.View(), "I'm Stephanie")
}

func TestView_EditRenamesThroughCore(t *testing.T) {
	h := newHarness(t)
	h.key(t, "t")
	h.pump(t)

	h.key(t, "e")
	h.key(t, "i")
	h.pump(t)

	assert.Equal(t, "Maxi", h.service.Snapshot().At(0).Name)
	assert.Contains(t, h.model.View(), "Maxi")
}

func TestView_EditKeepsLongNames(t *testing.T) {
	long := strings.Repeat("A", 70)
	h := newHarnessWith(t, []models.Person{{ID: "a", Name: long, Age: 40}})
	h.key(t, "t")
	h.pump(t)

	h.key(t, "e")
	assert.Equal(t, long, h.model.input.Value())

	h.model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	h.pump(t)

	assert.Equal(t, strings.Repeat("A", 69), h.service.Snapshot().At(0).Name)
}
