package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriPersons/internal/models"
	"github.com/Rorical/RoriPersons/internal/update"
	"github.com/Rorical/RoriPersons/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForCoreEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, &m.input, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	// Handle other events through the event bus
	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, &m.input, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeading(m.appModel.ClassName))
	b.WriteString(components.RenderToggleButton(m.appModel.ButtonColor))
	if m.appModel.ListShown {
		editor := ""
		if m.appModel.Mode == models.Editing {
			editor = m.input.View()
		}
		b.WriteString("\n")
		b.WriteString(components.RenderPersons(m.appModel.Persons, m.appModel.Cursor, m.appModel.EditingID, editor))
	}
	b.WriteString("\n")
	b.WriteString(components.RenderHelp(m.appModel.Mode))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Total, m.appModel.UpdatedAt, m.appModel.Width))

	return b.String()
}
