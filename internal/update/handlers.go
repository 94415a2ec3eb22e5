package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriPersons/internal/eventbus"
	"github.com/Rorical/RoriPersons/internal/models"
)

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, input *textinput.Model, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if appModel.Mode == models.Editing {
		return handleEditKey(appModel, input, keyMsg, eb)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		if appModel.Cursor > 0 {
			appModel.Cursor--
		}
	case "down", "j":
		if appModel.Cursor < len(appModel.Persons)-1 {
			appModel.Cursor++
		}
	case "t", " ", "space":
		send(appModel, eb, eventbus.TogglePersonsEvent{})
	case "d", "x":
		if !appModel.ListShown || len(appModel.Persons) == 0 {
			appModel.Status = "Nothing to delete"
			return nil
		}
		// Index comes from the rendered list, exactly as the user saw it
		send(appModel, eb, eventbus.DeletePersonEvent{Index: appModel.Cursor})
	case "e", "enter":
		return startEditing(appModel, input)
	}
	return nil
}

func handleEditKey(appModel *models.AppModel, input *textinput.Model, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "enter", "esc":
		stopEditing(appModel, input)
		return nil
	}

	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(keyMsg)
	if after := input.Value(); after != before {
		send(appModel, eb, eventbus.RenamePersonEvent{ID: appModel.EditingID, Name: after})
	}
	return cmd
}

func startEditing(appModel *models.AppModel, input *textinput.Model) tea.Cmd {
	if !appModel.ListShown || appModel.Cursor >= len(appModel.Persons) {
		appModel.Status = "Show the list to edit a name"
		return nil
	}
	person := appModel.Persons[appModel.Cursor]
	appModel.Mode = models.Editing
	appModel.EditingID = person.ID
	appModel.Status = fmt.Sprintf("Editing %s", person.ID)
	input.SetValue(person.Name)
	input.CursorEnd()
	return input.Focus()
}

func stopEditing(appModel *models.AppModel, input *textinput.Model) {
	input.Blur()
	appModel.Mode = models.Browse
	appModel.EditingID = ""
	appModel.Status = "Ready"
}

func send(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) {
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending event: " + err.Error()
	}
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, input *textinput.Model, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		// Replace UI state from the core snapshot
		appModel.Persons = event.View.VisibleList
		appModel.ListShown = event.View.ListShown
		appModel.ButtonColor = string(event.View.ToggleButtonColor)
		appModel.ClassName = event.View.ClassName()
		appModel.UpdatedAt = event.UpdatedAt
		if event.State != nil {
			appModel.Total = event.State.Len()
		}

		if appModel.Cursor >= len(appModel.Persons) {
			appModel.Cursor = max(len(appModel.Persons)-1, 0)
		}
		if appModel.Mode == models.Editing && event.State != nil && event.State.IndexOf(appModel.EditingID) < 0 {
			stopEditing(appModel, input)
		}

		if event.Error != nil {
			appModel.Status = "Error: " + event.Error.Error()
		} else if appModel.Mode == models.Browse {
			appModel.Status = "Ready"
		}
	}

	return nil
}

func HandleWindowSizeMsg(appModel *models.AppModel, input *textinput.Model, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	input.Width = max(sizeMsg.Width-10, 10)
}
