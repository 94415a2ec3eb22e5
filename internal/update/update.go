package update

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriPersons/internal/eventbus"
	"github.com/Rorical/RoriPersons/internal/models"
)

func HandleUpdateWithEventBus(appModel *models.AppModel, input *textinput.Model, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, input, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, input, msg)
		return nil
	case CoreEventMsg:
		return HandleCoreEvent(appModel, input, msg)
	}

	// Cursor blink and other widget messages
	if appModel.Mode == models.Editing {
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return cmd
	}
	return nil
}
