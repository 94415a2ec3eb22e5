package components

import (
	"strings"

	"github.com/Rorical/RoriPersons/internal/models"
	"github.com/Rorical/RoriPersons/ui/styles"
)

// RenderPersons draws the visible list. editor replaces the description of the
// row being edited; pass "" when not editing.
func RenderPersons(persons []models.Person, cursor int, editingID, editor string) string {
	var b strings.Builder

	personStyle := styles.PersonStyle()
	selectedStyle := styles.SelectedPersonStyle()

	for i, p := range persons {
		content := p.Describe()
		if p.ID == editingID {
			content = editor
		}
		if i == cursor {
			b.WriteString(selectedStyle.Render(content) + "\n")
		} else {
			b.WriteString(personStyle.Render(content) + "\n")
		}
	}

	return b.String()
}
