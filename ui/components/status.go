package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rorical/RoriPersons/internal/models"
	"github.com/Rorical/RoriPersons/ui/styles"
)

func RenderStatus(status string, total int, updatedAt time.Time, width int) string {
	statusStyle := styles.StatusStyle(width)
	if strings.HasPrefix(status, "Error") {
		statusStyle = styles.ErrorStatusStyle(width)
	}

	statusContent := fmt.Sprintf("%s | %d persons", status, total)
	if !updatedAt.IsZero() {
		statusContent += " | updated " + updatedAt.Format("15:04:05")
	}

	return statusStyle.Render(statusContent)
}

func RenderHelp(mode models.Mode) string {
	help := "t toggle • j/k move • e edit • d delete • q quit"
	if mode == models.Editing {
		help = "type to rename • enter/esc done"
	}
	return styles.HelpStyle().Render(help)
}
