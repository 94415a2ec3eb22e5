package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("141")).
		Padding(0, 2).
		MarginBottom(1)
}

// ParagraphStyle applies space separated style classes: "red" colours the text and
// "bold" emboldens it. Unknown classes are ignored.
func ParagraphStyle(className string) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 2)
	for _, class := range strings.Fields(className) {
		switch class {
		case "red":
			style = style.Foreground(lipgloss.Color("9"))
		case "bold":
			style = style.Bold(true)
		}
	}
	return style
}

// ButtonStyle mirrors an inline button: white text, blue border, coloured fill.
func ButtonStyle(background string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(buttonColor(background)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(0, 1).
		MarginLeft(2)
}

func buttonColor(name string) lipgloss.Color {
	switch name {
	case "red":
		return lipgloss.Color("1")
	case "green":
		return lipgloss.Color("2")
	}
	return lipgloss.Color("8")
}

func PersonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Padding(0, 1).
		MarginLeft(2)
}

func SelectedPersonStyle() lipgloss.Style {
	return PersonStyle().
		BorderForeground(lipgloss.Color("39")).
		Foreground(lipgloss.Color("39"))
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func ErrorStatusStyle(width int) lipgloss.Style {
	return StatusStyle(width).Foreground(lipgloss.Color("203"))
}

func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Padding(0, 2)
}
