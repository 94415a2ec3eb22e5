package components

import (
	"github.com/Rorical/RoriPersons/ui/styles"
)

func RenderHeading(className string) string {
	heading := styles.HeadingStyle().Render("Hi, I'm a RoriPersons App")
	paragraph := styles.ParagraphStyle(className).Render("This is really working!")
	return heading + "\n" + paragraph + "\n\n"
}

func RenderToggleButton(color string) string {
	return styles.ButtonStyle(color).Render("Toggle Persons") + "\n"
}
