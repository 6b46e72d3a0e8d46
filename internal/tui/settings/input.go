package settings

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

// ListInputModel is the free-form field editor: a single text input
// labelled with the setting being changed.
type ListInputModel struct {
	Title string
	Input textinput.Model
}

func initialInputModel() ListInputModel {
	t := textinput.New()
	t.Cursor.Style = cursorStyle
	t.PromptStyle = focusedStyle
	t.TextStyle = focusedStyle
	t.Width = 48

	return ListInputModel{Input: t}
}

func (m ListInputModel) View() string {
	return textStyle.Render(fmt.Sprintf("Editing: %s\n%s",
		m.Title,
		m.Input.View(),
	))
}
