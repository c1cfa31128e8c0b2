package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
)

type formTextModel struct {
	area textarea.Model
}

func newFormTextModel(text string) formTextModel {
	ta := textarea.New()
	ta.SetWidth(50)
	ta.SetHeight(6)
	ta.SetValue(text)
	ta.Focus()
	return formTextModel{area: ta}
}

func (m formTextModel) View() string {
	out := "Текст:\n" + m.area.View() + "\n\n"
	out += helpStyle.Render("текст кодируется без изменений")
	return out
}
