package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type formURLModel struct {
	input textinput.Model
}

func newFormURLModel(href string) formURLModel {
	in := textinput.New()
	in.Width = 50
	in.SetValue(href)
	in.Focus()
	return formURLModel{input: in}
}

func (m formURLModel) View() string {
	out := "Ссылка: [" + m.input.View() + "]\n\n"
	out += helpStyle.Render("содержимое кода совпадает с адресом без изменений")
	return out
}
