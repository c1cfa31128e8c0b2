package tui

import (
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formEmailModel struct {
	inputs []textinput.Model
	focus  int
}

func newFormEmailModel(e models.EmailData) formEmailModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[2].Width = 60
	inputs[0].SetValue(e.Address)
	inputs[1].SetValue(e.Subject)
	inputs[2].SetValue(e.Body)
	inputs[0].Focus()

	return formEmailModel{inputs: inputs}
}

func (m formEmailModel) toData() models.EmailData {
	return models.EmailData{
		Address: m.inputs[0].Value(),
		Subject: m.inputs[1].Value(),
		Body:    m.inputs[2].Value(),
	}
}

func (m formEmailModel) View() string {
	out := "Кому:   [" + m.inputs[0].View() + "]\n"
	out += "Тема:   [" + m.inputs[1].View() + "]\n"
	out += "Текст:  [" + m.inputs[2].View() + "]\n\n"
	out += helpStyle.Render("ctrl+g сочинить текст письма по теме и адресату")
	return out
}
