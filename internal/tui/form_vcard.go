package tui

import (
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formVCardModel struct {
	inputs []textinput.Model
	focus  int
}

func newFormVCardModel(v models.VCardData) formVCardModel {
	inputs := make([]textinput.Model, 8)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].SetValue(v.FirstName)
	inputs[1].SetValue(v.LastName)
	inputs[2].SetValue(v.Phone)
	inputs[3].SetValue(v.Email)
	inputs[4].SetValue(v.Website)
	inputs[5].SetValue(v.Company)
	inputs[6].SetValue(v.JobTitle)
	inputs[7].SetValue(v.Bio)
	inputs[0].Focus()

	return formVCardModel{inputs: inputs}
}

func (m formVCardModel) toData() models.VCardData {
	return models.VCardData{
		FirstName: m.inputs[0].Value(),
		LastName:  m.inputs[1].Value(),
		Phone:     m.inputs[2].Value(),
		Email:     m.inputs[3].Value(),
		Website:   m.inputs[4].Value(),
		Company:   m.inputs[5].Value(),
		JobTitle:  m.inputs[6].Value(),
		Bio:       m.inputs[7].Value(),
	}
}

func (m formVCardModel) View() string {
	out := "Имя:       [" + m.inputs[0].View() + "]\n"
	out += "Фамилия:   [" + m.inputs[1].View() + "]\n"
	out += "Телефон:   [" + m.inputs[2].View() + "]\n"
	out += "Email:     [" + m.inputs[3].View() + "]\n"
	out += "Сайт:      [" + m.inputs[4].View() + "]\n"
	out += "Компания:  [" + m.inputs[5].View() + "]\n"
	out += "Должность: [" + m.inputs[6].View() + "]\n"
	out += "О себе:    [" + m.inputs[7].View() + "]\n\n"
	out += helpStyle.Render("ctrl+g сочинить «О себе» по имени и должности")
	return out
}
