package tui

import (
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var buttonKinds = []models.ButtonKind{
	models.ButtonWeb,
	models.ButtonPhone,
	models.ButtonEmail,
}

var buttonKindLabels = map[models.ButtonKind]string{
	models.ButtonWeb:   "Сайт",
	models.ButtonPhone: "Телефон",
	models.ButtonEmail: "Email",
}

const (
	cardFieldName = iota
	cardFieldJobTitle
	cardFieldCompany
	cardFieldBio
	cardFieldTheme
	cardFieldHostedURL
	cardFieldProfileImage
	cardFieldSplashImage
	cardFieldButtonLabel
	cardFieldButtonTarget
	cardFieldCount
)

type formCardModel struct {
	inputs []textinput.Model
	focus  int

	newButtonKind models.ButtonKind
	buttons       []models.CardButton

	imageStatus string
}

func newFormCardModel(card models.DigitalCardData) formCardModel {
	inputs := make([]textinput.Model, cardFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[cardFieldName].SetValue(card.Name)
	inputs[cardFieldJobTitle].SetValue(card.JobTitle)
	inputs[cardFieldCompany].SetValue(card.Company)
	inputs[cardFieldBio].SetValue(card.Bio)
	inputs[cardFieldTheme].SetValue(card.ThemeColor)
	inputs[cardFieldHostedURL].SetValue(card.HostedURL)
	inputs[cardFieldName].Focus()

	return formCardModel{
		inputs:        inputs,
		newButtonKind: models.ButtonWeb,
		buttons:       card.Buttons,
	}
}

func (m *formCardModel) cycleButtonKind() {
	for i, kind := range buttonKinds {
		if kind == m.newButtonKind {
			m.newButtonKind = buttonKinds[(i+1)%len(buttonKinds)]
			return
		}
	}
	m.newButtonKind = buttonKinds[0]
}

func (m formCardModel) View() string {
	out := "Имя:        [" + m.inputs[cardFieldName].View() + "]\n"
	out += "Должность:  [" + m.inputs[cardFieldJobTitle].View() + "]\n"
	out += "Компания:   [" + m.inputs[cardFieldCompany].View() + "]\n"
	out += "О себе:     [" + m.inputs[cardFieldBio].View() + "]\n"
	out += "Цвет темы:  [" + m.inputs[cardFieldTheme].View() + "]\n"
	out += "Адрес стр.: [" + m.inputs[cardFieldHostedURL].View() + "]\n"
	out += "Фото:       [" + m.inputs[cardFieldProfileImage].View() + "]\n"
	out += "Заставка:   [" + m.inputs[cardFieldSplashImage].View() + "]\n"
	if m.imageStatus != "" {
		out += "            " + m.imageStatus + "\n"
	}

	out += "\nКнопки:\n"
	if len(m.buttons) == 0 {
		out += "  -\n"
	}
	for _, b := range m.buttons {
		out += "  • " + b.Label + " (" + buttonKindLabels[b.Kind] + ") → " + fitText(b.Target, 30) + "\n"
	}

	out += "\nНовая кнопка: тип " + buttonKindLabels[m.newButtonKind] + "\n"
	out += "Подпись:    [" + m.inputs[cardFieldButtonLabel].View() + "]\n"
	out += "Ссылка:     [" + m.inputs[cardFieldButtonTarget].View() + "]\n\n"
	out += helpStyle.Render("ctrl+a добавить кнопку  ctrl+d удалить последнюю  ctrl+e тип кнопки\nctrl+l загрузить фото и заставку  ctrl+g сочинить «О себе»")
	return out
}
