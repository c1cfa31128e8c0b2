package tui

import (
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var wifiEncryptions = []models.WifiEncryption{
	models.WifiWPA,
	models.WifiWEP,
	models.WifiNoPass,
}

type formWifiModel struct {
	inputs []textinput.Model
	focus  int

	encryption models.WifiEncryption
	hidden     bool
	slogan     string
}

func newFormWifiModel(w models.WifiData) formWifiModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	inputs[0].SetValue(w.SSID)
	inputs[1].SetValue(w.Password)
	inputs[0].Focus()

	enc := w.Encryption
	if enc == "" {
		enc = models.WifiWPA
	}

	return formWifiModel{inputs: inputs, encryption: enc, hidden: w.Hidden}
}

func (m formWifiModel) toData() models.WifiData {
	return models.WifiData{
		SSID:       m.inputs[0].Value(),
		Password:   m.inputs[1].Value(),
		Encryption: m.encryption,
		Hidden:     m.hidden,
	}
}

func (m *formWifiModel) cycleEncryption() {
	for i, enc := range wifiEncryptions {
		if enc == m.encryption {
			m.encryption = wifiEncryptions[(i+1)%len(wifiEncryptions)]
			return
		}
	}
	m.encryption = wifiEncryptions[0]
}

func (m formWifiModel) View() string {
	out := "Сеть:     [" + m.inputs[0].View() + "]\n"
	out += "Пароль:   [" + m.inputs[1].View() + "]\n"
	out += "Защита:   " + string(m.encryption) + "\n"
	out += "Скрытая:  " + onOff(m.hidden) + "\n"
	if m.slogan != "" {
		out += "\nСлоган:   " + m.slogan + "\n"
	}
	out += "\n"
	out += helpStyle.Render("ctrl+e защита  ctrl+r скрытая сеть  ctrl+g слоган для таблички")
	return out
}
