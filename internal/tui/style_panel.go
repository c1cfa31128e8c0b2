package tui

import (
	"strconv"

	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	styleFieldFg = iota
	styleFieldBg
	styleFieldLogo
	styleFieldLogoSize
	styleFieldEyeRadius
	styleFieldCount
)

type stylePanelModel struct {
	inputs []textinput.Model
	focus  int

	includeMargin bool
	presetIdx     int
	logoStatus    string
}

func newStylePanelModel(style models.QRStyle) stylePanelModel {
	inputs := make([]textinput.Model, styleFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[styleFieldFg].Width = 10
	inputs[styleFieldBg].Width = 10
	inputs[styleFieldLogoSize].Width = 5
	inputs[styleFieldEyeRadius].Width = 5
	inputs[styleFieldFg].SetValue(style.FgColor)
	inputs[styleFieldBg].SetValue(style.BgColor)
	inputs[styleFieldLogoSize].SetValue(strconv.Itoa(style.LogoSizePercent))
	inputs[styleFieldEyeRadius].SetValue(strconv.Itoa(style.EyeRadius))
	inputs[styleFieldFg].Focus()

	return stylePanelModel{
		inputs:        inputs,
		includeMargin: style.IncludeMargin,
		presetIdx:     -1,
	}
}

// nextPreset returns the following ready-made color pair, updating the
// panel fields so the user sees what was applied.
func (m *stylePanelModel) nextPreset() models.ColorPreset {
	m.presetIdx = (m.presetIdx + 1) % len(models.PresetColors)
	preset := models.PresetColors[m.presetIdx]
	m.inputs[styleFieldFg].SetValue(preset.Fg)
	m.inputs[styleFieldBg].SetValue(preset.Bg)
	return preset
}

func (m stylePanelModel) logoSizePercent() int {
	v, err := strconv.Atoi(m.inputs[styleFieldLogoSize].Value())
	if err != nil || v < 1 {
		return 20
	}
	if v > 50 {
		return 50
	}
	return v
}

func (m stylePanelModel) eyeRadius() int {
	r, err := strconv.Atoi(m.inputs[styleFieldEyeRadius].Value())
	if err != nil || r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

func (m stylePanelModel) View() string {
	out := "Цвет модулей: [" + m.inputs[styleFieldFg].View() + "]\n"
	out += "Цвет фона:    [" + m.inputs[styleFieldBg].View() + "]\n"
	out += "Логотип:      [" + m.inputs[styleFieldLogo].View() + "]\n"
	if m.logoStatus != "" {
		out += "              " + m.logoStatus + "\n"
	}
	out += "Размер лого %:[" + m.inputs[styleFieldLogoSize].View() + "]\n"
	out += "Скругл. глаз: [" + m.inputs[styleFieldEyeRadius].View() + "]\n"
	out += "Отступ:       " + onOff(m.includeMargin) + "\n\n"
	out += helpStyle.Render("ctrl+e готовая палитра  ctrl+r отступ  ctrl+l загрузить логотип\nesc назад к содержимому")
	return out
}
