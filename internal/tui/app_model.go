package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pane int

const (
	paneEditor pane = iota
	paneStyle
)

// tabOrder fixes the left-to-right order of the content tabs.
var tabOrder = []models.ContentType{
	models.ContentURL,
	models.ContentDigitalCard,
	models.ContentVCard,
	models.ContentWifi,
	models.ContentEmail,
	models.ContentText,
}

var tabTitles = map[models.ContentType]string{
	models.ContentURL:         "URL",
	models.ContentDigitalCard: "Визитка",
	models.ContentVCard:       "vCard",
	models.ContentWifi:        "Wi-Fi",
	models.ContentEmail:       "Email",
	models.ContentText:        "Текст",
}

type studioModel struct {
	ctx        context.Context
	services   *service.Services
	previewURL string

	tab  int
	pane pane

	formURL    formURLModel
	formText   formTextModel
	formWifi   formWifiModel
	formVCard  formVCardModel
	formEmail  formEmailModel
	formCard   formCardModel
	stylePanel stylePanelModel

	status    string
	exporting bool
	assisting bool

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
	buildInfo     models.AppBuildInfo
}

func newStudioModel(ctx context.Context, services *service.Services, previewURL string, buildInfo models.AppBuildInfo) studioModel {
	content := services.Session.Content()
	style := services.Session.Style()

	return studioModel{
		ctx:        ctx,
		services:   services,
		previewURL: previewURL,
		formURL:    newFormURLModel(content.URL),
		formText:   newFormTextModel(content.Text),
		formWifi:   newFormWifiModel(content.Wifi),
		formVCard:  newFormVCardModel(content.VCard),
		formEmail:  newFormEmailModel(content.Email),
		formCard:   newFormCardModel(content.DigitalCard),
		stylePanel: newStylePanelModel(style),
		buildInfo:  buildInfo,
	}
}

func (m studioModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m studioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		return m.updateKey(msg)
	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.status = "Сохранено: " + msg.path
		return m, cmdClearStatus()
	case assistDoneMsg:
		m.assisting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.applyAssist(msg.field, msg.text)
		m.status = "Готово"
		return m, cmdClearStatus()
	case imageLoadedMsg:
		if msg.err != nil {
			// The source fields keep their text; nothing else changes.
			m.setImageStatus(msg.slot, "не удалось загрузить изображение")
			return m, nil
		}
		switch msg.slot {
		case slotProfile:
			m.services.Session.SetCardProfileImage(msg.uri)
			m.formCard.imageStatus = "фото загружено"
		case slotSplash:
			m.services.Session.SetCardSplashImage(msg.uri)
			m.formCard.imageStatus = "заставка загружена"
		case slotLogo:
			m.services.Session.SetLogo(msg.uri)
			m.stylePanel.logoStatus = "логотип загружен"
		}
		return m, nil
	case copiedMsg:
		m.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m studioModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.stylePane):
		if m.pane == paneStyle {
			m.pane = paneEditor
		} else {
			m.pane = paneStyle
		}
		return m, nil
	case key.Matches(msg, keys.esc):
		if m.pane == paneStyle {
			m.pane = paneEditor
		}
		return m, nil
	case key.Matches(msg, keys.prevTab):
		return m.switchTab(-1)
	case key.Matches(msg, keys.nextTab):
		return m.switchTab(1)
	case key.Matches(msg, keys.savePNG):
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		return m, m.cmdSavePNG()
	case key.Matches(msg, keys.saveSVG):
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		return m, m.cmdSaveSVG()
	case key.Matches(msg, keys.saveHTML):
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		return m, m.cmdSaveCardPage()
	case key.Matches(msg, keys.copyValue):
		return m, cmdCopyToClipboard(m.services.Session.Payload())
	case key.Matches(msg, keys.preview):
		if m.previewURL == "" {
			m.status = "Превью отключено"
		} else {
			m.status = "Превью: " + m.previewURL
		}
		return m, cmdClearStatus()
	case key.Matches(msg, keys.assist):
		if m.assisting {
			return m, nil
		}
		return m.startAssist()
	}

	if m.pane == paneStyle {
		return m.updateStyleKey(msg)
	}

	switch tabOrder[m.tab] {
	case models.ContentWifi:
		if done, next, cmd := m.updateWifiKey(msg); done {
			return next, cmd
		}
	case models.ContentDigitalCard:
		if done, next, cmd := m.updateCardKey(msg); done {
			return next, cmd
		}
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.focusMove(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focusMove(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		// The text tab keeps enter for newlines.
		if tabOrder[m.tab] != models.ContentText {
			m.focusMove(1)
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

func (m studioModel) updateStyleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.cycle):
		m.stylePanel.nextPreset()
		if err := m.services.Session.ApplyPreset(m.stylePanel.presetIdx); err != nil {
			m.showErrorf(err.Error())
		}
		return m, nil
	case key.Matches(msg, keys.toggle):
		m.stylePanel.includeMargin = !m.stylePanel.includeMargin
		m.services.Session.SetIncludeMargin(m.stylePanel.includeMargin)
		return m, nil
	case key.Matches(msg, keys.loadImage):
		source := strings.TrimSpace(m.stylePanel.inputs[styleFieldLogo].Value())
		if source == "" {
			m.services.Session.SetLogo("")
			m.stylePanel.logoStatus = "логотип убран"
			return m, nil
		}
		return m, m.cmdLoadImage(slotLogo, source)
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.enter):
		m.stylePanel.focus = cycleFocus(m.stylePanel.inputs, m.stylePanel.focus, 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.stylePanel.focus = cycleFocus(m.stylePanel.inputs, m.stylePanel.focus, -1)
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateWifiKey handles the Wi-Fi-only hotkeys. done reports whether the
// key was consumed.
func (m studioModel) updateWifiKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.cycle):
		m.formWifi.cycleEncryption()
		m.services.Session.SetWifi(m.formWifi.toData())
		return true, m, nil
	case key.Matches(msg, keys.toggle):
		m.formWifi.hidden = !m.formWifi.hidden
		m.services.Session.SetWifi(m.formWifi.toData())
		return true, m, nil
	}
	return false, m, nil
}

func (m studioModel) updateCardKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.cycle):
		m.formCard.cycleButtonKind()
		return true, m, nil
	case key.Matches(msg, keys.addBtn):
		label := strings.TrimSpace(m.formCard.inputs[cardFieldButtonLabel].Value())
		target := strings.TrimSpace(m.formCard.inputs[cardFieldButtonTarget].Value())
		if label == "" || target == "" {
			m.showErrorf("Подпись и ссылка кнопки обязательны")
			return true, m, nil
		}
		m.services.Session.AddButton(label, target, m.formCard.newButtonKind)
		m.formCard.buttons = m.services.Session.Content().DigitalCard.Buttons
		m.formCard.inputs[cardFieldButtonLabel].SetValue("")
		m.formCard.inputs[cardFieldButtonTarget].SetValue("")
		return true, m, nil
	case key.Matches(msg, keys.delBtn):
		if len(m.formCard.buttons) == 0 {
			return true, m, nil
		}
		last := m.formCard.buttons[len(m.formCard.buttons)-1]
		if err := m.services.Session.RemoveButton(last.ID); err != nil {
			m.showErrorf(err.Error())
			return true, m, nil
		}
		m.formCard.buttons = m.services.Session.Content().DigitalCard.Buttons
		return true, m, nil
	case key.Matches(msg, keys.loadImage):
		var cmds []tea.Cmd
		if src := strings.TrimSpace(m.formCard.inputs[cardFieldProfileImage].Value()); src != "" {
			cmds = append(cmds, m.cmdLoadImage(slotProfile, src))
		}
		if src := strings.TrimSpace(m.formCard.inputs[cardFieldSplashImage].Value()); src != "" {
			cmds = append(cmds, m.cmdLoadImage(slotSplash, src))
		}
		if len(cmds) == 0 {
			return true, m, nil
		}
		m.formCard.imageStatus = "загрузка..."
		return true, m, tea.Batch(cmds...)
	}
	return false, m, nil
}

// updateInputs feeds the message to the focused input of the active pane
// and pushes the edited values into the session so the payload re-derives
// on every keystroke.
func (m studioModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.pane == paneStyle {
		p := &m.stylePanel
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		m.flushStyle()
		return m, cmd
	}

	switch tabOrder[m.tab] {
	case models.ContentURL:
		m.formURL.input, cmd = m.formURL.input.Update(msg)
		m.services.Session.SetURL(m.formURL.input.Value())
	case models.ContentText:
		m.formText.area, cmd = m.formText.area.Update(msg)
		m.services.Session.SetText(m.formText.area.Value())
	case models.ContentWifi:
		f := &m.formWifi
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		m.services.Session.SetWifi(f.toData())
	case models.ContentVCard:
		f := &m.formVCard
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		m.services.Session.SetVCard(f.toData())
	case models.ContentEmail:
		f := &m.formEmail
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		m.services.Session.SetEmail(f.toData())
	case models.ContentDigitalCard:
		f := &m.formCard
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		m.flushCard()
	}

	return m, cmd
}

func (m *studioModel) flushCard() {
	f := &m.formCard
	m.services.Session.SetCardProfile(
		f.inputs[cardFieldName].Value(),
		f.inputs[cardFieldJobTitle].Value(),
		f.inputs[cardFieldCompany].Value(),
		f.inputs[cardFieldBio].Value(),
	)
	m.services.Session.SetCardTheme(f.inputs[cardFieldTheme].Value())
	m.services.Session.SetHostedURL(f.inputs[cardFieldHostedURL].Value())
}

func (m *studioModel) flushStyle() {
	p := &m.stylePanel
	m.services.Session.SetColors(p.inputs[styleFieldFg].Value(), p.inputs[styleFieldBg].Value())
	m.services.Session.SetEyeRadius(p.eyeRadius())
	m.services.Session.SetLogoSize(p.logoSizePercent())
}

func (m studioModel) switchTab(delta int) (tea.Model, tea.Cmd) {
	if m.pane == paneStyle {
		return m, nil
	}

	m.tab = (m.tab + delta + len(tabOrder)) % len(tabOrder)
	next := tabOrder[m.tab]
	m.services.Session.SetActiveType(next)

	// Switching into the URL tab may seed the scheme prefix.
	if next == models.ContentURL {
		m.formURL.input.SetValue(m.services.Session.Content().URL)
		m.formURL.input.CursorEnd()
	}
	return m, nil
}

func (m *studioModel) focusMove(delta int) {
	switch tabOrder[m.tab] {
	case models.ContentWifi:
		m.formWifi.focus = cycleFocus(m.formWifi.inputs, m.formWifi.focus, delta)
	case models.ContentVCard:
		m.formVCard.focus = cycleFocus(m.formVCard.inputs, m.formVCard.focus, delta)
	case models.ContentEmail:
		m.formEmail.focus = cycleFocus(m.formEmail.inputs, m.formEmail.focus, delta)
	case models.ContentDigitalCard:
		m.formCard.focus = cycleFocus(m.formCard.inputs, m.formCard.focus, delta)
	}
}

func (m studioModel) startAssist() (tea.Model, tea.Cmd) {
	switch tabOrder[m.tab] {
	case models.ContentVCard:
		name := strings.TrimSpace(m.formVCard.inputs[0].Value() + " " + m.formVCard.inputs[1].Value())
		job := m.formVCard.inputs[6].Value()
		company := m.formVCard.inputs[5].Value()
		m.assisting = true
		m.status = "Помощник пишет..."
		return m, m.cmdGenerateBio(assistVCardBio, name, job, company)
	case models.ContentDigitalCard:
		f := &m.formCard
		m.assisting = true
		m.status = "Помощник пишет..."
		return m, m.cmdGenerateBio(assistCardBio,
			f.inputs[cardFieldName].Value(),
			f.inputs[cardFieldJobTitle].Value(),
			f.inputs[cardFieldCompany].Value())
	case models.ContentEmail:
		m.assisting = true
		m.status = "Помощник пишет..."
		return m, m.cmdGenerateEmailBody(m.formEmail.inputs[1].Value(), m.formEmail.inputs[0].Value())
	case models.ContentWifi:
		m.assisting = true
		m.status = "Помощник пишет..."
		return m, m.cmdGenerateWifiSlogan(m.formWifi.inputs[0].Value())
	}
	return m, nil
}

func (m *studioModel) applyAssist(field assistField, text string) {
	switch field {
	case assistVCardBio:
		m.formVCard.inputs[7].SetValue(text)
		m.services.Session.SetVCard(m.formVCard.toData())
	case assistCardBio:
		m.formCard.inputs[cardFieldBio].SetValue(text)
		m.flushCard()
	case assistEmailBody:
		m.formEmail.inputs[2].SetValue(text)
		m.services.Session.SetEmail(m.formEmail.toData())
	case assistWifiSlogan:
		m.formWifi.slogan = text
	}
}

func (m *studioModel) setImageStatus(slot imageSlot, status string) {
	if slot == slotLogo {
		m.stylePanel.logoStatus = status
		return
	}
	m.formCard.imageStatus = status
}

func (m studioModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	title := "QR STUDIO"

	if m.pane == paneStyle {
		title = "QR STUDIO / СТИЛЬ"
		body = m.stylePanel.View()
	} else {
		body = m.tabBar() + "\n\n"
		switch tabOrder[m.tab] {
		case models.ContentURL:
			body += m.formURL.View()
		case models.ContentText:
			body += m.formText.View()
		case models.ContentWifi:
			body += m.formWifi.View()
		case models.ContentVCard:
			body += m.formVCard.View()
		case models.ContentEmail:
			body += m.formEmail.View()
		case models.ContentDigitalCard:
			body += m.formCard.View()
		}
	}

	body += "\n\nPayload: " + valueOrDash(fitText(m.services.Session.Payload(), 60))
	if m.status != "" {
		body += "\n" + m.status
	}

	hotKeys := "shift+←/→ вкладка  ctrl+t стиль  ctrl+p PNG  ctrl+s SVG  ctrl+h страница\nctrl+y копировать  ctrl+o превью  ctrl+b о программе"
	page := renderPage(title, body, hotKeys)

	if m.showError {
		page += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(page)
}

func (m studioModel) tabBar() string {
	parts := make([]string, 0, len(tabOrder))
	for i, t := range tabOrder {
		title := tabTitles[t]
		if i == m.tab {
			title = activeTabStyle.Render(title)
		}
		parts = append(parts, title)
	}
	return strings.Join(parts, " | ")
}

func (m *studioModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m studioModel) cmdSavePNG() tea.Cmd {
	exporter := m.services.Exporter
	value := m.services.Session.Payload()
	style := m.services.Session.Style()
	return func() tea.Msg {
		path, err := exporter.SavePNG(value, style)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m studioModel) cmdSaveSVG() tea.Cmd {
	exporter := m.services.Exporter
	value := m.services.Session.Payload()
	style := m.services.Session.Style()
	return func() tea.Msg {
		path, err := exporter.SaveSVG(value, style)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m studioModel) cmdSaveCardPage() tea.Cmd {
	exporter := m.services.Exporter
	card := m.services.Session.Content().DigitalCard
	return func() tea.Msg {
		path, err := exporter.SaveCardPage(&card)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m studioModel) cmdGenerateBio(field assistField, name, jobTitle, company string) tea.Cmd {
	ctx := m.ctx
	assistant := m.services.Assistant
	return func() tea.Msg {
		text, err := assistant.GenerateBio(ctx, name, jobTitle, company)
		return assistDoneMsg{field: field, text: text, err: err}
	}
}

func (m studioModel) cmdGenerateEmailBody(topic, recipient string) tea.Cmd {
	ctx := m.ctx
	assistant := m.services.Assistant
	return func() tea.Msg {
		text, err := assistant.GenerateEmailBody(ctx, topic, recipient)
		return assistDoneMsg{field: assistEmailBody, text: text, err: err}
	}
}

func (m studioModel) cmdGenerateWifiSlogan(ssid string) tea.Cmd {
	ctx := m.ctx
	assistant := m.services.Assistant
	return func() tea.Msg {
		text, err := assistant.GenerateWifiSlogan(ctx, ssid)
		return assistDoneMsg{field: assistWifiSlogan, text: text, err: err}
	}
}

func (m studioModel) cmdLoadImage(slot imageSlot, source string) tea.Cmd {
	ctx := m.ctx
	fetcher := m.services.Images
	return func() tea.Msg {
		var (
			uri string
			err error
		)
		if utils.IsRemoteURL(source) {
			uri, err = fetcher.FetchDataURI(ctx, source)
		} else {
			uri, err = utils.FileToDataURI(source)
		}
		return imageLoadedMsg{slot: slot, uri: uri, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return exportDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
