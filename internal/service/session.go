package service

import (
	"sync"

	"github.com/MKhiriev/go-qr-studio/internal/encode"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
)

// EditorSession holds the mutable state of one editing session: the content
// record with all six variants and the visual style.
//
// Every mutation re-derives the canonical payload from the active variant,
// so Value can never drift from its source fields. All methods are safe for
// concurrent use; the preview server reads the session while the TUI
// mutates it.
type EditorSession struct {
	mu      sync.RWMutex
	content models.QRContent
	style   models.QRStyle

	ids *utils.UUIDGenerator
}

// NewEditorSession creates a session with the default content and style.
func NewEditorSession() *EditorSession {
	return &EditorSession{
		content: models.DefaultContent(),
		style:   models.DefaultStyle(),
		ids:     utils.NewUUIDGenerator(),
	}
}

// refresh re-derives the canonical payload. Callers must hold mu.
func (s *EditorSession) refresh() {
	s.content.Value = encode.Payload(s.content)
}

// Content returns a copy of the current content record. The buttons slice
// is copied so the caller cannot mutate session state through it.
func (s *EditorSession) Content() models.QRContent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.content
	c.DigitalCard.Buttons = append([]models.CardButton(nil), s.content.DigitalCard.Buttons...)
	return c
}

// Style returns the current visual style.
func (s *EditorSession) Style() models.QRStyle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.style
}

// Payload returns the current canonical payload string.
func (s *EditorSession) Payload() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Value
}

// ActiveType returns the currently selected content type.
func (s *EditorSession) ActiveType() models.ContentType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Type
}

// SetActiveType switches the active content type and re-derives the payload
// from the newly active variant. Inactive variants keep their data.
// Switching to the URL variant with an empty URL seeds the scheme prefix so
// the user types only the host.
func (s *EditorSession) SetActiveType(t models.ContentType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.Type = t
	if t == models.ContentURL && s.content.URL == "" {
		s.content.URL = "https://"
	}
	s.refresh()
}

// SetURL updates the URL variant.
func (s *EditorSession) SetURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.URL = url
	s.refresh()
}

// SetText updates the plain text variant.
func (s *EditorSession) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.Text = text
	s.refresh()
}

// SetWifi updates the Wi-Fi variant.
func (s *EditorSession) SetWifi(w models.WifiData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.Wifi = w
	s.refresh()
}

// SetVCard updates the vCard variant.
func (s *EditorSession) SetVCard(v models.VCardData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.VCard = v
	s.refresh()
}

// SetEmail updates the email variant.
func (s *EditorSession) SetEmail(e models.EmailData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.Email = e
	s.refresh()
}

// SetCardProfile updates the card's textual profile fields.
func (s *EditorSession) SetCardProfile(name, jobTitle, company, bio string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := &s.content.DigitalCard
	card.Name = name
	card.JobTitle = jobTitle
	card.Company = company
	card.Bio = bio
	s.refresh()
}

// SetCardTheme updates the card's theme color.
func (s *EditorSession) SetCardTheme(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.DigitalCard.ThemeColor = color
	s.refresh()
}

// SetCardProfileImage sets the portrait data URI; empty clears it.
func (s *EditorSession) SetCardProfileImage(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.DigitalCard.ProfileImage = uri
	s.refresh()
}

// SetCardSplashImage sets the splash panel data URI; empty clears it.
func (s *EditorSession) SetCardSplashImage(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.DigitalCard.SplashImage = uri
	s.refresh()
}

// SetHostedURL records where the generated page was uploaded. The card QR
// encodes this address once set.
func (s *EditorSession) SetHostedURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content.DigitalCard.HostedURL = url
	s.refresh()
}

// AddButton appends a new action button to the card and returns it with a
// freshly generated ID. An empty kind defaults to a web link.
func (s *EditorSession) AddButton(label, target string, kind models.ButtonKind) models.CardButton {
	s.mu.Lock()
	defer s.mu.Unlock()

	if kind == "" {
		kind = models.ButtonWeb
	}

	btn := models.CardButton{
		ID:     s.ids.Generate(),
		Label:  label,
		Target: target,
		Kind:   kind,
	}
	s.content.DigitalCard.Buttons = append(s.content.DigitalCard.Buttons, btn)
	s.refresh()

	return btn
}

// UpdateButton replaces the button with the same ID, preserving its
// position in the list.
func (s *EditorSession) UpdateButton(btn models.CardButton) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.content.DigitalCard.Buttons {
		if b.ID == btn.ID {
			s.content.DigitalCard.Buttons[i] = btn
			s.refresh()
			return nil
		}
	}

	return ErrButtonNotFound
}

// RemoveButton deletes the button with the given ID, preserving the order
// of the remaining buttons.
func (s *EditorSession) RemoveButton(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buttons := s.content.DigitalCard.Buttons
	for i, b := range buttons {
		if b.ID == id {
			s.content.DigitalCard.Buttons = append(buttons[:i], buttons[i+1:]...)
			s.refresh()
			return nil
		}
	}

	return ErrButtonNotFound
}

// SetColors sets the foreground and background colors.
func (s *EditorSession) SetColors(fg, bg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.style.FgColor = fg
	s.style.BgColor = bg
}

// ApplyPreset applies one of the ready-made color pairs.
func (s *EditorSession) ApplyPreset(i int) error {
	if i < 0 || i >= len(models.PresetColors) {
		return ErrUnknownPreset
	}

	preset := models.PresetColors[i]
	s.SetColors(preset.Fg, preset.Bg)
	return nil
}

// SetLogo sets the centre overlay image data URI; empty clears it.
func (s *EditorSession) SetLogo(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style.LogoSource = source
}

// SetLogoSize sets the overlay edge length as a percentage of the code
// edge length.
func (s *EditorSession) SetLogoSize(percent int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style.LogoSizePercent = percent
}

// SetIncludeMargin toggles the quiet zone.
func (s *EditorSession) SetIncludeMargin(include bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style.IncludeMargin = include
}

// SetEyeRadius sets the finder pattern rounding.
func (s *EditorSession) SetEyeRadius(r int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style.EyeRadius = r
}
