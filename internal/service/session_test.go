package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-studio/internal/encode"
	"github.com/MKhiriev/go-qr-studio/models"
)

func newSession() *EditorSession {
	return NewEditorSession()
}

// ── defaults ──────────────────────────────────────────────────────────────────

// TestNewEditorSession_Defaults verifies the fresh session state: URL variant
// active, default link as payload, default style.
func TestNewEditorSession_Defaults(t *testing.T) {
	s := newSession()

	assert.Equal(t, models.ContentURL, s.ActiveType())
	assert.Equal(t, models.DefaultURL, s.Payload())
	assert.Equal(t, models.DefaultStyle(), s.Style())

	c := s.Content()
	assert.Equal(t, models.WifiWPA, c.Wifi.Encryption)
	assert.Equal(t, models.DefaultThemeColor, c.DigitalCard.ThemeColor)
	assert.NotNil(t, c.DigitalCard.Buttons)
}

// ── payload derivation ────────────────────────────────────────────────────────

// TestSetURL_RederivesPayload verifies that editing the URL immediately
// updates the payload.
func TestSetURL_RederivesPayload(t *testing.T) {
	s := newSession()

	s.SetURL("https://example.org/page")
	assert.Equal(t, "https://example.org/page", s.Payload())
}

// TestSetText_OnlyAffectsPayloadWhenActive verifies that editing an inactive
// variant keeps its data but does not change the payload.
func TestSetText_OnlyAffectsPayloadWhenActive(t *testing.T) {
	s := newSession()

	s.SetText("hello")
	assert.Equal(t, models.DefaultURL, s.Payload(), "URL variant is still active")

	s.SetActiveType(models.ContentText)
	assert.Equal(t, "hello", s.Payload())
}

// TestSetWifi_EncodesPayload verifies the Wi-Fi payload derivation.
func TestSetWifi_EncodesPayload(t *testing.T) {
	s := newSession()
	s.SetActiveType(models.ContentWifi)

	w := models.WifiData{SSID: "HomeNet", Password: "secret", Encryption: models.WifiWPA}
	s.SetWifi(w)

	assert.Equal(t, encode.WifiString(w), s.Payload())
	assert.Equal(t, "WIFI:S:HomeNet;T:WPA/WPA2;P:secret;H:false;;", s.Payload())
}

// TestSetVCardAndEmail_EncodePayloads verifies derivation for the remaining
// structured variants.
func TestSetVCardAndEmail_EncodePayloads(t *testing.T) {
	s := newSession()

	v := models.VCardData{FirstName: "Ivan", LastName: "Petrov"}
	s.SetActiveType(models.ContentVCard)
	s.SetVCard(v)
	assert.Equal(t, encode.VCardString(v), s.Payload())

	e := models.EmailData{Address: "a@b.com", Subject: "Hi"}
	s.SetActiveType(models.ContentEmail)
	s.SetEmail(e)
	assert.Equal(t, encode.EmailString(e), s.Payload())
}

// ── tab switching ─────────────────────────────────────────────────────────────

// TestSetActiveType_SwitchAndReturnKeepsData verifies that switching away
// from a variant and back restores both its data and its payload.
func TestSetActiveType_SwitchAndReturnKeepsData(t *testing.T) {
	s := newSession()

	s.SetActiveType(models.ContentWifi)
	s.SetWifi(models.WifiData{SSID: "HomeNet", Encryption: models.WifiWEP})
	wifiPayload := s.Payload()

	s.SetActiveType(models.ContentText)
	s.SetText("something else")
	s.SetActiveType(models.ContentVCard)

	s.SetActiveType(models.ContentWifi)
	assert.Equal(t, wifiPayload, s.Payload())
	assert.Equal(t, "HomeNet", s.Content().Wifi.SSID)
}

// TestSetActiveType_SeedsEmptyURL verifies that switching to an empty URL
// variant seeds the scheme prefix.
func TestSetActiveType_SeedsEmptyURL(t *testing.T) {
	s := newSession()

	s.SetURL("")
	s.SetActiveType(models.ContentText)
	s.SetActiveType(models.ContentURL)

	assert.Equal(t, "https://", s.Content().URL)
	assert.Equal(t, "https://", s.Payload())
}

// TestSetActiveType_CardUsesPlaceholderUntilHosted verifies the digital card
// payload derivation.
func TestSetActiveType_CardUsesPlaceholderUntilHosted(t *testing.T) {
	s := newSession()
	s.SetActiveType(models.ContentDigitalCard)

	assert.Equal(t, encode.HostedURLPlaceholder, s.Payload())

	s.SetHostedURL("https://cards.example.com/ivan")
	assert.Equal(t, "https://cards.example.com/ivan", s.Payload())
}

// ── card buttons ──────────────────────────────────────────────────────────────

// TestAddButton verifies ID assignment, default kind, and ordering.
func TestAddButton(t *testing.T) {
	s := newSession()

	b1 := s.AddButton("Сайт", "example.com", "")
	b2 := s.AddButton("Телефон", "+7 900 123-45-67", models.ButtonPhone)

	assert.NotEmpty(t, b1.ID)
	assert.NotEmpty(t, b2.ID)
	assert.NotEqual(t, b1.ID, b2.ID)
	assert.Equal(t, models.ButtonWeb, b1.Kind, "empty kind defaults to web")

	buttons := s.Content().DigitalCard.Buttons
	require.Len(t, buttons, 2)
	assert.Equal(t, b1.ID, buttons[0].ID)
	assert.Equal(t, b2.ID, buttons[1].ID)
}

// TestUpdateButton_PreservesOrder verifies in-place replacement.
func TestUpdateButton_PreservesOrder(t *testing.T) {
	s := newSession()

	b1 := s.AddButton("A", "a.com", models.ButtonWeb)
	b2 := s.AddButton("B", "b.com", models.ButtonWeb)
	b3 := s.AddButton("C", "c.com", models.ButtonWeb)

	b2.Label = "B!"
	b2.Kind = models.ButtonEmail
	require.NoError(t, s.UpdateButton(b2))

	buttons := s.Content().DigitalCard.Buttons
	require.Len(t, buttons, 3)
	assert.Equal(t, []string{b1.ID, b2.ID, b3.ID}, []string{buttons[0].ID, buttons[1].ID, buttons[2].ID})
	assert.Equal(t, "B!", buttons[1].Label)
	assert.Equal(t, models.ButtonEmail, buttons[1].Kind)
}

// TestUpdateButton_UnknownID verifies the sentinel error.
func TestUpdateButton_UnknownID(t *testing.T) {
	s := newSession()
	err := s.UpdateButton(models.CardButton{ID: "missing"})
	assert.ErrorIs(t, err, ErrButtonNotFound)
}

// TestRemoveButton verifies removal keeps the order of the rest.
func TestRemoveButton(t *testing.T) {
	s := newSession()

	b1 := s.AddButton("A", "a.com", models.ButtonWeb)
	b2 := s.AddButton("B", "b.com", models.ButtonWeb)
	b3 := s.AddButton("C", "c.com", models.ButtonWeb)

	require.NoError(t, s.RemoveButton(b2.ID))

	buttons := s.Content().DigitalCard.Buttons
	require.Len(t, buttons, 2)
	assert.Equal(t, b1.ID, buttons[0].ID)
	assert.Equal(t, b3.ID, buttons[1].ID)

	assert.ErrorIs(t, s.RemoveButton(b2.ID), ErrButtonNotFound)
}

// TestContent_ReturnsButtonCopy verifies the caller cannot mutate session
// state through the returned slice.
func TestContent_ReturnsButtonCopy(t *testing.T) {
	s := newSession()
	s.AddButton("A", "a.com", models.ButtonWeb)

	c := s.Content()
	c.DigitalCard.Buttons[0].Label = "mutated"

	assert.Equal(t, "A", s.Content().DigitalCard.Buttons[0].Label)
}

// ── style ─────────────────────────────────────────────────────────────────────

// TestStyleSetters verifies color, margin, and eye radius updates.
func TestStyleSetters(t *testing.T) {
	s := newSession()

	s.SetColors("#2563eb", "#ffffff")
	s.SetIncludeMargin(false)
	s.SetEyeRadius(50)
	s.SetLogo("data:image/png;base64,xxx")
	s.SetLogoSize(30)

	st := s.Style()
	assert.Equal(t, "#2563eb", st.FgColor)
	assert.Equal(t, "#ffffff", st.BgColor)
	assert.False(t, st.IncludeMargin)
	assert.Equal(t, 50, st.EyeRadius)
	assert.Equal(t, "data:image/png;base64,xxx", st.LogoSource)
	assert.Equal(t, 30, st.LogoSizePercent)
}

// TestApplyPreset verifies preset lookup and bounds checking.
func TestApplyPreset(t *testing.T) {
	s := newSession()

	require.NoError(t, s.ApplyPreset(3))
	st := s.Style()
	assert.Equal(t, models.PresetColors[3].Fg, st.FgColor)
	assert.Equal(t, models.PresetColors[3].Bg, st.BgColor)

	assert.ErrorIs(t, s.ApplyPreset(-1), ErrUnknownPreset)
	assert.ErrorIs(t, s.ApplyPreset(len(models.PresetColors)), ErrUnknownPreset)
}

// TestStyleIndependentOfContentType verifies that switching variants leaves
// the style untouched.
func TestStyleIndependentOfContentType(t *testing.T) {
	s := newSession()
	s.SetColors("#dc2626", "#fff7ed")

	s.SetActiveType(models.ContentWifi)
	s.SetActiveType(models.ContentDigitalCard)

	st := s.Style()
	assert.Equal(t, "#dc2626", st.FgColor)
	assert.Equal(t, "#fff7ed", st.BgColor)
}
