package cardpage

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCard() *models.DigitalCardData {
	return &models.DigitalCardData{
		ThemeColor: "#2563eb",
		Name:       "Ada Lovelace",
		JobTitle:   "Mathematician",
		Company:    "Analytical Engines Ltd",
		Bio:        "First programmer.",
		Buttons: []models.CardButton{
			{ID: "1", Label: "Call me", Target: "(555) 010-1234", Kind: models.ButtonPhone},
			{ID: "2", Label: "Site", Target: "example.com", Kind: models.ButtonWeb},
		},
	}
}

func TestGenerate_NilCard(t *testing.T) {
	_, err := Generate(nil)
	require.ErrorIs(t, err, ErrNoCard)
}

func TestGenerate_SelfContainedDocument(t *testing.T) {
	html, err := Generate(testCard())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(html, "</html>"))
	// No external resources: every src/href the document references is
	// built by the embedded script from inline data.
	assert.NotContains(t, html, `src="http`)
	assert.NotContains(t, html, `<link`)
}

func TestGenerate_CardFieldsEmbedded(t *testing.T) {
	html, err := Generate(testCard())
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Ada Lovelace - Digital Card</title>")
	assert.Contains(t, html, `content="Mathematician at Analytical Engines Ltd"`)
	assert.Contains(t, html, `<div class="name">Ada Lovelace</div>`)
	assert.Contains(t, html, `<div class="role">Mathematician | Analytical Engines Ltd</div>`)
	assert.Contains(t, html, `<div class="bio">First programmer.</div>`)
	// Theme color drives both the splash panel and the header band.
	assert.Equal(t, 2, strings.Count(html, "background: #2563eb;"))
}

func TestGenerate_RoleLineWithoutCompany(t *testing.T) {
	card := testCard()
	card.Company = ""

	html, err := Generate(card)
	require.NoError(t, err)

	assert.Contains(t, html, `<div class="role">Mathematician</div>`)
	assert.NotContains(t, html, " | ")
}

func TestGenerate_ProfileImagePlaceholder(t *testing.T) {
	card := testCard()

	html, err := Generate(card)
	require.NoError(t, err)
	// No profile image set: a blank placeholder circle is rendered.
	assert.Contains(t, html, `<div class="profile-pic"></div>`)

	card.ProfileImage = "data:image/png;base64,AAAA"
	html, err = Generate(card)
	require.NoError(t, err)
	assert.Contains(t, html, `<img src="data:image/png;base64,AAAA" class="profile-pic"`)
	assert.NotContains(t, html, `<div class="profile-pic"></div>`)
}

func TestGenerate_SplashImageOptional(t *testing.T) {
	card := testCard()

	html, err := Generate(card)
	require.NoError(t, err)
	assert.NotContains(t, html, "splash-logo")

	card.SplashImage = "data:image/png;base64,BBBB"
	html, err = Generate(card)
	require.NoError(t, err)
	assert.Contains(t, html, `<img src="data:image/png;base64,BBBB" class="splash-logo"`)
}

func TestGenerate_ButtonsEmbeddedAsData(t *testing.T) {
	html, err := Generate(testCard())
	require.NoError(t, err)

	// The behaviour script is parameterised by the button records, not
	// generated per card.
	assert.Contains(t, html,
		`const buttons = [{"id":"1","label":"Call me","url":"(555) 010-1234","btnType":"phone"},{"id":"2","label":"Site","url":"example.com","btnType":"web"}];`)
}

func TestGenerate_EmptyButtonListIsEmptyArray(t *testing.T) {
	card := testCard()
	card.Buttons = nil

	html, err := Generate(card)
	require.NoError(t, err)
	assert.Contains(t, html, "const buttons = [];")
}

func TestGenerate_SingleSplashTransitionAt2000ms(t *testing.T) {
	html, err := Generate(testCard())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(html, "}, 2000);"))
	assert.Equal(t, 1, strings.Count(html, "setTimeout("))
}

func TestGenerate_EmptyCardStillRenders(t *testing.T) {
	html, err := Generate(&models.DigitalCardData{})
	require.NoError(t, err)

	assert.Contains(t, html, "<title> - Digital Card</title>")
	assert.Contains(t, html, "}, 2000);")
}

// ── Button hrefs ─────────────────────────────────────────────────────────────

func TestButtonHref(t *testing.T) {
	tests := []struct {
		name string
		btn  models.CardButton
		want string
	}{
		{
			name: "phone strips punctuation",
			btn:  models.CardButton{Kind: models.ButtonPhone, Target: "(555) 010-1234"},
			want: "tel:5550101234",
		},
		{
			name: "phone keeps plus",
			btn:  models.CardButton{Kind: models.ButtonPhone, Target: "+7 (900) 123-45-67"},
			want: "tel:+79001234567",
		},
		{
			name: "email prefixes verbatim",
			btn:  models.CardButton{Kind: models.ButtonEmail, Target: "me@site.com"},
			want: "mailto:me@site.com",
		},
		{
			name: "web adds scheme",
			btn:  models.CardButton{Kind: models.ButtonWeb, Target: "example.com"},
			want: "https://example.com",
		},
		{
			name: "web keeps existing scheme",
			btn:  models.CardButton{Kind: models.ButtonWeb, Target: "https://example.com"},
			want: "https://example.com",
		},
		{
			name: "web keeps plain http",
			btn:  models.CardButton{Kind: models.ButtonWeb, Target: "http://old.example.com"},
			want: "http://old.example.com",
		},
		{
			name: "unset kind falls back to web",
			btn:  models.CardButton{Target: "example.com"},
			want: "https://example.com",
		},
		{
			name: "surrounding whitespace trimmed",
			btn:  models.CardButton{Kind: models.ButtonWeb, Target: "  example.com  "},
			want: "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ButtonHref(tt.btn))
		})
	}
}

func TestButtonIcon(t *testing.T) {
	assert.Equal(t, "📞", ButtonIcon(models.ButtonPhone))
	assert.Equal(t, "✉️", ButtonIcon(models.ButtonEmail))
	assert.Equal(t, "🌐", ButtonIcon(models.ButtonWeb))
	assert.Equal(t, "🌐", ButtonIcon(models.ButtonKind("")))
}
