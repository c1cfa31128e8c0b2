package models

// ButtonKind selects the href-construction rule for a card action button.
type ButtonKind string

const (
	// ButtonWeb links open in a new tab; a missing scheme is completed
	// with https://.
	ButtonWeb ButtonKind = "web"

	// ButtonPhone targets are reduced to digits and a leading '+' and
	// prefixed with tel:.
	ButtonPhone ButtonKind = "phone"

	// ButtonEmail targets are prefixed with mailto: verbatim.
	ButtonEmail ButtonKind = "email"
)

// CardButton is one labelled action link on a digital card page.
//
// The JSON tags define the wire shape embedded into the generated page
// script, which reads btn.label, btn.url and btn.btnType.
type CardButton struct {
	// ID is unique within one card for the lifetime of the editing
	// session and is stable across edits. It never reaches the
	// generated page semantics; it only keys list edits.
	ID string `json:"id"`

	Label  string     `json:"label"`
	Target string     `json:"url"`
	Kind   ButtonKind `json:"btnType"`
}

// DigitalCardData holds everything needed to generate a digital card
// landing page. Images are inline data URIs so the generated document
// stays self-contained.
type DigitalCardData struct {
	// ProfileImage is an optional data URI shown as the circular
	// portrait. Empty renders a blank placeholder circle.
	ProfileImage string `json:"profileImage,omitempty"`

	// SplashImage is an optional data URI shown on the splash panel.
	SplashImage string `json:"splashImage,omitempty"`

	// ThemeColor is a CSS color used for the splash panel and header band.
	ThemeColor string `json:"themeColor"`

	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Bio      string `json:"bio"`

	// Buttons render in slice order; order is preserved on edit,
	// append and removal.
	Buttons []CardButton `json:"buttons"`

	// HostedURL is where the user uploaded the generated page. It is
	// the actual QR payload for this variant.
	HostedURL string `json:"hostedUrl,omitempty"`
}

// HasButton reports whether a button with the given id exists on the card.
func (d *DigitalCardData) HasButton(id string) bool {
	for _, b := range d.Buttons {
		if b.ID == id {
			return true
		}
	}
	return false
}
