package models

// QRContent is the single mutable record of one editing session.
//
// Type selects the active variant; Value is the canonical payload string
// derived from it. All six variant substructures are co-resident: switching
// the active type never clears the others, so the user can switch tabs and
// come back without losing entered data.
//
// Value is never edited directly. The editor session re-derives it from the
// active variant's fields on every edit, which keeps it impossible for the
// payload to drift from its source fields.
type QRContent struct {
	Type  ContentType `json:"type"`
	Value string      `json:"value"`

	URL         string          `json:"url"`
	Text        string          `json:"text"`
	Wifi        WifiData        `json:"wifi"`
	VCard       VCardData       `json:"vcard"`
	Email       EmailData       `json:"email"`
	DigitalCard DigitalCardData `json:"digitalCard"`
}

// Session defaults. DefaultURL doubles as the initial canonical payload.
const (
	DefaultURL        = "https://google.com"
	DefaultThemeColor = "#2563eb"
)

// DefaultContent returns the record a fresh editing session starts from:
// URL variant active with a placeholder link, Wi-Fi seeded with WPA/WPA2,
// card seeded with the default theme color.
func DefaultContent() QRContent {
	return QRContent{
		Type:  ContentURL,
		Value: DefaultURL,
		URL:   DefaultURL,
		Wifi: WifiData{
			Encryption: WifiWPA,
		},
		DigitalCard: DigitalCardData{
			ThemeColor: DefaultThemeColor,
			Buttons:    []CardButton{},
		},
	}
}
