package models

// QRStyle controls how the QR code is drawn. It is independent of the
// content and survives switching between content types.
type QRStyle struct {
	// FgColor and BgColor are hex colors for modules and background.
	FgColor string `json:"fgColor"`
	BgColor string `json:"bgColor"`

	// LogoSource is an optional inline image placed over the code centre.
	LogoSource string `json:"logoUrl,omitempty"`

	// LogoSizePercent is the overlay edge length as a percentage of the
	// code edge length.
	LogoSizePercent int `json:"logoSize"`

	// IncludeMargin draws the quiet zone around the code.
	IncludeMargin bool `json:"includeMargin"`

	// EyeRadius rounds the three finder patterns; 0 keeps them square.
	EyeRadius int `json:"eyeRadius"`
}

// ColorPreset is one of the ready-made foreground/background pairs
// offered next to the custom color picker.
type ColorPreset struct {
	Bg string
	Fg string
}

// PresetColors mirrors the palette offered in the style picker.
var PresetColors = []ColorPreset{
	{Bg: "#ffffff", Fg: "#000000"},
	{Bg: "#ffffff", Fg: "#2563eb"},
	{Bg: "#ffffff", Fg: "#dc2626"},
	{Bg: "#0f172a", Fg: "#ffffff"},
	{Bg: "#fff7ed", Fg: "#ea580c"},
}

// DefaultStyle returns the style a fresh session starts from.
func DefaultStyle() QRStyle {
	return QRStyle{
		FgColor:         "#000000",
		BgColor:         "#ffffff",
		LogoSizePercent: 20,
		IncludeMargin:   true,
		EyeRadius:       0,
	}
}
