package models

// ContentType defines which of the six content shapes is currently
// encoded into the QR code. The value determines which variant substructure
// of [QRContent] the payload string is derived from.
type ContentType int

const (
	// ContentURL encodes a plain hyperlink.
	ContentURL ContentType = 1

	// ContentText encodes free-form text verbatim.
	ContentText ContentType = 2

	// ContentWifi encodes network credentials in the WIFI: scheme
	// understood by phone camera apps.
	ContentWifi ContentType = 3

	// ContentVCard encodes a vCard 3.0 contact block.
	ContentVCard ContentType = 4

	// ContentEmail encodes a mailto: draft with subject and body.
	ContentEmail ContentType = 5

	// ContentDigitalCard encodes the hosted URL of a digital card page.
	// The card content itself lives in a separately generated document,
	// not in the QR payload.
	ContentDigitalCard ContentType = 6
)

// WifiEncryption names the security mode emitted in the T: field of a
// WIFI: payload. Values are the literal strings scanners expect.
type WifiEncryption string

const (
	WifiWPA    WifiEncryption = "WPA/WPA2"
	WifiWEP    WifiEncryption = "WEP"
	WifiNoPass WifiEncryption = "nopass"
)

// WifiData holds the fields of the Wi-Fi credential variant.
//
// SSID and Password are emitted verbatim: reserved characters (';', ':',
// ',') are not escaped, matching the behaviour scanners tolerate for
// ordinary network names. A semicolon inside the SSID produces a payload
// most scanners misread; this is a known limitation.
type WifiData struct {
	SSID       string         `json:"ssid"`
	Password   string         `json:"password"`
	Encryption WifiEncryption `json:"encryption"`
	Hidden     bool           `json:"hidden"`
}

// VCardData holds the fields of the contact-card variant.
// All fields are free-form strings; empty fields still occupy their
// fixed line in the encoded vCard block.
type VCardData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	Company   string `json:"company"`
	JobTitle  string `json:"jobTitle"`
	Bio       string `json:"bio"`
}

// EmailData holds the fields of the email-draft variant.
type EmailData struct {
	Address string `json:"address"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
