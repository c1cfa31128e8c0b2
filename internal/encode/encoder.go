// Package encode derives the canonical QR payload string from the active
// content variant.
//
// Every function here is total: malformed or empty fields pass through
// verbatim into the payload. The renderer tolerates arbitrary strings, so
// the encoder performs no validation and can never fail. Reserved
// characters in Wi-Fi and vCard fields are intentionally not escaped; see
// the field docs on the models package.
package encode

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qr-studio/models"
)

// HostedURLPlaceholder is encoded for a digital card whose hosted URL has
// not been filled in yet, so the QR payload is never an empty string.
const HostedURLPlaceholder = "https://example.com"

// Payload returns the canonical string for the active variant of c.
func Payload(c models.QRContent) string {
	switch c.Type {
	case models.ContentURL:
		return c.URL
	case models.ContentText:
		return c.Text
	case models.ContentWifi:
		return WifiString(c.Wifi)
	case models.ContentVCard:
		return VCardString(c.VCard)
	case models.ContentEmail:
		return EmailString(c.Email)
	case models.ContentDigitalCard:
		return CardValue(c.DigitalCard)
	default:
		return ""
	}
}

// WifiString encodes network credentials in the WIFI: scheme with the
// fixed field order S, T, P, H. Hidden is rendered as "true"/"false".
func WifiString(w models.WifiData) string {
	var b strings.Builder
	b.WriteString("WIFI:S:")
	b.WriteString(w.SSID)
	b.WriteString(";T:")
	b.WriteString(string(w.Encryption))
	b.WriteString(";P:")
	b.WriteString(w.Password)
	b.WriteString(";H:")
	b.WriteString(strconv.FormatBool(w.Hidden))
	b.WriteString(";;")
	return b.String()
}

// VCardString encodes a vCard 3.0 block with a fixed line order, one field
// per line. Embedded newlines and semicolons in field values are passed
// through without folding or escaping.
func VCardString(v models.VCardData) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + v.LastName + ";" + v.FirstName,
		"FN:" + v.FirstName + " " + v.LastName,
		"ORG:" + v.Company,
		"TITLE:" + v.JobTitle,
		"TEL:" + v.Phone,
		"EMAIL:" + v.Email,
		"URL:" + v.Website,
		"NOTE:" + v.Bio,
		"END:VCARD",
	}
	return strings.Join(lines, "\n")
}

// EmailString encodes a mailto: draft. Subject and body are
// percent-encoded; the address is left untouched.
func EmailString(e models.EmailData) string {
	return "mailto:" + e.Address +
		"?subject=" + escapeComponent(e.Subject) +
		"&body=" + escapeComponent(e.Body)
}

// CardValue returns the hosted URL of a digital card, or the placeholder
// when it is unset. The card's own fields never reach the QR payload.
func CardValue(d models.DigitalCardData) string {
	if d.HostedURL == "" {
		return HostedURLPlaceholder
	}
	return d.HostedURL
}

// escapeComponent percent-encodes s byte-wise, keeping the characters
// that mailto: query components conventionally leave literal
// (letters, digits, and - _ . ! ~ * ' ( )). Space becomes %20, not '+',
// which is why net/url query escaping is not used here.
func escapeComponent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponentByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func isUnreservedComponentByte(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
