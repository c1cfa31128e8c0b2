package cardpage

import (
	"strings"

	"github.com/MKhiriev/go-qr-studio/models"
)

// ButtonHref computes the link target for a card button by its kind,
// mirroring the rules applied by the generated page script. The TUI's
// mobile simulation uses it to show the same targets a phone would open.
func ButtonHref(b models.CardButton) string {
	target := strings.TrimSpace(b.Target)

	switch b.Kind {
	case models.ButtonPhone:
		return "tel:" + stripNonDial(target)
	case models.ButtonEmail:
		return "mailto:" + target
	default:
		// web is also the default for an unset kind
		if !strings.HasPrefix(target, "http") {
			target = "https://" + target
		}
		return target
	}
}

// ButtonIcon returns the glyph shown next to a button label. Purely
// visual; it carries no encoded semantics.
func ButtonIcon(kind models.ButtonKind) string {
	switch kind {
	case models.ButtonPhone:
		return "📞"
	case models.ButtonEmail:
		return "✉️"
	default:
		return "🌐"
	}
}

// stripNonDial drops every character except digits and '+'.
func stripNonDial(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '+' || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}
