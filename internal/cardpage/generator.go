// Package cardpage generates the self-contained landing page for the
// digital card content type.
//
// The output is a single HTML document with embedded styles and an embedded
// behaviour script: on load the page shows a full-screen splash panel in the
// card's theme color, then reveals the card content after a fixed delay.
// Action buttons are passed to the script as a JSON array, so the script
// itself is identical for every card; only its data changes. Images arrive
// as inline data URIs, which keeps the document free of network fetches.
package cardpage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/MKhiriev/go-qr-studio/models"
)

// FileName is the canonical name of the generated document. Static hosts
// serve index.html as the directory index, so an uploaded page works at
// the bare repository URL without further configuration.
const FileName = "index.html"

// SplashDelayMS is how long the splash panel stays before the one-shot
// transition to the content panel.
const SplashDelayMS = 2000

// ErrNoCard is returned when generation is requested without a card.
var ErrNoCard = errors.New("digital card data is not set")

// pageTemplate is fixed and card-independent: all per-card variation enters
// through the template fields and the embedded buttons JSON.
var pageTemplate = template.Must(template.New("cardpage").Parse(pageHTML))

type pageData struct {
	Name        string
	JobTitle    string
	Company     string
	Bio         string
	ThemeColor  string
	ProfileImg  string
	SplashImg   string
	ButtonsJSON string
	SplashMS    int
}

// Generate renders the complete document for card. It performs no I/O and
// no validation: empty fields render as empty elements. A nil card is the
// only error case.
func Generate(card *models.DigitalCardData) (string, error) {
	if card == nil {
		return "", ErrNoCard
	}

	buttons := card.Buttons
	if buttons == nil {
		buttons = []models.CardButton{}
	}
	buttonsJSON, err := json.Marshal(buttons)
	if err != nil {
		return "", fmt.Errorf("marshal card buttons: %w", err)
	}

	data := pageData{
		Name:        card.Name,
		JobTitle:    card.JobTitle,
		Company:     card.Company,
		Bio:         card.Bio,
		ThemeColor:  card.ThemeColor,
		ProfileImg:  card.ProfileImage,
		SplashImg:   card.SplashImage,
		ButtonsJSON: string(buttonsJSON),
		SplashMS:    SplashDelayMS,
	}

	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute card page template: %w", err)
	}
	return b.String(), nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0, maximum-scale=1.0, user-scalable=no">
    <title>{{.Name}} - Digital Card</title>
    <meta name="description" content="{{.JobTitle}} at {{.Company}}">
    <style>
        * { box-sizing: border-box; -webkit-tap-highlight-color: transparent; }
        body { margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; background-color: #f0f2f5; color: #1f2937; height: 100vh; display: flex; justify-content: center; }
        .container { width: 100%; max-width: 480px; background: white; min-height: 100%; position: relative; overflow-y: auto; box-shadow: 0 0 40px rgba(0,0,0,0.1); }

        /* Splash screen */
        #splash {
            position: fixed; top: 0; left: 0; right: 0; bottom: 0;
            background: {{.ThemeColor}};
            display: flex; flex-direction: column; align-items: center; justify-content: center;
            z-index: 9999; transition: opacity 0.5s ease-out, visibility 0.5s;
        }
        .splash-logo { width: 120px; height: 120px; object-fit: contain; background: white; border-radius: 24px; padding: 16px; box-shadow: 0 20px 40px rgba(0,0,0,0.2); animation: pulse 2s infinite ease-in-out; }

        /* Content */
        #content { opacity: 0; transform: translateY(20px); transition: all 0.8s ease-out; }
        .header { background: {{.ThemeColor}}; padding: 40px 20px 80px; text-align: center; color: white; border-bottom-left-radius: 40px; border-bottom-right-radius: 40px; }
        .profile-container { margin-top: -60px; display: flex; justify-content: center; margin-bottom: 20px; }
        .profile-pic { width: 120px; height: 120px; border-radius: 50%; border: 5px solid white; background: #f3f4f6; object-fit: cover; box-shadow: 0 8px 20px rgba(0,0,0,0.1); }
        .info { text-align: center; padding: 0 24px; margin-bottom: 32px; }
        .name { font-size: 26px; font-weight: 800; color: #111827; margin-bottom: 4px; }
        .role { font-size: 15px; color: #6b7280; font-weight: 500; margin-bottom: 16px; }
        .bio { font-size: 15px; color: #4b5563; line-height: 1.6; max-width: 90%; margin: 0 auto; }

        /* Buttons */
        .actions { padding: 0 24px 40px; display: flex; flex-direction: column; gap: 14px; }
        .btn { display: flex; align-items: center; justify-content: space-between; padding: 18px 24px; background: white; border: 1px solid #e5e7eb; border-radius: 18px; text-decoration: none; color: #111827; font-weight: 600; font-size: 16px; box-shadow: 0 2px 6px rgba(0,0,0,0.02); transition: transform 0.2s; }
        .btn:active { transform: scale(0.98); background: #f9fafb; }
        .btn-icon { font-size: 20px; margin-right: 12px; }

        .footer { text-align: center; padding-bottom: 30px; font-size: 13px; color: #9ca3af; }
        @keyframes pulse { 0% { transform: scale(1); } 50% { transform: scale(1.05); } 100% { transform: scale(1); } }
    </style>
</head>
<body>
    <div id="splash">
        {{if .SplashImg}}<img src="{{.SplashImg}}" class="splash-logo" alt="Logo">{{end}}
    </div>
    <div class="container">
        <div id="content">
            <div class="header"></div>
            <div class="profile-container">
                {{if .ProfileImg}}<img src="{{.ProfileImg}}" class="profile-pic" alt="{{.Name}}">{{else}}<div class="profile-pic"></div>{{end}}
            </div>
            <div class="info">
                <div class="name">{{.Name}}</div>
                <div class="role">{{.JobTitle}}{{if .Company}} | {{.Company}}{{end}}</div>
                <div class="bio">{{.Bio}}</div>
            </div>
            <div class="actions" id="action-list"></div>
            <div class="footer">{{.Name}}</div>
        </div>
    </div>
    <script>
        const buttons = {{.ButtonsJSON}};
        function getIcon(type) {
            if (type === 'phone') return '\u{1F4DE}';
            if (type === 'email') return '✉️';
            return '\u{1F310}';
        }
        window.addEventListener('load', () => {
            const list = document.getElementById('action-list');
            buttons.forEach(btn => {
                const a = document.createElement('a');
                a.className = 'btn';
                a.innerHTML = '<div style="display:flex; align-items:center"><span class="btn-icon">' + getIcon(btn.btnType) + '</span><span>' + btn.label + '</span></div><span>→</span>';

                let url = btn.url.trim();
                if (btn.btnType === 'phone') {
                    // Keep digits and '+' only.
                    const clean = url.replace(/[^0-9+]/g, '');
                    a.href = 'tel:' + clean;
                } else if (btn.btnType === 'email') {
                    a.href = 'mailto:' + url;
                } else {
                    if (!url.startsWith('http')) url = 'https://' + url;
                    a.href = url;
                    a.target = '_blank';
                }
                list.appendChild(a);
            });
            setTimeout(() => {
                const splash = document.getElementById('splash');
                const content = document.getElementById('content');
                splash.style.opacity = '0';
                splash.style.visibility = 'hidden';
                content.style.opacity = '1';
                content.style.transform = 'translateY(0)';
            }, {{.SplashMS}});
        });
    </script>
</body>
</html>`
