package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
)

// QRRenderer implements [Renderer] using the highest error correction level,
// so codes stay scannable with a logo overlay covering part of the symbol.
type QRRenderer struct {
	log *logger.Logger
}

// NewQRRenderer creates a renderer.
func NewQRRenderer(log *logger.Logger) *QRRenderer {
	return &QRRenderer{log: log}
}

// PNG implements [Renderer.PNG].
func (r *QRRenderer) PNG(value string, style models.QRStyle, size int) ([]byte, error) {
	q, err := r.newCode(value, style)
	if err != nil {
		return nil, err
	}

	if style.LogoSource == "" {
		data, err := q.PNG(size)
		if err != nil {
			return nil, fmt.Errorf("error encoding png: %w", err)
		}
		return data, nil
	}

	img := q.Image(size)
	withLogo, err := r.overlayLogo(img, style)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, withLogo); err != nil {
		return nil, fmt.Errorf("error encoding png: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *QRRenderer) newCode(value string, style models.QRStyle) (*qrcode.QRCode, error) {
	q, err := qrcode.New(value, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("error building qr code: %w", err)
	}

	fg, err := parseHexColor(style.FgColor)
	if err != nil {
		return nil, err
	}
	bg, err := parseHexColor(style.BgColor)
	if err != nil {
		return nil, err
	}

	q.ForegroundColor = fg
	q.BackgroundColor = bg
	q.DisableBorder = !style.IncludeMargin

	return q, nil
}

// overlayLogo draws the logo over the code centre on a backdrop of the
// background color, keeping the covered area well inside what the highest
// error correction level can recover.
func (r *QRRenderer) overlayLogo(img image.Image, style models.QRStyle) (image.Image, error) {
	data, _, err := utils.DecodeDataURI(style.LogoSource)
	if err != nil {
		return nil, fmt.Errorf("error decoding logo source: %w", err)
	}

	logo, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error decoding logo image: %w", err)
	}

	size := img.Bounds().Dx()
	percent := style.LogoSizePercent
	if percent <= 0 || percent > 50 {
		percent = 20
	}
	logoSize := size * percent / 100
	if logoSize < 1 {
		logoSize = 1
	}

	scaled := scaleImage(logo, logoSize, logoSize)

	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)

	bg, err := parseHexColor(style.BgColor)
	if err != nil {
		return nil, err
	}

	// backdrop one border's worth larger than the logo itself
	pad := logoSize / 10
	offset := (size - logoSize) / 2
	backdrop := image.Rect(offset-pad, offset-pad, offset+logoSize+pad, offset+logoSize+pad)
	draw.Draw(dst, backdrop, image.NewUniform(bg), image.Point{}, draw.Src)

	logoRect := image.Rect(offset, offset, offset+logoSize, offset+logoSize)
	draw.Draw(dst, logoRect, scaled, image.Point{}, draw.Over)

	return dst, nil
}

// scaleImage resizes src to w x h with nearest-neighbor sampling. Logos are
// small and drawn over a high-contrast grid, so sampling quality does not
// matter here.
func scaleImage(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := sb.Min.X + x*sb.Dx()/w
			sy := sb.Min.Y + y*sb.Dy()/h
			dst.Set(x, y, src.At(sx, sy))
		}
	}

	return dst
}
