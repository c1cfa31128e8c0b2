// Package render turns payload strings into QR images.
//
// Two output formats are supported: raster PNG for direct sharing and
// vector SVG for print. Both honor the visual style chosen in the editor
// (colors, margin, logo overlay).
package render

import (
	"github.com/MKhiriev/go-qr-studio/models"
)

//go:generate mockgen -source=render.go -destination=../mock/render.go -package=mock

// Renderer produces QR images from an encoded payload string.
type Renderer interface {
	// PNG renders the payload as a PNG image with the given edge length
	// in pixels.
	PNG(value string, style models.QRStyle, size int) ([]byte, error)

	// SVG renders the payload as a scalable vector image. size sets the
	// nominal width/height attributes; the image scales losslessly.
	SVG(value string, style models.QRStyle, size int) ([]byte, error)
}
