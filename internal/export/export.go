// Package export writes rendered QR images and landing pages to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/cardpage"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/models"
)

// Exporter saves QR images and card pages into a configured directory.
//
// Image files are named "<app>-<unix-ms>.<ext>" so repeated exports never
// overwrite each other; the landing page is always "index.html" so it can
// be uploaded to static hosting as-is.
type Exporter struct {
	renderer render.Renderer
	log      *logger.Logger

	appName string
	dir     string
	size    int
	scale   int

	// now is swapped in tests to pin timestamps
	now func() time.Time
}

// NewExporter creates an Exporter.
// size is the base render edge length; PNG exports are written at size*scale
// pixels so they stay crisp when printed.
func NewExporter(renderer render.Renderer, appName, dir string, size, scale int, log *logger.Logger) *Exporter {
	if scale < 1 {
		scale = 1
	}

	return &Exporter{
		renderer: renderer,
		log:      log,
		appName:  appName,
		dir:      dir,
		size:     size,
		scale:    scale,
		now:      time.Now,
	}
}

// SavePNG renders the payload and writes it as a PNG file.
// Returns the path of the written file.
func (e *Exporter) SavePNG(value string, style models.QRStyle) (string, error) {
	data, err := e.renderer.PNG(value, style, e.size*e.scale)
	if err != nil {
		return "", fmt.Errorf("error rendering png: %w", err)
	}

	return e.write(e.fileName("png"), data)
}

// SaveSVG renders the payload and writes it as an SVG file.
// Returns the path of the written file.
func (e *Exporter) SaveSVG(value string, style models.QRStyle) (string, error) {
	data, err := e.renderer.SVG(value, style, e.size)
	if err != nil {
		return "", fmt.Errorf("error rendering svg: %w", err)
	}

	return e.write(e.fileName("svg"), data)
}

// SaveCardPage generates the landing page for card and writes it as
// index.html. Returns the path of the written file.
func (e *Exporter) SaveCardPage(card *models.DigitalCardData) (string, error) {
	doc, err := cardpage.Generate(card)
	if err != nil {
		return "", fmt.Errorf("error generating card page: %w", err)
	}

	return e.write(cardpage.FileName, []byte(doc))
}

func (e *Exporter) fileName(ext string) string {
	ms := e.now().UnixMilli()
	return e.appName + "-" + strconv.FormatInt(ms, 10) + "." + ext
}

func (e *Exporter) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export dir: %w", err)
	}

	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("error writing export file: %w", err)
	}

	e.log.Info().Str("path", path).Msg("export written")
	return path, nil
}
