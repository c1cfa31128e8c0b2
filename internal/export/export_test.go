package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-studio/internal/cardpage"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/mock"
	"github.com/MKhiriev/go-qr-studio/models"
)

func testExporter(t *testing.T, dir string) (*Exporter, *mock.MockRenderer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	renderer := mock.NewMockRenderer(ctrl)

	e := NewExporter(renderer, "qr-studio", dir, 512, 4, logger.Nop())
	e.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return e, renderer
}

// TestSavePNG verifies the file name pattern, the scaled render size, and
// the written content.
func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	e, renderer := testExporter(t, dir)

	style := models.DefaultStyle()
	renderer.EXPECT().
		PNG("https://example.com", style, 2048).
		Return([]byte("png-bytes"), nil)

	path, err := e.SavePNG("https://example.com", style)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "qr-studio-1700000000000.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

// TestSaveSVG verifies that SVG exports use the base size, not the scaled
// one, since vectors scale losslessly.
func TestSaveSVG(t *testing.T) {
	dir := t.TempDir()
	e, renderer := testExporter(t, dir)

	style := models.DefaultStyle()
	renderer.EXPECT().
		SVG("WIFI:S:net;T:WPA/WPA2;P:;H:false;;", style, 512).
		Return([]byte("<svg/>"), nil)

	path, err := e.SaveSVG("WIFI:S:net;T:WPA/WPA2;P:;H:false;;", style)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "qr-studio-1700000000000.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg/>"), data)
}

// TestSavePNG_RenderError verifies that render failures are propagated and
// no file is written.
func TestSavePNG_RenderError(t *testing.T) {
	dir := t.TempDir()
	e, renderer := testExporter(t, dir)

	renderer.EXPECT().
		PNG(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	_, err := e.SavePNG("value", models.DefaultStyle())
	require.ErrorIs(t, err, assert.AnError)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestSaveCardPage verifies the fixed index.html name and that the page
// contains the card data.
func TestSaveCardPage(t *testing.T) {
	dir := t.TempDir()
	e, _ := testExporter(t, dir)

	card := &models.DigitalCardData{
		ThemeColor: models.DefaultThemeColor,
		Name:       "Ivan Petrov",
	}

	path, err := e.SaveCardPage(card)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, cardpage.FileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ivan Petrov")
}

// TestSaveCardPage_NilCard verifies the error from the page generator is
// propagated.
func TestSaveCardPage_NilCard(t *testing.T) {
	e, _ := testExporter(t, t.TempDir())

	_, err := e.SaveCardPage(nil)
	assert.ErrorIs(t, err, cardpage.ErrNoCard)
}

// TestExporter_CreatesDir verifies that a missing export directory is
// created on first write.
func TestExporter_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	e, renderer := testExporter(t, dir)

	renderer.EXPECT().
		PNG(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("x"), nil)

	path, err := e.SavePNG("value", models.DefaultStyle())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

// TestNewExporter_ScaleFloor verifies that a scale below 1 is clamped.
func TestNewExporter_ScaleFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mock.NewMockRenderer(ctrl)

	e := NewExporter(renderer, "qr-studio", t.TempDir(), 512, 0, logger.Nop())
	assert.Equal(t, 1, e.scale)
}
