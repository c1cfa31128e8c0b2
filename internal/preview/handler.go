// Package preview runs a small local HTTP server that serves the current
// QR image and the generated landing page, so the result can be checked
// from a phone on the same network before exporting.
package preview

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-qr-studio/internal/cardpage"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
)

type Handler struct {
	services *service.Services
	size     int

	logger *logger.Logger
}

// NewHandler creates the preview handler. size is the PNG edge length
// served at /qr.png.
func NewHandler(services *service.Services, size int, logger *logger.Logger) *Handler {
	logger.Info().Msg("preview handler created")
	return &Handler{
		services: services,
		size:     size,
		logger:   logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogger)
	router.Use(h.withLogging)

	router.Get("/", h.cardPage)
	router.Get("/qr.png", h.qrPNG)
	router.Get("/qr.svg", h.qrSVG)
	router.Get("/api/payload", h.payload)

	return router
}

func (h *Handler) cardPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	content := h.services.Session.Content()
	card := content.DigitalCard

	doc, err := cardpage.Generate(&card)
	if err != nil {
		log.Err(err).Msg("error generating card page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}

func (h *Handler) qrPNG(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data, err := h.services.Renderer.PNG(h.services.Session.Payload(), h.services.Session.Style(), h.size)
	if err != nil {
		log.Err(err).Msg("error rendering preview png")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func (h *Handler) qrSVG(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data, err := h.services.Renderer.SVG(h.services.Session.Payload(), h.services.Session.Style(), h.size)
	if err != nil {
		log.Err(err).Msg("error rendering preview svg")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

func (h *Handler) payload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	content := h.services.Session.Content()
	body := map[string]any{
		"type":  content.Type,
		"value": content.Value,
	}

	if _, err := utils.WriteJSON(w, body, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing payload response")
	}
}
