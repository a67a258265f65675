package handlers

import (
	"log/slog"
	"net/http"

	"frontdoor/internal/errors"
)

// IndexTemplate is the page served at the root path.
const IndexTemplate = "index.html"

// IndexHandlers handles index page requests
type IndexHandlers struct {
	container *Container
}

// NewIndexHandlers creates a new IndexHandlers instance
func NewIndexHandlers(container *Container) *IndexHandlers {
	return &IndexHandlers{container: container}
}

// Index serves the rendered index template. The request is not inspected.
func (h *IndexHandlers) Index(w http.ResponseWriter, r *http.Request) {
	body, err := h.container.Renderer.Render(IndexTemplate, nil)
	if err != nil {
		var appErr *errors.AppError
		if h.container.Config.Debug && errors.IsAppError(err, &appErr) {
			appErr.WithMessage(appErr.Error())
		}
		errors.HandleHTTPError(w, h.container.Logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.container.Logger.Debug("Failed to write response", slog.String("error", err.Error()))
	}
}
