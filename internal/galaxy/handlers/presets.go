package handlers

import (
	"log/slog"
	"net/http"

	"starmap-server/internal/galaxy"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/response"
)

type PresetsHandler struct {
	service *galaxy.Service
}

func NewPresetsHandler(service *galaxy.Service) *PresetsHandler {
	return &PresetsHandler{service: service}
}

func (h *PresetsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "presets")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, h.service.Presets())
}
