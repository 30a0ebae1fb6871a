package handlers

import (
	"log/slog"
	"net/http"

	"starmap-server/internal/galaxy"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/response"
	"starmap-server/internal/warp"
)

type DiscoverHandler struct {
	service *galaxy.Service
	builder *warp.Builder
}

func NewDiscoverHandler(service *galaxy.Service, builder *warp.Builder) *DiscoverHandler {
	return &DiscoverHandler{service: service, builder: builder}
}

// ServeHTTP handles POST /api/saves/{id}/systems/{index}/discover:
// travel to an adjacent system and record it as discovered.
func (h *DiscoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "discover_system")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	commander, err := commanderFrom(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	id, err := saveID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	index, err := systemIndex(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	gal, _, err := h.service.Map(r.Context(), commander, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	network := h.builder.Build(gal, h.service.Systems(gal))

	save, err := h.service.Discover(r.Context(), commander, id, index, network)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, save)
}
