package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"starmap-server/internal/galaxy"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/response"
	"starmap-server/internal/warp"
)

type MapHandler struct {
	service *galaxy.Service
	builder *warp.Builder
}

func NewMapHandler(service *galaxy.Service, builder *warp.Builder) *MapHandler {
	return &MapHandler{service: service, builder: builder}
}

type mapResponse struct {
	Seed        int64               `json:"seed"`
	Size        int                 `json:"size"`
	StartIndex  int                 `json:"start_index"`
	Current     int                 `json:"current_system"`
	Discovered  []int64             `json:"discovered"`
	Sites       []galaxy.SystemSite `json:"sites"`
	Gates       []warp.Gate         `json:"gates"`
	NetworkInfo warp.Stats          `json:"network"`
	Summary     mapSummary          `json:"summary"`
}

type mapSummary struct {
	Capitals       int `json:"capitals"`
	Hazards        int `json:"hazards"`
	Blackholes     int `json:"blackholes"`
	Megastructures int `json:"megastructures"`
}

// GetMap handles GET /api/saves/{id}/map: every system's position plus
// the full warp network, with the save's progress overlaid.
func (h *MapHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_map")

	if r.Method != http.MethodGet {
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

	gal, save, err := h.service.Map(r.Context(), commander, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	systems := h.service.Systems(gal)
	network := h.builder.Build(gal, systems)

	var summary mapSummary
	for _, sys := range systems {
		if sys.IsCapital {
			summary.Capitals++
		}
		if sys.HasBlackhole {
			summary.Blackholes++
		}
		if sys.HasMegastructure {
			summary.Megastructures++
		}
		summary.Hazards += len(sys.Hazards)
	}

	response.Success(w, http.StatusOK, mapResponse{
		Seed:        gal.Seed,
		Size:        gal.Size,
		StartIndex:  gal.StartIndex,
		Current:     save.CurrentSystem,
		Discovered:  save.Discovered,
		Sites:       gal.Sites,
		Gates:       network.Gates,
		NetworkInfo: network.Stats(),
		Summary:     summary,
	})
}

type systemResponse struct {
	System interface{}         `json:"system"`
	Gates  []warp.GatePosition `json:"gates"`
}

// GetSystem handles GET /api/saves/{id}/systems/{index}: the full body
// roster of one system plus its gate ring.
func (h *MapHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_system")

	if r.Method != http.MethodGet {
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

	sys, err := h.service.GetSystem(r.Context(), commander, id, index)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	// Gate tiers are galaxy-global (capital links, highway chains), so
	// one system's ring still needs the full network rebuilt from seed.
	gal, _, err := h.service.Map(r.Context(), commander, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	network := h.builder.Build(gal, h.service.Systems(gal))

	response.Success(w, http.StatusOK, systemResponse{
		System: sys,
		Gates:  network.Layout(index),
	})
}

func systemIndex(r *http.Request) (int, error) {
	indexStr := r.PathValue("index")
	if indexStr == "" {
		return 0, errors.Validation("system index is required")
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return 0, errors.WrapValidation("invalid system index format", err)
	}
	return index, nil
}
