package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"starmap-server/internal/galaxy"
	"starmap-server/internal/middleware"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/response"
)

type SavesHandler struct {
	service *galaxy.Service
}

func NewSavesHandler(service *galaxy.Service) *SavesHandler {
	return &SavesHandler{service: service}
}

type createSaveRequest struct {
	Name   string `json:"name"`
	Seed   *int64 `json:"seed,omitempty"`
	Preset string `json:"preset,omitempty"`
	Size   int    `json:"size,omitempty"`
}

func commanderFrom(r *http.Request) (string, error) {
	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		return "", errors.Unauthorized("authentication required")
	}
	return claims.Commander, nil
}

// List and Create share the /api/saves path.
func (h *SavesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		logger := slog.With("handler", "saves")
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

func (h *SavesHandler) list(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_saves")

	commander, err := commanderFrom(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	saves, err := h.service.ListSaves(r.Context(), commander)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if saves == nil {
		saves = []galaxy.Save{}
	}

	response.Success(w, http.StatusOK, saves)
}

func (h *SavesHandler) create(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "create_save")

	commander, err := commanderFrom(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	var req createSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		response.Error(w, r, logger, errors.Validation("save name is required"))
		return
	}

	save, err := h.service.CreateSave(r.Context(), commander, req.Name, req.Seed, req.Preset, req.Size)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, save)
}

// Get handles GET /api/saves/{id}.
func (h *SavesHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_save")

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

	save, err := h.service.GetSave(r.Context(), commander, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, save)
}

// Delete handles DELETE /api/saves/{id}/delete.
func (h *SavesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "delete_save")

	if r.Method != http.MethodDelete {
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

	if err := h.service.DeleteSave(r.Context(), commander, id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func saveID(r *http.Request) (int, error) {
	idStr := r.PathValue("id")
	if idStr == "" {
		return 0, errors.Validation("save ID is required")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.WrapValidation("invalid save ID format", err)
	}
	return id, nil
}
