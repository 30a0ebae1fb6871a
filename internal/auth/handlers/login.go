package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"starmap-server/internal/auth"
	"starmap-server/internal/shared/cookies"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/response"
)

type LoginRequest struct {
	Commander string `json:"commander"`
}

type LoginResponse struct {
	Commander string `json:"commander"`
}

type LoginHandler struct{}

func NewLoginHandler() *LoginHandler {
	return &LoginHandler{}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "login", "method", r.Method)

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	commander := strings.TrimSpace(req.Commander)
	if commander == "" {
		response.Error(w, r, logger, errors.Validation("commander name is required"))
		return
	}
	if len(commander) > 64 {
		response.Error(w, r, logger, errors.Validation("commander name too long"))
		return
	}

	token, err := auth.GenerateJWT(commander)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to issue token", err))
		return
	}

	cookies.SetAuthCookie(w, token)
	logger.Info("Commander logged in", "commander", commander)

	response.Success(w, http.StatusOK, LoginResponse{Commander: commander})
}
