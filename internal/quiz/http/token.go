package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizden/quizden/internal/quiz/service"
	"github.com/quizden/quizden/pkg/httpx"
)

// RefreshHandler serves POST /api/refresh-token. It exchanges a valid
// refresh token for a new access token; the refresh token is not rotated.
type RefreshHandler struct {
	TokenService *service.TokenService
}

func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "refresh token required")
		return
	}

	access, err := h.TokenService.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			httpx.WriteError(w, http.StatusForbidden, "invalid or expired refresh token")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"accessToken": access})
}
