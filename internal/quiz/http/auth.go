package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/quizden/quizden/internal/quiz/domain"
	"github.com/quizden/quizden/internal/quiz/service"
	"github.com/quizden/quizden/pkg/httpx"
	"github.com/quizden/quizden/pkg/slogx"
)

type tokenResponse struct {
	Token        string            `json:"token"`
	RefreshToken string            `json:"refreshToken"`
	User         domain.PublicUser `json:"user"`
}

// RegisterHandler serves POST /auth/register.
type RegisterHandler struct {
	AuthService *service.AuthService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username is required")
		return
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "password is required")
		return
	}

	user, pair, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusConflict, "email already registered")
			return
		}
		log.Error("registration failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, tokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Public(),
	})
}

// LoginHandler serves POST /auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, pair, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		// unknown email, federated-only account and wrong password all land
		// here: the client cannot tell which
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		log.Error("login failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Public(),
	})
}
