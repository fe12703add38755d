package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/quizden/quizden/internal/quiz/service"
	"github.com/quizden/quizden/pkg/httpx"
	"github.com/quizden/quizden/pkg/slogx"
)

// OAuthHandler drives the browser-facing Google federation flow. Success and
// failure both end in a redirect back to the client app, since the user
// arrives here from the provider, not from an XHR.
type OAuthHandler struct {
	OAuthService *service.OAuthService
	ClientOrigin string
}

// HandleBegin serves GET /auth/google.
func (h *OAuthHandler) HandleBegin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	authURL, err := h.OAuthService.Begin(ctx)
	if err != nil {
		log.Error("failed to begin federation flow", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

// HandleCallback serves GET /auth/google/callback.
func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if state == "" || code == "" {
		h.redirectFailure(w, r, "missing_parameters")
		return
	}

	user, pair, err := h.OAuthService.Complete(ctx, state, code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidState):
			h.redirectFailure(w, r, "invalid_state")
		case errors.Is(err, service.ErrInvalidCode):
			h.redirectFailure(w, r, "invalid_code")
		case errors.Is(err, service.ErrEmailConflict):
			h.redirectFailure(w, r, "email_in_use")
		default:
			log.Error("federation callback failed", "error", err)
			h.redirectFailure(w, r, "server_error")
		}
		return
	}

	log.Info("federated login completed", "user_id", user.ID)

	q := url.Values{}
	q.Set("token", pair.AccessToken)
	q.Set("refreshToken", pair.RefreshToken)
	http.Redirect(w, r, h.ClientOrigin+"/auth/success?"+q.Encode(), http.StatusFound)
}

func (h *OAuthHandler) redirectFailure(w http.ResponseWriter, r *http.Request, reason string) {
	q := url.Values{}
	q.Set("error", reason)
	http.Redirect(w, r, h.ClientOrigin+"/auth/failure?"+q.Encode(), http.StatusFound)
}
