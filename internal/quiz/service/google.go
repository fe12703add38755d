package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/quizden/quizden/internal/quiz/domain"
)

var (
	ErrInvalidCode    = errors.New("invalid_authorization_code")
	ErrNoProfileEmail = errors.New("provider profile has no email")
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleAdapter talks to Google's OAuth2 endpoints and userinfo API. It
// implements FederationProvider.
type GoogleAdapter struct {
	conf        *oauth2.Config
	httpClient  *http.Client
	userinfoURL string
}

func NewGoogleAdapter(clientID, clientSecret, redirectURL string) *GoogleAdapter {
	return &GoogleAdapter{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		userinfoURL: googleUserinfoURL,
	}
}

// AuthURL builds the Google authorization URL carrying the given state token.
func (a *GoogleAdapter) AuthURL(state string) string {
	return a.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ResolveProfile exchanges the authorization code and fetches the user's
// Google profile.
func (a *GoogleAdapter) ResolveProfile(ctx context.Context, code string) (domain.FederatedProfile, error) {
	tok, err := a.conf.Exchange(ctx, code)
	if err != nil {
		// Treat exchange failures as an invalid code for the core flow.
		return domain.FederatedProfile{}, ErrInvalidCode
	}

	u, err := a.fetchGoogleUser(ctx, tok.AccessToken)
	if err != nil {
		return domain.FederatedProfile{}, fmt.Errorf("fetch google user: %w", err)
	}
	if u.Email == "" {
		return domain.FederatedProfile{}, ErrNoProfileEmail
	}

	return domain.FederatedProfile{
		FederatedID: u.ID,
		DisplayName: u.Name,
		Email:       u.Email,
	}, nil
}

func (a *GoogleAdapter) fetchGoogleUser(ctx context.Context, accessToken string) (*googleUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.userinfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned status %d", resp.StatusCode)
	}

	var user googleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

type googleUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
