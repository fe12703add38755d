package domain

// TokenPair is what a successful authentication returns: the short-lived
// access token and the long-lived refresh token. Both are stateless signed
// tokens; there is no server-side session record.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// FederatedProfile is the verified third-party profile handed to the
// federation flow after the provider handshake completed.
type FederatedProfile struct {
	FederatedID string
	DisplayName string
	Email       string
}
