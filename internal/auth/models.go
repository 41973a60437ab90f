package auth

import "strings"

// RegisterRequest carries the credentials for a new registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Normalize trims surrounding whitespace from the username. Passwords are
// opaque and left untouched.
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// RegisterResult confirms a successful registration. Registration does not
// log the user in.
type RegisterResult struct {
	Message string `json:"message"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// TokenResult is the issued access credential. ExpiresIn is seconds until
// expiry, mirroring the token's exp claim.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
