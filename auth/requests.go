package auth

import "time"

// LoginRequest carries the credentials for the login endpoint. Field
// validation (non-empty email/password) happens in the form layer before
// this package is reached; it is not re-checked here.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the shape a successful login returns. The server issues
// only the credential; the client synthesizes the rest of the session.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// RegisterRequest carries the fields for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the created account as the server reports it.
type RegisterResponse struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidLoginResponse is the default shape guard for login responses.
func ValidLoginResponse(r *LoginResponse) bool {
	return r != nil && r.AccessToken != ""
}

// ValidRegisterResponse is the default shape guard for register responses.
func ValidRegisterResponse(r *RegisterResponse) bool {
	return r != nil && r.ID > 0 && r.Email != ""
}
