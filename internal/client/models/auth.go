package models

// TokenPair mirrors the token payload returned by the auth endpoints.
type TokenPair struct {
	Authenticated bool   `json:"authenticated"`
	Expiration    string `json:"expiration"`
	AccessToken   string `json:"accessToken"`
	RefreshToken  string `json:"refreshToken"`
}

// Credential is the durably stored part of a session: the raw token pair.
// No expiry is tracked locally; validity is decided by server responses.
type Credential struct {
	AccessToken  string
	RefreshToken string
}

// Identity holds the authenticated viewer's minimal claims. It is derived
// either from the login form (fresh login) or from the stored access token's
// payload (cold start).
type Identity struct {
	ID    string
	Email string
	Name  string
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	UserName string `json:"userName" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
