package dto

/* ===================== REQUESTS ===================== */

// Login requires the requested role to match the account's role exactly;
// a correct password with the wrong role must still fail.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=full_admin announcement_admin"`
}

/* ===================== RESPONSES ===================== */

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

type MeResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
