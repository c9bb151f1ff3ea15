package login

import "github.com/m04kA/SMC-CompanionAdmin/internal/domain"

// LoginRequest HTTP request model
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	User    domain.User `json:"user"`
	IsAdmin bool        `json:"isAdmin"`
}
