package dto

import "board_backend/internal/feature/auth/domain/entity"

// UserResponse is the outward representation of a user.
// The password hash is deliberately absent; timestamps are epoch seconds.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt int64  `json:"created_at"`
}

// AuthResponse is returned by signup and login: the bearer token plus the user profile.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ErrorResponse is the structured error body shared by all auth endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewUserResponse converts a domain user into its outward representation.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Unix(),
	}
}
