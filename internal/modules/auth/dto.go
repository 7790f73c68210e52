package auth

import "staydrive/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Admin *domain.Identity `json:"admin"`
	Token string           `json:"token"`
}
