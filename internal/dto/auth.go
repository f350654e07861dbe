package dto

import "time"

// RegisterRequest defines the data needed to open a new account.
type RegisterRequest struct {
	Username        string           `json:"username" binding:"required,min=3,max=150"`
	Email           string           `json:"email" binding:"required,email"`
	Password        string           `json:"password" binding:"required,min=8"`
	PasswordConfirm string           `json:"passwordConfirm" binding:"required"`
	Name            string           `json:"name" binding:"required,max=255"`
	CPF             *string          `json:"cpf" binding:"omitempty,cpf"`
	Phone           *string          `json:"phone" binding:"omitempty,numeric,min=10,max=11"`
	Role            string           `json:"role"` // Optional, defaults to Cedente
	Addresses       []AddressRequest `json:"addresses" binding:"omitempty,dive"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Actor     ActorResponse `json:"actor"`
}
