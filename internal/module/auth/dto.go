package auth

import "time"

// LoginRequest represents the input for user login. LoginOrEmail matches
// either the login or the email of an account.
type LoginRequest struct {
	LoginOrEmail string `json:"loginOrEmail" form:"loginOrEmail" binding:"required"`
	Password     string `json:"password" form:"password" binding:"required,min=6"`
}

// RegisterRequest represents the input for user registration.
type RegisterRequest struct {
	Login    string `json:"login" form:"login" binding:"required,min=3,max=30"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=72"`
}

// ConfirmRequest represents the input for email confirmation.
type ConfirmRequest struct {
	Code string `json:"code" form:"code" binding:"required"`
}

// ResendConfirmationRequest represents the input for re-sending a confirmation code.
type ResendConfirmationRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

// TokenResponse represents the authentication token returned after login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// RegisterResponse represents the public user data returned after registration.
type RegisterResponse struct {
	ID        uint      `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
