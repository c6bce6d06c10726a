package dto

import "golang-stock-advisor/pkg/apperrors"

// RegisterRequest is the payload for POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (r *RegisterRequest) Validate() error {
	if r.Username == "" {
		return apperrors.Validationf("username is required")
	}
	if len(r.Username) > 50 {
		return apperrors.Validationf("username must be at most 50 characters")
	}
	if r.Email == "" {
		return apperrors.Validationf("email is required")
	}
	if len(r.Email) > 100 {
		return apperrors.Validationf("email must be at most 100 characters")
	}
	if r.Password == "" {
		return apperrors.Validationf("password is required")
	}
	return nil
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return apperrors.Validationf("username is required")
	}
	if r.Password == "" {
		return apperrors.Validationf("password is required")
	}
	return nil
}

// LoginResponse carries the signed bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
