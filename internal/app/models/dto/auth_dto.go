package dto

import "github.com/lmrivero/chatsurvey/internal/app/models"

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=student teacher admin"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserData is the user shape serialized to clients. The password hash is
// never part of it.
type UserData struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt string      `json:"created_at,omitempty"`
}

// NewUserData maps a user model to its client representation
func NewUserData(user *models.User) UserData {
	data := UserData{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
	if !user.CreatedAt.IsZero() {
		data.CreatedAt = user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return data
}

// AuthResponse represents a successful register/login response
type AuthResponse struct {
	Message string   `json:"message"`
	User    UserData `json:"user"`
	Token   string   `json:"token"`
}

// ProfileResponse represents the authenticated user's profile
type ProfileResponse struct {
	User UserData `json:"user"`
}
