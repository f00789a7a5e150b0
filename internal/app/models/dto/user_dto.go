package dto

import "github.com/lmrivero/chatsurvey/internal/app/models"

// CreateUserRequest represents an admin creating a user directly.
// Shape and validation match registration.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=student teacher admin"`
}

// UpdateUserRequest carries a merge-patch user update. Nil fields keep
// their stored values. Role changes are admin-only and rejected for
// other callers before reaching storage.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=student teacher admin"`
}

// ToPatch maps the request to a merge-patch carrier
func (r *UpdateUserRequest) ToPatch() *models.UserPatch {
	return &models.UserPatch{
		Username: r.Username,
		Email:    r.Email,
		Role:     r.Role,
	}
}

// UserResponse wraps a single user payload
type UserResponse struct {
	Message string   `json:"message"`
	User    UserData `json:"user"`
}

// UserListResponse wraps the admin user listing
type UserListResponse struct {
	Message string     `json:"message"`
	Count   int        `json:"count"`
	Users   []UserData `json:"users"`
}
