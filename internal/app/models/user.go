package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                    // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"ana"`                      // Unique display name, 3-50 chars
	Email     string    `json:"email" db:"email" example:"ana@example.com"`                // User's email address
	Password  string    `json:"-" db:"password"`                                           // User's hashed password (excluded from JSON)
	Role      Role      `json:"role" db:"role" example:"student"`                          // User's role (student, teacher or admin)
	CreatedAt time.Time `json:"created_at" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
