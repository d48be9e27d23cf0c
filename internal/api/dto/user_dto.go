package dto

import "time"

// UserSummary is the public shape of an account. The password hash never
// leaves the service layer.
type UserSummary struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	Experience string    `json:"experience,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateUserRequest payload for admin-provisioned accounts.
type CreateUserRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Experience string `json:"experience"`
}

// UpdateUserRequest payload for profile edits.
type UpdateUserRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Experience string `json:"experience"`
}
