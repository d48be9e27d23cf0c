package dto

import "time"

// CreateClassRequest payload for scheduling a class.
type CreateClassRequest struct {
	Title        string    `json:"title"`
	InstructorID string    `json:"instructor_id"`
	Level        string    `json:"level"`
	Location     string    `json:"location"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	Capacity     int       `json:"capacity"`
}

// ClassResponse is one scheduled class.
type ClassResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	InstructorID string    `json:"instructor_id"`
	Level        string    `json:"level"`
	Location     string    `json:"location"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	Capacity     int       `json:"capacity"`
}

// RegistrationResponse is one class sign-up.
type RegistrationResponse struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"class_id"`
	GolferID  string    `json:"golfer_id"`
	CreatedAt time.Time `json:"created_at"`
}
