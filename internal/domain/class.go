package domain

import "time"

// Class is a scheduled group lesson led by an instructor.
type Class struct {
	ID           string
	Title        string
	InstructorID string
	Level        ExperienceLevel
	Location     string
	StartsAt     time.Time
	EndsAt       time.Time
	Capacity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClassRegistration records a golfer signing up for a class.
type ClassRegistration struct {
	ID        string
	ClassID   string
	GolferID  string
	CreatedAt time.Time
}
