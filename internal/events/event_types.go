package events

import (
	"time"

	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered   EventType = "user_registered"
	EventFeedbackAdded    EventType = "feedback_added"
	EventClassScheduled   EventType = "class_scheduled"
	EventClassRegistered  EventType = "class_registered"
	EventPasswordResetReq EventType = "password_reset_requested"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	SubjectID string      `json:"subject_id"`
	Role      domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// FeedbackAddedPayload payload.
type FeedbackAddedPayload struct {
	FeedbackID string           `json:"feedback_id"`
	GolferID   string           `json:"golfer_id"`
	Area       domain.SwingArea `json:"area"`
	Rating     int              `json:"rating"`
}

// ClassScheduledPayload payload.
type ClassScheduledPayload struct {
	ClassID      string    `json:"class_id"`
	Title        string    `json:"title"`
	InstructorID string    `json:"instructor_id"`
	StartsAt     time.Time `json:"starts_at"`
}

// ClassRegisteredPayload payload.
type ClassRegisteredPayload struct {
	ClassID  string `json:"class_id"`
	GolferID string `json:"golfer_id"`
}

// PasswordResetRequestedPayload payload.
type PasswordResetRequestedPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
