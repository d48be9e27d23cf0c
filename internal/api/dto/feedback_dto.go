package dto

import "time"

// CreateFeedbackRequest payload for instructor evaluations.
type CreateFeedbackRequest struct {
	GolferID string `json:"golfer_id"`
	Area     string `json:"area"`
	Rating   int    `json:"rating"`
	Note     string `json:"note"`
}

// FeedbackResponse is one evaluation entry.
type FeedbackResponse struct {
	ID           string    `json:"id"`
	GolferID     string    `json:"golfer_id"`
	InstructorID string    `json:"instructor_id"`
	Area         string    `json:"area"`
	Rating       int       `json:"rating"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}
