package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
	"github.com/Haryordeji/edu-sports-sub000/internal/events"
	"github.com/Haryordeji/edu-sports-sub000/internal/repository"
	apperrors "github.com/Haryordeji/edu-sports-sub000/pkg/util"
)

// FeedbackService manages instructor swing evaluations.
type FeedbackService struct {
	feedback   repository.FeedbackRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewFeedbackService builds the service.
func NewFeedbackService(feedback repository.FeedbackRepository, users repository.UserRepository, dispatcher events.Dispatcher) *FeedbackService {
	return &FeedbackService{feedback: feedback, users: users, dispatcher: dispatcher}
}

// FeedbackInput carries a new evaluation.
type FeedbackInput struct {
	GolferID string
	Area     domain.SwingArea
	Rating   int
	Note     string
}

// Create records feedback authored by the given instructor for a golfer.
func (s *FeedbackService) Create(ctx context.Context, instructorID string, input FeedbackInput) (*domain.SwingFeedback, error) {
	if input.Rating < 1 || input.Rating > 10 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 10", nil)
	}

	golfer, err := s.users.GetByID(ctx, input.GolferID)
	if err != nil {
		return nil, apperrors.NewNotFound("golfer", nil)
	}
	if golfer.Role != domain.RoleGolfer {
		return nil, apperrors.NewValidationError("feedback target must be a golfer", nil)
	}

	feedback := &domain.SwingFeedback{
		GolferID:     input.GolferID,
		InstructorID: instructorID,
		Area:         input.Area,
		Rating:       input.Rating,
		Note:         input.Note,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventFeedbackAdded,
			Actor:     events.Actor{SubjectID: instructorID, Role: domain.RoleInstructor},
			Timestamp: time.Now(),
			Payload: events.FeedbackAddedPayload{
				FeedbackID: feedback.ID,
				GolferID:   feedback.GolferID,
				Area:       feedback.Area,
				Rating:     feedback.Rating,
			},
		})
	}
	return feedback, nil
}

// ListForGolfer returns a golfer's feedback history, newest first.
func (s *FeedbackService) ListForGolfer(ctx context.Context, golferID string) ([]domain.SwingFeedback, error) {
	return s.feedback.ListByGolfer(ctx, golferID)
}

// Delete removes a feedback entry.
func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	return s.feedback.Delete(ctx, id)
}
