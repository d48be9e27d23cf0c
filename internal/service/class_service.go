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

// ClassService manages the lesson schedule. No conflict resolution: classes
// are stored as submitted.
type ClassService struct {
	classes    repository.ClassRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewClassService builds the service.
func NewClassService(classes repository.ClassRepository, users repository.UserRepository, dispatcher events.Dispatcher) *ClassService {
	return &ClassService{classes: classes, users: users, dispatcher: dispatcher}
}

// ClassInput carries a new class definition.
type ClassInput struct {
	Title        string
	InstructorID string
	Level        domain.ExperienceLevel
	Location     string
	StartsAt     time.Time
	EndsAt       time.Time
	Capacity     int
}

// Schedule creates a class led by an instructor.
func (s *ClassService) Schedule(ctx context.Context, actorID string, input ClassInput) (*domain.Class, error) {
	if !input.EndsAt.After(input.StartsAt) {
		return nil, apperrors.NewValidationError("class must end after it starts", nil)
	}

	instructor, err := s.users.GetByID(ctx, input.InstructorID)
	if err != nil {
		return nil, apperrors.NewNotFound("instructor", nil)
	}
	if instructor.Role != domain.RoleInstructor {
		return nil, apperrors.NewValidationError("classes must be led by an instructor", nil)
	}

	capacity := input.Capacity
	if capacity <= 0 {
		capacity = 8
	}

	class := &domain.Class{
		Title:        input.Title,
		InstructorID: input.InstructorID,
		Level:        input.Level,
		Location:     input.Location,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		Capacity:     capacity,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventClassScheduled,
			Actor:     events.Actor{SubjectID: actorID, Role: domain.RoleAdmin},
			Timestamp: time.Now(),
			Payload: events.ClassScheduledPayload{
				ClassID:      class.ID,
				Title:        class.Title,
				InstructorID: class.InstructorID,
				StartsAt:     class.StartsAt,
			},
		})
	}
	return class, nil
}

// List returns the full schedule.
func (s *ClassService) List(ctx context.Context) ([]domain.Class, error) {
	return s.classes.List(ctx)
}

// Get returns one class.
func (s *ClassService) Get(ctx context.Context, id string) (*domain.Class, error) {
	return s.classes.GetByID(ctx, id)
}

// Delete removes a class.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	return s.classes.Delete(ctx, id)
}

// RegisterGolfer signs the calling golfer up for a class, bounded by
// capacity.
func (s *ClassService) RegisterGolfer(ctx context.Context, classID, golferID string) (*domain.ClassRegistration, error) {
	class, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		return nil, apperrors.NewNotFound("class", nil)
	}

	count, err := s.classes.CountRegistrations(ctx, classID)
	if err != nil {
		return nil, err
	}
	if count >= class.Capacity {
		return nil, apperrors.NewConflict("class is full", nil)
	}

	reg := &domain.ClassRegistration{ClassID: classID, GolferID: golferID}
	if err := s.classes.Register(ctx, reg); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventClassRegistered,
			Actor:     events.Actor{SubjectID: golferID, Role: domain.RoleGolfer},
			Timestamp: time.Now(),
			Payload: events.ClassRegisteredPayload{
				ClassID:  classID,
				GolferID: golferID,
			},
		})
	}
	return reg, nil
}

// Registrations lists sign-ups for a class.
func (s *ClassService) Registrations(ctx context.Context, classID string) ([]domain.ClassRegistration, error) {
	return s.classes.ListRegistrations(ctx, classID)
}
