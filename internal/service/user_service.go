package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Haryordeji/edu-sports-sub000/internal/auth"
	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
	"github.com/Haryordeji/edu-sports-sub000/internal/repository"
	apperrors "github.com/Haryordeji/edu-sports-sub000/pkg/util"
)

// UserService manages account administration.
type UserService struct {
	users      repository.UserRepository
	logger     *zap.Logger
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, logger *zap.Logger, bcryptCost int) *UserService {
	return &UserService{users: users, logger: logger, bcryptCost: bcryptCost}
}

// UserUpdateInput carries editable account fields. Role changes are an
// admin-only concern enforced at the route.
type UserUpdateInput struct {
	FirstName  string
	LastName   string
	Phone      string
	Experience domain.ExperienceLevel
}

// List returns accounts, optionally filtered by role.
func (s *UserService) List(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if role != "" && !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role filter", nil)
	}
	return s.users.List(ctx, role)
}

// Get returns a single account.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update edits profile fields.
func (s *UserService) Update(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Experience != "" {
		user.Experience = input.Experience
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateAccount lets an admin provision instructors and other admins with a
// temporary password.
func (s *UserService) CreateAccount(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if !input.Role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", nil)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         input.Role,
		Experience:   input.Experience,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
