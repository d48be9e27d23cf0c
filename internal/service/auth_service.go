package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Haryordeji/edu-sports-sub000/internal/auth"
	"github.com/Haryordeji/edu-sports-sub000/internal/config"
	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
	"github.com/Haryordeji/edu-sports-sub000/internal/events"
	"github.com/Haryordeji/edu-sports-sub000/internal/repository"
	apperrors "github.com/Haryordeji/edu-sports-sub000/pkg/util"
)

// AuthService coordinates registration, login, and password flows.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	tokenMgr   *auth.TokenManager
	issuer     *auth.Issuer
	limiter    *auth.LoginLimiter
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Limiter           *auth.LoginLimiter
	Dispatcher        events.Dispatcher
}

// RegisterInput carries a new account's fields.
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Password   string
	Role       domain.Role
	Experience domain.ExperienceLevel
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, logger *zap.Logger, deps AuthDependencies) *AuthService {
	tokenMgr := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL())
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		tokenMgr:   tokenMgr,
		issuer:     auth.NewIssuer(tokenMgr, cfg.App.IsProduction()),
		limiter:    deps.Limiter,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// Register creates a new account and issues its first session.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, *auth.IssuedSession, error) {
	if !input.Role.Valid() {
		return nil, nil, apperrors.NewValidationError("unknown role", nil)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	experience := input.Experience
	if experience == "" {
		experience = domain.ExperienceBeginner
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         input.Role,
		Experience:   experience,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user, events.UserRegisteredPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	return user, session, nil
}

// Login verifies credentials and issues a session. Every failure path
// returns the same generic invalid-credentials outcome: an unknown email
// burns a decoy hash compare so it is indistinguishable from a wrong
// password in message, status, and timing.
func (s *AuthService) Login(ctx context.Context, email, password, clientIP string) (*domain.User, *auth.IssuedSession, error) {
	if err := s.enforceLimiter(ctx, email, clientIP); err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			auth.CompareDecoy(password)
			return nil, nil, apperrors.NewInvalidCredentials()
		}
		return nil, nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewInvalidCredentials()
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.limiter.Reset(ctx, email, clientIP); err != nil {
		s.logger.Warn("login limiter reset failed", zap.Error(err))
	}
	return user, session, nil
}

// issue mints a session, translating an unknown stored role into the
// operator-facing integrity fault.
func (s *AuthService) issue(user *domain.User) (*auth.IssuedSession, error) {
	session, err := s.issuer.Issue(user)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRole) {
			s.logger.Error("refusing to issue session for unrecognized role",
				zap.String("user_id", user.ID),
				zap.String("role", string(user.Role)))
			return nil, apperrors.NewInvalidRole(string(user.Role))
		}
		return nil, err
	}
	return session, nil
}

func (s *AuthService) enforceLimiter(ctx context.Context, email, clientIP string) error {
	err := s.limiter.Enforce(ctx, email, clientIP)
	if err == nil {
		return nil
	}
	if errors.Is(err, auth.ErrRateLimited) {
		return apperrors.NewRateLimited("too many login attempts, try again later")
	}
	// Redis being down must not lock everyone out.
	s.logger.Warn("login limiter unavailable, failing open", zap.Error(err))
	return nil
}

// Issuer exposes the session issuer for cookie construction in handlers.
func (s *AuthService) Issuer() *auth.Issuer {
	return s.issuer
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// RequestPasswordReset persists a reset token for the account email. The
// token reaches the user through the notification channel, never through
// this response.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventPasswordResetReq, user, events.PasswordResetRequestedPayload{
		UserID: user.ID,
		Email:  user.Email,
	})
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return apperrors.NewValidationError("token expired or used", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

// ChangePassword verifies the current password before updating to new hash.
func (s *AuthService) ChangePassword(ctx context.Context, subjectID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, subjectID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewInvalidCredentials()
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, actor *domain.User, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{SubjectID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
