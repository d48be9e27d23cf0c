package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Haryordeji/edu-sports-sub000/internal/auth"
	"github.com/Haryordeji/edu-sports-sub000/internal/config"
	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
	"github.com/Haryordeji/edu-sports-sub000/internal/repository"
	apperrors "github.com/Haryordeji/edu-sports-sub000/pkg/util"
)

type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*domain.User{},
		byEmail: map[string]*domain.User{},
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return errors.New("duplicate email")
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	stored, ok := r.byID[user.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	*stored = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	user, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(r.byEmail, user.Email)
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) List(_ context.Context, role domain.Role) ([]domain.User, error) {
	var users []domain.User
	for _, user := range r.byID {
		if role == "" || user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

type fakeResetRepo struct {
	byToken map[string]*repository.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{byToken: map[string]*repository.PasswordResetToken{}}
}

func (r *fakeResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	token.ID = token.Token
	r.byToken[token.Token] = token
	return nil
}

func (r *fakeResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	token, ok := r.byToken[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return token, nil
}

func (r *fakeResetRepo) MarkUsed(_ context.Context, id string) error {
	for _, token := range r.byToken {
		if token.ID == id {
			now := token.ExpiresAt
			token.UsedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{Env: "test"},
		Auth: config.AuthConfig{
			JWTSecret:               "service-test-secret",
			SessionTTLMinutes:       60,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              bcrypt.MinCost,
		},
	}
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), zap.NewNop(), AuthDependencies{
		UserRepo:          users,
		PasswordResetRepo: newFakeResetRepo(),
		Limiter:           auth.NewLoginLimiter(nil, 0, 0),
	})
	return svc, users
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	user := &domain.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Experience:   domain.ExperienceBeginner,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginAdminGetsAdminSession(t *testing.T) {
	svc, users := newTestAuthService(t)
	seedUser(t, users, "a@x.com", "Secret123", domain.RoleAdmin)

	user, session, err := svc.Login(context.Background(), "a@x.com", "Secret123", "")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
	if session.Token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := svc.TokenManager().Parse(session.Token)
	if err != nil {
		t.Fatalf("issued token must parse: %v", err)
	}
	// Admin override: role-gated actions on other users' data are allowed.
	if auth.Authorize(claims, []domain.Role{domain.RoleInstructor}, "other-user-id") != auth.Allow {
		t.Fatal("admin claims must pass any role and ownership gate")
	}
}

func TestLoginGolferOwnership(t *testing.T) {
	svc, users := newTestAuthService(t)
	golfer := seedUser(t, users, "g@x.com", "Secret123", domain.RoleGolfer)

	_, session, err := svc.Login(context.Background(), "g@x.com", "Secret123", "")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	claims, err := svc.TokenManager().Parse(session.Token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if auth.Authorize(claims, []domain.Role{domain.RoleGolfer}, golfer.ID) != auth.Allow {
		t.Fatal("golfer must access own resources")
	}
	if auth.Authorize(claims, []domain.Role{domain.RoleGolfer}, "someone-else") != auth.Deny {
		t.Fatal("golfer must not access other golfers' resources")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, users := newTestAuthService(t)
	seedUser(t, users, "a@x.com", "Secret123", domain.RoleGolfer)

	_, _, wrongPass := svc.Login(context.Background(), "a@x.com", "WrongPass", "")
	_, _, noUser := svc.Login(context.Background(), "ghost@x.com", "Secret123", "")

	if wrongPass == nil || noUser == nil {
		t.Fatal("both failure paths must error")
	}

	var wrongPassErr, noUserErr *apperrors.DomainError
	if !errors.As(wrongPass, &wrongPassErr) || !errors.As(noUser, &noUserErr) {
		t.Fatal("login failures must be DomainErrors")
	}
	if wrongPassErr.Code != noUserErr.Code ||
		wrongPassErr.Message != noUserErr.Message ||
		wrongPassErr.HTTPStatus != noUserErr.HTTPStatus {
		t.Fatalf("failure shapes differ: %+v vs %+v", wrongPassErr, noUserErr)
	}
	if wrongPassErr.HTTPStatus != 401 {
		t.Fatalf("invalid credentials must be 401, got %d", wrongPassErr.HTTPStatus)
	}
}

func TestLoginRefusesCorruptStoredRole(t *testing.T) {
	svc, users := newTestAuthService(t)
	user := seedUser(t, users, "a@x.com", "Secret123", domain.RoleGolfer)

	// Corrupt the stored role behind the service's back.
	stored := users.byID[user.ID]
	stored.Role = domain.Role("superuser")

	_, _, err := svc.Login(context.Background(), "a@x.com", "Secret123", "")
	if err == nil {
		t.Fatal("issuance must fail closed on an unrecognized stored role")
	}

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if domainErr.Code != "INVALID_ROLE" || domainErr.HTTPStatus != 500 {
		t.Fatalf("expected INVALID_ROLE/500, got %s/%d", domainErr.Code, domainErr.HTTPStatus)
	}
}

func TestRegisterIssuesSessionAndRejectsDuplicates(t *testing.T) {
	svc, _ := newTestAuthService(t)

	input := RegisterInput{
		FirstName: "New",
		LastName:  "Golfer",
		Email:     "new@x.com",
		Password:  "Secret123",
		Role:      domain.RoleGolfer,
	}
	user, session, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "Secret123" {
		t.Fatal("password must be stored hashed")
	}
	if session == nil || session.Token == "" {
		t.Fatal("registration must issue a session")
	}

	if _, _, err := svc.Register(context.Background(), input); err == nil {
		t.Fatal("duplicate email must be rejected")
	}
}

func TestChangePassword(t *testing.T) {
	svc, users := newTestAuthService(t)
	user := seedUser(t, users, "a@x.com", "OldPass1", domain.RoleGolfer)

	if err := svc.ChangePassword(context.Background(), user.ID, "wrong", "NewPass1"); err == nil {
		t.Fatal("wrong current password must be rejected")
	}
	if err := svc.ChangePassword(context.Background(), user.ID, "OldPass1", "NewPass1"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "a@x.com", "OldPass1", ""); err == nil {
		t.Fatal("old password must no longer work")
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", "NewPass1", ""); err != nil {
		t.Fatalf("new password must work: %v", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, users := newTestAuthService(t)
	seedUser(t, users, "a@x.com", "OldPass1", domain.RoleGolfer)

	token, err := svc.RequestPasswordReset(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("RequestPasswordReset failed: %v", err)
	}
	if token.Token == "" {
		t.Fatal("reset token must be non-empty")
	}

	if err := svc.ConfirmPasswordReset(context.Background(), token.Token, "NewPass1"); err != nil {
		t.Fatalf("ConfirmPasswordReset failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", "NewPass1", ""); err != nil {
		t.Fatalf("reset password must work: %v", err)
	}

	// A used token cannot be replayed.
	if err := svc.ConfirmPasswordReset(context.Background(), token.Token, "Another1"); err == nil {
		t.Fatal("used reset token must be rejected")
	}
}
