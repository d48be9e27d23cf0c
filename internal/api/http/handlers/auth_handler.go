package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Haryordeji/edu-sports-sub000/internal/api/dto"
	"github.com/Haryordeji/edu-sports-sub000/internal/auth"
	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
	"github.com/Haryordeji/edu-sports-sub000/internal/service"
	apperrors "github.com/Haryordeji/edu-sports-sub000/pkg/util"
)

// AuthHandler exposes login, registration and password endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register. Self-registration always
// creates golfers; instructors and admins are provisioned by an admin.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return apperrors.NewValidationError("first_name, email, password required", nil)
	}

	user, session, err := h.auth.Register(c.Context(), service.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      req.Phone,
		Password:   req.Password,
		Role:       domain.RoleGolfer,
		Experience: domain.ExperienceLevel(req.Experience),
	})
	if err != nil {
		return err
	}

	c.Cookie(h.auth.Issuer().Cookie(session))
	return c.Status(http.StatusCreated).JSON(dto.LoginResponse{
		Success: true,
		User:    userSummary(user),
		Token:   session.Token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, session, err := h.auth.Login(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password, c.IP())
	if err != nil {
		return err
	}

	c.Cookie(h.auth.Issuer().Cookie(session))
	return c.JSON(dto.LoginResponse{
		Success: true,
		User:    userSummary(user),
		Token:   session.Token,
	})
}

// Logout handles POST /api/auth/logout. Clears the cookie only; the token
// stays valid until natural expiry since there is no revocation store.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.auth.Issuer().ExpiredCookie())
	return c.JSON(fiber.Map{"success": true})
}

// RequestPasswordReset handles POST /api/auth/password/reset/request. The
// response is identical whether or not the email exists.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	_, _ = h.auth.RequestPasswordReset(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	return c.JSON(fiber.Map{"success": true, "message": "if the account exists, a reset email was sent"})
}

// ConfirmPasswordReset handles POST /api/auth/password/reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Token == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("token and new_password required", nil)
	}

	if err := h.auth.ConfirmPasswordReset(c.Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ChangePassword handles POST /api/auth/password/change for the
// authenticated caller.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("missing credentials")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current_password and new_password required", nil)
	}

	if err := h.auth.ChangePassword(c.Context(), claims.SubjectID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func userSummary(user *domain.User) dto.UserSummary {
	return dto.UserSummary{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       string(user.Role),
		Experience: string(user.Experience),
		CreatedAt:  user.CreatedAt,
	}
}
