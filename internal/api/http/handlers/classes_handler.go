package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Haryordeji/edu-sports-sub000/internal/api/dto"
	"github.com/Haryordeji/edu-sports-sub000/internal/auth"
	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
	"github.com/Haryordeji/edu-sports-sub000/internal/service"
	apperrors "github.com/Haryordeji/edu-sports-sub000/pkg/util"
)

// ClassesHandler manages lesson schedule endpoints.
type ClassesHandler struct {
	classes *service.ClassService
}

// NewClassesHandler constructs handler.
func NewClassesHandler(classService *service.ClassService) *ClassesHandler {
	return &ClassesHandler{classes: classService}
}

// List GET /api/classes. Any authenticated role.
func (h *ClassesHandler) List(c *fiber.Ctx) error {
	classes, err := h.classes.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		items = append(items, classResponse(&classes[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /api/classes. Admin only.
func (h *ClassesHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("missing credentials")
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.InstructorID == "" {
		return apperrors.NewValidationError("title and instructor_id required", nil)
	}

	class, err := h.classes.Schedule(c.Context(), claims.SubjectID, service.ClassInput{
		Title:        req.Title,
		InstructorID: req.InstructorID,
		Level:        domain.ExperienceLevel(req.Level),
		Location:     req.Location,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Capacity:     req.Capacity,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": classResponse(class)})
}

// Delete DELETE /api/classes/:id. Admin only.
func (h *ClassesHandler) Delete(c *fiber.Ctx) error {
	if err := h.classes.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Register POST /api/classes/:id/register. Golfers sign themselves up.
func (h *ClassesHandler) Register(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("missing credentials")
	}

	reg, err := h.classes.RegisterGolfer(c.Context(), c.Params("id"), claims.SubjectID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": registrationResponse(reg)})
}

// Registrations GET /api/classes/:id/registrations. Admin and instructors.
func (h *ClassesHandler) Registrations(c *fiber.Ctx) error {
	regs, err := h.classes.Registrations(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.RegistrationResponse, 0, len(regs))
	for i := range regs {
		items = append(items, registrationResponse(&regs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func classResponse(class *domain.Class) dto.ClassResponse {
	return dto.ClassResponse{
		ID:           class.ID,
		Title:        class.Title,
		InstructorID: class.InstructorID,
		Level:        string(class.Level),
		Location:     class.Location,
		StartsAt:     class.StartsAt,
		EndsAt:       class.EndsAt,
		Capacity:     class.Capacity,
	}
}

func registrationResponse(reg *domain.ClassRegistration) dto.RegistrationResponse {
	return dto.RegistrationResponse{
		ID:        reg.ID,
		ClassID:   reg.ClassID,
		GolferID:  reg.GolferID,
		CreatedAt: reg.CreatedAt,
	}
}
