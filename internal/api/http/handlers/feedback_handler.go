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

// FeedbackHandler manages swing evaluation endpoints.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedbackService}
}

// Create POST /api/feedback. Instructors (and admin) only; the author is
// always the authenticated caller.
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("missing credentials")
	}

	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.GolferID == "" || strings.TrimSpace(req.Note) == "" {
		return apperrors.NewValidationError("golfer_id and note required", nil)
	}

	feedback, err := h.feedback.Create(c.Context(), claims.SubjectID, service.FeedbackInput{
		GolferID: req.GolferID,
		Area:     domain.SwingArea(req.Area),
		Rating:   req.Rating,
		Note:     req.Note,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": feedbackResponse(feedback)})
}

// ListForGolfer GET /api/golfers/:id/feedback. Ownership-gated: the golfer
// themselves or an admin.
func (h *FeedbackHandler) ListForGolfer(c *fiber.Ctx) error {
	entries, err := h.feedback.ListForGolfer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.FeedbackResponse, 0, len(entries))
	for i := range entries {
		items = append(items, feedbackResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Delete DELETE /api/feedback/:id. Admin only.
func (h *FeedbackHandler) Delete(c *fiber.Ctx) error {
	if err := h.feedback.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func feedbackResponse(feedback *domain.SwingFeedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:           feedback.ID,
		GolferID:     feedback.GolferID,
		InstructorID: feedback.InstructorID,
		Area:         string(feedback.Area),
		Rating:       feedback.Rating,
		Note:         feedback.Note,
		CreatedAt:    feedback.CreatedAt,
	}
}
