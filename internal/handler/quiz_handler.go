package handler

import (
	"learnbyte/internal/domain"
	"learnbyte/internal/dto"
	"learnbyte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz generation, taking and explanations.
type QuizHandler struct {
	quizService        *service.QuizService
	explanationService *service.ExplanationService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService *service.QuizService, explanationService *service.ExplanationService) *QuizHandler {
	return &QuizHandler{
		quizService:        quizService,
		explanationService: explanationService,
	}
}

// GenerateQuiz handles POST /api/modules/:id/quiz/generate. Admin only.
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	if err := RequireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	result, err := h.quizService.EnsureQuizGenerated(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if result.AlreadyGenerated {
		return c.JSON(result)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetQuiz handles GET /api/modules/:id/quiz
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	resp, err := h.quizService.GetQuizForModule(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitQuiz handles POST /api/modules/:id/quiz/submit
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	result, err := h.quizService.SubmitQuiz(c.Context(), currentUserID(c), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ExplainModule handles POST /api/modules/:id/explain. The body carries the
// student's free-form question about the module.
func (h *QuizHandler) ExplainModule(c *fiber.Ctx) error {
	var req dto.ExplainRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.explanationService.Explain(c.Context(), c.Params("id"), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
