package handler

import (
	"learnbyte/internal/domain"
	"learnbyte/internal/dto"
	"learnbyte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler handles course and module CRUD plus analytics.
type CourseHandler struct {
	courseService    *service.CourseService
	analyticsService *service.AnalyticsService
}

// NewCourseHandler creates a new CourseHandler instance
func NewCourseHandler(courseService *service.CourseService, analyticsService *service.AnalyticsService) *CourseHandler {
	return &CourseHandler{
		courseService:    courseService,
		analyticsService: analyticsService,
	}
}

// CreateCourse handles POST /api/courses. Admin only.
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	if err := RequireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.courseService.CreateCourse(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCourses handles GET /api/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.courseService.ListCourses(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// GetCourse handles GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	resp, err := h.courseService.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateModule handles POST /api/courses/:id/modules. Admin only.
func (h *CourseHandler) CreateModule(c *fiber.Ctx) error {
	if err := RequireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	var req dto.CreateModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.courseService.CreateModule(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListModules handles GET /api/courses/:id/modules
func (h *CourseHandler) ListModules(c *fiber.Ctx) error {
	modules, err := h.courseService.ListModules(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(modules)
}

// GetModule handles GET /api/modules/:id
func (h *CourseHandler) GetModule(c *fiber.Ctx) error {
	resp, err := h.courseService.GetModule(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetModuleStats handles GET /api/modules/:id/stats. Admin only.
func (h *CourseHandler) GetModuleStats(c *fiber.Ctx) error {
	if err := RequireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	stats, err := h.analyticsService.ModuleStats(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// GetCourseStats handles GET /api/courses/:id/stats. Admin only.
func (h *CourseHandler) GetCourseStats(c *fiber.Ctx) error {
	if err := RequireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	stats, err := h.analyticsService.CourseStats(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
