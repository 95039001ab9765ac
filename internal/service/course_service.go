package service

import (
	"context"
	"fmt"

	"learnbyte/internal/domain"
	"learnbyte/internal/dto"
)

// CourseService handles course and module CRUD for locally authored content.
type CourseService struct {
	courseRepo domain.CourseRepository
	moduleRepo domain.ModuleRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo domain.CourseRepository, moduleRepo domain.ModuleRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo, moduleRepo: moduleRepo}
}

// CreateCourse creates a new course. Titles are unique; creating a course
// with an existing title fails.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := domain.NewCourse(req.Title, req.Description)
	if err := course.Validate(); err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}

	existing, err := s.courseRepo.GetCourseByTitle(ctx, course.Title)
	if err != nil {
		return nil, domain.NewInternalError("failed to check course title", err)
	}
	if existing != nil {
		return nil, domain.NewAlreadyExistsError(fmt.Sprintf("course titled %q already exists", course.Title))
	}

	if err := s.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, domain.NewInternalError("failed to create course", err)
	}
	return toCourseResponse(course), nil
}

// GetCourse returns one course by id.
func (s *CourseService) GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("course %s not found", id))
	}
	return toCourseResponse(course), nil
}

// ListCourses returns all courses ordered by title.
func (s *CourseService) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list courses", err)
	}
	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, *toCourseResponse(c))
	}
	return responses, nil
}

// CreateModule adds a module to an existing course. Module titles are unique
// within a course.
func (s *CourseService) CreateModule(ctx context.Context, courseID string, req *dto.CreateModuleRequest) (*dto.ModuleResponse, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("course %s not found", courseID))
	}

	module := domain.NewModule(courseID, req.Title, req.Content)
	if err := module.Validate(); err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}

	existing, err := s.moduleRepo.GetModuleByTitleAndCourseID(ctx, module.Title, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to check module title", err)
	}
	if existing != nil {
		return nil, domain.NewAlreadyExistsError(fmt.Sprintf("module titled %q already exists in this course", module.Title))
	}

	if err := s.moduleRepo.CreateModule(ctx, module); err != nil {
		return nil, domain.NewInternalError("failed to create module", err)
	}
	return toModuleResponse(module), nil
}

// GetModule returns one module by id.
func (s *CourseService) GetModule(ctx context.Context, id string) (*dto.ModuleResponse, error) {
	module, err := s.moduleRepo.GetModuleByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up module", err)
	}
	if module == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("module %s not found", id))
	}
	return toModuleResponse(module), nil
}

// ListModules returns the modules of a course in creation order.
func (s *CourseService) ListModules(ctx context.Context, courseID string) ([]dto.ModuleResponse, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("course %s not found", courseID))
	}

	modules, err := s.moduleRepo.GetModulesByCourseID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list modules", err)
	}
	responses := make([]dto.ModuleResponse, 0, len(modules))
	for _, m := range modules {
		responses = append(responses, *toModuleResponse(m))
	}
	return responses, nil
}

func toCourseResponse(c *domain.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func toModuleResponse(m *domain.Module) *dto.ModuleResponse {
	return &dto.ModuleResponse{
		ID:        m.ID,
		CourseID:  m.CourseID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
