package domain

import "time"

// Course represents a course owning a set of modules.
// ExternalID carries the remote catalog id when the course was imported;
// it is empty for locally authored courses.
type Course struct {
	ID          string
	Title       string
	Description string
	ExternalID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCourse creates a new Course instance
func NewCourse(title, description string) *Course {
	now := time.Now()
	return &Course{
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the course
func (c *Course) Validate() error {
	if c.Title == "" {
		return NewValidationError("title is required")
	}
	return nil
}

// Module represents a content unit belonging to a course. Its content blob is
// the input to quiz generation and adaptive explanations and is never mutated
// by the pipeline.
type Module struct {
	ID        string
	CourseID  string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewModule creates a new Module instance
func NewModule(courseID, title, content string) *Module {
	now := time.Now()
	return &Module{
		CourseID:  courseID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the module
func (m *Module) Validate() error {
	if m.CourseID == "" {
		return NewValidationError("course ID is required")
	}
	if m.Title == "" {
		return NewValidationError("title is required")
	}
	return nil
}
