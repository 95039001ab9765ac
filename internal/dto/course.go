package dto

import "time"

// CreateCourseRequest is the admin payload for creating a course.
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateModuleRequest is the admin payload for adding a module to a course.
type CreateModuleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CourseResponse is the outward view of a course.
type CourseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ModuleResponse is the outward view of a module.
type ModuleResponse struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
