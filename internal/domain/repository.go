package domain

import "context"

// CourseRepository provides persistence for courses.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course *Course) error
	GetCourseByID(ctx context.Context, id string) (*Course, error)
	// GetCourseByTitle matches by exact title; returns (nil, nil) when absent.
	// Title is the dedup key used by catalog sync.
	GetCourseByTitle(ctx context.Context, title string) (*Course, error)
	GetAllCourses(ctx context.Context) ([]*Course, error)
}

// ModuleRepository provides persistence for modules.
type ModuleRepository interface {
	CreateModule(ctx context.Context, module *Module) error
	GetModuleByID(ctx context.Context, id string) (*Module, error)
	GetModulesByCourseID(ctx context.Context, courseID string) ([]*Module, error)
	// GetModuleByTitleAndCourseID is the sync dedup lookup; returns (nil, nil)
	// when absent.
	GetModuleByTitleAndCourseID(ctx context.Context, title, courseID string) (*Module, error)
}

// QuizQuestionRepository provides persistence for generated quiz questions.
type QuizQuestionRepository interface {
	CreateQuestion(ctx context.Context, question *QuizQuestion) error
	GetQuestionsByModuleID(ctx context.Context, moduleID string) ([]*QuizQuestion, error)
	CountQuestionsByModuleID(ctx context.Context, moduleID string) (int, error)
}

// QuizAttemptRepository provides persistence for quiz attempts.
type QuizAttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
	GetScoresByModuleID(ctx context.Context, moduleID string) ([]float64, error)
}

// UserRepository provides persistence for users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// TransactionManager runs a function within a database transaction. The
// transaction is carried in the context and picked up by the repositories.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
