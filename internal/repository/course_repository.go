package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"learnbyte/internal/domain"
	"learnbyte/internal/repository/models"
	"learnbyte/internal/util"

	"github.com/jmoiron/sqlx"
)

// CourseDatabaseAdapter implements domain.CourseRepository using sqlx.
type CourseDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCourseDatabaseAdapter creates a new instance of CourseDatabaseAdapter
func NewCourseDatabaseAdapter(db *sqlx.DB) domain.CourseRepository {
	return &CourseDatabaseAdapter{db: db}
}

const courseColumns = `
	id "id",
	title "title",
	description "description",
	external_id "external_id",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

func toDomainCourse(m *models.Course) *domain.Course {
	if m == nil {
		return nil
	}
	return &domain.Course{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description.String,
		ExternalID:  m.ExternalID.String,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDomainCourse(d *domain.Course) *models.Course {
	if d == nil {
		return nil
	}
	return &models.Course{
		ID:          d.ID,
		Title:       d.Title,
		Description: util.StringToNullString(d.Description),
		ExternalID:  util.StringToNullString(d.ExternalID),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// CreateCourse inserts a new course row and assigns it a fresh ULID.
func (a *CourseDatabaseAdapter) CreateCourse(ctx context.Context, course *domain.Course) error {
	model := fromDomainCourse(course)
	if model == nil {
		return fmt.Errorf("cannot save nil course")
	}
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()
	model.UpdatedAt = time.Now()

	query := `INSERT INTO courses (
		id, title, description, external_id, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	executor := GetExecutor(ctx, a.db)
	_, err := executor.ExecContext(ctx, query,
		model.ID,
		model.Title,
		model.Description,
		model.ExternalID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}

	course.ID = model.ID
	course.CreatedAt = model.CreatedAt
	course.UpdatedAt = model.UpdatedAt
	return nil
}

// GetCourseByID returns the course with the given id, or (nil, nil).
func (a *CourseDatabaseAdapter) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	var model models.Course
	query := `SELECT ` + courseColumns + `
	FROM courses
	WHERE id = :1
	AND deleted_at IS NULL`

	executor := GetExecutor(ctx, a.db)
	err := executor.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by ID %s: %w", id, err)
	}
	return toDomainCourse(&model), nil
}

// GetCourseByTitle returns the course with the given exact title, or (nil, nil).
func (a *CourseDatabaseAdapter) GetCourseByTitle(ctx context.Context, title string) (*domain.Course, error) {
	var model models.Course
	query := `SELECT ` + courseColumns + `
	FROM courses
	WHERE title = :1
	AND deleted_at IS NULL
	FETCH FIRST 1 ROWS ONLY`

	executor := GetExecutor(ctx, a.db)
	err := executor.GetContext(ctx, &model, query, title)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by title %q: %w", title, err)
	}
	return toDomainCourse(&model), nil
}

// GetAllCourses returns every non-deleted course ordered by title.
func (a *CourseDatabaseAdapter) GetAllCourses(ctx context.Context) ([]*domain.Course, error) {
	var modelCourses []models.Course
	query := `SELECT ` + courseColumns + `
	FROM courses
	WHERE deleted_at IS NULL
	ORDER BY title ASC`

	executor := GetExecutor(ctx, a.db)
	if err := executor.SelectContext(ctx, &modelCourses, query); err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}

	courses := make([]*domain.Course, 0, len(modelCourses))
	for i := range modelCourses {
		courses = append(courses, toDomainCourse(&modelCourses[i]))
	}
	return courses, nil
}
