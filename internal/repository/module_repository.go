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

// ModuleDatabaseAdapter implements domain.ModuleRepository using sqlx.
type ModuleDatabaseAdapter struct {
	db *sqlx.DB
}

// NewModuleDatabaseAdapter creates a new instance of ModuleDatabaseAdapter
func NewModuleDatabaseAdapter(db *sqlx.DB) domain.ModuleRepository {
	return &ModuleDatabaseAdapter{db: db}
}

const moduleColumns = `
	id "id",
	course_id "course_id",
	title "title",
	content "content",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

func toDomainModule(m *models.Module) *domain.Module {
	if m == nil {
		return nil
	}
	return &domain.Module{
		ID:        m.ID,
		CourseID:  m.CourseID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateModule inserts a new module row and assigns it a fresh ULID.
func (a *ModuleDatabaseAdapter) CreateModule(ctx context.Context, module *domain.Module) error {
	if module == nil {
		return fmt.Errorf("cannot save nil module")
	}
	id := util.NewULID()
	now := time.Now()

	query := `INSERT INTO modules (
		id, course_id, title, content, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	executor := GetExecutor(ctx, a.db)
	_, err := executor.ExecContext(ctx, query,
		id,
		module.CourseID,
		module.Title,
		module.Content,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save module: %w", err)
	}

	module.ID = id
	module.CreatedAt = now
	module.UpdatedAt = now
	return nil
}

// GetModuleByID returns the module with the given id, or (nil, nil).
func (a *ModuleDatabaseAdapter) GetModuleByID(ctx context.Context, id string) (*domain.Module, error) {
	var model models.Module
	query := `SELECT ` + moduleColumns + `
	FROM modules
	WHERE id = :1
	AND deleted_at IS NULL`

	executor := GetExecutor(ctx, a.db)
	err := executor.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get module by ID %s: %w", id, err)
	}
	return toDomainModule(&model), nil
}

// GetModulesByCourseID returns every non-deleted module of a course in
// creation order.
func (a *ModuleDatabaseAdapter) GetModulesByCourseID(ctx context.Context, courseID string) ([]*domain.Module, error) {
	var modelModules []models.Module
	query := `SELECT ` + moduleColumns + `
	FROM modules
	WHERE course_id = :1
	AND deleted_at IS NULL
	ORDER BY created_at ASC`

	executor := GetExecutor(ctx, a.db)
	if err := executor.SelectContext(ctx, &modelModules, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to query modules for course %s: %w", courseID, err)
	}

	modules := make([]*domain.Module, 0, len(modelModules))
	for i := range modelModules {
		modules = append(modules, toDomainModule(&modelModules[i]))
	}
	return modules, nil
}

// GetModuleByTitleAndCourseID is the dedup lookup used by catalog sync;
// returns (nil, nil) when no module matches.
func (a *ModuleDatabaseAdapter) GetModuleByTitleAndCourseID(ctx context.Context, title, courseID string) (*domain.Module, error) {
	var model models.Module
	query := `SELECT ` + moduleColumns + `
	FROM modules
	WHERE title = :1
	AND course_id = :2
	AND deleted_at IS NULL
	FETCH FIRST 1 ROWS ONLY`

	executor := GetExecutor(ctx, a.db)
	err := executor.GetContext(ctx, &model, query, title, courseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get module by title %q for course %s: %w", title, courseID, err)
	}
	return toDomainModule(&model), nil
}
