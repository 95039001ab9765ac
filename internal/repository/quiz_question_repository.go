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

// QuizQuestionDatabaseAdapter implements domain.QuizQuestionRepository using sqlx.
type QuizQuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizQuestionDatabaseAdapter creates a new instance of QuizQuestionDatabaseAdapter
func NewQuizQuestionDatabaseAdapter(db *sqlx.DB) domain.QuizQuestionRepository {
	return &QuizQuestionDatabaseAdapter{db: db}
}

const questionColumns = `
	id "id",
	module_id "module_id",
	question "question",
	options "options",
	answer "answer",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

func toDomainQuizQuestion(m *models.QuizQuestion) *domain.QuizQuestion {
	if m == nil {
		return nil
	}
	return &domain.QuizQuestion{
		ID:        m.ID,
		ModuleID:  m.ModuleID,
		Question:  m.Question,
		Options:   []string(m.Options),
		Answer:    m.Answer,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateQuestion inserts a new quiz question row. Options are serialized to a
// single column through models.StringSlice only at this boundary.
func (a *QuizQuestionDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.QuizQuestion) error {
	if question == nil {
		return fmt.Errorf("cannot save nil quiz question")
	}
	id := util.NewULID()
	now := time.Now()

	optionsValue, err := models.StringSlice(question.Options).Value()
	if err != nil {
		return fmt.Errorf("failed to serialize question options: %w", err)
	}

	query := `INSERT INTO quiz_questions (
		id, module_id, question, options, answer, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	executor := GetExecutor(ctx, a.db)
	_, err = executor.ExecContext(ctx, query,
		id,
		question.ModuleID,
		question.Question,
		optionsValue,
		question.Answer,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz question: %w", err)
	}

	question.ID = id
	question.CreatedAt = now
	question.UpdatedAt = now
	return nil
}

// GetQuestionsByModuleID returns the module's questions in creation order.
func (a *QuizQuestionDatabaseAdapter) GetQuestionsByModuleID(ctx context.Context, moduleID string) ([]*domain.QuizQuestion, error) {
	var modelQuestions []models.QuizQuestion
	query := `SELECT ` + questionColumns + `
	FROM quiz_questions
	WHERE module_id = :1
	AND deleted_at IS NULL
	ORDER BY created_at ASC`

	executor := GetExecutor(ctx, a.db)
	if err := executor.SelectContext(ctx, &modelQuestions, query, moduleID); err != nil {
		return nil, fmt.Errorf("failed to query questions for module %s: %w", moduleID, err)
	}

	questions := make([]*domain.QuizQuestion, 0, len(modelQuestions))
	for i := range modelQuestions {
		questions = append(questions, toDomainQuizQuestion(&modelQuestions[i]))
	}
	return questions, nil
}

// CountQuestionsByModuleID reports how many questions reference the module.
func (a *QuizQuestionDatabaseAdapter) CountQuestionsByModuleID(ctx context.Context, moduleID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM quiz_questions WHERE module_id = :1 AND deleted_at IS NULL`

	executor := GetExecutor(ctx, a.db)
	if err := executor.GetContext(ctx, &count, query, moduleID); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count questions for module %s: %w", moduleID, err)
	}
	return count, nil
}
