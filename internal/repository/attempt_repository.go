package repository

import (
	"context"
	"fmt"
	"time"

	"learnbyte/internal/domain"
	"learnbyte/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizAttemptDatabaseAdapter implements domain.QuizAttemptRepository using sqlx.
type QuizAttemptDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizAttemptDatabaseAdapter creates a new instance of QuizAttemptDatabaseAdapter
func NewQuizAttemptDatabaseAdapter(db *sqlx.DB) domain.QuizAttemptRepository {
	return &QuizAttemptDatabaseAdapter{db: db}
}

// CreateAttempt records a graded quiz attempt.
func (a *QuizAttemptDatabaseAdapter) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if attempt == nil {
		return fmt.Errorf("cannot save nil quiz attempt")
	}
	if err := attempt.Validate(); err != nil {
		return err
	}
	id := util.NewULID()
	now := time.Now()
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = now
	}

	query := `INSERT INTO quiz_attempts (
		id, user_id, module_id, score, attempted_at, created_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	executor := GetExecutor(ctx, a.db)
	_, err := executor.ExecContext(ctx, query,
		id,
		attempt.UserID,
		attempt.ModuleID,
		attempt.Score,
		attempt.AttemptedAt,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz attempt: %w", err)
	}

	attempt.ID = id
	attempt.CreatedAt = now
	return nil
}

// GetScoresByModuleID returns every recorded score for the module. The
// slice is empty when the module has no attempts yet.
func (a *QuizAttemptDatabaseAdapter) GetScoresByModuleID(ctx context.Context, moduleID string) ([]float64, error) {
	var scores []float64
	query := `SELECT score FROM quiz_attempts WHERE module_id = :1 ORDER BY attempted_at ASC`

	executor := GetExecutor(ctx, a.db)
	if err := executor.SelectContext(ctx, &scores, query, moduleID); err != nil {
		return nil, fmt.Errorf("failed to query scores for module %s: %w", moduleID, err)
	}
	return scores, nil
}
