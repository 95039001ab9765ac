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

// UserDatabaseAdapter implements domain.UserRepository using sqlx.
type UserDatabaseAdapter struct {
	db *sqlx.DB
}

// NewUserDatabaseAdapter creates a new instance of UserDatabaseAdapter
func NewUserDatabaseAdapter(db *sqlx.DB) domain.UserRepository {
	return &UserDatabaseAdapter{db: db}
}

const userColumns = `
	id "id",
	username "username",
	password_hash "password_hash",
	user_role "user_role",
	created_at "created_at",
	updated_at "updated_at",
	deleted_at "deleted_at"`

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.UserRole),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CreateUser inserts a new user row and assigns it a fresh ULID.
func (a *UserDatabaseAdapter) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("cannot save nil user")
	}
	id := util.NewULID()
	now := time.Now()

	query := `INSERT INTO users (
		id, username, password_hash, user_role, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	executor := GetExecutor(ctx, a.db)
	_, err := executor.ExecContext(ctx, query,
		id,
		user.Username,
		user.PasswordHash,
		string(user.Role),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// GetUserByID returns the user with the given id, or (nil, nil).
func (a *UserDatabaseAdapter) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	var model models.User
	query := `SELECT ` + userColumns + `
	FROM users
	WHERE id = :1
	AND deleted_at IS NULL`

	executor := GetExecutor(ctx, a.db)
	err := executor.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return toDomainUser(&model), nil
}

// GetUserByUsername returns the user with the given username, or (nil, nil).
func (a *UserDatabaseAdapter) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var model models.User
	query := `SELECT ` + userColumns + `
	FROM users
	WHERE username = :1
	AND deleted_at IS NULL
	FETCH FIRST 1 ROWS ONLY`

	executor := GetExecutor(ctx, a.db)
	err := executor.GetContext(ctx, &model, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username %q: %w", username, err)
	}
	return toDomainUser(&model), nil
}
