package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"learnbyte/internal/domain"
	"learnbyte/internal/repository/models"
	"learnbyte/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupTestDB creates a sqlx.DB backed by sqlmock for repository tests.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func courseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "external_id", "created_at", "updated_at", "deleted_at"})
}

func TestCreateCourse(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)

	course := &domain.Course{
		Title:       "Algorithms 101",
		Description: "Sorting and searching",
		ExternalID:  "42",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO courses")).
		WithArgs(sqlmock.AnyArg(), course.Title, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateCourse(context.Background(), course)

	assert.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.NotZero(t, course.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourseByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)

	id := util.NewULID()
	now := time.Now()
	rows := courseRows().AddRow(id, "Algorithms 101", sql.NullString{String: "Desc", Valid: true}, sql.NullString{}, now, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
		WithArgs(id).
		WillReturnRows(rows)

	course, err := repo.GetCourseByID(context.Background(), id)

	assert.NoError(t, err)
	assert.NotNil(t, course)
	assert.Equal(t, id, course.ID)
	assert.Equal(t, "Algorithms 101", course.Title)
	assert.Equal(t, "Desc", course.Description)
	assert.Empty(t, course.ExternalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourseByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)

	id := util.NewULID()
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	course, err := repo.GetCourseByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, course)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourseByTitle(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)

	id := util.NewULID()
	now := time.Now()
	rows := courseRows().AddRow(id, "Networking", sql.NullString{}, sql.NullString{String: "7", Valid: true}, now, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
		WithArgs("Networking").
		WillReturnRows(rows)

	course, err := repo.GetCourseByTitle(context.Background(), "Networking")

	assert.NoError(t, err)
	assert.NotNil(t, course)
	assert.Equal(t, "Networking", course.Title)
	assert.Equal(t, "7", course.ExternalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourseByTitle_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
		WithArgs("Missing").
		WillReturnError(sql.ErrNoRows)

	course, err := repo.GetCourseByTitle(context.Background(), "Missing")

	assert.NoError(t, err)
	assert.Nil(t, course)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCourses(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCourseDatabaseAdapter(db)

	now := time.Now()
	rows := courseRows().
		AddRow(util.NewULID(), "Algorithms", sql.NullString{}, sql.NullString{}, now, now, nil).
		AddRow(util.NewULID(), "Databases", sql.NullString{}, sql.NullString{}, now, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).WillReturnRows(rows)

	courses, err := repo.GetAllCourses(context.Background())

	assert.NoError(t, err)
	assert.Len(t, courses, 2)
	assert.Equal(t, "Algorithms", courses[0].Title)
	assert.Equal(t, "Databases", courses[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToDomainCourse(t *testing.T) {
	now := time.Now()
	model := &models.Course{
		ID:          "c1",
		Title:       "Course 1",
		Description: sql.NullString{String: "Description 1", Valid: true},
		ExternalID:  sql.NullString{String: "11", Valid: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	d := toDomainCourse(model)
	assert.NotNil(t, d)
	assert.Equal(t, model.ID, d.ID)
	assert.Equal(t, model.Title, d.Title)
	assert.Equal(t, "Description 1", d.Description)
	assert.Equal(t, "11", d.ExternalID)
	assert.True(t, model.CreatedAt.Equal(d.CreatedAt))

	assert.Nil(t, toDomainCourse(nil))
}

func TestFromDomainCourse(t *testing.T) {
	d := &domain.Course{
		ID:          "c1",
		Title:       "Course 1",
		Description: "",
		ExternalID:  "11",
	}
	model := fromDomainCourse(d)
	assert.NotNil(t, model)
	assert.Equal(t, d.ID, model.ID)
	assert.False(t, model.Description.Valid)
	assert.True(t, model.ExternalID.Valid)
	assert.Equal(t, "11", model.ExternalID.String)

	assert.Nil(t, fromDomainCourse(nil))
}
