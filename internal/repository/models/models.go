package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string list as a JSON array in a single text column.
// JSON keeps the encoding reversible for any option text, including text
// containing delimiter characters.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// Course model
type Course struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	ExternalID  sql.NullString `db:"external_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   sql.NullTime   `db:"deleted_at"`
}

// Module model
type Module struct {
	ID        string       `db:"id"`
	CourseID  string       `db:"course_id"`
	Title     string       `db:"title"`
	Content   string       `db:"content"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

// QuizQuestion model
type QuizQuestion struct {
	ID        string       `db:"id"`
	ModuleID  string       `db:"module_id"`
	Question  string       `db:"question"`
	Options   StringSlice  `db:"options"`
	Answer    string       `db:"answer"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

// QuizAttempt model
type QuizAttempt struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	ModuleID    string    `db:"module_id"`
	Score       float64   `db:"score"`
	AttemptedAt time.Time `db:"attempted_at"`
	CreatedAt   time.Time `db:"created_at"`
}

// User model
type User struct {
	ID           string       `db:"id"`
	Username     string       `db:"username"`
	PasswordHash string       `db:"password_hash"`
	UserRole     string       `db:"user_role"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
}
