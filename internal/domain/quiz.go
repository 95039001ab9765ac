package domain

import (
	"strings"
	"time"
)

// GeneratedQuestion is the transient output of the quiz response parser.
// Options hold the full option lines verbatim ("A) Chlorophyll"), order
// preserved; CorrectLabel is the text after the "Correct answer:" marker.
type GeneratedQuestion struct {
	Text         string
	Options      []string
	CorrectLabel string
}

// Complete reports whether the question satisfies the completeness invariant:
// non-empty text, at least one option and a non-empty correct label.
// Incomplete questions are dropped by the parser, never emitted.
func (q GeneratedQuestion) Complete() bool {
	return q.Text != "" && len(q.Options) > 0 && q.CorrectLabel != ""
}

// QuizQuestion is a persisted multiple-choice question owned by a module.
// Rows are created only by the generation pipeline and never updated in place.
type QuizQuestion struct {
	ID        string
	ModuleID  string
	Question  string
	Options   []string
	Answer    string // correct option label
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuizQuestion creates a QuizQuestion from a parsed GeneratedQuestion.
func NewQuizQuestion(moduleID string, g GeneratedQuestion) *QuizQuestion {
	now := time.Now()
	return &QuizQuestion{
		ModuleID:  moduleID,
		Question:  g.Text,
		Options:   g.Options,
		Answer:    g.CorrectLabel,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the quiz question
func (q *QuizQuestion) Validate() error {
	if q.ModuleID == "" {
		return NewValidationError("module ID is required")
	}
	if q.Question == "" {
		return NewValidationError("question is required")
	}
	if len(q.Options) == 0 {
		return NewValidationError("at least one option is required")
	}
	if q.Answer == "" {
		return NewValidationError("answer is required")
	}
	return nil
}

// OptionLabel extracts the leading label ("A".."D") from a verbatim option
// line. Returns "" when the line does not carry a label.
func OptionLabel(option string) string {
	if i := strings.Index(option, ")"); i > 0 {
		return strings.TrimSpace(option[:i])
	}
	return ""
}

// QuizAttempt records one graded quiz run of a user against a module.
// Attempts are append-only.
type QuizAttempt struct {
	ID          string
	UserID      string
	ModuleID    string
	Score       float64 // 0 ~ 100
	AttemptedAt time.Time
	CreatedAt   time.Time
}

// NewQuizAttempt creates a new QuizAttempt instance
func NewQuizAttempt(userID, moduleID string, score float64) *QuizAttempt {
	now := time.Now()
	return &QuizAttempt{
		UserID:      userID,
		ModuleID:    moduleID,
		Score:       score,
		AttemptedAt: now,
		CreatedAt:   now,
	}
}

// Validate validates the attempt
func (a *QuizAttempt) Validate() error {
	if a.UserID == "" {
		return NewValidationError("user ID is required")
	}
	if a.ModuleID == "" {
		return NewValidationError("module ID is required")
	}
	if a.Score < 0 || a.Score > 100 {
		return NewValidationError("score must be between 0 and 100")
	}
	return nil
}
