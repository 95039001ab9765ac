package service

import (
	"context"
	"fmt"
	"strings"

	"learnbyte/internal/domain"
	"learnbyte/internal/dto"
	"learnbyte/internal/logger"
	"learnbyte/internal/quiztext"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService owns the quiz lifecycle of a module: at-most-once generation,
// serving questions to students and grading submissions.
type QuizService struct {
	moduleRepo   domain.ModuleRepository
	questionRepo domain.QuizQuestionRepository
	attemptRepo  domain.QuizAttemptRepository
	txManager    domain.TransactionManager
	generation   *GenerationService

	// generateGroup collapses concurrent generation requests for the same
	// module into a single backend call.
	generateGroup singleflight.Group
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	moduleRepo domain.ModuleRepository,
	questionRepo domain.QuizQuestionRepository,
	attemptRepo domain.QuizAttemptRepository,
	txManager domain.TransactionManager,
	generation *GenerationService,
) *QuizService {
	return &QuizService{
		moduleRepo:   moduleRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		txManager:    txManager,
		generation:   generation,
	}
}

// EnsureQuizGenerated generates and persists quiz questions for a module
// unless the module already has some. A module that already has questions is
// reported as AlreadyGenerated with its current count; nothing is appended.
func (s *QuizService) EnsureQuizGenerated(ctx context.Context, moduleID string) (*dto.GenerateQuizResult, error) {
	module, err := s.moduleRepo.GetModuleByID(ctx, moduleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up module", err)
	}
	if module == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("module %s not found", moduleID))
	}

	result, err, _ := s.generateGroup.Do(moduleID, func() (interface{}, error) {
		return s.generateOnce(ctx, module)
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.GenerateQuizResult), nil
}

// generateOnce runs the guarded generation pipeline for one module. The
// existing-questions check and the inserts share a transaction so a module
// can never end up with a partial question set.
func (s *QuizService) generateOnce(ctx context.Context, module *domain.Module) (*dto.GenerateQuizResult, error) {
	count, err := s.questionRepo.CountQuestionsByModuleID(ctx, module.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to count existing questions", err)
	}
	if count > 0 {
		return &dto.GenerateQuizResult{AlreadyGenerated: true, QuestionCount: count}, nil
	}

	rawText, err := s.generation.GenerateQuizText(ctx, module)
	if err != nil {
		return nil, err
	}

	// Zero complete questions is a valid outcome of tolerant parsing, not a
	// failure: nothing is persisted and the count is reported as zero. A later
	// call may generate again since the module still has no questions.
	parsed := quiztext.Parse(rawText)
	if len(parsed) == 0 {
		logger.Get().Warn("generated text yielded no complete questions",
			zap.String("module_id", module.ID))
		return &dto.GenerateQuizResult{AlreadyGenerated: false, QuestionCount: 0}, nil
	}

	var saved int
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.questionRepo.CountQuestionsByModuleID(txCtx, module.ID)
		if err != nil {
			return err
		}
		if existing > 0 {
			saved = existing
			return nil
		}
		for _, g := range parsed {
			question := domain.NewQuizQuestion(module.ID, g)
			if err := s.questionRepo.CreateQuestion(txCtx, question); err != nil {
				return err
			}
		}
		saved = len(parsed)
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to persist generated questions", err)
	}

	logger.Get().Info("quiz generated",
		zap.String("module_id", module.ID),
		zap.Int("question_count", saved))
	return &dto.GenerateQuizResult{AlreadyGenerated: false, QuestionCount: saved}, nil
}

// GetQuizForModule returns the module's questions with the correct answers
// stripped out.
func (s *QuizService) GetQuizForModule(ctx context.Context, moduleID string) (*dto.QuizResponse, error) {
	module, err := s.moduleRepo.GetModuleByID(ctx, moduleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up module", err)
	}
	if module == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("module %s not found", moduleID))
	}

	questions, err := s.questionRepo.GetQuestionsByModuleID(ctx, moduleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load questions", err)
	}

	resp := &dto.QuizResponse{
		ModuleID:  moduleID,
		Questions: make([]dto.QuizQuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.QuizQuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return resp, nil
}

// SubmitQuiz grades a submission against the module's questions and records
// the attempt. The score is the percentage of questions answered correctly.
func (s *QuizService) SubmitQuiz(ctx context.Context, userID, moduleID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResult, error) {
	questions, err := s.questionRepo.GetQuestionsByModuleID(ctx, moduleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewInvalidInputError("module has no quiz to submit")
	}

	var correct int
	for _, q := range questions {
		if normalizeLabel(req.Answers[q.ID]) == normalizeLabel(q.Answer) {
			correct++
		}
	}

	score := float64(correct) / float64(len(questions)) * 100

	attempt := domain.NewQuizAttempt(userID, moduleID, score)
	if err := s.attemptRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("failed to record attempt", err)
	}

	return &dto.SubmitQuizResult{
		ModuleID:     moduleID,
		Score:        score,
		CorrectCount: correct,
		TotalCount:   len(questions),
	}, nil
}

// normalizeLabel reduces an answer to its bare option label. The stored
// answer may be "A" or a full option line like "A) Chlorophyll" depending on
// what the backend emitted after the answer marker.
func normalizeLabel(answer string) string {
	if label := domain.OptionLabel(answer); label != "" {
		return strings.ToUpper(label)
	}
	return strings.ToUpper(strings.TrimSpace(answer))
}
