package service

import (
	"context"
	"fmt"
	"strings"

	"learnbyte/internal/domain"
	"learnbyte/internal/logger"

	"go.uber.org/zap"
)

const (
	quizQuestionCount      = 5
	quizPromptMaxTokens    = 700
	explainPromptMaxTokens = 400
)

// GenerationService turns module content into prompts and runs them against
// the configured text-completion backend. It knows nothing about parsing or
// persistence; callers feed its raw output to the quiz text parser.
type GenerationService struct {
	completer domain.TextCompleter
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(completer domain.TextCompleter) *GenerationService {
	return &GenerationService{completer: completer}
}

// GenerateQuizText asks the backend for multiple-choice questions over the
// module content. The returned text is raw model output; it may deviate from
// the requested shape and is parsed tolerantly downstream.
func (s *GenerationService) GenerateQuizText(ctx context.Context, module *domain.Module) (string, error) {
	prompt := buildQuizPrompt(module)

	text, err := s.completer.Complete(ctx, prompt, quizPromptMaxTokens)
	if err != nil {
		logger.Get().Error("quiz text generation failed",
			zap.String("module_id", module.ID),
			zap.Error(err))
		return "", domain.NewGenerationError(err)
	}
	return text, nil
}

// GenerateExplanation asks the backend to answer a student's free-form
// question, grounded in the module content.
func (s *GenerationService) GenerateExplanation(ctx context.Context, module *domain.Module, studentQuestion string) (string, error) {
	prompt := buildExplanationPrompt(module, studentQuestion)

	text, err := s.completer.Complete(ctx, prompt, explainPromptMaxTokens)
	if err != nil {
		logger.Get().Error("explanation generation failed",
			zap.String("module_id", module.ID),
			zap.Error(err))
		return "", domain.NewGenerationError(err)
	}
	return strings.TrimSpace(text), nil
}

func buildQuizPrompt(module *domain.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a quiz generator. Based on the following course material, write exactly %d multiple-choice questions.\n\n", quizQuestionCount)
	fmt.Fprintf(&b, "Material titled %q:\n%s\n\n", module.Title, module.Content)
	b.WriteString("Format every question exactly like this:\n")
	b.WriteString("1) Question text\n")
	b.WriteString("A) First option\n")
	b.WriteString("B) Second option\n")
	b.WriteString("C) Third option\n")
	b.WriteString("D) Fourth option\n")
	b.WriteString("Correct answer: A\n\n")
	fmt.Fprintf(&b, "Number the questions 1) through %d). Do not add commentary before or after the questions.", quizQuestionCount)
	return b.String()
}

func buildExplanationPrompt(module *domain.Module, studentQuestion string) string {
	var b strings.Builder
	b.WriteString("You are a patient tutor. A student is working through course material and asked a question about it.\n\n")
	fmt.Fprintf(&b, "Material titled %q:\n%s\n\n", module.Title, module.Content)
	fmt.Fprintf(&b, "The student asks: %s\n\n", studentQuestion)
	b.WriteString("Answer using the material above, in a short paragraph a beginner can follow.")
	return b.String()
}
