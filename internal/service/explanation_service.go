package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"learnbyte/internal/cache"
	"learnbyte/internal/domain"
	"learnbyte/internal/dto"
	"learnbyte/internal/logger"

	"go.uber.org/zap"
)

// ExplanationService answers free-form student questions about a module,
// caching generated text in redis so repeated questions about the same module
// skip the backend.
type ExplanationService struct {
	moduleRepo domain.ModuleRepository
	generation *GenerationService
	cache      domain.Cache
	ttl        time.Duration
}

// NewExplanationService creates a new ExplanationService. cache may be nil;
// every request then hits the generation backend.
func NewExplanationService(
	moduleRepo domain.ModuleRepository,
	generation *GenerationService,
	cacheClient domain.Cache,
	ttl time.Duration,
) *ExplanationService {
	return &ExplanationService{
		moduleRepo: moduleRepo,
		generation: generation,
		cache:      cacheClient,
		ttl:        ttl,
	}
}

// Explain answers the student's question about the module, grounding the
// answer in the module content.
func (s *ExplanationService) Explain(ctx context.Context, moduleID, question string) (*dto.ExplainResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.NewInvalidInputError("question is required")
	}

	module, err := s.moduleRepo.GetModuleByID(ctx, moduleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up module", err)
	}
	if module == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("module %s not found", moduleID))
	}

	key := s.cacheKey(module.ID, question)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			return &dto.ExplainResponse{
				ModuleID:    module.ID,
				Explanation: cached,
				Cached:      true,
			}, nil
		}
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("explanation cache read failed", zap.Error(err))
		}
	}

	explanation, err := s.generation.GenerateExplanation(ctx, module, question)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, explanation, s.ttl); err != nil {
			logger.Get().Warn("explanation cache write failed", zap.Error(err))
		}
	}

	return &dto.ExplainResponse{
		ModuleID:    module.ID,
		Explanation: explanation,
		Cached:      false,
	}, nil
}

// cacheKey keys on module id plus a digest of the question text, so the same
// question against the same module hits the cache regardless of who asks.
func (s *ExplanationService) cacheKey(moduleID, question string) string {
	digest := sha256.Sum256([]byte(question))
	return cache.GenerateCacheKey("explanation", "module", moduleID, hex.EncodeToString(digest[:8]))
}
