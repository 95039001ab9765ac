package service

import (
	"context"
	"fmt"

	"learnbyte/internal/domain"
	"learnbyte/internal/dto"
	"learnbyte/internal/util"
)

// AnalyticsService aggregates recorded attempt scores.
type AnalyticsService struct {
	moduleRepo  domain.ModuleRepository
	attemptRepo domain.QuizAttemptRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(moduleRepo domain.ModuleRepository, attemptRepo domain.QuizAttemptRepository) *AnalyticsService {
	return &AnalyticsService{moduleRepo: moduleRepo, attemptRepo: attemptRepo}
}

// ModuleStats returns count, mean, min and max of the module's scores.
// A module without attempts reports count 0 and null aggregates.
func (s *AnalyticsService) ModuleStats(ctx context.Context, moduleID string) (*dto.ModuleStatsResponse, error) {
	module, err := s.moduleRepo.GetModuleByID(ctx, moduleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up module", err)
	}
	if module == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("module %s not found", moduleID))
	}

	scores, err := s.attemptRepo.GetScoresByModuleID(ctx, moduleID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load scores", err)
	}
	return moduleStatsResponse(moduleID, scores), nil
}

// CourseStats returns per-module stats for every module of a course.
func (s *AnalyticsService) CourseStats(ctx context.Context, courseID string) (*dto.CourseStatsResponse, error) {
	modules, err := s.moduleRepo.GetModulesByCourseID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list modules", err)
	}

	resp := &dto.CourseStatsResponse{
		CourseID: courseID,
		Modules:  make([]dto.ModuleStatsResponse, 0, len(modules)),
	}
	for _, m := range modules {
		scores, err := s.attemptRepo.GetScoresByModuleID(ctx, m.ID)
		if err != nil {
			return nil, domain.NewInternalError("failed to load scores", err)
		}
		resp.Modules = append(resp.Modules, *moduleStatsResponse(m.ID, scores))
	}
	return resp, nil
}

func moduleStatsResponse(moduleID string, scores []float64) *dto.ModuleStatsResponse {
	stats := util.ComputeFloatStats(scores)
	resp := &dto.ModuleStatsResponse{
		ModuleID: moduleID,
		Count:    stats.Count,
	}
	if stats.Count > 0 {
		mean, min, max := stats.Mean, stats.Min, stats.Max
		resp.Mean = &mean
		resp.Min = &min
		resp.Max = &max
	}
	return resp
}
