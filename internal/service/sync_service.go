package service

import (
	"context"
	"fmt"

	"learnbyte/internal/domain"
	"learnbyte/internal/dto"
	"learnbyte/internal/logger"

	"go.uber.org/zap"
)

// SyncService imports the remote course catalog into local storage. Runs are
// idempotent: courses dedup on title, modules on (title, course). The course
// row commits before its modules are imported, so a mid-course failure keeps
// the course and a later run fills in the missing modules.
type SyncService struct {
	catalog    domain.CatalogClient
	courseRepo domain.CourseRepository
	moduleRepo domain.ModuleRepository
	txManager  domain.TransactionManager
}

// NewSyncService creates a new SyncService. catalog may be nil when no remote
// endpoint is configured; ImportCatalog then fails fast.
func NewSyncService(
	catalog domain.CatalogClient,
	courseRepo domain.CourseRepository,
	moduleRepo domain.ModuleRepository,
	txManager domain.TransactionManager,
) *SyncService {
	return &SyncService{
		catalog:    catalog,
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
		txManager:  txManager,
	}
}

// ImportCatalog fetches the remote course list and mirrors it locally.
func (s *SyncService) ImportCatalog(ctx context.Context) (*dto.ImportResult, error) {
	if s.catalog == nil {
		return nil, domain.NewCatalogNotConfiguredError()
	}

	remoteCourses, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return nil, domain.NewSyncError(err)
	}

	result := &dto.ImportResult{}
	for _, remote := range remoteCourses {
		created, modules, err := s.importCourse(ctx, remote)
		// The course row may have committed before the failure; count it
		// either way.
		if created {
			result.CoursesCreated++
		}
		result.ModulesCreated += modules
		if err != nil {
			title := courseTitle(remote)
			logger.Get().Warn("course import failed",
				zap.String("course_title", title),
				zap.Int64("remote_id", remote.ID),
				zap.Error(err))
			result.Failures = append(result.Failures, dto.ImportFailure{
				CourseTitle: title,
				Reason:      err.Error(),
			})
		}
	}

	logger.Get().Info("catalog import finished",
		zap.Int("courses_created", result.CoursesCreated),
		zap.Int("modules_created", result.ModulesCreated),
		zap.Int("failures", len(result.Failures)))
	return result, nil
}

// importCourse mirrors one remote course and its modules. The course row
// commits in its own transaction before any module work starts; the modules
// then commit together in a second one. Returns whether a course row was
// created and how many module rows were, counting the course even when the
// module import afterwards fails.
func (s *SyncService) importCourse(ctx context.Context, remote domain.RemoteCourse) (bool, int, error) {
	title := courseTitle(remote)

	var course *domain.Course
	var courseCreated bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.courseRepo.GetCourseByTitle(txCtx, title)
		if err != nil {
			return err
		}
		if existing != nil {
			course = existing
			return nil
		}
		course = domain.NewCourse(title, remote.Summary)
		course.ExternalID = fmt.Sprintf("%d", remote.ID)
		if err := s.courseRepo.CreateCourse(txCtx, course); err != nil {
			return err
		}
		courseCreated = true
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	sections, err := s.catalog.GetCourseContents(ctx, remote.ID)
	if err != nil {
		return courseCreated, 0, fmt.Errorf("failed to fetch course contents: %w", err)
	}

	var modulesCreated int
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, section := range sections {
			for _, remoteModule := range section.Modules {
				if remoteModule.Name == "" {
					continue
				}
				existing, err := s.moduleRepo.GetModuleByTitleAndCourseID(txCtx, remoteModule.Name, course.ID)
				if err != nil {
					return err
				}
				if existing != nil {
					continue
				}
				content := remoteModule.Description
				if content == "" {
					content = section.Summary
				}
				module := domain.NewModule(course.ID, remoteModule.Name, content)
				if err := s.moduleRepo.CreateModule(txCtx, module); err != nil {
					return err
				}
				modulesCreated++
			}
		}
		return nil
	})
	if err != nil {
		return courseCreated, 0, err
	}
	return courseCreated, modulesCreated, nil
}

// courseTitle falls back to a placeholder for remote courses that arrive
// without a name, so the dedup key is never empty.
func courseTitle(remote domain.RemoteCourse) string {
	if remote.FullName == "" {
		return "Untitled"
	}
	return remote.FullName
}
