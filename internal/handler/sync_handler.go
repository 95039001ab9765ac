package handler

import (
	"learnbyte/internal/domain"
	"learnbyte/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SyncHandler handles catalog import requests.
type SyncHandler struct {
	syncService *service.SyncService
}

// NewSyncHandler creates a new SyncHandler instance
func NewSyncHandler(syncService *service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// ImportCatalog handles POST /api/catalog/import. Admin only.
func (h *SyncHandler) ImportCatalog(c *fiber.Ctx) error {
	if err := RequireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	result, err := h.syncService.ImportCatalog(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(result)
}
