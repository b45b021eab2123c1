package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/af360bank/financeiro_app/internal/apperrors"
	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/dto"
	"github.com/af360bank/financeiro_app/internal/middleware"
	"github.com/af360bank/financeiro_app/internal/utils/registryid"
	"github.com/gin-gonic/gin"
)

// registryHandler handles counterparty registry verification routes.
type registryHandler struct {
	registryService portssvc.RegistrySvcFacade
}

func newRegistryHandler(rs portssvc.RegistrySvcFacade) *registryHandler {
	return &registryHandler{registryService: rs}
}

func RegisterRegistryRoutes(rg *gin.RouterGroup, registryService portssvc.RegistrySvcFacade) {
	h := newRegistryHandler(registryService)

	registry := rg.Group("/registry")
	{
		registry.GET("/:id", h.verify)
		registry.GET("/failed", h.listFailed)
		registry.POST("/retry", h.retryFailed)
	}
}

func (h *registryHandler) verify(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := registryid.Normalize(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifier must have 14 digits"})
		return
	}

	entry, err := h.registryService.Lookup(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Identifier not found in registry"})
			return
		}
		logger.Warn("Registry verification failed", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Registry lookup failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistryEntryResponse(entry))
}

func (h *registryHandler) listFailed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"failed": h.registryService.FailedIDs()})
}

func (h *registryHandler) retryFailed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	recovered, stillFailed := h.registryService.RetryFailed(c.Request.Context())
	logger.Info("Registry retry finished",
		slog.Int("recovered", recovered),
		slog.Int("still_failed", len(stillFailed)),
	)

	c.JSON(http.StatusOK, dto.RegistryRetryResponse{
		Recovered:   recovered,
		StillFailed: stillFailed,
	})
}
