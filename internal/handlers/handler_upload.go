package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/dto"
	"github.com/af360bank/financeiro_app/internal/jobs"
	"github.com/af360bank/financeiro_app/internal/middleware"
	"github.com/af360bank/financeiro_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// uploadHandler handles statement uploads and progress polling.
type uploadHandler struct {
	importer  portssvc.ImporterSvcFacade
	tracker   *jobs.Tracker
	queue     *jobs.Queue
	uploadDir string
}

func newUploadHandler(importer portssvc.ImporterSvcFacade, tracker *jobs.Tracker, queue *jobs.Queue, uploadDir string) *uploadHandler {
	return &uploadHandler{
		importer:  importer,
		tracker:   tracker,
		queue:     queue,
		uploadDir: uploadDir,
	}
}

// RegisterUploadRoutes registers the upload and progress routes. The rate
// limiter guards only the upload POST; polling is cheap.
func RegisterUploadRoutes(rg *gin.RouterGroup, cfg *config.Config, importer portssvc.ImporterSvcFacade, tracker *jobs.Tracker, queue *jobs.Queue, rateLimit gin.HandlerFunc) {
	h := newUploadHandler(importer, tracker, queue, cfg.UploadDir)

	uploads := rg.Group("/uploads")
	{
		uploads.POST("", rateLimit, h.uploadStatement)
		uploads.GET("/:processID/progress", h.getProgress)
	}
}

func (h *uploadHandler) uploadStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UploadStatementRequest
	if err := c.ShouldBind(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			logger.Warn("Upload form validation failed", slog.String("error", verrs.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Field 'bank' must be one of: santander, itau"})
			return
		}
		logger.Warn("Failed to bind upload form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Upload missing file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A spreadsheet file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".xls" && ext != ".xlsx" {
		logger.Warn("Upload with unsupported extension", slog.String("filename", file.Filename))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only .xls and .xlsx files are accepted"})
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		logger.Error("Failed to create upload directory", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
		return
	}

	processID := uuid.NewString()
	dest := filepath.Join(h.uploadDir, processID+ext)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		logger.Error("Failed to save uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
		return
	}

	bank := domain.BankVariant(req.Bank)
	h.tracker.Init(processID)

	task := jobs.Task{
		JobID: processID,
		Run: func(ctx context.Context) {
			h.importer.Process(ctx, dest, bank, processID)
		},
	}
	if err := h.queue.Submit(task); err != nil {
		logger.Warn("Job queue full, rejecting upload", slog.String("process_id", processID))
		h.tracker.Fail(processID, "Erro: fila de processamento cheia")
		if removeErr := os.Remove(dest); removeErr != nil {
			logger.Warn("Failed to remove rejected upload", slog.String("error", removeErr.Error()))
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Server busy, try again later"})
		return
	}

	logger.Info("Upload accepted",
		slog.String("process_id", processID),
		slog.String("bank", req.Bank),
		slog.String("filename", file.Filename),
	)
	c.JSON(http.StatusAccepted, dto.UploadAcceptedResponse{
		ProcessID: processID,
		Message:   "Arquivo recebido, processamento iniciado",
	})
}

func (h *uploadHandler) getProgress(c *gin.Context) {
	processID := c.Param("processID")

	progress, err := h.tracker.Get(processID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Process not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProgressResponse(progress))
}
