package handlers

import (
	"time"

	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/jobs"
	"github.com/af360bank/financeiro_app/internal/middleware"
	"github.com/af360bank/financeiro_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tracker *jobs.Tracker,
	queue *jobs.Queue,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerHomeRoutes(r)

	setupAPIV1Routes(r, cfg, services, tracker, queue)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-area route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tracker *jobs.Tracker,
	queue *jobs.Queue,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterUploadRoutes(v1, cfg, services.Importer, tracker, queue, uploadRateLimiter(cfg))
	registerReportingRoutes(v1, services.Reporting)
	RegisterRegistryRoutes(v1, services.Registry)
}

// uploadRateLimiter builds the per-IP limiter guarding the upload routes.
// An unparseable rate falls back to 60 requests per minute.
func uploadRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.UploadRateLimit)
	if err != nil {
		rate = limiter.Rate{Period: time.Minute, Limit: 60}
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}
