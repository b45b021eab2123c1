package services

import (
	"log/slog"

	portsrepo "github.com/af360bank/financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/jobs"
	"github.com/af360bank/financeiro_app/internal/platform/config"
)

// NewServiceContainer creates the service container with properly
// initialized dependencies. The registry service is wired first since both
// the importer and the reports depend on it.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, progress *jobs.Tracker, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Registry = NewRegistryService(cfg, repos.TransactionRepo, logger)
	container.Cleanup = NewCleanupService(repos.TransactionRepo, logger)
	container.Importer = NewImportService(cfg, repos.TransactionRepo, container.Registry, container.Cleanup, progress, logger)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.Registry, logger)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.ImporterSvcFacade  = (*importService)(nil)
	_ portssvc.CleanupSvcFacade   = (*cleanupService)(nil)
	_ portssvc.RegistrySvcFacade  = (*registryService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
