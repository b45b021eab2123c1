package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/af360bank/financeiro_app/internal/apperrors"
	"github.com/af360bank/financeiro_app/internal/core/domain"
	portsrepo "github.com/af360bank/financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/platform/config"
	"github.com/af360bank/financeiro_app/internal/utils/registryid"
)

// enrichedMarker flags a description that already carries a resolved
// counterparty name. Guards against double-enrichment on reprocessing.
const enrichedMarker = "(CNPJ:"

// registryResponse mirrors the public registry payload; only the name
// fields matter here.
type registryResponse struct {
	LegalName string `json:"razao_social"`
	TradeName string `json:"nome_fantasia"`
}

type registryService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
	client  *http.Client
	logger  *slog.Logger

	baseURL       string
	maxRetries    int
	retryBackoff  time.Duration
	retryThrottle time.Duration

	// mu guards cache and failed together: an identifier lives in exactly
	// one of the two at any time.
	mu     sync.Mutex
	cache  map[string]domain.RegistryEntry
	failed map[string]struct{}

	// sleep is swapped out in tests to avoid real backoff waits.
	sleep func(time.Duration)
}

// NewRegistryService creates the counterparty lookup component. Cache and
// failed set are process-lifetime: a restart starts cold, which is fine
// because enriched descriptions are persisted.
func NewRegistryService(cfg *config.Config, txnRepo portsrepo.TransactionRepositoryFacade, logger *slog.Logger) portssvc.RegistrySvcFacade {
	return &registryService{
		txnRepo:       txnRepo,
		client:        &http.Client{Timeout: cfg.RegistryTimeout},
		logger:        logger,
		baseURL:       strings.TrimRight(cfg.RegistryBaseURL, "/"),
		maxRetries:    cfg.RegistryMaxRetries,
		retryBackoff:  cfg.RegistryRetryBackoff,
		retryThrottle: cfg.RegistryRetryThrottle,
		cache:         make(map[string]domain.RegistryEntry),
		failed:        make(map[string]struct{}),
		sleep:         time.Sleep,
	}
}

func (s *registryService) Lookup(ctx context.Context, id string) (domain.RegistryEntry, error) {
	s.mu.Lock()
	if entry, ok := s.cache[id]; ok {
		s.mu.Unlock()
		return entry, nil
	}
	if _, ok := s.failed[id]; ok {
		s.mu.Unlock()
		// Known-bad identifier: don't hammer the registry again. The bulk
		// retry endpoint is the explicit way back in.
		return domain.RegistryEntry{}, fmt.Errorf("identifier %s in failed set: %w", id, apperrors.ErrNotFound)
	}
	s.mu.Unlock()

	return s.fetch(ctx, id)
}

// fetch performs the network lookup, bypassing the failed-set short-circuit.
func (s *registryService) fetch(ctx context.Context, id string) (domain.RegistryEntry, error) {
	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			s.sleep(s.retryBackoff << (attempt - 1))
		}

		entry, retryable, err := s.doRequest(ctx, id)
		if err == nil {
			s.mu.Lock()
			s.cache[id] = entry
			delete(s.failed, id)
			s.mu.Unlock()
			return entry, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	s.mu.Lock()
	s.failed[id] = struct{}{}
	s.mu.Unlock()
	s.logger.Warn("Registry lookup failed",
		slog.String("id", id),
		slog.String("error", lastErr.Error()),
	)
	return domain.RegistryEntry{}, fmt.Errorf("lookup %s: %w: %w", id, apperrors.ErrLookupFailed, lastErr)
}

// doRequest issues one GET. The bool reports whether the failure is worth
// retrying (transport error or throttling/5xx status).
func (s *registryService) doRequest(ctx context.Context, id string) (domain.RegistryEntry, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+id, nil)
	if err != nil {
		return domain.RegistryEntry{}, false, fmt.Errorf("failed to build registry request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.RegistryEntry{}, true, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var payload registryResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return domain.RegistryEntry{}, false, fmt.Errorf("failed to decode registry response: %w", err)
		}
		return domain.RegistryEntry{
			ID:        id,
			LegalName: payload.LegalName,
			TradeName: payload.TradeName,
		}, false, nil
	case retryableStatus(resp.StatusCode):
		return domain.RegistryEntry{}, true, fmt.Errorf("registry returned status %d", resp.StatusCode)
	default:
		return domain.RegistryEntry{}, false, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func (s *registryService) EnrichDescription(ctx context.Context, description string, tag domain.TypeTag) string {
	if !tag.IsPrimary() {
		return description
	}
	if strings.Contains(description, enrichedMarker) {
		return description
	}

	m, ok := registryid.Extract(description)
	if !ok {
		return description
	}

	entry, err := s.Lookup(ctx, m.ID)
	if err != nil {
		// Lookup already recorded the failure; the raw description stays.
		return description
	}

	return strings.Replace(description, m.Raw, fmt.Sprintf("%s (CNPJ: %s)", entry.LegalName, m.ID), 1)
}

func (s *registryService) RetryFailed(ctx context.Context) (int, []string) {
	ids := s.FailedIDs()
	recovered := 0

	for i, id := range ids {
		if i > 0 {
			// Politeness throttle against the public registry.
			s.sleep(s.retryThrottle)
		}

		entry, err := s.fetch(ctx, id)
		if err != nil {
			continue
		}
		recovered++

		if err := s.rewriteDescriptions(ctx, id, entry); err != nil {
			s.logger.Error("Failed to rewrite descriptions after registry retry",
				slog.String("id", id),
				slog.String("error", err.Error()),
			)
		}
	}

	return recovered, s.FailedIDs()
}

// rewriteDescriptions substitutes the resolved name into every persisted
// row still carrying the raw identifier.
func (s *registryService) rewriteDescriptions(ctx context.Context, id string, entry domain.RegistryEntry) error {
	txns, err := s.txnRepo.FindByDescriptionContaining(ctx, id)
	if err != nil {
		return err
	}

	replacement := fmt.Sprintf("%s (CNPJ: %s)", entry.LegalName, id)
	for _, txn := range txns {
		if strings.Contains(txn.Description, enrichedMarker) {
			continue
		}
		updated := strings.ReplaceAll(txn.Description, id, replacement)
		if updated == txn.Description {
			continue
		}
		if err := s.txnRepo.UpdateDescription(ctx, txn.ID, updated); err != nil {
			return err
		}
	}
	return nil
}

func (s *registryService) FailedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.failed))
	for id := range s.failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *registryService) CachedName(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[id]
	if !ok {
		return "", false
	}
	return entry.DisplayName(), true
}
