package services

import (
	"context"

	"github.com/af360bank/financeiro_app/internal/core/domain"
)

// RegistrySvcFacade resolves counterparty identity by 14-digit registry
// number, caching successes and tracking failures for later retry.
type RegistrySvcFacade interface {
	// Lookup resolves an identifier. Cache hits return immediately;
	// identifiers in the failed set short-circuit to apperrors.ErrNotFound
	// without a network call.
	Lookup(ctx context.Context, id string) (domain.RegistryEntry, error)

	// EnrichDescription substitutes the counterparty's legal name into a
	// primary-tag description. Idempotent: an already-enriched description
	// is returned unchanged, as is any description whose lookup fails.
	EnrichDescription(ctx context.Context, description string, tag domain.TypeTag) string

	// RetryFailed re-attempts every identifier in the failed set and
	// rewrites persisted descriptions for each recovery. Returns the number
	// recovered and the identifiers still failing.
	RetryFailed(ctx context.Context) (int, []string)

	// FailedIDs returns a snapshot of the failed set.
	FailedIDs() []string

	// CachedName returns the display name for an identifier if it is
	// already cached; no network call is made.
	CachedName(id string) (string, bool)
}
