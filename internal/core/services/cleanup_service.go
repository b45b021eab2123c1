package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	portsrepo "github.com/af360bank/financeiro_app/internal/core/ports/repositories"
	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
)

// pairRule describes one family of reversal pairs: two rows on the same date
// with equal absolute value whose descriptions match opposite markers.
// Markers are data so new reversal families only extend the table.
type pairRule struct {
	name string
	// sideAMarkers and sideBMarkers identify the two members. A description
	// matching both sides counts as side B (the reversal entry usually
	// quotes the original wording).
	sideAMarkers []string
	sideBMarkers []string
	// oppositeSigns requires strictly one positive and one negative value,
	// on either side. sideAPositive/sideBNegative pin signs per side.
	oppositeSigns bool
	sideAPositive bool
	sideBNegative bool
}

// pairRules: (A) an investment redemption cancelled by the bank nets out
// with its cancellation entry; (B) a bounced cheque nets out with its
// issued/cleared counterpart.
var pairRules = []pairRule{
	{
		name:          "resgate-cancelamento",
		sideAMarkers:  []string{"RESGATE"},
		sideBMarkers:  []string{"CANCELAMENTO"},
		oppositeSigns: true,
	},
	{
		name:          "cheque-devolvido",
		sideAMarkers:  []string{"CHEQUE DEVOLVIDO", "CH DEVOLVIDO"},
		sideBMarkers:  []string{"CHEQUE EMITIDO", "CH EMITIDO", "CH COMPENSADO"},
		sideAPositive: true,
		sideBNegative: true,
	},
}

type cleanupService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
	logger  *slog.Logger
}

// NewCleanupService creates the reversal-pair cleanup pass.
func NewCleanupService(txnRepo portsrepo.TransactionRepositoryFacade, logger *slog.Logger) portssvc.CleanupSvcFacade {
	return &cleanupService{txnRepo: txnRepo, logger: logger}
}

// RemoveReversalPairs scans the whole ledger, matches reversal pairs per
// rule, and deletes both members of each pair in one batch statement.
func (s *cleanupService) RemoveReversalPairs(ctx context.Context) (int64, error) {
	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load transactions for cleanup: %w", err)
	}

	ids := matchReversalPairs(txns)
	if len(ids) == 0 {
		return 0, nil
	}

	removed, err := s.txnRepo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reversal pairs: %w", err)
	}

	s.logger.Info("Removed reversal pairs", slog.Int64("rows", removed))
	return removed, nil
}

// matchReversalPairs returns the ids of every matched pair member. Rows are
// grouped by (date, |value|); within a group, candidates are paired greedily
// by closest row-id adjacency so re-runs on the same data are deterministic.
func matchReversalPairs(txns []domain.Transaction) []int64 {
	used := make(map[int64]bool)
	var ids []int64

	for _, rule := range pairRules {
		groups := make(map[string][]domain.Transaction)
		for _, txn := range txns {
			if used[txn.ID] {
				continue
			}
			key := txn.Date.Format("2006-01-02") + "|" + txn.Value.Abs().String()
			groups[key] = append(groups[key], txn)
		}

		for _, group := range groups {
			sideA, sideB := splitByRule(group, rule)
			for _, a := range sideA {
				if used[a.ID] {
					continue
				}
				b, ok := closestUnused(a, sideB, used, rule.oppositeSigns)
				if !ok {
					continue
				}
				used[a.ID], used[b.ID] = true, true
				ids = append(ids, a.ID, b.ID)
			}
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// splitByRule partitions a (date, |value|) group into the rule's two sides.
func splitByRule(group []domain.Transaction, rule pairRule) (sideA, sideB []domain.Transaction) {
	for _, txn := range group {
		upper := strings.ToUpper(txn.Description)
		positive := txn.Value.Sign() > 0

		switch {
		case matchesMarker(upper, rule.sideBMarkers):
			if rule.sideBNegative && positive {
				continue
			}
			sideB = append(sideB, txn)
		case matchesMarker(upper, rule.sideAMarkers):
			if rule.sideAPositive && !positive {
				continue
			}
			sideA = append(sideA, txn)
		}
	}
	sort.Slice(sideA, func(i, j int) bool { return sideA[i].ID < sideA[j].ID })
	sort.Slice(sideB, func(i, j int) bool { return sideB[i].ID < sideB[j].ID })
	return sideA, sideB
}

// closestUnused picks the unused counterpart with the smallest row-id
// distance to txn, optionally requiring the opposite sign.
func closestUnused(txn domain.Transaction, candidates []domain.Transaction, used map[int64]bool, oppositeSigns bool) (domain.Transaction, bool) {
	var best domain.Transaction
	bestDist := int64(-1)
	for _, cand := range candidates {
		if used[cand.ID] || cand.ID == txn.ID {
			continue
		}
		if oppositeSigns && cand.Value.Sign() == txn.Value.Sign() {
			continue
		}
		dist := cand.ID - txn.ID
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func matchesMarker(upper string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}
