// Package classify maps raw statement descriptions to transaction-type tags
// using ordered keyword rules, and groups raw tags into the coarser buckets
// used by report views.
package classify

import (
	"strings"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// keywordRule maps any of its keywords to a single canonical tag.
// First match wins, so order is significant.
type keywordRule struct {
	tag      domain.TypeTag
	keywords []string
}

// keywordRules is evaluated after the PAGAMENTO/PIX/TED primaries.
// Kept as data so new banks only extend the table.
var keywordRules = []keywordRule{
	{domain.TagTarifa, []string{"TARIFA", "TAR"}},
	{domain.TagIOF, []string{"IOF"}},
	{domain.TagResgate, []string{"RESGATE"}},
	{domain.TagAplicacao, []string{"APLICACAO", "APLICAÇÃO"}},
	{domain.TagCompra, []string{"COMPRA"}},
	{domain.TagCompensacao, []string{"COMPENSACAO", "COMPENSAÇÃO"}},
	{domain.TagCheque, []string{"CHEQUE"}},
	{domain.TagJuros, []string{"JUROS"}},
	{domain.TagMulta, []string{"MULTA"}},
}

// displayGroups collapses raw tags into report buckets. Tags not listed here
// display as themselves.
var displayGroups = map[domain.TypeTag]string{
	domain.TagAplicacao: "CONTAMAX",
	domain.TagResgate:   "CONTAMAX",
	domain.TagTaxa:      "DESPESAS OPERACIONAIS",
	domain.TagTarifa:    "DESPESAS OPERACIONAIS",
	domain.TagIOF:       "DESPESAS OPERACIONAIS",
	domain.TagMulta:     "DESPESAS OPERACIONAIS",
	domain.TagDebito:    "DESPESAS OPERACIONAIS",
}

// Classify derives the transaction-type tag from a raw description and its
// signed value. Deterministic, no external calls.
func Classify(description string, value decimal.Decimal) domain.TypeTag {
	upper := strings.ToUpper(description)
	credit := value.Sign() > 0

	switch {
	case strings.Contains(upper, "PAGAMENTO"):
		return domain.TagPagamento
	case strings.Contains(upper, "PIX"):
		if credit {
			return domain.TagPixRecebido
		}
		return domain.TagPixEnviado
	case strings.Contains(upper, "TED"):
		if credit {
			return domain.TagTedRecebida
		}
		return domain.TagTedEnviada
	}

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(upper, kw) {
				return rule.tag
			}
		}
	}

	if credit {
		return domain.TagDiversos
	}
	return domain.TagDebito
}

// DisplayGroup returns the report-time bucket for a raw tag. The persisted
// row always keeps the raw tag.
func DisplayGroup(tag domain.TypeTag) string {
	if group, ok := displayGroups[tag]; ok {
		return group
	}
	return string(tag)
}
