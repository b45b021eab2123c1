package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TypeTag is the raw transaction-type classification stored with each row.
// Report views may collapse tags into coarser buckets, but persistence always
// keeps the raw tag.
type TypeTag string

const (
	TagPagamento   TypeTag = "PAGAMENTO"
	TagPixRecebido TypeTag = "PIX RECEBIDO"
	TagPixEnviado  TypeTag = "PIX ENVIADO"
	TagTedRecebida TypeTag = "TED RECEBIDA"
	TagTedEnviada  TypeTag = "TED ENVIADA"
	TagTarifa      TypeTag = "TARIFA"
	TagIOF         TypeTag = "IOF"
	TagResgate     TypeTag = "RESGATE"
	TagAplicacao   TypeTag = "APLICACAO"
	TagCompra      TypeTag = "COMPRA"
	TagCompensacao TypeTag = "COMPENSACAO"
	TagCheque      TypeTag = "CHEQUE"
	TagJuros       TypeTag = "JUROS"
	TagMulta       TypeTag = "MULTA"
	TagTaxa        TypeTag = "TAXA"
	TagDiversos    TypeTag = "DIVERSOS"
	TagDebito      TypeTag = "DEBITO"
)

// PrimaryTags are the high-priority classifications eligible for counterparty
// description enrichment.
var PrimaryTags = []TypeTag{TagPixRecebido, TagTedRecebida, TagPagamento}

// IsPrimary reports whether t is one of the enrichable primary tags.
func (t TypeTag) IsPrimary() bool {
	for _, p := range PrimaryTags {
		if t == p {
			return true
		}
	}
	return false
}

// Direction is the coarse credit/debit tag derived from the signed value.
type Direction string

const (
	DirectionReceita Direction = "receita"
	DirectionDespesa Direction = "despesa"
)

// DirectionFor returns receita for positive values and despesa otherwise.
func DirectionFor(value decimal.Decimal) Direction {
	if value.Sign() > 0 {
		return DirectionReceita
	}
	return DirectionDespesa
}

// Transaction is one persisted ledger row produced by a statement import.
type Transaction struct {
	ID              int64           `json:"id"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	Value           decimal.Decimal `json:"value"`
	Type            TypeTag         `json:"type"`
	TransactionType Direction       `json:"transactionType"`
	Document        *string         `json:"document,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
