package classify_test

import (
	"testing"

	"github.com/af360bank/financeiro_app/internal/core/domain"
	"github.com/af360bank/financeiro_app/internal/utils/classify"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		description string
		value       float64
		want        domain.TypeTag
	}{
		{"pagamento beats everything", "PAGAMENTO FORNECEDOR X", -100, domain.TagPagamento},
		{"pagamento even when pix present", "PAGAMENTO PIX FORNECEDOR", -100, domain.TagPagamento},
		{"pix credit", "PIX RECEBIDO JOAO", 50, domain.TagPixRecebido},
		{"pix debit", "PIX QR CODE DINAMICO", -50, domain.TagPixEnviado},
		{"ted credit", "TED 123 EMPRESA", 1000, domain.TagTedRecebida},
		{"ted debit", "TED TRANSF CONTA", -1000, domain.TagTedEnviada},
		{"tarifa", "TARIFA MANUTENCAO", -15, domain.TagTarifa},
		{"tar abbreviation", "TAR MENSALIDADE PACOTE", -12, domain.TagTarifa},
		{"iof", "IOF S/ OPERACAO", -3, domain.TagIOF},
		{"resgate", "RESGATE CONTAMAX", 500, domain.TagResgate},
		{"aplicacao accented", "APLICAÇÃO CONTAMAX", -500, domain.TagAplicacao},
		{"compra", "COMPRA LOJA 123", -80, domain.TagCompra},
		{"tar inside cartao wins over compra", "COMPRA CARTAO", -80, domain.TagTarifa},
		{"compensacao", "COMPENSACAO DE CHEQUE", -120, domain.TagCompensacao},
		{"cheque", "CHEQUE 900123", -200, domain.TagCheque},
		{"juros", "JUROS DE MORA", -7, domain.TagJuros},
		{"multa", "MULTA POR ATRASO", -20, domain.TagMulta},
		{"fallback credit", "ALGO DESCONHECIDO", 30, domain.TagDiversos},
		{"fallback debit", "ALGO DESCONHECIDO", -30, domain.TagDebito},
		{"lowercase input", "pix recebido maria", 10, domain.TagPixRecebido},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify.Classify(tt.description, decimal.NewFromFloat(tt.value))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayGroup(t *testing.T) {
	tests := []struct {
		tag  domain.TypeTag
		want string
	}{
		{domain.TagAplicacao, "CONTAMAX"},
		{domain.TagResgate, "CONTAMAX"},
		{domain.TagTarifa, "DESPESAS OPERACIONAIS"},
		{domain.TagIOF, "DESPESAS OPERACIONAIS"},
		{domain.TagMulta, "DESPESAS OPERACIONAIS"},
		{domain.TagDebito, "DESPESAS OPERACIONAIS"},
		{domain.TagDiversos, "DIVERSOS"},
		{domain.TagCheque, "CHEQUE"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			assert.Equal(t, tt.want, classify.DisplayGroup(tt.tag))
		})
	}
}
