package readers

import "github.com/af360bank/financeiro_app/internal/core/domain"

// newItauReader builds the reader for Itaú extrato exports. The export
// interleaves SALDO running-balance rows with the movements; those rows are
// skipped during ingestion.
func newItauReader() BankReader {
	return &aliasReader{
		bank:          domain.BankItau,
		dateAliases:   []string{"data", "Data", "DATE"},
		descAliases:   []string{"lançamento", "lancamento", "LANCAMENTO"},
		valAliases:    []string{"valor (R$)", "valor", "VALOR"},
		balanceMarker: "SALDO",
	}
}
