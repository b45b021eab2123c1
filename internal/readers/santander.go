package readers

import "github.com/af360bank/financeiro_app/internal/core/domain"

// newSantanderReader builds the reader for Santander account exports.
// The export sometimes mislabels the date/description columns with the
// AGENCIA/CONTA headers of the preamble block, hence the extra aliases.
func newSantanderReader() BankReader {
	return &aliasReader{
		bank:        domain.BankSantander,
		dateAliases: []string{"Data", "DATE", "DT", "AGENCIA"},
		descAliases: []string{"Histórico", "HISTORIC", "DESCRIÇÃO", "DESCRICAO", "CONTA"},
		valAliases:  []string{"Valor", "VALUE", "QUANTIA"},
	}
}
