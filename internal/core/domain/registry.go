package domain

// RegistryEntry is the cached result of a successful counterparty lookup,
// keyed by the normalized 14-digit registry number. Process-lifetime only;
// a restart starts cache-cold.
type RegistryEntry struct {
	ID        string `json:"id"`
	LegalName string `json:"legalName"`
	TradeName string `json:"tradeName,omitempty"`
}

// DisplayName prefers the trade name, falling back to the legal name.
func (e RegistryEntry) DisplayName() string {
	if e.TradeName != "" {
		return e.TradeName
	}
	return e.LegalName
}
