package dto

import (
	"github.com/af360bank/financeiro_app/internal/core/domain"
)

// RegistryEntryResponse is the resolved counterparty identity.
type RegistryEntryResponse struct {
	ID        string `json:"id"`
	LegalName string `json:"legalName"`
	TradeName string `json:"tradeName,omitempty"`
}

// ToRegistryEntryResponse converts a domain registry entry to its response DTO.
func ToRegistryEntryResponse(entry domain.RegistryEntry) RegistryEntryResponse {
	return RegistryEntryResponse{
		ID:        entry.ID,
		LegalName: entry.LegalName,
		TradeName: entry.TradeName,
	}
}

// RegistryRetryResponse reports the outcome of a bulk lookup retry.
type RegistryRetryResponse struct {
	Recovered   int      `json:"recovered"`
	StillFailed []string `json:"stillFailed"`
}
