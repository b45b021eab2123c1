package dto

import (
	"github.com/af360bank/financeiro_app/internal/core/domain"
)

// UploadStatementRequest carries the form fields accompanying the file.
type UploadStatementRequest struct {
	Bank string `form:"bank" binding:"required,oneof=santander itau"`
}

// UploadAcceptedResponse acknowledges an accepted upload with the process id
// the client polls for progress.
type UploadAcceptedResponse struct {
	ProcessID string `json:"processId"`
	Message   string `json:"message"`
}

// ProgressResponse is the polled progress snapshot of one import job.
type ProgressResponse struct {
	Status  string `json:"status"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}

// ToProgressResponse converts a domain progress record to its response DTO.
func ToProgressResponse(p domain.ImportProgress) ProgressResponse {
	return ProgressResponse{
		Status:  string(p.Status),
		Current: p.Current,
		Total:   p.Total,
		Message: p.Message,
	}
}
