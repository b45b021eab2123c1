package domain

// BankVariant selects which statement layout a reader should expect.
type BankVariant string

const (
	BankSantander BankVariant = "santander"
	BankItau      BankVariant = "itau"
)

// JobStatus is the terminal-or-not state of one import job.
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusError      JobStatus = "error"
)

// ImportProgress is the polled progress record for one import job.
// Current/Total are row counters and only ever move forward.
type ImportProgress struct {
	Status  JobStatus `json:"status"`
	Current int       `json:"current"`
	Total   int       `json:"total"`
	Message string    `json:"message"`
}

// Terminal reports whether the job has finished, successfully or not.
func (p ImportProgress) Terminal() bool {
	return p.Status == JobStatusCompleted || p.Status == JobStatusError
}
