package parse

import "time"

// JobSummary is the list-view projection of a parse job.
type JobSummary struct {
	JobID      string
	FileID     string
	Format     string
	Status     string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}
