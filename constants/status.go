package constants

// JobStatus is the canonical status for rows in parse_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusExtracted JobStatus = "EXTRACTED" // stage 1 completed (text extracted)
	JobStatusParsed    JobStatus = "PARSED"    // stage 2 completed (structured record built)
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// JobStatuses holds the allowed values for the status field in ParseJob.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusExtracted),
	string(JobStatusParsed),
	string(JobStatusFailed),
}
