package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one file waiting to be parsed.
type Job struct {
	FileID      uuid.UUID
	Force       bool // parse even when the file deduplicated to an existing row
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
