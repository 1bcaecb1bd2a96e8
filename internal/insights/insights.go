// Package insights models the CircleCI job insights and compares the duration of two jobs.
package insights

import (
	"context"
)

// JobsReader fetches the job metrics of a workflow.
type JobsReader interface {
	GetJobs(ctx context.Context) (JobMetrics, error)
}
