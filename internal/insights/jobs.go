package insights

import "encoding/json"

// JobMetrics is the response of the workflow job metrics endpoint.
type JobMetrics struct {
	// NextPageToken is kept opaque. Further pages are never requested.
	NextPageToken json.RawMessage `json:"next_page_token"`
	Items         []Item          `json:"items"`
}

// Item holds the aggregated metrics of a single job over the reporting window.
type Item struct {
	Name        string  `json:"name"`
	Metrics     Metrics `json:"metrics"`
	WindowStart string  `json:"window_start"`
	WindowEnd   string  `json:"window_end"`
}

// Metrics represents the aggregated run, credit and duration statistics of a job.
type Metrics struct {
	TotalRuns         uint64          `json:"total_runs"`
	FailedRuns        uint64          `json:"failed_runs"`
	SuccessfulRuns    uint64          `json:"successful_runs"`
	MedianCreditsUsed uint64          `json:"median_credits_used"`
	DurationMetrics   DurationMetrics `json:"duration_metrics"`
	SuccessRate       float64         `json:"success_rate"`
	TotalCreditsUsed  uint64          `json:"total_credits_used"`
	Throughput        float64         `json:"throughput"`
}

// DurationMetrics are duration statistics in seconds.
type DurationMetrics struct {
	Min               uint64  `json:"min"`
	Mean              uint64  `json:"mean"`
	Median            uint64  `json:"median"`
	P95               uint64  `json:"p95"`
	Max               uint64  `json:"max"`
	StandardDeviation float64 `json:"standard_deviation"`
	TotalDuration     uint64  `json:"total_duration"`
}

// FindItem returns the first item named name.
func FindItem(items []Item, name string) (Item, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}
