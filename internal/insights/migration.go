package insights

import (
	"fmt"

	"github.com/vignesh-tw/migration-analysis/internal/fault"
)

// Insight is the duration differential of a migration job against its base job.
// Positive values mean the migration job is slower.
type Insight struct {
	BaseJob            string  `json:"base_job" yaml:"base_job"`
	MigrationJob       string  `json:"migration_job" yaml:"migration_job"`
	WindowStart        string  `json:"window_start" yaml:"window_start"`
	WindowEnd          string  `json:"window_end" yaml:"window_end"`
	MinDifferential    float64 `json:"min_differential" yaml:"min_differential"`
	MeanDifferential   float64 `json:"mean_differential" yaml:"mean_differential"`
	MedianDifferential float64 `json:"median_differential" yaml:"median_differential"`
	MaxDifferential    float64 `json:"max_differential" yaml:"max_differential"`
}

// Compute compares the durations of migrationJob and baseJob found in jobs.
// The base job is looked up first. The reporting window is taken from the migration job.
func Compute(migrationJob, baseJob string, jobs JobMetrics) (Insight, error) {
	base, ok := FindItem(jobs.Items, baseJob)
	if !ok {
		return Insight{}, notFound(baseJob)
	}

	migration, ok := FindItem(jobs.Items, migrationJob)
	if !ok {
		return Insight{}, notFound(migrationJob)
	}

	b := base.Metrics.DurationMetrics
	m := migration.Metrics.DurationMetrics

	return Insight{
		BaseJob:            baseJob,
		MigrationJob:       migrationJob,
		WindowStart:        migration.WindowStart,
		WindowEnd:          migration.WindowEnd,
		MinDifferential:    float64(m.Min) - float64(b.Min),
		MeanDifferential:   float64(m.Mean) - float64(b.Mean),
		MedianDifferential: float64(m.Median) - float64(b.Median),
		MaxDifferential:    float64(m.Max) - float64(b.Max),
	}, nil
}

func notFound(name string) error {
	return fault.Newf(fault.ErrInvalidInput, "failed to find workflow %s in retrieved jobs", name)
}

// String renders the insight as a plain text report.
func (i Insight) String() string {
	return fmt.Sprintf(`Migration analysis:

Details:

    base job: %s
    migration job: %s
    window start: %s
    window end: %s

Data:

    minimum duration - differential: %v
    maximum duration - differential: %v
    mean duration - differential: %v
    median duration - differential: %v
`,
		i.BaseJob,
		i.MigrationJob,
		i.WindowStart,
		i.WindowEnd,
		i.MinDifferential,
		i.MaxDifferential,
		i.MeanDifferential,
		i.MedianDifferential,
	)
}
