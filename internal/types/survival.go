//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// PartitionSummary holds the counts for one subset of the dataset.
type PartitionSummary struct {
	Label     string  `json:"label"`
	Survivors int     `json:"survivors"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

// Deceased returns the number of passengers in the partition that did not survive.
func (s PartitionSummary) Deceased() int {
	return s.Total - s.Survivors
}

// Breakdown is one contingency table: a categorical dimension against survival.
type Breakdown struct {
	Dimension string             `json:"dimension"`
	Rows      []PartitionSummary `json:"rows"`
	Total     PartitionSummary   `json:"total"`
}

// SurvivalAnalysis is the full set of quantities the reports are built from.
type SurvivalAnalysis struct {
	Passengers int              `json:"passengers"`
	Overall    PartitionSummary `json:"overall"`
	Sex        Breakdown        `json:"sex"`
	Class      Breakdown        `json:"class"`
	// FemaleRatio is P(survival|female) / P(survival).
	FemaleRatio float64 `json:"female_ratio"`
	// ClassRatios is P(survival|class) / P(survival), keyed by class label.
	ClassRatios map[string]float64 `json:"class_ratios"`
}

// SurvivalReport is the machine-readable export of a run.
type SurvivalReport struct {
	RunID       uuid.UUID          `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Source      string             `json:"source"`
	Passengers  int                `json:"passengers"`
	Overall     PartitionSummary   `json:"overall"`
	Breakdowns  []Breakdown        `json:"breakdowns"`
	Ratios      map[string]float64 `json:"ratios"`
}
