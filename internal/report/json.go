package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/titanic-survival/internal/schemas"
	"github.com/jonathan/titanic-survival/internal/types"
)

// FemaleRatioKey is the ratios entry holding P(survival|female) / P(survival).
const FemaleRatioKey = "female"

// BuildReport assembles the machine-readable report for one run.
func BuildReport(a *types.SurvivalAnalysis, source string, runID uuid.UUID, generatedAt time.Time) *types.SurvivalReport {
	ratios := make(map[string]float64, len(a.ClassRatios)+1)
	ratios[FemaleRatioKey] = a.FemaleRatio
	for label, r := range a.ClassRatios {
		ratios[label] = r
	}

	return &types.SurvivalReport{
		RunID:       runID,
		GeneratedAt: generatedAt.UTC(),
		Source:      source,
		Passengers:  a.Passengers,
		Overall:     a.Overall,
		Breakdowns:  []types.Breakdown{a.Sex, a.Class},
		Ratios:      ratios,
	}
}

// MarshalReport encodes the report and checks it against the report schema.
func MarshalReport(r *types.SurvivalReport) ([]byte, error) {
	content, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, &RenderError{Message: "failed to marshal report", Cause: err}
	}
	if err := schemas.ValidateReport(content); err != nil {
		return nil, &RenderError{Message: "report does not match schema", Cause: err}
	}
	return content, nil
}

// WriteJSON writes the validated report to path, creating parent directories.
func WriteJSON(path string, r *types.SurvivalReport) error {
	content, err := MarshalReport(r)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &RenderError{Message: "failed to create output directory", Cause: err}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return &RenderError{Message: "failed to write report file", Cause: err}
	}
	return nil
}
