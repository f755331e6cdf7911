// Package schemas holds the JSON Schemas for the structured artifacts the CLI writes.
package schemas

import _ "embed"

// SurvivalReport is the schema of the JSON survival report.
//
//go:embed survival_report.schema.json
var SurvivalReport string
