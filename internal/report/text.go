package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/titanic-survival/internal/survival"
	"github.com/jonathan/titanic-survival/internal/types"
)

const (
	// columnWidth is the width of every contingency table column
	columnWidth = 10
)

// Break separates the sections of the text report.
var Break = strings.Repeat("=", 90)

// center pads s to width with the odd space on the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func tableRow(cells ...string) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(center(c, columnWidth))
	}
	return sb.String()
}

func percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// FormatTable renders a breakdown as a fixed-width contingency table.
// Every row's Row Total is Survived + !Survive; the last row totals the whole dataset.
func FormatTable(b types.Breakdown) string {
	rows := make([]types.PartitionSummary, 0, len(b.Rows)+1)
	rows = append(rows, b.Rows...)
	rows = append(rows, b.Total)

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, tableRow("", "Survived", "!Survive", "Row Total"))
	for _, row := range rows {
		lines = append(lines, tableRow(
			row.Label,
			strconv.Itoa(row.Survivors),
			strconv.Itoa(row.Deceased()),
			strconv.Itoa(row.Total),
		))
	}
	return strings.Join(lines, "\n") + "\n"
}

// SexNarrative returns the sentences comparing the sex partitions to the baseline rate.
func SexNarrative(a *types.SurvivalAnalysis) []string {
	lines := []string{
		fmt.Sprintf("The probability of survival, P(survival), is %s.", percent(a.Overall.Rate)),
	}
	var female types.PartitionSummary
	for _, row := range a.Sex.Rows {
		if row.Label == string(types.SexFemale) {
			female = row
		}
		lines = append(lines, fmt.Sprintf("The %s survival rate, P(survival|%s), is %s.",
			row.Label, row.Label, percent(row.Rate)))
	}

	// Descriptive only: no test statistic is computed.
	if female.Rate != a.Overall.Rate {
		lines = append(lines, "The null hypothesis, P(survival|female) = P(survival) can be rejected")
	} else {
		lines = append(lines, "The observed rates do not contradict the null hypothesis, P(survival|female) = P(survival)")
	}
	lines = append(lines, fmt.Sprintf("Being female provides a %.2fX probability of survival", a.FemaleRatio))
	return lines
}

// ClassNarrative returns the sentences comparing the class partitions to the baseline rate.
func ClassNarrative(a *types.SurvivalAnalysis) []string {
	lines := []string{
		fmt.Sprintf("The probability of survival, P(survival), is %s.", percent(a.Overall.Rate)),
	}
	for _, row := range a.Class.Rows {
		lines = append(lines, fmt.Sprintf("The %s class survival rate, P(survival|%s class), is %s.",
			row.Label, row.Label, percent(row.Rate)))
	}
	for _, row := range a.Class.Rows {
		lines = append(lines, fmt.Sprintf("Being in %s class provides a %.2fX probability of survival",
			row.Label, a.ClassRatios[row.Label]))
	}
	return lines
}

// WriteText writes both contingency tables and their narratives to w.
func WriteText(w io.Writer, a *types.SurvivalAnalysis) error {
	if a == nil {
		return &RenderError{Message: "no analysis to render"}
	}

	var sb strings.Builder
	section := func(table string, narrative []string) {
		sb.WriteString(table)
		sb.WriteString(Break + "\n")
		for _, line := range narrative {
			sb.WriteString(line + "\n")
		}
		sb.WriteString(Break + "\n")
	}

	section(FormatTable(a.Sex), SexNarrative(a))
	section(FormatTable(a.Class), ClassNarrative(a))

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return &RenderError{Message: "failed to write text report", Cause: err}
	}
	return nil
}

// dimensionTitle is used by the chart and verbose output.
func dimensionTitle(dimension string) string {
	switch dimension {
	case survival.DimensionSex:
		return "Sex"
	case survival.DimensionClass:
		return "Class"
	default:
		return dimension
	}
}
