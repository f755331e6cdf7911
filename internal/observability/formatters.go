// Package observability provides logging setup and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/titanic-survival/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// DatasetProfile is a descriptive summary of the loaded columns, including the ones
// the survival report does not use.
type DatasetProfile struct {
	Passengers   int
	Survivors    int
	KnownAges    int
	MeanAge      float64
	MeanFare     float64
	MeanSibSp    float64
	MeanParch    float64
	ByClass      map[types.PassengerClass]int
	ByPort       map[string]int // "" counts passengers with no recorded port
	ColumnsByKey bool
}

// Profile computes the DatasetProfile of ds.
func Profile(ds *types.Dataset) DatasetProfile {
	prof := DatasetProfile{
		ByClass: make(map[types.PassengerClass]int),
		ByPort:  make(map[string]int),
	}
	if ds == nil || len(ds.Records) == 0 {
		return prof
	}

	prof.Passengers = len(ds.Records)
	prof.ColumnsByKey = ds.ByName

	var ageSum, fareSum float64
	var sibSum, parchSum int
	for _, r := range ds.Records {
		if r.Survived {
			prof.Survivors++
		}
		if r.Age != nil {
			prof.KnownAges++
			ageSum += *r.Age
		}
		fareSum += r.Fare
		sibSum += r.SiblingsSpouses
		parchSum += r.ParentsChildren
		prof.ByClass[r.Class]++
		prof.ByPort[r.Embarked]++
	}

	n := float64(prof.Passengers)
	if prof.KnownAges > 0 {
		prof.MeanAge = ageSum / float64(prof.KnownAges)
	}
	prof.MeanFare = fareSum / n
	prof.MeanSibSp = float64(sibSum) / n
	prof.MeanParch = float64(parchSum) / n
	return prof
}

// PrintDatasetProfile outputs a human-readable summary of the loaded dataset.
func (p *Printer) PrintDatasetProfile(ds *types.Dataset) {
	if ds == nil {
		return
	}
	prof := Profile(ds)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:      %s\n", ds.Source))
	if prof.ColumnsByKey {
		sb.WriteString("Columns:     by header name\n")
	} else {
		sb.WriteString("Columns:     legacy positions\n")
	}
	sb.WriteString(fmt.Sprintf("Passengers:  %d (%d survived)\n", prof.Passengers, prof.Survivors))
	sb.WriteString(fmt.Sprintf("Age:         %d known, mean %.1f\n", prof.KnownAges, prof.MeanAge))
	sb.WriteString(fmt.Sprintf("Fare:        mean %.2f\n", prof.MeanFare))
	sb.WriteString(fmt.Sprintf("Family:      mean sibsp %.2f, mean parch %.2f\n", prof.MeanSibSp, prof.MeanParch))
	sb.WriteString("\n")

	sb.WriteString("Class:\n")
	for _, c := range []types.PassengerClass{types.FirstClass, types.SecondClass, types.ThirdClass} {
		sb.WriteString(fmt.Sprintf("  • %s (%s): %d\n", c.Ordinal(), c.Status(), prof.ByClass[c]))
	}

	sb.WriteString("Embarked:\n")
	ports := make([]string, 0, len(prof.ByPort))
	for code := range prof.ByPort {
		ports = append(ports, code)
	}
	sort.Strings(ports)
	for _, code := range ports {
		name, ok := types.Ports[code]
		switch {
		case code == "":
			name = "unknown"
		case !ok:
			name = code
		default:
			name = fmt.Sprintf("%s (%s)", name, code)
		}
		sb.WriteString(fmt.Sprintf("  • %s: %d\n", name, prof.ByPort[code]))
	}

	p.printBox("DATASET PROFILE", sb.String())
}
