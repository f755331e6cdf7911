package survival

import (
	"github.com/jonathan/titanic-survival/internal/types"
)

// Dimension names of the two contingency tables.
const (
	DimensionSex   = "sex"
	DimensionClass = "class"
)

// OverallLabel labels the whole-dataset summary, the column total of every table.
const OverallLabel = "Col Total"

// Predicate selects the passengers belonging to a partition.
type Predicate func(types.PassengerRecord) bool

// Partition is a labelled predicate.
type Partition struct {
	Label     string
	Predicate Predicate
}

// SexIs selects passengers of the given sex.
func SexIs(sex types.Sex) Predicate {
	return func(r types.PassengerRecord) bool { return r.Sex == sex }
}

// ClassIs selects passengers travelling in the given class.
func ClassIs(class types.PassengerClass) Predicate {
	return func(r types.PassengerRecord) bool { return r.Class == class }
}

// SexPartitions returns the female and male partitions, in table order.
func SexPartitions() []Partition {
	return []Partition{
		{Label: string(types.SexFemale), Predicate: SexIs(types.SexFemale)},
		{Label: string(types.SexMale), Predicate: SexIs(types.SexMale)},
	}
}

// ClassPartitions returns the 1st, 2nd and 3rd class partitions, in table order.
func ClassPartitions() []Partition {
	classes := []types.PassengerClass{types.FirstClass, types.SecondClass, types.ThirdClass}
	partitions := make([]Partition, 0, len(classes))
	for _, c := range classes {
		partitions = append(partitions, Partition{Label: c.Ordinal(), Predicate: ClassIs(c)})
	}
	return partitions
}

// Filter returns the records that satisfy the predicate, preserving order.
func Filter(ds *types.Dataset, pred Predicate) []types.PassengerRecord {
	if ds == nil {
		return nil
	}
	var out []types.PassengerRecord
	for _, r := range ds.Records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// OverallRate returns survivors / passengers for the whole dataset.
func OverallRate(ds *types.Dataset) (float64, error) {
	s, err := Overall(ds)
	if err != nil {
		return 0, err
	}
	return s.Rate, nil
}

// Overall summarizes the whole dataset.
func Overall(ds *types.Dataset) (types.PartitionSummary, error) {
	var records []types.PassengerRecord
	if ds != nil {
		records = ds.Records
	}
	return summarize(OverallLabel, records)
}

// RateFor summarizes the passengers matching pred.
func RateFor(ds *types.Dataset, label string, pred Predicate) (types.PartitionSummary, error) {
	return summarize(label, Filter(ds, pred))
}

// Breakdown computes one summary per partition plus the column total.
// Partitions are evaluated independently of each other.
func Breakdown(ds *types.Dataset, dimension string, partitions []Partition) (types.Breakdown, error) {
	total, err := Overall(ds)
	if err != nil {
		return types.Breakdown{}, err
	}

	b := types.Breakdown{
		Dimension: dimension,
		Rows:      make([]types.PartitionSummary, 0, len(partitions)),
		Total:     total,
	}
	for _, p := range partitions {
		s, err := RateFor(ds, p.Label, p.Predicate)
		if err != nil {
			return types.Breakdown{}, err
		}
		b.Rows = append(b.Rows, s)
	}
	return b, nil
}

// Ratio returns subset.Rate / baseline.Rate.
func Ratio(subset, baseline types.PartitionSummary) (float64, error) {
	if baseline.Rate == 0 {
		return 0, &ZeroBaselineError{Subset: subset.Label, Baseline: baseline.Label}
	}
	return subset.Rate / baseline.Rate, nil
}

// Analyze computes every quantity the reports need.
func Analyze(ds *types.Dataset) (*types.SurvivalAnalysis, error) {
	overall, err := Overall(ds)
	if err != nil {
		return nil, err
	}

	sex, err := Breakdown(ds, DimensionSex, SexPartitions())
	if err != nil {
		return nil, err
	}
	class, err := Breakdown(ds, DimensionClass, ClassPartitions())
	if err != nil {
		return nil, err
	}

	female, _ := find(sex, string(types.SexFemale))
	femaleRatio, err := Ratio(female, overall)
	if err != nil {
		return nil, err
	}

	classRatios := make(map[string]float64, len(class.Rows))
	for _, row := range class.Rows {
		r, err := Ratio(row, overall)
		if err != nil {
			return nil, err
		}
		classRatios[row.Label] = r
	}

	return &types.SurvivalAnalysis{
		Passengers:  overall.Total,
		Overall:     overall,
		Sex:         sex,
		Class:       class,
		FemaleRatio: femaleRatio,
		ClassRatios: classRatios,
	}, nil
}

func summarize(label string, records []types.PassengerRecord) (types.PartitionSummary, error) {
	if len(records) == 0 {
		return types.PartitionSummary{}, &EmptyPartitionError{Label: label}
	}
	survivors := 0
	for _, r := range records {
		if r.Survived {
			survivors++
		}
	}
	return types.PartitionSummary{
		Label:     label,
		Survivors: survivors,
		Total:     len(records),
		Rate:      float64(survivors) / float64(len(records)),
	}, nil
}

func find(b types.Breakdown, label string) (types.PartitionSummary, bool) {
	for _, row := range b.Rows {
		if row.Label == label {
			return row, true
		}
	}
	return types.PartitionSummary{}, false
}
