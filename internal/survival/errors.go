// Package survival computes survival counts and rates over a passenger dataset.
package survival

import "fmt"

// EmptyPartitionError is returned when a rate would be computed over zero passengers
type EmptyPartitionError struct {
	Label string
}

func (e *EmptyPartitionError) Error() string {
	return fmt.Sprintf("empty partition: no passengers match %q", e.Label)
}

// ZeroBaselineError is returned when a ratio is taken against a baseline rate of zero
type ZeroBaselineError struct {
	Subset   string
	Baseline string
}

func (e *ZeroBaselineError) Error() string {
	return fmt.Sprintf("ratio %s/%s is undefined: baseline survival rate is zero", e.Subset, e.Baseline)
}
