// Package dice provides the core randomness abstraction and roll-result types
// for the Blackpowder battle engine.
package dice

import "fmt"

// Outcome is the 3-tier result of a threshold check.
type Outcome int

const (
	Success Outcome = iota
	PartialSuccess
	Failure
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case PartialSuccess:
		return "partial success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Check describes one threshold-classified d6 roll.
//
// Threshold is the minimum total for Success. PartialBand is the width of the
// PartialSuccess band directly below the threshold; 0 disables partial results.
type Check struct {
	Modifier    int
	Threshold   int
	PartialBand int
}

// RollResult holds the full audit trail for a single d6 check evaluation.
//
// Postcondition: Total == Die + Modifier.
type RollResult struct {
	Die      int // raw d6 result in [1,6]
	Modifier int // net modifier (may be negative)
	Total    int // Die + Modifier
	Outcome  Outcome
	Margin   int // Total - Threshold; negative on Failure
}

// String returns a human-readable audit string in the format:
//
//	"d6=4 +3 = 7 (margin +2) → success"
func (r RollResult) String() string {
	return fmt.Sprintf("d6=%d %+d = %d (margin %+d) → %s",
		r.Die, r.Modifier, r.Total, r.Margin, r.Outcome)
}

// Source is the randomness provider for dice rolls.
//
// Implementations used inside a single battle need not be safe for concurrent
// use; each battle owns its own Source so the draw stream stays sequential.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RollCheck draws exactly one d6 from src, applies the check's modifier, and
// classifies the total against the threshold bands.
//
// Precondition: src must be non-nil; c.Threshold must be >= 1.
// Postcondition: Exactly one value is consumed from src;
// result.Outcome is Success iff Total >= Threshold, PartialSuccess iff
// Threshold-PartialBand <= Total < Threshold, Failure otherwise.
func RollCheck(c Check, src Source) RollResult {
	die := src.Intn(6) + 1
	total := die + c.Modifier

	outcome := Failure
	switch {
	case total >= c.Threshold:
		outcome = Success
	case c.PartialBand > 0 && total >= c.Threshold-c.PartialBand:
		outcome = PartialSuccess
	}

	return RollResult{
		Die:      die,
		Modifier: c.Modifier,
		Total:    total,
		Outcome:  outcome,
		Margin:   total - c.Threshold,
	}
}

// RollD6 draws one unmodified d6 from src.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a value in [1,6]; exactly one value consumed from src.
func RollD6(src Source) int {
	return src.Intn(6) + 1
}

// Contest rolls one d6 for each side and returns both results plus the margin
// of the first side over the second. Outcome is not meaningful for a contested
// roll and is left as Success on both results; callers compare totals.
//
// Precondition: src must be non-nil.
// Postcondition: The first side's die is drawn before the second side's, so a
// fixed Source reproduces identical contests.
func Contest(modA, modB int, src Source) (a, b RollResult, margin int) {
	dieA := src.Intn(6) + 1
	dieB := src.Intn(6) + 1
	a = RollResult{Die: dieA, Modifier: modA, Total: dieA + modA}
	b = RollResult{Die: dieB, Modifier: modB, Total: dieB + modB}
	return a, b, a.Total - b.Total
}
