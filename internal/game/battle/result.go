package battle

import "time"

// OutcomeClass is the final battle categorization. Exactly one is produced
// per battle.
type OutcomeClass string

const (
	Decisive  OutcomeClass = "decisive"
	Close     OutcomeClass = "close"
	Stalemate OutcomeClass = "stalemate"
)

// PairTerminal is the terminal state of one naval ship pair.
type PairTerminal string

const (
	PairSunk      PairTerminal = "sunk"
	PairBoarded   PairTerminal = "boarded"
	PairStalemate PairTerminal = "stalemate"
)

// PairOutcome records how one ship pairing ended. Winner is the force ID of
// the side that sank or captured its opponent, empty on a stalemate or when
// both ships went down.
type PairOutcome struct {
	ShipA    string       `json:"ship_a"`
	ShipB    string       `json:"ship_b"`
	Terminal PairTerminal `json:"terminal"`
	Winner   string       `json:"winner,omitempty"`
}

// Kind distinguishes land battles from naval battles.
type Kind string

const (
	KindLand  Kind = "land"
	KindNaval Kind = "naval"
)

// BattleResult is the terminal output of one resolved battle.
//
// CasualtiesA/B are the percentage of the side's initial aggregate strength
// (land) or hull integrity (naval) no longer fit for action: destroyed,
// routed, sunk, and boarded units all count.
type BattleResult struct {
	Kind    Kind
	Victor  string // force ID; empty on a stalemate
	Outcome OutcomeClass

	CasualtiesA float64
	CasualtiesB float64

	// PromotedUnit is the ID of the winning side's strongest surviving unit
	// (a label only; no stat change).
	PromotedUnit string

	PromotedCommanders []string
	CapturedCommanders []string

	// PairOutcomes is populated for naval battles only, in pairing order.
	PairOutcomes []PairOutcome

	Rounds  int
	Elapsed time.Duration

	Log []Event
}

// classifyMargin maps the winner's remaining-strength margin, as a fraction
// of the total initial strength of both sides, onto an outcome class.
//
// Postcondition: Returns exactly one class; bands are mutually exclusive and
// exhaustive.
func classifyMargin(margin float64, t Tuning) OutcomeClass {
	if margin < 0 {
		margin = -margin
	}
	switch {
	case margin < t.StalemateEpsilon:
		return Stalemate
	case margin < t.DecisiveThreshold:
		return Close
	default:
		return Decisive
	}
}
