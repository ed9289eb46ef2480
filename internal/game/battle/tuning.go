package battle

import "fmt"

// Tuning collects the fixed numeric constants of the resolution rules. The
// defaults are the canonical rulebook values; the simulator's config file can
// override them for balance experiments.
type Tuning struct {
	// SkirmishThreshold is the minimum skirmish check total for a hit.
	SkirmishThreshold int
	// SkirmishCasualty is the strength percentage a successful skirmish
	// removes from its target.
	SkirmishCasualty float64

	// PitchCasualtyPerMargin is the strength percentage the pitch loser takes
	// per point of losing margin.
	PitchCasualtyPerMargin float64
	// PitchMinRemainder caps pitch losses: one pitch round cannot push a
	// brigade below this strength unless it was already below it.
	PitchMinRemainder float64

	// RallyStrengthThreshold is the strength below which a brigade must rally.
	RallyStrengthThreshold float64
	// RallyThreshold is the minimum rally check total to stay in the fight.
	RallyThreshold int

	// GunneryThreshold and GunneryPartialBand classify naval gunnery checks.
	GunneryThreshold   int
	GunneryPartialBand int
	// HullDamageBase and HullDamagePerMargin size a gunnery hit.
	HullDamageBase      float64
	HullDamagePerMargin float64
	// FireMargin and FloodMargin are the success margins at which a gunnery
	// hit additionally starts a fire or flooding.
	FireMargin  int
	FloodMargin int

	// BoardingMargin is the contested-roll margin required to capture.
	BoardingMargin int
	// MaxNavalRounds is the per-battle safety cap; pairs still engaged when
	// it is reached score a stalemate.
	MaxNavalRounds int

	// StalemateEpsilon and DecisiveThreshold classify the final margin as a
	// fraction of total initial strength: below epsilon is a stalemate, below
	// the decisive threshold a close battle, above it a decisive victory.
	StalemateEpsilon  float64
	DecisiveThreshold float64

	// MaxCommanderLevel caps general/admiral promotion.
	MaxCommanderLevel int
}

// DefaultTuning returns the canonical rulebook constants.
func DefaultTuning() Tuning {
	return Tuning{
		SkirmishThreshold:      5,
		SkirmishCasualty:       15,
		PitchCasualtyPerMargin: 4,
		PitchMinRemainder:      10,
		RallyStrengthThreshold: 70,
		RallyThreshold:         4,
		GunneryThreshold:       5,
		GunneryPartialBand:     2,
		HullDamageBase:         8,
		HullDamagePerMargin:    4,
		FireMargin:             3,
		FloodMargin:            5,
		BoardingMargin:         2,
		MaxNavalRounds:         12,
		StalemateEpsilon:       0.005,
		DecisiveThreshold:      0.40,
		MaxCommanderLevel:      5,
	}
}

// Validate checks the tuning invariants.
//
// Postcondition: Returns nil iff every constant is in its sane range.
func (t Tuning) Validate() error {
	switch {
	case t.SkirmishThreshold < 1:
		return fmt.Errorf("tuning: skirmish threshold must be >= 1")
	case t.SkirmishCasualty <= 0 || t.SkirmishCasualty > 100:
		return fmt.Errorf("tuning: skirmish casualty must be in (0,100]")
	case t.PitchCasualtyPerMargin <= 0:
		return fmt.Errorf("tuning: pitch casualty per margin must be > 0")
	case t.PitchMinRemainder < 0 || t.PitchMinRemainder >= 100:
		return fmt.Errorf("tuning: pitch minimum remainder must be in [0,100)")
	case t.RallyStrengthThreshold <= 0 || t.RallyStrengthThreshold > 100:
		return fmt.Errorf("tuning: rally strength threshold must be in (0,100]")
	case t.RallyThreshold < 1:
		return fmt.Errorf("tuning: rally threshold must be >= 1")
	case t.GunneryThreshold < 1 || t.GunneryPartialBand < 0:
		return fmt.Errorf("tuning: gunnery bands invalid")
	case t.HullDamageBase < 0 || t.HullDamagePerMargin < 0:
		return fmt.Errorf("tuning: hull damage constants must be >= 0")
	case t.FloodMargin < t.FireMargin:
		return fmt.Errorf("tuning: flood margin must be >= fire margin")
	case t.BoardingMargin < 1:
		return fmt.Errorf("tuning: boarding margin must be >= 1")
	case t.MaxNavalRounds < 1:
		return fmt.Errorf("tuning: max naval rounds must be >= 1")
	case t.StalemateEpsilon < 0 || t.StalemateEpsilon >= t.DecisiveThreshold:
		return fmt.Errorf("tuning: stalemate epsilon must be in [0, decisive threshold)")
	case t.DecisiveThreshold > 1:
		return fmt.Errorf("tuning: decisive threshold must be <= 1")
	case t.MaxCommanderLevel < 1:
		return fmt.Errorf("tuning: max commander level must be >= 1")
	}
	return nil
}
