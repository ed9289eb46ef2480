package battle

// LandPhase is one state of the land battle state machine. The machine is
// strictly linear: TerrainSetup → Skirmish → Pitch → Rally → ActionReport.
type LandPhase int

const (
	LandTerrainSetup LandPhase = iota
	LandSkirmish
	LandPitch
	LandRally
	LandActionReport
	LandDone
)

// landTransitions is the explicit transition table. There is exactly one
// successor per state; no phase can be skipped or reordered.
var landTransitions = map[LandPhase]LandPhase{
	LandTerrainSetup: LandSkirmish,
	LandSkirmish:     LandPitch,
	LandPitch:        LandRally,
	LandRally:        LandActionReport,
	LandActionReport: LandDone,
}

// Next returns the successor phase.
//
// Precondition: p must not be LandDone; advancing past the terminal phase is
// an invariant violation and panics.
func (p LandPhase) Next() LandPhase {
	next, ok := landTransitions[p]
	if !ok {
		panic("battle: land phase advanced past terminal state")
	}
	return next
}

// String returns the phase label used in battle logs.
func (p LandPhase) String() string {
	switch p {
	case LandTerrainSetup:
		return "terrain setup"
	case LandSkirmish:
		return "skirmish"
	case LandPitch:
		return "pitch"
	case LandRally:
		return "rally"
	case LandActionReport:
		return "action report"
	case LandDone:
		return "done"
	default:
		return "unknown"
	}
}

// NavalPhase is one state of the per-round naval state machine. Positioning
// runs once; Maneuver → Gunnery → DamageResolution → Boarding repeat per
// round until every pair is terminal.
type NavalPhase int

const (
	NavalPositioning NavalPhase = iota
	NavalManeuver
	NavalGunnery
	NavalDamageResolution
	NavalBoarding
)

// navalTransitions maps each phase to its successor inside one round;
// Boarding wraps back to Maneuver for the next round.
var navalTransitions = map[NavalPhase]NavalPhase{
	NavalPositioning:      NavalManeuver,
	NavalManeuver:         NavalGunnery,
	NavalGunnery:          NavalDamageResolution,
	NavalDamageResolution: NavalBoarding,
	NavalBoarding:         NavalManeuver,
}

// Next returns the successor phase.
func (p NavalPhase) Next() NavalPhase {
	next, ok := navalTransitions[p]
	if !ok {
		panic("battle: unknown naval phase")
	}
	return next
}

// String returns the phase label used in battle logs.
func (p NavalPhase) String() string {
	switch p {
	case NavalPositioning:
		return "positioning"
	case NavalManeuver:
		return "maneuver"
	case NavalGunnery:
		return "gunnery"
	case NavalDamageResolution:
		return "damage resolution"
	case NavalBoarding:
		return "boarding"
	default:
		return "unknown"
	}
}
