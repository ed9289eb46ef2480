// Package catalog holds the closed rule catalogs for the Blackpowder battle
// engine: terrain types, general and admiral traits, and unit enhancements.
//
// Every catalog entry has a stable string ID. Lookups return (entry, ok);
// callers validating player input must treat ok == false as a configuration
// error rather than a zero default.
package catalog

// Score identifies one of the named combat scores a modifier can apply to.
type Score string

const (
	ScoreSkirmish Score = "skirmish"
	ScorePitch    Score = "pitch"
	ScoreRally    Score = "rally"
	ScoreDefense  Score = "defense"
	ScoreManeuver Score = "maneuver"
	ScoreGunnery  Score = "gunnery"
	ScoreBoarding Score = "boarding"
)

// BrigadeType classifies a land brigade.
type BrigadeType string

const (
	BrigadeHeavy   BrigadeType = "heavy"
	BrigadeLight   BrigadeType = "light"
	BrigadeCavalry BrigadeType = "cavalry"
)

// Valid reports whether t is one of the three brigade types.
func (t BrigadeType) Valid() bool {
	switch t {
	case BrigadeHeavy, BrigadeLight, BrigadeCavalry:
		return true
	}
	return false
}

// Doctrine is a ship's combat orientation. It controls which direction the
// ship prefers to shift the range band and how its gunnery decays with range.
type Doctrine string

const (
	DoctrineGunnery  Doctrine = "gunnery"
	DoctrineBoarding Doctrine = "boarding"
)

// Valid reports whether d is a known doctrine.
func (d Doctrine) Valid() bool {
	return d == DoctrineGunnery || d == DoctrineBoarding
}

// brigadeBonuses is the per-type phase bonus table (contribution (b) of the
// modifier aggregation order).
var brigadeBonuses = map[BrigadeType]map[Score]int{
	BrigadeHeavy:   {ScoreDefense: 2, ScorePitch: 1, ScoreRally: 1},
	BrigadeLight:   {ScoreSkirmish: 2, ScoreRally: 1},
	BrigadeCavalry: {ScoreSkirmish: 1, ScorePitch: 1},
}

// brigadeMovement is base movement speed per brigade type.
var brigadeMovement = map[BrigadeType]int{
	BrigadeHeavy:   3,
	BrigadeLight:   4,
	BrigadeCavalry: 5,
}

// TypeBonus returns the brigade-type bonus for the given score, 0 when the
// type has no bonus for that score.
//
// Precondition: t must be a valid BrigadeType.
func TypeBonus(t BrigadeType, s Score) int {
	return brigadeBonuses[t][s]
}

// Movement returns the base movement speed for the given brigade type.
//
// Precondition: t must be a valid BrigadeType.
func Movement(t BrigadeType) int {
	return brigadeMovement[t]
}
