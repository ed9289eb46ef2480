package catalog

// Enhancement is one per-unit upgrade catalog entry. Land enhancements are
// keyed to a single brigade type; naval enhancements have Naval set and an
// empty UnitType. HullAbsorb is hull damage soaked per gunnery hit
// (Reinforced Hulls only).
type Enhancement struct {
	ID          string
	Name        string
	Description string
	UnitType    BrigadeType
	Naval       bool
	Bonuses     map[Score]int
	HullAbsorb  int
}

// Bonus returns the enhancement's contribution to score s, 0 when it has none.
func (e *Enhancement) Bonus(s Score) int {
	return e.Bonuses[s]
}

var enhancements = map[string]*Enhancement{
	// Cavalry
	"cuirassiers": {ID: "cuirassiers", Name: "Cuirassiers", UnitType: BrigadeCavalry,
		Description: "+2 Defense. +1 Pitch.",
		Bonuses:     map[Score]int{ScoreDefense: 2, ScorePitch: 1}},
	"dragoons": {ID: "dragoons", Name: "Dragoons", UnitType: BrigadeCavalry,
		Description: "+1 Pitch. +1 Rally.",
		Bonuses:     map[Score]int{ScorePitch: 1, ScoreRally: 1}},
	"hussars": {ID: "hussars", Name: "Hussars", UnitType: BrigadeCavalry,
		Description: "+1 Skirmish. +1 Rally.",
		Bonuses:     map[Score]int{ScoreSkirmish: 1, ScoreRally: 1}},
	"lancers": {ID: "lancers", Name: "Lancers", UnitType: BrigadeCavalry,
		Description: "+3 Skirmish.",
		Bonuses:     map[Score]int{ScoreSkirmish: 3}},
	"life_guard": {ID: "life_guard", Name: "Life Guard", UnitType: BrigadeCavalry,
		Description: "+2 Rally.",
		Bonuses:     map[Score]int{ScoreRally: 2}},
	"officer_corps": {ID: "officer_corps", Name: "Officer Corps", UnitType: BrigadeCavalry,
		Description: "+2 Rally.",
		Bonuses:     map[Score]int{ScoreRally: 2}},

	// Heavy
	"artillery_team": {ID: "artillery_team", Name: "Artillery Team", UnitType: BrigadeHeavy,
		Description: "+2 Defense. +1 Pitch.",
		Bonuses:     map[Score]int{ScoreDefense: 2, ScorePitch: 1}},
	"elite": {ID: "elite", Name: "Elite", UnitType: BrigadeHeavy,
		Description: "+1 Skirmish. +2 Defense. +1 Pitch. +1 Rally.",
		Bonuses:     map[Score]int{ScoreSkirmish: 1, ScoreDefense: 2, ScorePitch: 1, ScoreRally: 1}},
	"grenadiers": {ID: "grenadiers", Name: "Grenadiers", UnitType: BrigadeHeavy,
		Description: "+2 Skirmish. +2 Pitch.",
		Bonuses:     map[Score]int{ScoreSkirmish: 2, ScorePitch: 2}},
	"line_infantry": {ID: "line_infantry", Name: "Line Infantry", UnitType: BrigadeHeavy,
		Description: "+1 Pitch.",
		Bonuses:     map[Score]int{ScorePitch: 1}},
	"pikes": {ID: "pikes", Name: "Pikes", UnitType: BrigadeHeavy,
		Description: "+4 Defense. +1 Pitch.",
		Bonuses:     map[Score]int{ScoreDefense: 4, ScorePitch: 1}},
	"stormtroopers": {ID: "stormtroopers", Name: "Stormtroopers", UnitType: BrigadeHeavy,
		Description: "+1 Pitch. +1 Rally.",
		Bonuses:     map[Score]int{ScorePitch: 1, ScoreRally: 1}},

	// Light
	"assault_team": {ID: "assault_team", Name: "Assault Team", UnitType: BrigadeLight,
		Description: "+2 Skirmish. +1 Pitch.",
		Bonuses:     map[Score]int{ScoreSkirmish: 2, ScorePitch: 1}},
	"chasseurs": {ID: "chasseurs", Name: "Chasseurs", UnitType: BrigadeLight,
		Description: "+2 Skirmish. +2 Defense.",
		Bonuses:     map[Score]int{ScoreSkirmish: 2, ScoreDefense: 2}},
	"commando": {ID: "commando", Name: "Commando", UnitType: BrigadeLight,
		Description: "+2 Defense. +1 Pitch. +1 Rally.",
		Bonuses:     map[Score]int{ScoreDefense: 2, ScorePitch: 1, ScoreRally: 1}},
	"fusiliers": {ID: "fusiliers", Name: "Fusiliers", UnitType: BrigadeLight,
		Description: "+1 Skirmish. +2 Defense. +2 Pitch.",
		Bonuses:     map[Score]int{ScoreSkirmish: 1, ScoreDefense: 2, ScorePitch: 2}},
	"rangers": {ID: "rangers", Name: "Rangers", UnitType: BrigadeLight,
		Description: "+2 Pitch.",
		Bonuses:     map[Score]int{ScorePitch: 2}},
	"sharpshooters": {ID: "sharpshooters", Name: "Sharpshooters", UnitType: BrigadeLight,
		Description: "+2 Defense. +1 Pitch.",
		Bonuses:     map[Score]int{ScoreDefense: 2, ScorePitch: 1}},

	// Naval
	"additional_firepower": {ID: "additional_firepower", Name: "Additional Firepower", Naval: true,
		Description: "+2 Gunnery.",
		Bonuses:     map[Score]int{ScoreGunnery: 2}},
	"additional_propulsion": {ID: "additional_propulsion", Name: "Additional Propulsion", Naval: true,
		Description: "+1 Maneuver.",
		Bonuses:     map[Score]int{ScoreManeuver: 1}},
	"marine_detachment": {ID: "marine_detachment", Name: "Marine Detachment", Naval: true,
		Description: "+2 Boarding.",
		Bonuses:     map[Score]int{ScoreBoarding: 2}},
	"reinforced_hulls": {ID: "reinforced_hulls", Name: "Reinforced Hulls", Naval: true,
		Description: "Absorbs 2 hull damage per hit.",
		HullAbsorb:  2},
}

// EnhancementByID returns the enhancement with the given ID, if present.
func EnhancementByID(id string) (*Enhancement, bool) {
	e, ok := enhancements[id]
	return e, ok
}

// EnhancementIDs returns the stable list of enhancement identifiers.
func EnhancementIDs() []string {
	return []string{
		"cuirassiers", "dragoons", "hussars", "lancers", "life_guard", "officer_corps",
		"artillery_team", "elite", "grenadiers", "line_infantry", "pikes", "stormtroopers",
		"assault_team", "chasseurs", "commando", "fusiliers", "rangers", "sharpshooters",
		"additional_firepower", "additional_propulsion", "marine_detachment", "reinforced_hulls",
	}
}
