package catalog

// SpecialRule is a terrain behavior flag the phase machines check for.
type SpecialRule string

const (
	// NoReinforcements blocks reserve brigades from replacing skirmish losses
	// before the pitch (desert).
	NoReinforcements SpecialRule = "no_reinforcements"
	// MayGetLost makes each brigade roll at setup; a 1 routs it before the
	// battle starts (jungle).
	MayGetLost SpecialRule = "may_get_lost"
	// CasualtyBonus raises the per-margin pitch casualty percentage by one
	// point (marshland).
	CasualtyBonus SpecialRule = "casualty_bonus"
	// RallyPenalty subtracts one from every rally roll (tundra).
	RallyPenalty SpecialRule = "rally_penalty"
)

// Terrain is one land terrain catalog entry.
//
// Attacker and Defender hold per-score roll effects for the respective side;
// the two differ so defensive ground can favor the defender only. TypePitch
// holds per-brigade-type pitch adjustments applied to both sides.
type Terrain struct {
	ID          string
	Name        string
	CombatWidth int
	MovePenalty int
	Attacker    map[Score]int
	Defender    map[Score]int
	TypePitch   map[BrigadeType]int
	Special     []SpecialRule
}

// HasRule reports whether the terrain carries the given special rule.
func (t *Terrain) HasRule(r SpecialRule) bool {
	for _, s := range t.Special {
		if s == r {
			return true
		}
	}
	return false
}

// SideEffect returns the terrain's roll effect on score s for the attacker
// (attacker == true) or defender side.
func (t *Terrain) SideEffect(s Score, attacker bool) int {
	if attacker {
		return t.Attacker[s]
	}
	return t.Defender[s]
}

var landTerrains = map[string]*Terrain{
	"plains": {
		ID: "plains", Name: "Plains", CombatWidth: 8, MovePenalty: 0,
	},
	"desert": {
		ID: "desert", Name: "Desert", CombatWidth: 8, MovePenalty: 1,
		Special: []SpecialRule{NoReinforcements},
	},
	"tundra": {
		ID: "tundra", Name: "Tundra", CombatWidth: 7, MovePenalty: 1,
		Attacker: map[Score]int{ScoreRally: -1},
		Defender: map[Score]int{ScoreRally: -1},
		Special:  []SpecialRule{RallyPenalty},
	},
	"forest": {
		ID: "forest", Name: "Forest", CombatWidth: 6, MovePenalty: 1,
		Attacker: map[Score]int{ScoreSkirmish: -1},
		Defender: map[Score]int{ScoreSkirmish: -1},
	},
	"highlands": {
		ID: "highlands", Name: "Highlands", CombatWidth: 6, MovePenalty: 1,
		Defender: map[Score]int{ScoreSkirmish: 1},
	},
	"jungle": {
		ID: "jungle", Name: "Jungle", CombatWidth: 5, MovePenalty: 2,
		Special: []SpecialRule{MayGetLost},
	},
	"marshland": {
		ID: "marshland", Name: "Marshland", CombatWidth: 5, MovePenalty: 2,
		Special: []SpecialRule{CasualtyBonus},
	},
	"mountain": {
		ID: "mountain", Name: "Mountain", CombatWidth: 4, MovePenalty: 2,
		Attacker:  map[Score]int{ScoreDefense: 2},
		Defender:  map[Score]int{ScoreDefense: 2},
		TypePitch: map[BrigadeType]int{BrigadeCavalry: -2},
	},
}

// LandTerrain returns the land terrain with the given ID, if present.
func LandTerrain(id string) (*Terrain, bool) {
	t, ok := landTerrains[id]
	return t, ok
}

// LandTerrainIDs returns the stable set of land terrain identifiers.
func LandTerrainIDs() []string {
	return []string{"plains", "desert", "tundra", "forest", "highlands", "jungle", "marshland", "mountain"}
}

// SeaTerrain is one sea terrain catalog entry.
type SeaTerrain struct {
	ID           string
	Name         string
	CombatWidth  int // max simultaneous engaged ship pairs
	VictoryLimit int
	StartBand    int // initial range band for every pair
}

var seaTerrains = map[string]*SeaTerrain{
	"open_seas":      {ID: "open_seas", Name: "Open Seas", CombatWidth: 4, VictoryLimit: 8, StartBand: 2},
	"coastal_waters": {ID: "coastal_waters", Name: "Coastal Waters", CombatWidth: 3, VictoryLimit: 6, StartBand: 2},
	"straights":      {ID: "straights", Name: "Straights", CombatWidth: 2, VictoryLimit: 4, StartBand: 1},
	"canal":          {ID: "canal", Name: "Canal", CombatWidth: 1, VictoryLimit: 2, StartBand: 0},
}

// SeaTerrainByID returns the sea terrain with the given ID, if present.
func SeaTerrainByID(id string) (*SeaTerrain, bool) {
	t, ok := seaTerrains[id]
	return t, ok
}

// SeaTerrainIDs returns the stable set of sea terrain identifiers.
func SeaTerrainIDs() []string {
	return []string{"open_seas", "coastal_waters", "straights", "canal"}
}

// GunneryFalloff returns the range-band adjustment to a ship's gunnery roll.
// Gunnery-doctrine ships fight best at distance; boarding-doctrine ships fight
// best up close.
//
// Precondition: band in [0,4]; d must be a valid Doctrine.
func GunneryFalloff(d Doctrine, band int) int {
	if band < 0 || band > 4 {
		panic("catalog: range band out of [0,4]")
	}
	switch d {
	case DoctrineGunnery:
		return []int{-2, -1, 0, 1, 1}[band]
	case DoctrineBoarding:
		return []int{2, 1, 0, -1, -2}[band]
	default:
		panic("catalog: unknown doctrine " + string(d))
	}
}
