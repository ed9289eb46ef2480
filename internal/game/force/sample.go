package force

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
)

// Sample-data factories. These replace the pre-built global armies of earlier
// prototypes: callers get fresh, independently mutable forces on every call.

// brigadeBaseStats are the stock combat scores per brigade type. Type bonuses
// and traits stack on top of these at roll time.
var brigadeBaseStats = map[catalog.BrigadeType]struct {
	skirmish, pitch, rally, defense int
}{
	catalog.BrigadeHeavy:   {skirmish: 1, pitch: 4, rally: 3, defense: 3},
	catalog.BrigadeLight:   {skirmish: 3, pitch: 2, rally: 3, defense: 2},
	catalog.BrigadeCavalry: {skirmish: 3, pitch: 3, rally: 2, defense: 2},
}

// shipBaseStats are the stock combat scores per doctrine.
var shipBaseStats = map[catalog.Doctrine]struct {
	firepower, speed, defense int
}{
	catalog.DoctrineGunnery:  {firepower: 4, speed: 2, defense: 2},
	catalog.DoctrineBoarding: {firepower: 2, speed: 3, defense: 3},
}

// NewBrigade builds a single full-strength brigade with a generated ID.
func NewBrigade(bt catalog.BrigadeType, enhancementID string) *Brigade {
	stats := brigadeBaseStats[bt]
	return &Brigade{
		ID:            fmt.Sprintf("%s-%s", bt, uuid.NewString()[:8]),
		Type:          bt,
		Skirmish:      stats.skirmish,
		Pitch:         stats.pitch,
		Rally:         stats.rally,
		Defense:       stats.defense,
		Movement:      catalog.Movement(bt),
		Strength:      100,
		Status:        BrigadeActive,
		EnhancementID: enhancementID,
	}
}

// NewUniformArmy builds an army of n identical brigades.
//
// Precondition: n >= 1; level in [1,5]; bt must be valid.
func NewUniformArmy(id, generalName string, level int, traitID string, n int, bt catalog.BrigadeType) *Army {
	a := &Army{
		ID:      id,
		General: General{Name: generalName, Level: level, TraitID: traitID},
	}
	for i := 0; i < n; i++ {
		a.Brigades = append(a.Brigades, NewBrigade(bt, ""))
	}
	return a
}

// NewShip builds a single full-hull ship with a generated ID.
func NewShip(d catalog.Doctrine, enhancementID string) *Ship {
	stats := shipBaseStats[d]
	return &Ship{
		ID:            fmt.Sprintf("%s-%s", d, uuid.NewString()[:8]),
		Doctrine:      d,
		Firepower:     stats.firepower,
		Speed:         stats.speed,
		Defense:       stats.defense,
		Hull:          100,
		Status:        ShipActive,
		EnhancementID: enhancementID,
	}
}

// NewUniformArmada builds an armada of n identical ships.
//
// Precondition: n >= 1; level in [1,5]; d must be valid.
func NewUniformArmada(id, admiralName string, level int, traitID string, n int, d catalog.Doctrine) *Armada {
	f := &Armada{
		ID:      id,
		Admiral: Admiral{Name: admiralName, Level: level, TraitID: traitID},
	}
	for i := 0; i < n; i++ {
		f.Ships = append(f.Ships, NewShip(d, ""))
	}
	return f
}

// SampleArmies returns the stock demonstration matchup: a mixed red army and
// a heavy blue army.
func SampleArmies() (*Army, *Army) {
	red := &Army{
		ID:      "red",
		General: General{Name: "Marshal Verding", Level: 3, TraitID: "bold"},
		Brigades: []*Brigade{
			NewBrigade(catalog.BrigadeCavalry, "hussars"),
			NewBrigade(catalog.BrigadeCavalry, ""),
			NewBrigade(catalog.BrigadeLight, "fusiliers"),
			NewBrigade(catalog.BrigadeLight, ""),
			NewBrigade(catalog.BrigadeHeavy, "line_infantry"),
			NewBrigade(catalog.BrigadeHeavy, ""),
		},
	}
	blue := &Army{
		ID:      "blue",
		General: General{Name: "General Osterhagen", Level: 3, TraitID: "disciplined"},
		Brigades: []*Brigade{
			NewBrigade(catalog.BrigadeHeavy, "elite"),
			NewBrigade(catalog.BrigadeHeavy, "pikes"),
			NewBrigade(catalog.BrigadeHeavy, ""),
			NewBrigade(catalog.BrigadeHeavy, ""),
			NewBrigade(catalog.BrigadeLight, "sharpshooters"),
			NewBrigade(catalog.BrigadeCavalry, ""),
		},
	}
	return red, blue
}

// SampleArmadas returns the stock naval matchup: a gunnery line against a
// boarding squadron.
func SampleArmadas() (*Armada, *Armada) {
	red := &Armada{
		ID:      "red-fleet",
		Admiral: Admiral{Name: "Admiral Calloway", Level: 3, TraitID: "accurate"},
		Ships: []*Ship{
			NewShip(catalog.DoctrineGunnery, "additional_firepower"),
			NewShip(catalog.DoctrineGunnery, ""),
			NewShip(catalog.DoctrineGunnery, "reinforced_hulls"),
			NewShip(catalog.DoctrineGunnery, ""),
		},
	}
	blue := &Armada{
		ID:      "blue-fleet",
		Admiral: Admiral{Name: "Admiral Reyes", Level: 3, TraitID: "dauntless"},
		Ships: []*Ship{
			NewShip(catalog.DoctrineBoarding, "marine_detachment"),
			NewShip(catalog.DoctrineBoarding, "additional_propulsion"),
			NewShip(catalog.DoctrineBoarding, ""),
			NewShip(catalog.DoctrineBoarding, ""),
		},
	}
	return red, blue
}
