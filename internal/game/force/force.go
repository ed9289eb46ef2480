// Package force defines the combat forces the battle engine resolves: land
// armies of brigades under a general, and naval armadas of ships under an
// admiral. Forces are plain data; all combat behavior lives in the battle
// package.
package force

import "github.com/blackpowder-sim/blackpowder/internal/game/catalog"

// BrigadeStatus is the battle-lifecycle state of a brigade.
type BrigadeStatus string

const (
	BrigadeActive    BrigadeStatus = "active"
	BrigadeRouted    BrigadeStatus = "routed"
	BrigadeDestroyed BrigadeStatus = "destroyed"
)

// Brigade is the smallest land unit.
//
// Invariant: Strength is in [0,100] and never increases during a battle.
// A brigade whose strength reaches 0 is immediately Destroyed.
type Brigade struct {
	ID   string
	Type catalog.BrigadeType

	// Base combat scores, before type, terrain, trait, and enhancement
	// contributions.
	Skirmish int
	Pitch    int
	Rally    int
	Defense  int

	Movement int

	Strength      float64
	Status        BrigadeStatus
	EnhancementID string

	// Promoted is a label set on the winning side's strongest survivor.
	Promoted bool
}

// Active reports whether the brigade still participates in phases.
func (b *Brigade) Active() bool { return b.Status == BrigadeActive }

// ApplyCasualties reduces strength by pct percentage points, flooring at 0.
// A brigade at 0 strength is reclassified Destroyed.
//
// Precondition: pct >= 0.
// Postcondition: Strength is in [0,100] and did not increase.
func (b *Brigade) ApplyCasualties(pct float64) {
	if pct < 0 {
		panic("force: ApplyCasualties called with negative pct")
	}
	b.Strength -= pct
	if b.Strength <= 0 {
		b.Strength = 0
		b.Status = BrigadeDestroyed
	}
}

// General commands an army.
type General struct {
	Name     string
	Level    int // 1-5
	TraitID  string // empty = no trait
	Captured bool
	Promoted bool
}

// Army is an ordered sequence of brigades under one general. Order matters:
// it drives skirmish tie-breaks and pitch pairing.
type Army struct {
	ID       string
	General  General
	Brigades []*Brigade
}

// ActiveBrigades returns the brigades still in the fight, in army order.
func (a *Army) ActiveBrigades() []*Brigade {
	var out []*Brigade
	for _, b := range a.Brigades {
		if b.Active() {
			out = append(out, b)
		}
	}
	return out
}

// AggregateStrength sums the strength of all Active brigades.
func (a *Army) AggregateStrength() float64 {
	var total float64
	for _, b := range a.Brigades {
		if b.Active() {
			total += b.Strength
		}
	}
	return total
}

// Clone deep-copies the army so the engine can mutate freely without
// touching the caller's snapshot.
func (a *Army) Clone() *Army {
	out := &Army{ID: a.ID, General: a.General}
	out.Brigades = make([]*Brigade, len(a.Brigades))
	for i, b := range a.Brigades {
		cp := *b
		out.Brigades[i] = &cp
	}
	return out
}

// ShipStatus is the battle-lifecycle state of a ship.
type ShipStatus string

const (
	ShipActive  ShipStatus = "active"
	ShipDamaged ShipStatus = "damaged"
	ShipSunk    ShipStatus = "sunk"
	ShipBoarded ShipStatus = "boarded"
)

// damagedHullThreshold is the hull integrity below which an afloat ship is
// reported Damaged rather than Active.
const damagedHullThreshold = 50.0

// Ship is the naval unit.
//
// Invariant: Hull is in [0,100] and never increases during a battle. A ship
// whose hull reaches 0 is immediately Sunk.
type Ship struct {
	ID       string
	Doctrine catalog.Doctrine

	Firepower int
	Speed     int
	Defense   int

	Hull          float64
	RangeBand     int // 0 (close) to 4 (far); mutated each maneuver phase
	Status        ShipStatus
	EnhancementID string
}

// Afloat reports whether the ship still participates in rounds.
func (s *Ship) Afloat() bool {
	return s.Status == ShipActive || s.Status == ShipDamaged
}

// ApplyHullDamage reduces hull by amount, flooring at 0. A ship at 0 hull is
// reclassified Sunk; an afloat ship below the damage threshold is Damaged.
//
// Precondition: amount >= 0.
// Postcondition: Hull is in [0,100] and did not increase.
func (s *Ship) ApplyHullDamage(amount float64) {
	if amount < 0 {
		panic("force: ApplyHullDamage called with negative amount")
	}
	s.Hull -= amount
	switch {
	case s.Hull <= 0:
		s.Hull = 0
		s.Status = ShipSunk
	case s.Hull < damagedHullThreshold:
		s.Status = ShipDamaged
	}
}

// Admiral commands an armada.
type Admiral struct {
	Name     string
	Level    int // 1-5
	TraitID  string
	Captured bool
	Promoted bool
}

// Armada is an ordered sequence of ships under one admiral. Order matters:
// ships are paired 1:1 by position at the positioning phase.
type Armada struct {
	ID      string
	Admiral Admiral
	Ships   []*Ship
}

// AfloatShips returns the ships still afloat, in armada order.
func (f *Armada) AfloatShips() []*Ship {
	var out []*Ship
	for _, s := range f.Ships {
		if s.Afloat() {
			out = append(out, s)
		}
	}
	return out
}

// AggregateHull sums the hull integrity of all afloat ships.
func (f *Armada) AggregateHull() float64 {
	var total float64
	for _, s := range f.Ships {
		if s.Afloat() {
			total += s.Hull
		}
	}
	return total
}

// Clone deep-copies the armada.
func (f *Armada) Clone() *Armada {
	out := &Armada{ID: f.ID, Admiral: f.Admiral}
	out.Ships = make([]*Ship, len(f.Ships))
	for i, s := range f.Ships {
		cp := *s
		out.Ships[i] = &cp
	}
	return out
}
