// Package effect tracks ongoing naval damage effects (fire, flooding) on
// individual ships: application, per-round damage ticks, and expiry.
package effect

import (
	"fmt"
	"sort"
)

// Kind identifies one ongoing-effect catalog entry.
type Kind string

const (
	Fire     Kind = "fire"
	Flooding Kind = "flooding"
)

// Def is the closed catalog entry for one effect kind.
type Def struct {
	Kind           Kind
	Name           string
	DamagePerRound float64
	Duration       int // rounds
}

var defs = map[Kind]*Def{
	Fire:     {Kind: Fire, Name: "Fire", DamagePerRound: 3, Duration: 3},
	Flooding: {Kind: Flooding, Name: "Flooding", DamagePerRound: 2, Duration: 4},
}

// ByKind returns the effect definition for k, if k is a known kind.
func ByKind(k Kind) (*Def, bool) {
	d, ok := defs[k]
	return d, ok
}

// Active tracks one applied effect on a ship.
type Active struct {
	Def       *Def
	Remaining int
}

// Set tracks all ongoing effects on one ship. Effects do not stack: re-applying
// an active kind refreshes its duration. Not safe for concurrent use; a Set
// belongs to exactly one battle.
type Set struct {
	effects map[Kind]*Active
}

// NewSet creates an empty effect Set.
func NewSet() *Set {
	return &Set{effects: make(map[Kind]*Active)}
}

// Apply adds the effect of kind k, or refreshes its duration when already
// burning/flooding.
//
// Postcondition: Has(k) is true with full Remaining duration.
func (s *Set) Apply(k Kind) error {
	d, ok := defs[k]
	if !ok {
		return fmt.Errorf("effect: unknown kind %q", k)
	}
	if existing, ok := s.effects[k]; ok {
		existing.Remaining = d.Duration
		return nil
	}
	s.effects[k] = &Active{Def: d, Remaining: d.Duration}
	return nil
}

// Has reports whether the effect of kind k is currently active.
func (s *Set) Has(k Kind) bool {
	_, ok := s.effects[k]
	return ok
}

// Kinds returns the active effect kinds in a stable (sorted) order so that
// ticking is deterministic.
func (s *Set) Kinds() []Kind {
	out := make([]Kind, 0, len(s.effects))
	for k := range s.effects {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Tick applies one round of every active effect: sums their damage, decrements
// durations, and removes the expired. Iteration is in sorted-kind order so a
// fixed dice stream replays identically.
//
// Postcondition: damage >= 0; for every kind in expired, Has(kind) is false.
func (s *Set) Tick() (damage float64, expired []Kind) {
	for _, k := range s.Kinds() {
		a := s.effects[k]
		damage += a.Def.DamagePerRound
		a.Remaining--
		if a.Remaining <= 0 {
			expired = append(expired, k)
			delete(s.effects, k)
		}
	}
	return damage, expired
}

// Len returns the number of active effects.
func (s *Set) Len() int { return len(s.effects) }
