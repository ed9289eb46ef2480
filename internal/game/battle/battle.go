// Package battle implements the Blackpowder battle resolution engine: the
// land and naval phase state machines, modifier aggregation, dice resolution,
// and casualty/rally/damage bookkeeping.
//
// A battle resolves synchronously from start to finish on the caller's
// goroutine. All randomness is drawn from a seeded source owned by the
// battle, so identical inputs and seed reproduce the identical result and
// log, bit for bit. Input forces are cloned before the first phase; the
// caller's snapshots are never mutated.
package battle

import (
	"time"

	"go.uber.org/zap"

	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
	"github.com/blackpowder-sim/blackpowder/internal/game/dice"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
)

// Engine resolves battles. One Engine may be shared across goroutines: it
// holds no per-battle state, and every battle owns its own dice source.
type Engine struct {
	tuning Tuning
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTuning overrides the default rule constants.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithLogger sets the structured logger used for per-roll debug logging.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an Engine with the canonical tuning and a no-op logger.
//
// Precondition: any tuning supplied via WithTuning must pass Validate; an
// invalid tuning is a programming error and panics.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tuning: DefaultTuning(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.tuning.Validate(); err != nil {
		panic("battle: " + err.Error())
	}
	return e
}

// ResolveLandBattle resolves a land battle between two armies on the given
// terrain, driven by the seeded dice stream.
//
// Precondition: both armies must pass validation (non-empty, distinct IDs,
// recognized catalog references); otherwise a ConfigError is returned before
// any phase runs and the inputs are untouched.
// Postcondition: On success, returns a complete BattleResult; the caller's
// armies are never mutated (the engine resolves against clones).
func (e *Engine) ResolveLandBattle(a, b *force.Army, terrainID string, seed int64) (*BattleResult, error) {
	terrain, err := validateLandInputs(a, b, terrainID, e.tuning)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	lb := &landBattle{
		a:       a.Clone(),
		b:       b.Clone(),
		terrain: terrain,
		tuning:  e.tuning,
		roller:  dice.NewLoggedRoller(dice.NewSeededSource(seed), e.logger),
		log:     &Log{},
	}
	result := lb.run()
	result.Elapsed = time.Since(start)

	e.logger.Info("land battle resolved",
		zap.String("terrain", terrainID),
		zap.Int64("seed", seed),
		zap.String("victor", result.Victor),
		zap.String("outcome", string(result.Outcome)),
	)
	return result, nil
}

// ResolveNavalBattle resolves a naval battle between two armadas on the given
// sea terrain, driven by the seeded dice stream.
//
// Precondition and postcondition mirror ResolveLandBattle.
func (e *Engine) ResolveNavalBattle(a, b *force.Armada, seaTerrainID string, seed int64) (*BattleResult, error) {
	terrain, err := validateNavalInputs(a, b, seaTerrainID, e.tuning)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	nb := &navalBattle{
		a:       a.Clone(),
		b:       b.Clone(),
		terrain: terrain,
		tuning:  e.tuning,
		roller:  dice.NewLoggedRoller(dice.NewSeededSource(seed), e.logger),
		log:     &Log{},
	}
	result := nb.run()
	result.Elapsed = time.Since(start)

	e.logger.Info("naval battle resolved",
		zap.String("sea_terrain", seaTerrainID),
		zap.Int64("seed", seed),
		zap.String("victor", result.Victor),
		zap.String("outcome", string(result.Outcome)),
	)
	return result, nil
}

// ResolveLandBattle resolves one land battle with the default engine.
func ResolveLandBattle(a, b *force.Army, terrainID string, seed int64) (*BattleResult, error) {
	return NewEngine().ResolveLandBattle(a, b, terrainID, seed)
}

// ResolveNavalBattle resolves one naval battle with the default engine.
func ResolveNavalBattle(a, b *force.Armada, seaTerrainID string, seed int64) (*BattleResult, error) {
	return NewEngine().ResolveNavalBattle(a, b, seaTerrainID, seed)
}

func validateLandInputs(a, b *force.Army, terrainID string, t Tuning) (*catalog.Terrain, error) {
	if a == nil || b == nil {
		return nil, configErrorf("both armies must be supplied")
	}
	if a.ID == "" || b.ID == "" {
		return nil, configErrorf("armies must have non-empty IDs")
	}
	if a.ID == b.ID {
		return nil, configErrorf("an army cannot battle itself (duplicate ID %q)", a.ID)
	}
	terrain, ok := catalog.LandTerrain(terrainID)
	if !ok {
		return nil, configErrorf("unknown terrain %q", terrainID)
	}
	for _, army := range []*force.Army{a, b} {
		if err := validateArmy(army, t); err != nil {
			return nil, err
		}
	}
	return terrain, nil
}

func validateArmy(army *force.Army, t Tuning) error {
	if len(army.ActiveBrigades()) == 0 {
		return configErrorf("army %q has no active brigades", army.ID)
	}
	if army.General.Level < 1 || army.General.Level > t.MaxCommanderLevel {
		return configErrorf("army %q: general level %d out of [1,%d]", army.ID, army.General.Level, t.MaxCommanderLevel)
	}
	if army.General.TraitID != "" {
		if _, ok := catalog.GeneralTrait(army.General.TraitID); !ok {
			return configErrorf("army %q: unknown general trait %q", army.ID, army.General.TraitID)
		}
	}
	for _, brig := range army.Brigades {
		if !brig.Type.Valid() {
			return configErrorf("army %q: brigade %s has invalid type %q", army.ID, brig.ID, brig.Type)
		}
		if brig.Strength <= 0 || brig.Strength > 100 {
			return configErrorf("army %q: brigade %s strength %.1f out of (0,100]", army.ID, brig.ID, brig.Strength)
		}
		if brig.EnhancementID != "" {
			enh, ok := catalog.EnhancementByID(brig.EnhancementID)
			if !ok {
				return configErrorf("army %q: unknown enhancement %q on brigade %s", army.ID, brig.EnhancementID, brig.ID)
			}
			if enh.Naval || enh.UnitType != brig.Type {
				return configErrorf("army %q: enhancement %q does not fit %s brigade %s", army.ID, brig.EnhancementID, brig.Type, brig.ID)
			}
		}
	}
	return nil
}

func validateNavalInputs(a, b *force.Armada, seaTerrainID string, t Tuning) (*catalog.SeaTerrain, error) {
	if a == nil || b == nil {
		return nil, configErrorf("both armadas must be supplied")
	}
	if a.ID == "" || b.ID == "" {
		return nil, configErrorf("armadas must have non-empty IDs")
	}
	if a.ID == b.ID {
		return nil, configErrorf("an armada cannot battle itself (duplicate ID %q)", a.ID)
	}
	terrain, ok := catalog.SeaTerrainByID(seaTerrainID)
	if !ok {
		return nil, configErrorf("unknown sea terrain %q", seaTerrainID)
	}
	for _, fleet := range []*force.Armada{a, b} {
		if err := validateArmada(fleet, t); err != nil {
			return nil, err
		}
	}
	return terrain, nil
}

func validateArmada(fleet *force.Armada, t Tuning) error {
	if len(fleet.AfloatShips()) == 0 {
		return configErrorf("armada %q has no ships afloat", fleet.ID)
	}
	if fleet.Admiral.Level < 1 || fleet.Admiral.Level > t.MaxCommanderLevel {
		return configErrorf("armada %q: admiral level %d out of [1,%d]", fleet.ID, fleet.Admiral.Level, t.MaxCommanderLevel)
	}
	if fleet.Admiral.TraitID != "" {
		if _, ok := catalog.AdmiralTrait(fleet.Admiral.TraitID); !ok {
			return configErrorf("armada %q: unknown admiral trait %q", fleet.ID, fleet.Admiral.TraitID)
		}
	}
	for _, ship := range fleet.Ships {
		if !ship.Doctrine.Valid() {
			return configErrorf("armada %q: ship %s has invalid doctrine %q", fleet.ID, ship.ID, ship.Doctrine)
		}
		if ship.Hull <= 0 || ship.Hull > 100 {
			return configErrorf("armada %q: ship %s hull %.1f out of (0,100]", fleet.ID, ship.ID, ship.Hull)
		}
		if ship.EnhancementID != "" {
			enh, ok := catalog.EnhancementByID(ship.EnhancementID)
			if !ok {
				return configErrorf("armada %q: unknown enhancement %q on ship %s", fleet.ID, ship.EnhancementID, ship.ID)
			}
			if !enh.Naval {
				return configErrorf("armada %q: enhancement %q is not naval (ship %s)", fleet.ID, ship.EnhancementID, ship.ID)
			}
		}
	}
	return nil
}
