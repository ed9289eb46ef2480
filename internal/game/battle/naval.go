package battle

import (
	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
	"github.com/blackpowder-sim/blackpowder/internal/game/dice"
	"github.com/blackpowder-sim/blackpowder/internal/game/effect"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
)

// minRangeBand and maxRangeBand bound the pair range track. Band 0 is
// hull-to-hull; band 4 is the edge of effective gunnery.
const (
	minRangeBand = 0
	maxRangeBand = 4
)

// boardingRangeBand is the farthest band from which a boarding action can be
// attempted.
const boardingRangeBand = 1

// shipPair is one A-versus-B pairing fighting its own duel: its own range
// band, its own damage-over-time effects, and its own terminal state.
type shipPair struct {
	shipA, shipB *force.Ship
	band         int
	effectsA     *effect.Set
	effectsB     *effect.Set

	done    bool
	outcome PairOutcome

	// pending broadside damage, applied at damage resolution so both ships
	// fire before either sinks.
	pendingA, pendingB float64
}

// navalBattle holds the working state of one naval resolution. The armadas
// are clones owned by the battle.
type navalBattle struct {
	a, b    *force.Armada
	terrain *catalog.SeaTerrain
	tuning  Tuning
	roller  *dice.Roller
	log     *Log

	pairs        []*shipPair
	winsA, winsB int
}

func (nb *navalBattle) run() *BattleResult {
	initialA := nb.a.AggregateHull()
	initialB := nb.b.AggregateHull()

	nb.positioning()

	maxRounds := nb.tuning.MaxNavalRounds
	if admiralHasAbility(nb.a.Admiral, catalog.ExtraRounds) || admiralHasAbility(nb.b.Admiral, catalog.ExtraRounds) {
		maxRounds += 2
	}

	rounds := 0
	for round := 1; round <= maxRounds; round++ {
		if nb.engagedPairs() == 0 || nb.victoryReached() {
			break
		}
		rounds = round
		for _, pair := range nb.pairs {
			if pair.done {
				continue
			}
			nb.maneuver(pair)
			nb.gunnery(pair)
			nb.damageResolution(pair)
			nb.boarding(pair)
		}
	}

	for _, pair := range nb.pairs {
		if !pair.done {
			pair.done = true
			pair.outcome.Terminal = PairStalemate
			nb.log.Append(NavalBoarding.String(), "%s and %s break off the duel",
				pair.shipA.ID, pair.shipB.ID)
		}
	}

	return nb.actionReport(initialA, initialB, rounds)
}

// positioning forms the battle lines: afloat ships pair off in fleet order up
// to the sea lane's combat width, each pair opening at the terrain's starting
// range band.
func (nb *navalBattle) positioning() {
	width := nb.terrain.CombatWidth
	if admiralHasAbility(nb.a.Admiral, catalog.ExtraWidth) || admiralHasAbility(nb.b.Admiral, catalog.ExtraWidth) {
		width++
	}

	shipsA := nb.a.AfloatShips()
	shipsB := nb.b.AfloatShips()
	n := width
	if len(shipsA) < n {
		n = len(shipsA)
	}
	if len(shipsB) < n {
		n = len(shipsB)
	}

	nb.log.Append(NavalPositioning.String(), "fleets form line on %s: %d pairings at range band %d",
		nb.terrain.Name, n, nb.terrain.StartBand)
	for i := 0; i < n; i++ {
		nb.pairs = append(nb.pairs, &shipPair{
			shipA:    shipsA[i],
			shipB:    shipsB[i],
			band:     nb.terrain.StartBand,
			effectsA: effect.NewSet(),
			effectsB: effect.NewSet(),
			outcome:  PairOutcome{ShipA: shipsA[i].ID, ShipB: shipsB[i].ID},
		})
	}
}

// maneuver is a contested speed roll; the winner drags the range toward its
// doctrine's preferred band.
func (nb *navalBattle) maneuver(pair *shipPair) {
	modA := nb.shipMod(pair.shipA, catalog.ScoreManeuver, pair.band, nb.a.Admiral)
	modB := nb.shipMod(pair.shipB, catalog.ScoreManeuver, pair.band, nb.b.Admiral)

	_, _, margin := dice.Contest(modA, modB, nb.roller.Source())
	var winner *force.Ship
	switch {
	case margin > 0:
		winner = pair.shipA
	case margin < 0:
		winner = pair.shipB
	default:
		nb.log.Append(NavalManeuver.String(), "%s and %s hold station at band %d",
			pair.shipA.ID, pair.shipB.ID, pair.band)
		return
	}

	before := pair.band
	if winner.Doctrine == catalog.DoctrineBoarding {
		pair.band--
	} else {
		pair.band++
	}
	if pair.band < minRangeBand {
		pair.band = minRangeBand
	}
	if pair.band > maxRangeBand {
		pair.band = maxRangeBand
	}
	nb.log.Append(NavalManeuver.String(), "%s takes the wind: range band %d -> %d",
		winner.ID, before, pair.band)
}

// gunnery exchanges broadsides. Both ships fire off the same state; damage is
// held pending until resolution so a sinking ship still gets its last salvo.
func (nb *navalBattle) gunnery(pair *shipPair) {
	pair.pendingB += nb.fire(pair.shipA, nb.a.Admiral, pair, pair.shipB, pair.effectsB)
	pair.pendingA += nb.fire(pair.shipB, nb.b.Admiral, pair, pair.shipA, pair.effectsA)
}

// fire resolves one ship's broadside and returns the pending hull damage,
// after the target's hull plating has soaked its share. Heavy hits set the
// target alight or hole it below the waterline.
func (nb *navalBattle) fire(firer *force.Ship, admiral force.Admiral, pair *shipPair, target *force.Ship, targetEffects *effect.Set) float64 {
	roll := nb.roller.RollCheck(dice.Check{
		Modifier:    nb.shipMod(firer, catalog.ScoreGunnery, pair.band, admiral),
		Threshold:   nb.tuning.GunneryThreshold,
		PartialBand: nb.tuning.GunneryPartialBand,
	})

	switch roll.Outcome {
	case dice.Success:
		damage := nb.tuning.HullDamageBase + nb.tuning.HullDamagePerMargin*float64(roll.Margin)
		damage = absorbDamage(target, damage)
		if roll.Margin >= nb.tuning.FloodMargin {
			nb.applyEffect(targetEffects, effect.Flooding, firer)
		} else if roll.Margin >= nb.tuning.FireMargin {
			nb.applyEffect(targetEffects, effect.Fire, firer)
		}
		nb.log.Append(NavalGunnery.String(), "%s lands a broadside (%s): %.0f damage", firer.ID, roll, damage)
		return damage
	case dice.PartialSuccess:
		damage := nb.tuning.HullDamageBase / 2
		if damage < 1 {
			damage = 1
		}
		damage = absorbDamage(target, damage)
		nb.log.Append(NavalGunnery.String(), "%s scores a glancing hit (%s): %.0f damage", firer.ID, roll, damage)
		return damage
	default:
		nb.log.Append(NavalGunnery.String(), "%s fires wide (%s)", firer.ID, roll)
		return 0
	}
}

// absorbDamage subtracts the target's enhancement hull absorption from one
// incoming hit, flooring at zero.
func absorbDamage(target *force.Ship, damage float64) float64 {
	if target.EnhancementID == "" {
		return damage
	}
	enh, ok := catalog.EnhancementByID(target.EnhancementID)
	if !ok || enh.HullAbsorb == 0 {
		return damage
	}
	damage -= float64(enh.HullAbsorb)
	if damage < 0 {
		damage = 0
	}
	return damage
}

func (nb *navalBattle) applyEffect(set *effect.Set, kind effect.Kind, firer *force.Ship) {
	if err := set.Apply(kind); err != nil {
		panic("battle: " + err.Error())
	}
	nb.log.Append(NavalGunnery.String(), "%s's salvo starts %s aboard the enemy", firer.ID, kind)
}

// damageResolution applies this round's pending broadsides plus any burning or
// flooding, then settles sinkings.
func (nb *navalBattle) damageResolution(pair *shipPair) {
	tickA, expiredA := pair.effectsA.Tick()
	tickB, expiredB := pair.effectsB.Tick()
	for _, kind := range expiredA {
		nb.log.Append(NavalDamageResolution.String(), "%s brings the %s under control", pair.shipA.ID, kind)
	}
	for _, kind := range expiredB {
		nb.log.Append(NavalDamageResolution.String(), "%s brings the %s under control", pair.shipB.ID, kind)
	}

	nb.settleDamage(pair.shipA, pair.pendingA+tickA)
	nb.settleDamage(pair.shipB, pair.pendingB+tickB)
	pair.pendingA, pair.pendingB = 0, 0

	sunkA := pair.shipA.Status == force.ShipSunk
	sunkB := pair.shipB.Status == force.ShipSunk
	if !sunkA && !sunkB {
		return
	}

	pair.done = true
	pair.outcome.Terminal = PairSunk
	switch {
	case sunkA && sunkB:
		nb.log.Append(NavalDamageResolution.String(), "%s and %s go down together", pair.shipA.ID, pair.shipB.ID)
	case sunkA:
		pair.outcome.Winner = nb.b.ID
		nb.winsB++
	default:
		pair.outcome.Winner = nb.a.ID
		nb.winsA++
	}
}

func (nb *navalBattle) settleDamage(ship *force.Ship, amount float64) {
	if amount <= 0 || !ship.Afloat() {
		return
	}
	ship.ApplyHullDamage(amount)
	if ship.Status == force.ShipSunk {
		nb.log.Append(NavalDamageResolution.String(), "%s slips beneath the waves", ship.ID)
	} else {
		nb.log.Append(NavalDamageResolution.String(), "%s takes %.0f damage (hull %.0f%%)",
			ship.ID, amount, ship.Hull)
	}
}

// boarding is attempted only at close range: a contested melee where a clear
// margin carries the enemy deck.
func (nb *navalBattle) boarding(pair *shipPair) {
	if pair.done || pair.band > boardingRangeBand {
		return
	}

	modA := nb.shipMod(pair.shipA, catalog.ScoreBoarding, pair.band, nb.a.Admiral)
	modB := nb.shipMod(pair.shipB, catalog.ScoreBoarding, pair.band, nb.b.Admiral)
	rollA, rollB, margin := dice.Contest(modA, modB, nb.roller.Source())

	switch {
	case margin >= nb.tuning.BoardingMargin:
		nb.capture(pair, pair.shipA, pair.shipB, nb.a.ID, rollA, rollB)
		nb.winsA++
	case -margin >= nb.tuning.BoardingMargin:
		nb.capture(pair, pair.shipB, pair.shipA, nb.b.ID, rollB, rollA)
		nb.winsB++
	default:
		nb.log.Append(NavalBoarding.String(), "%s and %s trade boarding parties to no effect (%d vs %d)",
			pair.shipA.ID, pair.shipB.ID, rollA.Total, rollB.Total)
	}
}

func (nb *navalBattle) capture(pair *shipPair, boarder, prize *force.Ship, winnerID string, winRoll, loseRoll dice.RollResult) {
	prize.Status = force.ShipBoarded
	pair.done = true
	pair.outcome.Terminal = PairBoarded
	pair.outcome.Winner = winnerID
	nb.log.Append(NavalBoarding.String(), "%s storms %s and strikes her colors (%d vs %d)",
		boarder.ID, prize.ID, winRoll.Total, loseRoll.Total)
}

func (nb *navalBattle) engagedPairs() int {
	n := 0
	for _, pair := range nb.pairs {
		if !pair.done {
			n++
		}
	}
	return n
}

// victoryReached reports whether either side has taken more than half the sea
// lane's victory limit in sunk or captured ships; the rest of the fleet
// disengages.
func (nb *navalBattle) victoryReached() bool {
	limit := nb.terrain.VictoryLimit / 2
	return nb.winsA > limit || nb.winsB > limit
}

func (nb *navalBattle) actionReport(initialA, initialB float64, rounds int) *BattleResult {
	remA := nb.a.AggregateHull()
	remB := nb.b.AggregateHull()

	margin := (remA - remB) / (initialA + initialB)
	outcome := classifyMargin(margin, nb.tuning)

	result := &BattleResult{
		Kind:        KindNaval,
		Outcome:     outcome,
		CasualtiesA: casualtyPct(initialA, remA),
		CasualtiesB: casualtyPct(initialB, remB),
		Rounds:      rounds,
	}
	for _, pair := range nb.pairs {
		result.PairOutcomes = append(result.PairOutcomes, pair.outcome)
	}

	if outcome == Stalemate {
		nb.log.Append(NavalBoarding.String(),
			"both fleets withdraw (%.0f%% vs %.0f%% hull remaining)", remA, remB)
		result.Log = nb.log.Events()
		return result
	}

	victor, loser := nb.a, nb.b
	if remB > remA {
		victor, loser = nb.b, nb.a
	}
	result.Victor = victor.ID
	nb.log.Append(NavalBoarding.String(), "%s commands the sea lane (%s victory)", victor.ID, outcome)

	if flagship := soundestShip(victor); flagship != nil {
		result.PromotedUnit = flagship.ID
		nb.log.Append(NavalBoarding.String(), "%s is honored in the fleet dispatch", flagship.ID)
	}

	nb.winnerFate(victor, result)
	nb.loserFate(loser, result)

	result.Log = nb.log.Events()
	return result
}

// winnerFate and loserFate mirror the land action report's commander fate
// rolls for admirals.
func (nb *navalBattle) winnerFate(victor *force.Armada, result *BattleResult) {
	admiral := &victor.Admiral
	roll := dice.RollD6(nb.roller.Source())
	if roll == 1 {
		roll = dice.RollD6(nb.roller.Source())
	}
	if roll == 6 && admiral.Level < nb.tuning.MaxCommanderLevel {
		admiral.Level++
		admiral.Promoted = true
		result.PromotedCommanders = append(result.PromotedCommanders, admiral.Name)
		nb.log.Append(NavalBoarding.String(), "%s is promoted to level %d", admiral.Name, admiral.Level)
	}
}

func (nb *navalBattle) loserFate(loser *force.Armada, result *BattleResult) {
	admiral := &loser.Admiral
	roll := dice.RollD6(nb.roller.Source())
	switch {
	case roll == 1:
		admiral.Captured = true
		result.CapturedCommanders = append(result.CapturedCommanders, admiral.Name)
		nb.log.Append(NavalBoarding.String(), "%s is taken with the fleet's surrender", admiral.Name)
	case roll == 6 && admiral.Level < nb.tuning.MaxCommanderLevel:
		admiral.Level++
		admiral.Promoted = true
		result.PromotedCommanders = append(result.PromotedCommanders, admiral.Name)
		nb.log.Append(NavalBoarding.String(), "%s is promoted to level %d for saving the squadron",
			admiral.Name, admiral.Level)
	}
}

// shipMod resolves a ship's modifier. Catalog references were validated before
// the battle started, so a resolution error here is a bug.
func (nb *navalBattle) shipMod(s *force.Ship, score catalog.Score, band int, admiral force.Admiral) int {
	mod, err := ShipModifier(s, score, band, admiral)
	if err != nil {
		panic("battle: " + err.Error())
	}
	return mod
}

func admiralHasAbility(a force.Admiral, ability catalog.Ability) bool {
	if a.TraitID == "" {
		return false
	}
	trait, ok := catalog.AdmiralTrait(a.TraitID)
	return ok && trait.HasAbility(ability)
}

// soundestShip picks the afloat ship with the most hull remaining, preferring
// the lowest index on ties.
func soundestShip(fleet *force.Armada) *force.Ship {
	var best *force.Ship
	for _, ship := range fleet.AfloatShips() {
		if best == nil || ship.Hull > best.Hull {
			best = ship
		}
	}
	return best
}
