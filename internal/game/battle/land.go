package battle

import (
	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
	"github.com/blackpowder-sim/blackpowder/internal/game/dice"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
)

// landBattle holds the working state of one land resolution. The armies are
// clones owned by the battle; the first army listed is the attacker for
// terrain purposes.
type landBattle struct {
	a, b    *force.Army
	terrain *catalog.Terrain
	tuning  Tuning
	roller  *dice.Roller
	log     *Log

	// engaged are the brigades holding the line, fixed at terrain setup and
	// capped by combat width. Terrains that block reinforcements keep this
	// list frozen; elsewhere reserves step in at the pitch.
	engagedA []*force.Brigade
	engagedB []*force.Brigade
}

// run drives the phase machine through its single linear pass and produces
// the terminal result.
func (lb *landBattle) run() *BattleResult {
	initialA := lb.a.AggregateStrength()
	initialB := lb.b.AggregateStrength()

	for phase := LandTerrainSetup; phase != LandDone; phase = phase.Next() {
		switch phase {
		case LandTerrainSetup:
			lb.terrainSetup()
		case LandSkirmish:
			lb.skirmish()
		case LandPitch:
			lb.pitch()
		case LandRally:
			lb.rally()
		case LandActionReport:
			return lb.actionReport(initialA, initialB)
		}
	}
	panic("battle: land phase machine exited without an action report")
}

func (lb *landBattle) terrainSetup() {
	lb.log.Append(LandTerrainSetup.String(), "battle joined on %s (combat width %d)",
		lb.terrain.Name, lb.terrain.CombatWidth)

	if lb.terrain.HasRule(catalog.MayGetLost) {
		for _, army := range []*force.Army{lb.a, lb.b} {
			for _, brig := range army.ActiveBrigades() {
				if dice.RollD6(lb.roller.Source()) == 1 {
					brig.Status = force.BrigadeRouted
					lb.log.Append(LandTerrainSetup.String(),
						"%s loses its way in the %s and never reaches the field", brig.ID, lb.terrain.Name)
				}
			}
		}
	}

	lb.engagedA = frontline(lb.a, lb.terrain.CombatWidth)
	lb.engagedB = frontline(lb.b, lb.terrain.CombatWidth)
	if lb.terrain.HasRule(catalog.NoReinforcements) {
		lb.log.Append(LandTerrainSetup.String(), "no reinforcements can reach the line")
	}
}

func (lb *landBattle) skirmish() {
	lb.skirmishFor(lb.a, lb.b, true)
	lb.skirmishFor(lb.b, lb.a, false)
}

// skirmishFor runs one side's skirmish action: its best skirmisher probes the
// weakest enemy brigade.
func (lb *landBattle) skirmishFor(side, enemy *force.Army, attacker bool) {
	if generalHasAbility(side.General, catalog.SkipSkirmish) {
		lb.log.Append(LandSkirmish.String(), "%s holds the skirmish line back", side.General.Name)
		return
	}

	skirmisher := bestSkirmisher(lb, side, attacker)
	target := weakestBrigade(enemy)
	if skirmisher == nil || target == nil {
		return
	}

	atkMod := lb.brigadeMod(skirmisher, catalog.ScoreSkirmish, side.General, attacker)
	defMod := lb.brigadeMod(target, catalog.ScoreDefense, enemy.General, !attacker)

	roll := lb.roller.RollCheck(dice.Check{
		Modifier:  atkMod - defMod,
		Threshold: lb.tuning.SkirmishThreshold,
	})
	if roll.Outcome == dice.Success {
		target.ApplyCasualties(lb.tuning.SkirmishCasualty)
		lb.log.Append(LandSkirmish.String(), "%s harries %s (%s): %.0f%% casualties",
			skirmisher.ID, target.ID, roll, lb.tuning.SkirmishCasualty)
	} else {
		lb.log.Append(LandSkirmish.String(), "%s probes %s (%s): driven off",
			skirmisher.ID, target.ID, roll)
	}
}

func (lb *landBattle) pitch() {
	lineA := lb.engagedA
	lineB := lb.engagedB
	if lb.terrain.HasRule(catalog.NoReinforcements) {
		lineA = activeOnly(lineA)
		lineB = activeOnly(lineB)
	} else {
		lineA = frontline(lb.a, lb.terrain.CombatWidth)
		lineB = frontline(lb.b, lb.terrain.CombatWidth)
	}

	perMargin := lb.tuning.PitchCasualtyPerMargin
	if lb.terrain.HasRule(catalog.CasualtyBonus) {
		perMargin++
	}

	pairs := len(lineA)
	if len(lineB) < pairs {
		pairs = len(lineB)
	}
	for i := 0; i < pairs; i++ {
		brigA, brigB := lineA[i], lineB[i]
		modA := lb.brigadeMod(brigA, catalog.ScorePitch, lb.a.General, true)
		modB := lb.brigadeMod(brigB, catalog.ScorePitch, lb.b.General, false)

		rollA, rollB, margin := dice.Contest(modA, modB, lb.roller.Source())
		switch {
		case margin > 0:
			lb.pitchCasualties(brigB, float64(margin)*perMargin, brigA, rollA, rollB)
		case margin < 0:
			lb.pitchCasualties(brigA, float64(-margin)*perMargin, brigB, rollB, rollA)
		default:
			lb.log.Append(LandPitch.String(), "%s and %s lock in a stand-off (%d vs %d)",
				brigA.ID, brigB.ID, rollA.Total, rollB.Total)
		}
	}
}

// pitchCasualties applies the loser's losses. A single pitch round cannot push
// a brigade below the minimum remainder unless it was already at or under it.
func (lb *landBattle) pitchCasualties(loser *force.Brigade, casualty float64, winner *force.Brigade, winRoll, loseRoll dice.RollResult) {
	if loser.Strength > lb.tuning.PitchMinRemainder {
		if max := loser.Strength - lb.tuning.PitchMinRemainder; casualty > max {
			casualty = max
		}
	}
	loser.ApplyCasualties(casualty)
	lb.log.Append(LandPitch.String(), "%s breaks %s (%d vs %d): %.0f%% casualties, %s at %.0f%%",
		winner.ID, loser.ID, winRoll.Total, loseRoll.Total, casualty, loser.ID, loser.Strength)
}

func (lb *landBattle) rally() {
	lb.rallyFor(lb.a, true)
	lb.rallyFor(lb.b, false)
}

func (lb *landBattle) rallyFor(side *force.Army, attacker bool) {
	reroll := generalHasAbility(side.General, catalog.RallyReroll)
	for _, brig := range side.ActiveBrigades() {
		if brig.Strength >= lb.tuning.RallyStrengthThreshold {
			continue
		}
		check := dice.Check{
			Modifier:  lb.brigadeMod(brig, catalog.ScoreRally, side.General, attacker),
			Threshold: lb.tuning.RallyThreshold,
		}
		roll := lb.roller.RollCheck(check)
		if roll.Outcome != dice.Success && reroll {
			lb.log.Append(LandRally.String(), "%s steadies %s for another try", side.General.Name, brig.ID)
			roll = lb.roller.RollCheck(check)
		}
		if roll.Outcome == dice.Success {
			lb.log.Append(LandRally.String(), "%s holds at %.0f%% strength (%s)", brig.ID, brig.Strength, roll)
		} else {
			brig.Status = force.BrigadeRouted
			lb.log.Append(LandRally.String(), "%s routs from the field (%s)", brig.ID, roll)
		}
	}
}

func (lb *landBattle) actionReport(initialA, initialB float64) *BattleResult {
	remA := lb.a.AggregateStrength()
	remB := lb.b.AggregateStrength()

	margin := (remA - remB) / (initialA + initialB)
	outcome := classifyMargin(margin, lb.tuning)

	result := &BattleResult{
		Kind:        KindLand,
		Outcome:     outcome,
		CasualtiesA: casualtyPct(initialA, remA),
		CasualtiesB: casualtyPct(initialB, remB),
		Rounds:      1,
	}

	if outcome == Stalemate {
		lb.log.Append(LandActionReport.String(),
			"both armies withdraw in good order (%.0f%% vs %.0f%% strength remaining)", remA, remB)
		result.Log = lb.log.Events()
		return result
	}

	victor, loser := lb.a, lb.b
	if remB > remA {
		victor, loser = lb.b, lb.a
	}
	result.Victor = victor.ID
	lb.log.Append(LandActionReport.String(), "%s carries the field (%s victory)", victor.ID, outcome)

	if champion := strongestBrigade(victor); champion != nil {
		champion.Promoted = true
		result.PromotedUnit = champion.ID
		lb.log.Append(LandActionReport.String(), "%s is mentioned in dispatches", champion.ID)
	}

	lb.winnerFate(victor, result)
	lb.loserFate(loser, result)

	result.Log = lb.log.Events()
	return result
}

// winnerFate rolls the victor's general's fate: a 1 may be rerolled once, a
// high roll earns a promotion. Ambitious generals promote a step easier.
func (lb *landBattle) winnerFate(victor *force.Army, result *BattleResult) {
	general := &victor.General
	roll := dice.RollD6(lb.roller.Source())
	if roll == 1 {
		roll = dice.RollD6(lb.roller.Source())
	}

	promoteAt := 6
	if generalHasAbility(*general, catalog.EasyPromotion) {
		promoteAt = 5
	}
	if roll >= promoteAt && general.Level < lb.tuning.MaxCommanderLevel {
		general.Level++
		general.Promoted = true
		result.PromotedCommanders = append(result.PromotedCommanders, general.Name)
		lb.log.Append(LandActionReport.String(), "%s is promoted to level %d", general.Name, general.Level)
	}
}

// loserFate rolls the defeated general's fate: a 1 means capture (lucky
// generals reroll it once), a 6 still earns a promotion for a fighting
// withdrawal.
func (lb *landBattle) loserFate(loser *force.Army, result *BattleResult) {
	general := &loser.General
	roll := dice.RollD6(lb.roller.Source())
	if roll == 1 && generalHasAbility(*general, catalog.LuckyReroll) {
		lb.log.Append(LandActionReport.String(), "%s slips the net", general.Name)
		roll = dice.RollD6(lb.roller.Source())
	}

	switch {
	case roll == 1:
		general.Captured = true
		result.CapturedCommanders = append(result.CapturedCommanders, general.Name)
		lb.log.Append(LandActionReport.String(), "%s is taken prisoner in the retreat", general.Name)
	case roll == 6 && general.Level < lb.tuning.MaxCommanderLevel:
		general.Level++
		general.Promoted = true
		result.PromotedCommanders = append(result.PromotedCommanders, general.Name)
		lb.log.Append(LandActionReport.String(), "%s is promoted to level %d for a fighting withdrawal",
			general.Name, general.Level)
	}
}

// brigadeMod resolves a brigade's modifier. Catalog references were validated
// before the battle started, so a resolution error here is a bug.
func (lb *landBattle) brigadeMod(b *force.Brigade, score catalog.Score, general force.General, attacker bool) int {
	mod, err := BrigadeModifier(b, score, lb.terrain, general, attacker)
	if err != nil {
		panic("battle: " + err.Error())
	}
	return mod
}

func generalHasAbility(g force.General, a catalog.Ability) bool {
	if g.TraitID == "" {
		return false
	}
	trait, ok := catalog.GeneralTrait(g.TraitID)
	return ok && trait.HasAbility(a)
}

// frontline returns the first active brigades up to the combat width, in army
// order.
func frontline(army *force.Army, width int) []*force.Brigade {
	active := army.ActiveBrigades()
	if len(active) > width {
		active = active[:width]
	}
	return active
}

func activeOnly(brigades []*force.Brigade) []*force.Brigade {
	out := make([]*force.Brigade, 0, len(brigades))
	for _, b := range brigades {
		if b.Active() {
			out = append(out, b)
		}
	}
	return out
}

// bestSkirmisher picks the active brigade with the highest resolved skirmish
// modifier, preferring the lowest index on ties.
func bestSkirmisher(lb *landBattle, army *force.Army, attacker bool) *force.Brigade {
	var best *force.Brigade
	bestMod := 0
	for _, brig := range army.ActiveBrigades() {
		mod := lb.brigadeMod(brig, catalog.ScoreSkirmish, army.General, attacker)
		if best == nil || mod > bestMod {
			best, bestMod = brig, mod
		}
	}
	return best
}

// weakestBrigade picks the active brigade with the lowest strength, preferring
// the lowest index on ties.
func weakestBrigade(army *force.Army) *force.Brigade {
	var weakest *force.Brigade
	for _, brig := range army.ActiveBrigades() {
		if weakest == nil || brig.Strength < weakest.Strength {
			weakest = brig
		}
	}
	return weakest
}

// strongestBrigade picks the active brigade with the highest strength,
// preferring the lowest index on ties.
func strongestBrigade(army *force.Army) *force.Brigade {
	var strongest *force.Brigade
	for _, brig := range army.ActiveBrigades() {
		if strongest == nil || brig.Strength > strongest.Strength {
			strongest = brig
		}
	}
	return strongest
}

func casualtyPct(initial, remaining float64) float64 {
	if initial <= 0 {
		return 0
	}
	return (initial - remaining) / initial * 100
}
