package battle

import (
	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
)

// BrigadeModifier computes the net roll modifier for one brigade on one score.
// Contributions are summed in a fixed order: unit base score, brigade-type
// bonus, terrain effect for the acting side, general trait contribution, then
// enhancement contributions. The general's level itself counts toward pitch
// (level-scaling traits such as Brilliant add a further level multiple).
//
// Pure function of its inputs; no contribution is ever dropped silently — an
// unrecognized trait or enhancement ID is a ConfigError.
func BrigadeModifier(b *force.Brigade, score catalog.Score, terrain *catalog.Terrain, general force.General, attacker bool) (int, error) {
	mod := brigadeBaseScore(b, score)
	mod += catalog.TypeBonus(b.Type, score)

	mod += terrain.SideEffect(score, attacker)
	if score == catalog.ScorePitch {
		mod += terrain.TypePitch[b.Type]
	}

	if score == catalog.ScorePitch {
		mod += general.Level
	}
	if general.TraitID != "" {
		trait, ok := catalog.GeneralTrait(general.TraitID)
		if !ok {
			return 0, configErrorf("unknown general trait %q", general.TraitID)
		}
		mod += traitContribution(trait, score, b.Type, general.Level)
	}

	if b.EnhancementID != "" {
		enh, ok := catalog.EnhancementByID(b.EnhancementID)
		if !ok {
			return 0, configErrorf("unknown enhancement %q on brigade %s", b.EnhancementID, b.ID)
		}
		if enh.Naval || enh.UnitType != b.Type {
			return 0, configErrorf("enhancement %q does not fit %s brigade %s", b.EnhancementID, b.Type, b.ID)
		}
		mod += enh.Bonus(score)
	}

	return mod, nil
}

// ShipModifier computes the net roll modifier for one ship on one score at the
// given range band. Same aggregation order as BrigadeModifier; the range-band
// falloff is part of the gunnery base score.
func ShipModifier(s *force.Ship, score catalog.Score, band int, admiral force.Admiral) (int, error) {
	mod := shipBaseScore(s, score, band)

	if admiral.TraitID != "" {
		trait, ok := catalog.AdmiralTrait(admiral.TraitID)
		if !ok {
			return 0, configErrorf("unknown admiral trait %q", admiral.TraitID)
		}
		mod += traitContribution(trait, score, "", admiral.Level)
	}

	if s.EnhancementID != "" {
		enh, ok := catalog.EnhancementByID(s.EnhancementID)
		if !ok {
			return 0, configErrorf("unknown enhancement %q on ship %s", s.EnhancementID, s.ID)
		}
		if !enh.Naval {
			return 0, configErrorf("enhancement %q is not a naval enhancement (ship %s)", s.EnhancementID, s.ID)
		}
		mod += enh.Bonus(score)
	}

	return mod, nil
}

func brigadeBaseScore(b *force.Brigade, score catalog.Score) int {
	switch score {
	case catalog.ScoreSkirmish:
		return b.Skirmish
	case catalog.ScorePitch:
		return b.Pitch
	case catalog.ScoreRally:
		return b.Rally
	case catalog.ScoreDefense:
		return b.Defense
	default:
		panic("battle: score " + string(score) + " does not apply to brigades")
	}
}

func shipBaseScore(s *force.Ship, score catalog.Score, band int) int {
	switch score {
	case catalog.ScoreGunnery:
		return s.Firepower + catalog.GunneryFalloff(s.Doctrine, band)
	case catalog.ScoreManeuver:
		return s.Speed
	case catalog.ScoreBoarding:
		// Boarding parties fight off the ship's defense complement; boarders
		// carry dedicated crews.
		base := s.Defense
		if s.Doctrine == catalog.DoctrineBoarding {
			base++
		}
		return base
	default:
		panic("battle: score " + string(score) + " does not apply to ships")
	}
}

func traitContribution(trait *catalog.Trait, score catalog.Score, unitType catalog.BrigadeType, level int) int {
	total := 0
	for _, rule := range trait.Rules {
		if rule.Score != score {
			continue
		}
		if rule.UnitType != "" && rule.UnitType != unitType {
			continue
		}
		total += rule.Flat + rule.PerLevel*level
	}
	return total
}
