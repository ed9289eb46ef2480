package catalog

// TraitRule is one modifier contribution granted by a trait. Flat applies
// unconditionally; PerLevel multiplies the commander's level. UnitType narrows
// the rule to one brigade type ("" applies to all units).
type TraitRule struct {
	Score    Score
	UnitType BrigadeType
	Flat     int
	PerLevel int
}

// Ability is a non-numeric trait behavior the phase machines check for.
type Ability string

const (
	// SkipSkirmish lets the side decline its skirmish attack (Cautious).
	SkipSkirmish Ability = "skip_skirmish"
	// RallyReroll grants one reroll on each failed rally roll (Inspiring).
	RallyReroll Ability = "rally_reroll"
	// EasyPromotion lowers the commander promotion number by one (Ambitious).
	EasyPromotion Ability = "easy_promotion"
	// LuckyReroll rerolls a 1 on the commander's fate die (Lucky).
	LuckyReroll Ability = "lucky_reroll"
	// ExtraRounds extends the naval round cap by two (Stoic).
	ExtraRounds Ability = "extra_rounds"
	// ExtraWidth raises naval combat width by one (Daring).
	ExtraWidth Ability = "extra_width"
)

// Trait is one entry in the general or admiral trait catalog. Entries whose
// effect lives outside battle resolution (pillaging, movement, visibility)
// carry a description but no rules; they are still recognized IDs.
type Trait struct {
	ID          string
	Name        string
	Description string
	Rules       []TraitRule
	Abilities   []Ability
}

// HasAbility reports whether the trait grants the given ability.
func (t *Trait) HasAbility(a Ability) bool {
	for _, ab := range t.Abilities {
		if ab == a {
			return true
		}
	}
	return false
}

var generalTraits = map[string]*Trait{
	"ambitious": {ID: "ambitious", Name: "Ambitious", Description: "-1 to promotion number",
		Abilities: []Ability{EasyPromotion}},
	"bold": {ID: "bold", Name: "Bold", Description: "+2 Skirmish to all brigades",
		Rules: []TraitRule{{Score: ScoreSkirmish, Flat: 2}}},
	"brilliant": {ID: "brilliant", Name: "Brilliant", Description: "Double general level in pitch",
		Rules: []TraitRule{{Score: ScorePitch, PerLevel: 1}}},
	"brutal": {ID: "brutal", Name: "Brutal", Description: "Double pillaging resources, enhanced sacking"},
	"cautious": {ID: "cautious", Name: "Cautious", Description: "May skip skirmishing stage",
		Abilities: []Ability{SkipSkirmish}},
	"chivalrous": {ID: "chivalrous", Name: "Chivalrous", Description: "Safe sacking, lenient destruction"},
	"clever": {ID: "clever", Name: "Clever", Description: "+1 Pitch and Skirmish for Light Brigades",
		Rules: []TraitRule{
			{Score: ScorePitch, UnitType: BrigadeLight, Flat: 1},
			{Score: ScoreSkirmish, UnitType: BrigadeLight, Flat: 1},
		}},
	"defiant": {ID: "defiant", Name: "Defiant", Description: "+1 Rally for all brigades",
		Rules: []TraitRule{{Score: ScoreRally, Flat: 1}}},
	"disciplined": {ID: "disciplined", Name: "Disciplined", Description: "+1 Pitch for all brigades",
		Rules: []TraitRule{{Score: ScorePitch, Flat: 1}}},
	"elusive": {ID: "elusive", Name: "Elusive", Description: "Retreat after skirmish once per week"},
	"flamboyant": {ID: "flamboyant", Name: "Flamboyant", Description: "+1 Skirmish and Rally for Cavalry",
		Rules: []TraitRule{
			{Score: ScoreSkirmish, UnitType: BrigadeCavalry, Flat: 1},
			{Score: ScoreRally, UnitType: BrigadeCavalry, Flat: 1},
		}},
	"inspiring": {ID: "inspiring", Name: "Inspiring", Description: "Free reroll on rally rolls",
		Abilities: []Ability{RallyReroll}},
	"judicious": {ID: "judicious", Name: "Judicious", Description: "+1 Pitch and Rally for Heavy Brigades",
		Rules: []TraitRule{
			{Score: ScorePitch, UnitType: BrigadeHeavy, Flat: 1},
			{Score: ScoreRally, UnitType: BrigadeHeavy, Flat: 1},
		}},
	"lucky": {ID: "lucky", Name: "Lucky", Description: "Reroll promotion die on 1",
		Abilities: []Ability{LuckyReroll}},
	"merciless": {ID: "merciless", Name: "Merciless", Description: "Harsher enemy destruction"},
	"prodigious": {ID: "prodigious", Name: "Prodigious", Description: "Starts with additional level"},
	"relentless": {ID: "relentless", Name: "Relentless", Description: "-1 movement cost, may pursue retreating enemies"},
	"resolute": {ID: "resolute", Name: "Resolute", Description: "+4 Defense for all brigades",
		Rules: []TraitRule{{Score: ScoreDefense, Flat: 4}}},
	"wary": {ID: "wary", Name: "Wary", Description: "Alert when seen, +1 sight, reveal enemy traits"},
	"zealous": {ID: "zealous", Name: "Zealous", Description: "+1 Pitch and Rally during Holy War"},
}

var admiralTraits = map[string]*Trait{
	"dauntless": {ID: "dauntless", Name: "Dauntless", Description: "+1 Boarding, bonus victory on boarding win",
		Rules: []TraitRule{{Score: ScoreBoarding, Flat: 1}}},
	"implacable": {ID: "implacable", Name: "Implacable", Description: "Chase retreating ships for second battle"},
	"privateer":  {ID: "privateer", Name: "Privateer", Description: "Piracy with national flags"},
	"raider":     {ID: "raider", Name: "Raider", Description: "Pillage coastal tiles with armada"},
	"stoic": {ID: "stoic", Name: "Stoic", Description: "Fight additional gunnery rounds",
		Abilities: []Ability{ExtraRounds}},
	"multilingual": {ID: "multilingual", Name: "Multilingual", Description: "Fly any national flag"},
	"daring": {ID: "daring", Name: "Daring", Description: "+1 combat width",
		Abilities: []Ability{ExtraWidth}},
	"experienced": {ID: "experienced", Name: "Experienced", Description: "+1 on all Maneuver rolls",
		Rules: []TraitRule{{Score: ScoreManeuver, Flat: 1}}},
	"accurate": {ID: "accurate", Name: "Accurate", Description: "+1 on all Gunnery rolls",
		Rules: []TraitRule{{Score: ScoreGunnery, Flat: 1}}},
	"wary": {ID: "wary", Name: "Wary", Description: "Alert when seen, +1 sight, reveal enemy traits"},
}

// GeneralTrait returns the land trait with the given ID, if present.
func GeneralTrait(id string) (*Trait, bool) {
	t, ok := generalTraits[id]
	return t, ok
}

// AdmiralTrait returns the naval trait with the given ID, if present.
func AdmiralTrait(id string) (*Trait, bool) {
	t, ok := admiralTraits[id]
	return t, ok
}

// GeneralTraitIDs returns the stable list of general trait identifiers.
func GeneralTraitIDs() []string {
	return []string{
		"ambitious", "bold", "brilliant", "brutal", "cautious", "chivalrous",
		"clever", "defiant", "disciplined", "elusive", "flamboyant", "inspiring",
		"judicious", "lucky", "merciless", "prodigious", "relentless", "resolute",
		"wary", "zealous",
	}
}

// AdmiralTraitIDs returns the stable list of admiral trait identifiers.
func AdmiralTraitIDs() []string {
	return []string{
		"dauntless", "implacable", "privateer", "raider", "stoic",
		"multilingual", "daring", "experienced", "accurate", "wary",
	}
}
