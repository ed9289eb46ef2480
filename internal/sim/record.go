// Package sim runs batches of battle resolutions concurrently and serializes
// their outcomes as line-delimited JSON records.
package sim

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/blackpowder-sim/blackpowder/internal/game/battle"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
)

// Record is the flat, serializable summary of one resolved battle. One record
// is one JSONL line.
type Record struct {
	Kind    string `json:"kind"`
	Terrain string `json:"terrain"`
	Seed    int64  `json:"seed"`

	ForceA string `json:"force_a"`
	ForceB string `json:"force_b"`

	Victor  string `json:"victor,omitempty"`
	Outcome string `json:"outcome"`

	CasualtiesA float64 `json:"casualties_a"`
	CasualtiesB float64 `json:"casualties_b"`

	PromotedUnit       string   `json:"promoted_unit,omitempty"`
	PromotedCommanders []string `json:"promoted_commanders,omitempty"`
	CapturedCommanders []string `json:"captured_commanders,omitempty"`

	TraitA        string   `json:"trait_a,omitempty"`
	TraitB        string   `json:"trait_b,omitempty"`
	LevelA        int      `json:"level_a,omitempty"`
	LevelB        int      `json:"level_b,omitempty"`
	EnhancementsA []string `json:"enhancements_a,omitempty"`
	EnhancementsB []string `json:"enhancements_b,omitempty"`

	Rounds    int   `json:"rounds"`
	ElapsedUS int64 `json:"elapsed_us"`
}

// NewRecord flattens a battle result into its batch record.
func NewRecord(terrainID, forceA, forceB string, seed int64, result *battle.BattleResult) Record {
	return Record{
		Kind:               string(result.Kind),
		Terrain:            terrainID,
		Seed:               seed,
		ForceA:             forceA,
		ForceB:             forceB,
		Victor:             result.Victor,
		Outcome:            string(result.Outcome),
		CasualtiesA:        result.CasualtiesA,
		CasualtiesB:        result.CasualtiesB,
		PromotedUnit:       result.PromotedUnit,
		PromotedCommanders: result.PromotedCommanders,
		CapturedCommanders: result.CapturedCommanders,
		Rounds:             result.Rounds,
		ElapsedUS:          result.Elapsed.Microseconds(),
	}
}

// NewLandRecord builds a record carrying the armies' commander and
// enhancement profile alongside the flattened result.
func NewLandRecord(terrainID string, a, b *force.Army, seed int64, result *battle.BattleResult) Record {
	rec := NewRecord(terrainID, a.ID, b.ID, seed, result)
	rec.TraitA, rec.LevelA = a.General.TraitID, a.General.Level
	rec.TraitB, rec.LevelB = b.General.TraitID, b.General.Level
	for _, br := range a.Brigades {
		rec.EnhancementsA = appendUnique(rec.EnhancementsA, br.EnhancementID)
	}
	for _, br := range b.Brigades {
		rec.EnhancementsB = appendUnique(rec.EnhancementsB, br.EnhancementID)
	}
	return rec
}

// NewNavalRecord is the fleet counterpart of NewLandRecord.
func NewNavalRecord(seaTerrainID string, a, b *force.Armada, seed int64, result *battle.BattleResult) Record {
	rec := NewRecord(seaTerrainID, a.ID, b.ID, seed, result)
	rec.TraitA, rec.LevelA = a.Admiral.TraitID, a.Admiral.Level
	rec.TraitB, rec.LevelB = b.Admiral.TraitID, b.Admiral.Level
	for _, s := range a.Ships {
		rec.EnhancementsA = appendUnique(rec.EnhancementsA, s.EnhancementID)
	}
	for _, s := range b.Ships {
		rec.EnhancementsB = appendUnique(rec.EnhancementsB, s.EnhancementID)
	}
	return rec
}

func appendUnique(ids []string, id string) []string {
	if id == "" {
		return ids
	}
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// WriteJSONL writes one record per line to w.
//
// Postcondition: On success, exactly len(records) newline-terminated JSON
// objects were written.
func WriteJSONL(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for i, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
	}
	return nil
}
