package force_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
)

const armyYAML = `id: red
general:
  name: Marshal Verding
  level: 3
  trait: bold
brigades:
  - type: heavy
    count: 2
    enhancement: elite
  - type: cavalry
    skirmish: 1
`

const fleetYAML = `id: red-fleet
admiral:
  name: Admiral Calloway
  level: 2
  trait: accurate
ships:
  - doctrine: gunnery
    count: 2
    enhancement: additional_firepower
  - doctrine: boarding
    speed: 1
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadArmy(t *testing.T) {
	path := writeFile(t, t.TempDir(), "red.yaml", armyYAML)

	a, err := force.LoadArmy(path)
	require.NoError(t, err)

	assert.Equal(t, "red", a.ID)
	assert.Equal(t, "bold", a.General.TraitID)
	assert.Equal(t, 3, a.General.Level)
	require.Len(t, a.Brigades, 3)
	assert.Equal(t, catalog.BrigadeHeavy, a.Brigades[0].Type)
	assert.Equal(t, "elite", a.Brigades[1].EnhancementID)
	assert.Equal(t, 1, a.Brigades[2].Skirmish)
	for _, b := range a.Brigades {
		assert.InDelta(t, 100.0, b.Strength, 1e-9)
		assert.Equal(t, force.BrigadeActive, b.Status)
	}
}

func TestLoadArmyMissingID(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "general:\n  name: X\n")
	_, err := force.LoadArmy(path)
	assert.Error(t, err)
}

func TestLoadArmada(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fleet.yaml", fleetYAML)

	f, err := force.LoadArmada(path)
	require.NoError(t, err)

	assert.Equal(t, "red-fleet", f.ID)
	require.Len(t, f.Ships, 3)
	assert.Equal(t, catalog.DoctrineGunnery, f.Ships[0].Doctrine)
	assert.Equal(t, "additional_firepower", f.Ships[1].EnhancementID)
	assert.Equal(t, 1, f.Ships[2].Speed)
	assert.InDelta(t, 100.0, f.Ships[0].Hull, 1e-9)
}

func TestLoadArmiesSortedByFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "id: beta\nbrigades:\n  - type: light\n")
	writeFile(t, dir, "a.yaml", "id: alpha\nbrigades:\n  - type: heavy\n")
	writeFile(t, dir, "notes.txt", "ignored")

	armies, err := force.LoadArmies(dir)
	require.NoError(t, err)
	require.Len(t, armies, 2)
	assert.Equal(t, "alpha", armies[0].ID)
	assert.Equal(t, "beta", armies[1].ID)
}
