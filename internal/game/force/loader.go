package force

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
)

// brigadeSpec is one brigade group in an army definition file. Count expands
// the group into that many identical brigades (default 1).
type brigadeSpec struct {
	Type        string `yaml:"type"`
	Count       int    `yaml:"count"`
	Enhancement string `yaml:"enhancement"`
	Skirmish    int    `yaml:"skirmish"`
	Pitch       int    `yaml:"pitch"`
	Rally       int    `yaml:"rally"`
	Defense     int    `yaml:"defense"`
}

// armySpec is the YAML shape of an army definition file.
type armySpec struct {
	ID      string `yaml:"id"`
	General struct {
		Name  string `yaml:"name"`
		Level int    `yaml:"level"`
		Trait string `yaml:"trait"`
	} `yaml:"general"`
	Brigades []brigadeSpec `yaml:"brigades"`
}

// shipSpec is one ship group in a fleet definition file.
type shipSpec struct {
	Doctrine    string `yaml:"doctrine"`
	Count       int    `yaml:"count"`
	Enhancement string `yaml:"enhancement"`
	Firepower   int    `yaml:"firepower"`
	Speed       int    `yaml:"speed"`
	Defense     int    `yaml:"defense"`
}

// armadaSpec is the YAML shape of a fleet definition file.
type armadaSpec struct {
	ID      string `yaml:"id"`
	Admiral struct {
		Name  string `yaml:"name"`
		Level int    `yaml:"level"`
		Trait string `yaml:"trait"`
	} `yaml:"admiral"`
	Ships []shipSpec `yaml:"ships"`
}

// LoadArmy reads one YAML army definition file.
//
// Precondition: path must be a readable file.
// Postcondition: Returns a fully built army with Active brigades at 100%
// strength, or a non-nil error. Catalog IDs are NOT validated here; the
// battle engine validates them before resolving.
func LoadArmy(path string) (*Army, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading army file %s: %w", path, err)
	}
	var spec armySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing army file %s: %w", path, err)
	}
	if spec.ID == "" {
		return nil, fmt.Errorf("army file %s: missing id", path)
	}

	army := &Army{
		ID: spec.ID,
		General: General{
			Name:    spec.General.Name,
			Level:   spec.General.Level,
			TraitID: spec.General.Trait,
		},
	}
	for gi, bs := range spec.Brigades {
		count := bs.Count
		if count == 0 {
			count = 1
		}
		bt := catalog.BrigadeType(bs.Type)
		for i := 0; i < count; i++ {
			army.Brigades = append(army.Brigades, &Brigade{
				ID:            fmt.Sprintf("%s-%s-%d-%d", spec.ID, bs.Type, gi, i),
				Type:          bt,
				Skirmish:      bs.Skirmish,
				Pitch:         bs.Pitch,
				Rally:         bs.Rally,
				Defense:       bs.Defense,
				Movement:      catalog.Movement(bt),
				Strength:      100,
				Status:        BrigadeActive,
				EnhancementID: bs.Enhancement,
			})
		}
	}
	return army, nil
}

// LoadArmada reads one YAML fleet definition file.
//
// Precondition: path must be a readable file.
// Postcondition: Returns a fully built armada with afloat ships at 100 hull,
// or a non-nil error.
func LoadArmada(path string) (*Armada, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fleet file %s: %w", path, err)
	}
	var spec armadaSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing fleet file %s: %w", path, err)
	}
	if spec.ID == "" {
		return nil, fmt.Errorf("fleet file %s: missing id", path)
	}

	fleet := &Armada{
		ID: spec.ID,
		Admiral: Admiral{
			Name:    spec.Admiral.Name,
			Level:   spec.Admiral.Level,
			TraitID: spec.Admiral.Trait,
		},
	}
	for gi, ss := range spec.Ships {
		count := ss.Count
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			fleet.Ships = append(fleet.Ships, &Ship{
				ID:            fmt.Sprintf("%s-%s-%d-%d", spec.ID, ss.Doctrine, gi, i),
				Doctrine:      catalog.Doctrine(ss.Doctrine),
				Firepower:     ss.Firepower,
				Speed:         ss.Speed,
				Defense:       ss.Defense,
				Hull:          100,
				Status:        ShipActive,
				EnhancementID: ss.Enhancement,
			})
		}
	}
	return fleet, nil
}

// LoadArmies reads every .yaml file in dir as an army definition.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed armies sorted by file name, or a non-nil
// error on the first unreadable or malformed file.
func LoadArmies(dir string) ([]*Army, error) {
	paths, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	armies := make([]*Army, 0, len(paths))
	for _, p := range paths {
		a, err := LoadArmy(p)
		if err != nil {
			return nil, err
		}
		armies = append(armies, a)
	}
	return armies, nil
}

// LoadArmadas reads every .yaml file in dir as a fleet definition.
func LoadArmadas(dir string) ([]*Armada, error) {
	paths, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	fleets := make([]*Armada, 0, len(paths))
	for _, p := range paths {
		f, err := LoadArmada(p)
		if err != nil {
			return nil, err
		}
		fleets = append(fleets, f)
	}
	return fleets, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
