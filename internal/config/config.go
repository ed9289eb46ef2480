// Package config provides Viper-based configuration loading for the
// Blackpowder battle simulator.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/blackpowder-sim/blackpowder/internal/game/battle"
	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
)

// DatabaseConfig holds PostgreSQL connection settings for battle report
// persistence.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// EngineConfig exposes the battle engine rule constants that are worth tuning
// between simulation campaigns. Zero values fall back to the engine defaults.
type EngineConfig struct {
	SkirmishThreshold int     `mapstructure:"skirmish_threshold"`
	SkirmishCasualty  float64 `mapstructure:"skirmish_casualty"`
	RallyThreshold    int     `mapstructure:"rally_threshold"`
	GunneryThreshold  int     `mapstructure:"gunnery_threshold"`
	MaxNavalRounds    int     `mapstructure:"max_naval_rounds"`
	StalemateEpsilon  float64 `mapstructure:"stalemate_epsilon"`
	DecisiveThreshold float64 `mapstructure:"decisive_threshold"`
}

// Tuning merges the configured overrides into the engine's default tuning.
//
// Postcondition: The returned tuning passes battle.Tuning.Validate whenever
// the config itself passed Validate.
func (e EngineConfig) Tuning() battle.Tuning {
	t := battle.DefaultTuning()
	if e.SkirmishThreshold != 0 {
		t.SkirmishThreshold = e.SkirmishThreshold
	}
	if e.SkirmishCasualty != 0 {
		t.SkirmishCasualty = e.SkirmishCasualty
	}
	if e.RallyThreshold != 0 {
		t.RallyThreshold = e.RallyThreshold
	}
	if e.GunneryThreshold != 0 {
		t.GunneryThreshold = e.GunneryThreshold
	}
	if e.MaxNavalRounds != 0 {
		t.MaxNavalRounds = e.MaxNavalRounds
	}
	if e.StalemateEpsilon != 0 {
		t.StalemateEpsilon = e.StalemateEpsilon
	}
	if e.DecisiveThreshold != 0 {
		t.DecisiveThreshold = e.DecisiveThreshold
	}
	return t
}

// SimulationConfig holds batch-run settings for the simulator.
type SimulationConfig struct {
	// Mode selects the battle kind: "land" or "naval".
	Mode string `mapstructure:"mode"`
	// Battles is the number of battles to resolve in one run.
	Battles int `mapstructure:"battles"`
	// Workers is the number of concurrent resolution workers.
	Workers int `mapstructure:"workers"`
	// BaseSeed seeds battle i with BaseSeed+i.
	BaseSeed int64 `mapstructure:"base_seed"`
	// Terrain is the land terrain or sea lane the batch fights over.
	Terrain string `mapstructure:"terrain"`
	// Output is the JSONL record destination; empty writes to stdout.
	Output string `mapstructure:"output"`
	// ForcesDir optionally loads the opposing forces from YAML files instead
	// of the built-in sample matchup.
	ForcesDir string `mapstructure:"forces_dir"`
	// Persist stores each battle report in PostgreSQL when true.
	Persist bool `mapstructure:"persist"`
}

// Config is the top-level application configuration.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing
// all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateDatabase(c.Database); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := c.Engine.Tuning().Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	switch s.Mode {
	case "land":
		if _, ok := catalog.LandTerrain(s.Terrain); !ok {
			errs = append(errs, fmt.Sprintf("simulation.terrain %q is not a land terrain", s.Terrain))
		}
	case "naval":
		if _, ok := catalog.SeaTerrainByID(s.Terrain); !ok {
			errs = append(errs, fmt.Sprintf("simulation.terrain %q is not a sea lane", s.Terrain))
		}
	default:
		errs = append(errs, fmt.Sprintf("simulation.mode must be one of [land, naval], got %q", s.Mode))
	}
	if s.Battles < 1 {
		errs = append(errs, fmt.Sprintf("simulation.battles must be >= 1, got %d", s.Battles))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Sprintf("simulation.workers must be >= 1, got %d", s.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with BLACKPOWDER_ prefix
	v.SetEnvPrefix("BLACKPOWDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "blackpowder")
	v.SetDefault("database.password", "blackpowder")
	v.SetDefault("database.name", "blackpowder")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("simulation.mode", "land")
	v.SetDefault("simulation.battles", 100)
	v.SetDefault("simulation.workers", 4)
	v.SetDefault("simulation.base_seed", 1)
	v.SetDefault("simulation.terrain", "plains")
}
