// Package config loads table and bot configuration from HCL files, in the
// same block-decoding style used elsewhere in this codebase's ecosystem.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the top-level document: one table's rules plus the bots seated
// at it.
type Config struct {
	Table TableConfig `hcl:"table,block"`
	Bots  []BotConfig `hcl:"bot,block"`
}

// TableConfig defines the blind structure and seating for a single table.
type TableConfig struct {
	SmallBlind int `hcl:"small_blind"`
	BigBlind   int `hcl:"big_blind"`
	StartChips int `hcl:"start_chips,optional"`
	MaxPlayers int `hcl:"max_players,optional"`
}

// BotConfig defines one seated bot's personality.
type BotConfig struct {
	Name       string  `hcl:"name,label"`
	Difficulty string  `hcl:"difficulty,optional"`
	Tightness  float64 `hcl:"tightness,optional"`
	Aggression float64 `hcl:"aggression,optional"`
	Bluff      float64 `hcl:"bluff,optional"`
	Tilt       float64 `hcl:"tilt,optional"`
	Curiosity  float64 `hcl:"curiosity,optional"`
	MinDelayMS int     `hcl:"min_delay_ms,optional"`
	MaxDelayMS int     `hcl:"max_delay_ms,optional"`
	Seed       int     `hcl:"seed,optional"`
}

// Default returns a single six-max table with no bots configured.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			SmallBlind: 1,
			BigBlind:   2,
			StartChips: 200,
			MaxPlayers: 6,
		},
	}
}

// Load reads and decodes an HCL config file. A missing file is not an
// error: it returns Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Table.StartChips == 0 {
		cfg.Table.StartChips = cfg.Table.BigBlind * 100
	}
	if cfg.Table.MaxPlayers == 0 {
		cfg.Table.MaxPlayers = 6
	}
	for i := range cfg.Bots {
		b := &cfg.Bots[i]
		if b.Difficulty == "" {
			b.Difficulty = "medium"
		}
		if b.MinDelayMS == 0 {
			b.MinDelayMS = 400
		}
		if b.MaxDelayMS == 0 {
			b.MaxDelayMS = 1800
		}
		if b.Tightness == 0 {
			b.Tightness = 0.5
		}
		if b.Aggression == 0 {
			b.Aggression = 0.5
		}
	}
}

// Validate checks the decoded configuration for internally consistent
// blind and seating values.
func (c *Config) Validate() error {
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("config: small blind must be positive")
	}
	if c.Table.BigBlind <= c.Table.SmallBlind {
		return fmt.Errorf("config: big blind must be greater than small blind")
	}
	if c.Table.MaxPlayers < 2 || c.Table.MaxPlayers > 10 {
		return fmt.Errorf("config: max players must be between 2 and 10")
	}
	for _, b := range c.Bots {
		switch b.Difficulty {
		case "easy", "medium", "hard":
		default:
			return fmt.Errorf("bot %s: invalid difficulty %q", b.Name, b.Difficulty)
		}
	}
	return nil
}
