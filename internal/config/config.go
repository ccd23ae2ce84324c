// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete table configuration
type Config struct {
	Rules   RulesConfig    `hcl:"rules,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// RulesConfig contains house-rule settings
type RulesConfig struct {
	DealerName string `hcl:"dealer_name,optional"`
	HitSoft17  bool   `hcl:"hit_soft_17,optional"`
	Decks      int    `hcl:"decks,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	Strategy   string `hcl:"strategy,optional"`
}

// PlayerConfig defines one seat at the table
type PlayerConfig struct {
	Name string `hcl:"name,label"`
	Bet  int    `hcl:"bet,optional"`
}

// Default returns the default table configuration: one seat, one deck per
// five players, dealer stands on soft 17.
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			DealerName: "Dealer",
			LogLevel:   "info",
			Strategy:   "basic",
		},
		Players: []PlayerConfig{
			{Name: "Player 1", Bet: 100},
		},
	}
}

// Load loads table configuration from an HCL file. A missing file yields
// the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Rules.DealerName == "" {
		c.Rules.DealerName = "Dealer"
	}
	if c.Rules.LogLevel == "" {
		c.Rules.LogLevel = "info"
	}
	if c.Rules.Strategy == "" {
		c.Rules.Strategy = "basic"
	}
	if len(c.Players) == 0 {
		c.Players = Default().Players
	}
	for i := range c.Players {
		if c.Players[i].Bet == 0 {
			c.Players[i].Bet = 100
		}
	}
	// Decks stays zero when unset; the table sizes the shoe to the seats.
}

// Validate validates the table configuration
func (c *Config) Validate() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player must be configured")
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player name must not be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if p.Bet <= 0 {
			return fmt.Errorf("player %s: bet must be positive", p.Name)
		}
	}

	if c.Rules.Decks < 0 {
		return fmt.Errorf("decks must not be negative")
	}

	switch c.Rules.Strategy {
	case "basic", "mimic", "stand":
	default:
		return fmt.Errorf("unknown strategy: %s", c.Rules.Strategy)
	}

	return nil
}
