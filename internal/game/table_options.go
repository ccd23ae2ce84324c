package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// TableOption configures a Table during creation.
type TableOption func(*tableConfig)

// tableConfig holds all configuration for creating a table.
type tableConfig struct {
	dealerName string
	hitSoft17  bool
	logger     *log.Logger
	events     EventBus
}

func defaultTableConfig() *tableConfig {
	return &tableConfig{
		dealerName: "Dealer",
		logger:     log.New(io.Discard),
	}
}

// WithDealerName sets the dealer's name. Default is "Dealer".
func WithDealerName(name string) TableOption {
	return func(c *tableConfig) {
		c.dealerName = name
	}
}

// WithHitSoft17 makes the dealer hit a soft 17 instead of standing.
func WithHitSoft17(hit bool) TableOption {
	return func(c *tableConfig) {
		c.hitSoft17 = hit
	}
}

// WithLogger sets the table's logger. Default discards everything.
func WithLogger(logger *log.Logger) TableOption {
	return func(c *tableConfig) {
		c.logger = logger
	}
}

// WithEventBus publishes round events to the given bus, for display
// collaborators.
func WithEventBus(events EventBus) TableOption {
	return func(c *tableConfig) {
		c.events = events
	}
}
