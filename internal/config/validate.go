package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTokenizer(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTokenizer() error {
	switch c.Tokenizer.Policy {
	case "normalized", "literal":
		return nil
	default:
		return fmt.Errorf("tokenizer.policy must be normalized or literal, got %q", c.Tokenizer.Policy)
	}
}

func (c *Config) validateOutput() error {
	if err := ensureOneOf("output.format", c.Output.Format, "plain", "table", "json"); err != nil {
		return err
	}
	return ensureOneOf("output.color", c.Output.Color, "auto", "always", "never")
}

func (c *Config) validateHistory() error {
	if !c.History.Enabled {
		return nil
	}
	if strings.TrimSpace(c.History.Path) == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	if c.History.MaxEntries > maxHistoryEntriesCeiling {
		return fmt.Errorf("history.max_entries must be <= %d", maxHistoryEntriesCeiling)
	}
	return nil
}

func (c *Config) validateLogging() error {
	return ensureOneOf("logging.level", c.Logging.Level, "debug", "info", "warn", "error")
}

func ensureOneOf(key, value string, allowed ...string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), value)
}
