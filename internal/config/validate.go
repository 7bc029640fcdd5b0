package config

import (
	"fmt"

	"loom/internal/traits"
)

var (
	validLogFormats    = map[string]bool{"text": true, "json": true}
	validLogLevels     = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validOutputFormats = map[string]bool{"table": true, "json": true}
	validOutputColors  = map[string]bool{"auto": true, "always": true, "never": true}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateRegistry(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateLogging() error {
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format %q must be one of: text, json", c.Logging.Format)
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level %q must be one of: debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateRegistry() error {
	known := make(map[string]bool)
	for _, category := range traits.BuiltinCategories() {
		known[category] = true
	}
	for _, namespace := range c.Registry.Namespaces {
		if !known[namespace] {
			return fmt.Errorf("registry.namespaces contains unknown category %q", namespace)
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !validOutputFormats[c.Output.Format] {
		return fmt.Errorf("output.format %q must be one of: table, json", c.Output.Format)
	}
	if !validOutputColors[c.Output.Color] {
		return fmt.Errorf("output.color %q must be one of: auto, always, never", c.Output.Color)
	}
	return nil
}
