package config

import (
	"errors"
	"fmt"
)

var allowedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.AssetsDir == "" {
		return errors.New("paths.assets_dir must be set")
	}
	if c.Paths.TimelineDir == "" {
		return errors.New("paths.timeline_dir must be set")
	}
	if c.Paths.AudioDir == "" {
		return errors.New("paths.audio_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if c.Paths.TimelineDir == c.Paths.LogDir {
		return errors.New("paths.timeline_dir and paths.log_dir must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := allowedLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
