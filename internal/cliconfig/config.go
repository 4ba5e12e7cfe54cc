package cliconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bft-labs/logshim/pkg/log"
)

// DefaultTag is used by the pipe command for records whose tag is "-".
const DefaultTag = "logshim"

// ErrInvalidConfig is returned when configuration validation fails.
var ErrInvalidConfig = errors.New("logshim: invalid configuration")

// Config holds CLI configuration for logshim.
type Config struct {
	Backend string
	Tag     string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Backend: log.BackendPlain,
		Tag:     DefaultTag,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		return fmt.Errorf("%w: backend is required", ErrInvalidConfig)
	}
	for _, b := range log.Backends() {
		if c.Backend == b {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown backend %q (want one of %s)",
		ErrInvalidConfig, c.Backend, strings.Join(log.Backends(), ", "))
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}
