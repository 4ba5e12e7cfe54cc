package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (LOGSHIM_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("backend", os.Getenv("LOGSHIM_BACKEND"), &cfg.Backend)
	s.setString("tag", os.Getenv("LOGSHIM_TAG"), &cfg.Tag)
}
