package main

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
)

// tracerKeys are the trace selectors of the tacit packages.
var tracerKeys = []string{
	"tacit.syntax",
	"tacit.scanner",
	"tacit.cursor",
	"tacit.runtime",
	"tacit.shell",
}

// flagConfig is a schuko.Configuration backed by command line flags.
type flagConfig map[string]string

var _ schuko.Configuration = flagConfig{}

// newFlagConfig creates a configuration from flag values. A trace level is
// applied to the root tracer and all tacit tracers; logfile, if not empty,
// redirects trace output.
func newFlagConfig(level string, limit int, logfile string) flagConfig {
	conf := flagConfig{
		"tracing.adapter": "go",
		"tracing.root":    level,
		"display.limit":   strconv.Itoa(limit),
	}
	for _, key := range tracerKeys {
		conf["tracing."+key] = level
	}
	if logfile != "" {
		conf["tracing.destination"] = "file://" + logfile
	}
	return conf
}

// InitDefaults sets every key left unset to its default value.
func (c flagConfig) InitDefaults() {
	defaults := map[string]string{
		"tracing.adapter": "go",
		"tracing.root":    "Error",
		"display.limit":   "16",
	}
	for k, v := range defaults {
		if !c.IsSet(k) {
			c[k] = v
		}
	}
}

// IsSet is a predicate: is a config key set?
func (c flagConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

// GetString returns a config value as a string.
func (c flagConfig) GetString(key string) string {
	return c[key]
}

// GetInt returns a config value as an integer, or 0.
func (c flagConfig) GetInt(key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c[key]))
	if err != nil {
		return 0
	}
	return n
}

// GetBool returns a config value as a boolean value.
func (c flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

// IsInteractive is always true for tacit.
func (c flagConfig) IsInteractive() bool {
	return true
}
