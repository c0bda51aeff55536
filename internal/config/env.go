package config

import (
	"os"
	"strconv"
	"strings"
)

// Recognized environment variables.
const (
	EnvDebug          = "CLI_ENGINE_DEBUG"
	EnvSkipAnalytics  = "CLI_ENGINE_SKIP_ANALYTICS"
	EnvTesting        = "TESTING"
	EnvUpdateDisabled = "CLI_ENGINE_UPDATE_DISABLED"
)

// Env is an immutable snapshot of environment variables. Builds read the
// snapshot instead of the process environment so tests never mutate
// shared state.
type Env map[string]string

// EnvFromOS snapshots the current process environment.
func EnvFromOS() Env {
	return EnvFromList(os.Environ())
}

// EnvFromList parses KEY=VALUE pairs; later duplicates win.
func EnvFromList(list []string) Env {
	env := make(Env, len(list))
	for _, kv := range list {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// Get returns the value of key, or "" when unset.
func (e Env) Get(key string) string {
	return e[key]
}

// Debug is the integer debug level; unset or non-integer values are 0.
func (e Env) Debug() int {
	n, err := strconv.Atoi(strings.TrimSpace(e.Get(EnvDebug)))
	if err != nil {
		return 0
	}
	return n
}

// Testing reports whether the test-mode variable is "1" or "true".
func (e Env) Testing() bool {
	v := e.Get(EnvTesting)
	return v == "1" || v == "true"
}

// SkipAnalytics reports whether the analytics opt-out variable is "1".
func (e Env) SkipAnalytics() bool {
	return e.Get(EnvSkipAnalytics) == "1"
}

// UpdateDisabled returns the message shown when self-update is disabled,
// or "" when it is not. The value "1" selects a canned message naming bin.
func (e Env) UpdateDisabled(bin string) string {
	v := e.Get(EnvUpdateDisabled)
	switch v {
	case "":
		return ""
	case "1":
		return "update with " + bin + " update"
	default:
		return v
	}
}
