// Package config reads application settings from the environment
//
// Values are looked up through prefix scoped views so each module only sees
// its own keys (CORE_API_, SERVICE_PGSQL_, RATINGS_ ...). Must* readers panic
// through the logger on missing or malformed input and are meant for boot
// time; May* readers fall back to a default and log a warning when a value is
// present but unparsable.
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"chargemap/internal/platform/logger"
)

// Conf is a namespaced view over environment variables
type Conf struct{ prefix string }

// New returns the root view
func New() Conf { return Conf{} }

// Prefix returns a child view, e.g. cfg.Prefix("RATINGS_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully qualified variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) key(k string) string { return c.Key(k) }

// lookup returns the trimmed value and whether it was non-empty
func (c Conf) lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(k)))
	return v, v != ""
}

func (c Conf) missing(k string) {
	logger.Get().Panic().Str("key", c.key(k)).Msg("missing required env")
}

func (c Conf) invalid(k, v, what string) {
	logger.Get().Panic().Str("key", c.key(k)).Str("value", v).Msg(what)
}

// MustString panics if the key is missing or empty
func (c Conf) MustString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		c.missing(key)
	}
	return v
}

// MustInt panics if the key is missing or not an int
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		c.invalid(key, s, "invalid int value")
	}
	return v
}

// MustBool panics if the key is missing or not a bool
func (c Conf) MustBool(key string) bool {
	s := c.MustString(key)
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.invalid(key, s, "invalid bool value")
	}
	return v
}

// MustDuration panics if the key is missing or not a Go duration
func (c Conf) MustDuration(key string) time.Duration {
	s := c.MustString(key)
	d, err := time.ParseDuration(s)
	if err != nil {
		c.invalid(key, s, "invalid duration (e.g., 250ms, 2s, 1h)")
	}
	return d
}

// MustURL panics unless the key holds an absolute URL
func (c Conf) MustURL(key string) *url.URL {
	s := c.MustString(key)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		c.invalid(key, s, "invalid absolute URL")
	}
	return u
}

// MustPort returns a listen address like ":8080"
// 0 is accepted and lets the kernel pick a port
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	return c.port(key, s)
}

// MayPort is MustPort with a default used when the key is unset
func (c Conf) MayPort(key, def string) string {
	s, ok := c.lookup(key)
	if !ok {
		s = def
	}
	return c.port(key, s)
}

func (c Conf) port(key, s string) string {
	p, err := strconv.Atoi(strings.TrimPrefix(s, ":"))
	if err != nil || p < 0 || p > 65535 {
		c.invalid(key, s, "invalid TCP port; expected 0..65535")
	}
	return ":" + strconv.Itoa(p)
}

// Require panics on the first key that is missing
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if _, ok := c.lookup(k); !ok {
			c.missing(k)
		}
	}
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def; unparsable values log and return def
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayIntIn is MayInt clamped to [lo, hi]
func (c Conf) MayIntIn(key string, def, lo, hi int) int {
	v := c.MayInt(key, def)
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// MayFloat64 returns the value or def; unparsable values log and return def
func (c Conf) MayFloat64(key string, def float64) float64 {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Float64("default", def).
			Msg("invalid float64; using default")
		return def
	}
	return v
}

// MayBool returns the value or def; unparsable values log and return def
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration returns the value or def; unparsable values log and return def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return d
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value (lower cased) when it is one of allowed, def when unset
// Anything else panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
