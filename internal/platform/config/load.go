package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	perr "chargemap/internal/platform/errors"
)

// PolicyFileKey names the variable pointing at the optional YAML policy file
const PolicyFileKey = "CHARGEMAP_POLICY_FILE"

// Load reads .env style files into the process environment
// Variables already set win over file values; missing files are skipped.
// With no paths it tries ".env" in the working directory.
func Load(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "load env file %s", p)
		}
	}
	return nil
}

// Overlay decodes the YAML file at path into dst
// An empty path is a no-op so callers can pass the env value directly.
func Overlay(path string, dst any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read policy file %s", path)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "decode policy file %s", path)
	}
	return nil
}

// PolicyFile returns the configured policy file path, if any
func PolicyFile() string { return New().MayString(PolicyFileKey, "") }
