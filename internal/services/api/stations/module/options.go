package module

import (
	"net/http"

	modkit "chargemap/internal/modkit"
	"chargemap/internal/modkit/httpkit"
	"chargemap/internal/platform/config"
	"chargemap/internal/services/api/stations/domain"
	"chargemap/internal/services/api/stations/repo"
)

// Option is a configuration option for the stations module
type Option = modkit.Option

// WithPrefix sets the route prefix for the module
func WithPrefix(prefix string) Option { return modkit.WithPrefix(prefix) }

// WithMiddlewares sets the middlewares for the module
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return modkit.WithMiddlewares(mw...)
}

// WithRegister adds routes under the stations prefix, used for nested resources
func WithRegister(fn func(httpkit.Router)) Option { return modkit.WithRegister(fn) }

// Options controls the station search policy
type Options struct {
	PostalPrefixes []string
	PageLimit      int
}

// filePolicy is the stations section of the policy file
type filePolicy struct {
	Stations struct {
		PostalPrefixes []string `yaml:"postal_prefixes"`
		PageLimit      int      `yaml:"page_limit"`
	} `yaml:"stations"`
}

// FromConfig reads options using the STATIONS_ prefix over the policy file
// env keys win over the file; a broken policy file panics like a missing required key
func FromConfig(cfg config.Conf) Options {
	var fp filePolicy
	if err := config.Overlay(cfg.MayString(config.PolicyFileKey, ""), &fp); err != nil {
		panic(err)
	}
	prefixes := fp.Stations.PostalPrefixes
	if len(prefixes) == 0 {
		prefixes = domain.DefaultPrefixes
	}
	limit := fp.Stations.PageLimit
	if limit == 0 {
		limit = repo.DefaultLimit
	}

	st := cfg.Prefix("STATIONS_")
	return Options{
		PostalPrefixes: st.MayCSV("POSTAL_PREFIXES", prefixes),
		PageLimit:      st.MayIntIn("PAGE_LIMIT", limit, 1, repo.MaxLimit),
	}
}

// Policy returns the postal policy the options describe
func (o Options) Policy() domain.PostalPolicy {
	return domain.PostalPolicy{Prefixes: append([]string(nil), o.PostalPrefixes...)}
}
