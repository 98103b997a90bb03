package module

import (
	"net/http"

	modkit "chargemap/internal/modkit"
	"chargemap/internal/platform/config"
	"chargemap/internal/services/api/ratings/domain"
	"chargemap/internal/services/api/ratings/repo"
	"chargemap/internal/services/api/ratings/service"
)

// Option is a configuration option for the ratings module
type Option = modkit.Option

// WithPrefix sets the route prefix for single rating routes
func WithPrefix(prefix string) Option { return modkit.WithPrefix(prefix) }

// WithMiddlewares sets the middlewares for the module
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return modkit.WithMiddlewares(mw...)
}

// WithStations makes rating creation check the station exists
func WithStations(l domain.StationLookup) Option { return modkit.WithPorts(l) }

// Options are the rating rules
type Options struct {
	PageLimit  int
	OnePerUser bool
	CommentMax int
}

type filePolicy struct {
	Ratings struct {
		PageLimit  int   `yaml:"page_limit"`
		OnePerUser *bool `yaml:"one_per_user"`
		CommentMax int   `yaml:"comment_max"`
	} `yaml:"ratings"`
}

// FromConfig reads options using the RATINGS_ prefix over the policy file
func FromConfig(cfg config.Conf) Options {
	var fp filePolicy
	if err := config.Overlay(cfg.MayString(config.PolicyFileKey, ""), &fp); err != nil {
		panic(err)
	}
	o := Options{PageLimit: repo.DefaultLimit, CommentMax: domain.DefaultCommentMax}
	if fp.Ratings.PageLimit > 0 {
		o.PageLimit = fp.Ratings.PageLimit
	}
	if fp.Ratings.OnePerUser != nil {
		o.OnePerUser = *fp.Ratings.OnePerUser
	}
	if fp.Ratings.CommentMax > 0 {
		o.CommentMax = fp.Ratings.CommentMax
	}

	rt := cfg.Prefix("RATINGS_")
	o.PageLimit = rt.MayIntIn("PAGE_LIMIT", o.PageLimit, 1, repo.MaxLimit)
	o.OnePerUser = rt.MayBool("ONE_PER_USER", o.OnePerUser)
	o.CommentMax = rt.MayIntIn("COMMENT_MAX", o.CommentMax, 1, 10_000)
	return o
}

// Service returns the service config the options describe
func (o Options) Service() service.Config {
	return service.Config{CommentMax: o.CommentMax, OnePerUser: o.OnePerUser, PageLimit: o.PageLimit}
}
