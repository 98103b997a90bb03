package modkit

import (
	"chargemap/internal/modkit/module"
)

// Module is the common surface for API modules
// the contract lives in the module package so port helpers avoid import knots
type Module = module.Module

// Builder constructs a Module from shared deps and options
// modules expose New(deps Deps, opts ...Option) Module with this shape
type Builder func(Deps, ...Option) Module
