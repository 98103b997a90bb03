// Package module is the contract every api module implements
// it sits apart from modkit so a module can export its ports without an import cycle
package module

import phttp "chargemap/internal/platform/net/http"

// Module mounts its routes and exposes ports other modules call
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	Ports() any
}

// Find returns the module called name, nil when absent
func Find(mods []Module, name string) Module {
	for _, m := range mods {
		if m != nil && m.Name() == name {
			return m
		}
	}
	return nil
}

// MountAll mounts mods in order, skipping nil entries
func MountAll(r phttp.Router, mods []Module) {
	for _, m := range mods {
		if m != nil {
			m.MountRoutes(r)
		}
	}
}
