package module

import (
	"chargemap/internal/services/api/stations/domain"
)

// Ports are what the stations module offers other modules and tools
type Ports struct {
	Management domain.ManagementPort
	Lookup     domain.LookupPort
	Importer   domain.ImportPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
