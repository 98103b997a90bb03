package module

import (
	"chargemap/internal/modkit/httpkit"
	"chargemap/internal/services/api/ratings/domain"
)

// StationRoutes mounts the per station rating routes on the stations router
type StationRoutes interface {
	MountStationRoutes(r httpkit.Router)
}

// Ports are what the ratings module offers other modules
type Ports struct {
	Management    domain.ManagementPort
	StationRoutes StationRoutes
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Management: m.mgmt, StationRoutes: m} }
