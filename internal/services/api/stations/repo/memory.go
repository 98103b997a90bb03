package repo

import (
	"context"
	"sync"

	"chargemap/internal/services/api/stations/domain"

	"github.com/google/uuid"
)

// Memory keeps stations in process
// insertion order is the store order
type Memory struct {
	mu    sync.Mutex
	order []string
	byID  map[string]*Row
}

// NewMemory returns an empty in memory Repo
func NewMemory() *Memory { return &Memory{byID: map[string]*Row{}} }

// FindByPostalCode implements Repo
func (m *Memory) FindByPostalCode(_ context.Context, code string, limit int) ([]Row, error) {
	limit = ClampLimit(limit)
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Row{}
	for _, id := range m.order {
		if r := m.byID[id]; r.PostalCode == code {
			out = append(out, *r)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// FindByID implements Repo
func (m *Memory) FindByID(_ context.Context, id string) (*Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

// ToggleAvailability implements Repo
func (m *Memory) ToggleAvailability(_ context.Context, id string) (bool, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return false, false, nil
	}
	r.Available = !r.Available
	return r.Available, true, nil
}

// Import implements Repo
func (m *Memory) Import(_ context.Context, in []domain.NewStation) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range in {
		id := uuid.NewString()
		m.byID[id] = &Row{
			ID:          id,
			PostalCode:  s.PostalCode,
			Available:   s.Available,
			Latitude:    s.Latitude,
			Longitude:   s.Longitude,
			Description: s.Description,
			Name:        s.Name,
			PowerKW:     s.PowerKW,
		}
		m.order = append(m.order, id)
	}
	return len(in), nil
}

// IDs returns station ids in store order
func (m *Memory) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}
