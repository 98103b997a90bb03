package repo

import (
	"context"
	"sync"

	"chargemap/internal/services/api/ratings/domain"

	"github.com/google/uuid"
)

// Memory keeps ratings in process
type Memory struct {
	mu    sync.Mutex
	order []string
	byID  map[string]domain.Record
}

// NewMemory returns an empty in memory Repo
func NewMemory() *Memory { return &Memory{byID: map[string]domain.Record{}} }

// Save implements Repo
func (m *Memory) Save(_ context.Context, in domain.NewRating) (domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insert(in), nil
}

// insert needs m.mu held
func (m *Memory) insert(in domain.NewRating) domain.Record {
	rec := domain.Record{
		ID:        uuid.NewString(),
		StationID: in.StationID,
		UserID:    in.UserID,
		Username:  in.Username,
		Value:     in.Value,
		Comment:   in.Comment,
		Timestamp: in.Timestamp,
	}
	m.byID[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return rec
}

// ListByStation implements Repo
func (m *Memory) ListByStation(_ context.Context, stationID string, limit int) ([]domain.Record, error) {
	limit = ClampLimit(limit)
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Record{}
	for _, id := range m.order {
		if r := m.byID[id]; r.StationID == stationID {
			out = append(out, r)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// GetByID implements Repo
func (m *Memory) GetByID(_ context.Context, id string) (*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// Update implements Repo
func (m *Memory) Update(_ context.Context, id string, p domain.Patch) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return false, nil
	}
	m.byID[id] = p.Apply(r)
	return true, nil
}

// Delete implements Repo
func (m *Memory) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return false, nil
	}
	delete(m.byID, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// SaveIfFirst implements Repo
func (m *Memory) SaveIfFirst(_ context.Context, in domain.NewRating) (domain.Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.byID {
		if r.UserID == in.UserID && r.StationID == in.StationID {
			return domain.Record{}, false, nil
		}
	}
	return m.insert(in), true, nil
}
