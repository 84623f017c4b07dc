package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	model "gerejaku_backend/internals/features/support/model"
)

var ErrUnitNotFound = errors.New("unit not found")

// UnitStore keeps the support directory in process memory behind a RWMutex.
// Every accessor copies, so callers never share slices with the store.
type UnitStore struct {
	mu    sync.RWMutex
	units map[uuid.UUID]model.Unit
}

func NewUnitStore() *UnitStore {
	return &UnitStore{units: make(map[uuid.UUID]model.Unit)}
}

func cloneUnit(u model.Unit) model.Unit {
	c := u
	c.UnitMembers = append([]model.UnitMember(nil), u.UnitMembers...)
	return c
}

func (s *UnitStore) Create(name, description string, members []model.UnitMember) model.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.Unit{
		UnitID:          uuid.New(),
		UnitName:        strings.TrimSpace(name),
		UnitDescription: strings.TrimSpace(description),
		UnitMembers:     append([]model.UnitMember(nil), members...),
		UnitCreatedAt:   time.Now(),
	}
	if u.UnitMembers == nil {
		u.UnitMembers = []model.UnitMember{}
	}
	s.units[u.UnitID] = u
	return cloneUnit(u)
}

// List returns units sorted by name.
func (s *UnitStore) List() []model.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Unit, 0, len(s.units))
	for _, u := range s.units {
		out = append(out, cloneUnit(u))
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].UnitName) < strings.ToLower(out[j].UnitName)
	})
	return out
}

func (s *UnitStore) Get(id uuid.UUID) (model.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.units[id]
	if !ok {
		return model.Unit{}, ErrUnitNotFound
	}
	return cloneUnit(u), nil
}

// Update applies non-nil fields. Passing members replaces the whole roster,
// last writer wins.
func (s *UnitStore) Update(id uuid.UUID, name, description *string, members []model.UnitMember) (model.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.units[id]
	if !ok {
		return model.Unit{}, ErrUnitNotFound
	}
	if name != nil {
		u.UnitName = strings.TrimSpace(*name)
	}
	if description != nil {
		u.UnitDescription = strings.TrimSpace(*description)
	}
	if members != nil {
		u.UnitMembers = append([]model.UnitMember(nil), members...)
	}
	now := time.Now()
	u.UnitUpdatedAt = &now
	s.units[id] = u
	return cloneUnit(u), nil
}

func (s *UnitStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[id]; !ok {
		return ErrUnitNotFound
	}
	delete(s.units, id)
	return nil
}
