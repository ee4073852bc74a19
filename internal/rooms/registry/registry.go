// Package registry owns the in-memory room collection. It is the leaf
// component of the domain: it knows nothing about bookings or storage.
package registry

import (
	"sync"

	"github.com/google/uuid"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"
)

// Registry maps room id to room, preserving insertion order for display.
// All mutations run under a single lock; List returns copies, so callers
// must go through Update for edits to take effect.
type Registry struct {
	mu    sync.RWMutex
	order []string
	rooms map[string]model.Room
}

func New() *Registry {
	return &Registry{
		rooms: make(map[string]model.Room),
	}
}

func (r *Registry) Create(name, description string) (model.Room, error) {
	name = sanitizer.NormalizeName(name)
	if name == "" {
		return model.Room{}, roomserrors.ErrNameRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room := model.Room{
		ID:          uuid.NewString(),
		Name:        name,
		Description: sanitizer.NormalizeDescription(description),
	}
	r.rooms[room.ID] = room
	r.order = append(r.order, room.ID)
	return room, nil
}

// Update replaces the stored room's fields wholesale; id and display
// position stay unchanged.
func (r *Registry) Update(id, name, description string) (model.Room, error) {
	name = sanitizer.NormalizeName(name)
	if name == "" {
		return model.Room{}, roomserrors.ErrNameRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return model.Room{}, roomserrors.ErrNotFound
	}
	room := model.Room{
		ID:          id,
		Name:        name,
		Description: sanitizer.NormalizeDescription(description),
	}
	r.rooms[id] = room
	return room, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return roomserrors.ErrNotFound
	}
	delete(r.rooms, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Registry) Get(id string) (model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return model.Room{}, roomserrors.ErrNotFound
	}
	return room, nil
}

// List returns a snapshot of the collection in insertion order.
func (r *Registry) List() []model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Room, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rooms[id])
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Restore replaces the whole collection with a persisted snapshot,
// keeping the snapshot's order. Used once at startup.
func (r *Registry) Restore(rooms []model.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = make([]string, 0, len(rooms))
	r.rooms = make(map[string]model.Room, len(rooms))
	for _, room := range rooms {
		if _, ok := r.rooms[room.ID]; ok {
			continue
		}
		r.rooms[room.ID] = room
		r.order = append(r.order, room.ID)
	}
}
