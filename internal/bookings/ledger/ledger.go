// Package ledger owns the authoritative in-memory booking collection and
// the conflict-detection invariant: no two bookings on the same room and
// date may overlap under half-open [start, end) semantics.
package ledger

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"
)

// Ledger maps booking id to booking, preserving insertion order. Validation
// fully precedes mutation: on any error the collection is untouched.
type Ledger struct {
	mu       sync.RWMutex
	order    []string
	bookings map[string]model.Booking
}

func New() *Ledger {
	return &Ledger{
		bookings: make(map[string]model.Booking),
	}
}

// Validate checks a candidate booking without mutating anything. Checks run
// in order: required fields, start before end (strict string comparison),
// then the conflict scan. excludingID, when non-empty, skips the booking
// being edited so an update never conflicts with itself.
func (l *Ledger) Validate(candidate model.Booking, excludingID string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.validateLocked(candidate, excludingID)
}

func (l *Ledger) validateLocked(candidate model.Booking, excludingID string) error {
	if candidate.Date == "" || candidate.StartTime == "" || candidate.EndTime == "" {
		return bookingserrors.ErrMissingFields
	}
	if candidate.StartTime >= candidate.EndTime {
		return bookingserrors.ErrInvalidTimeRange
	}
	for _, id := range l.order {
		b := l.bookings[id]
		if b.ID == excludingID {
			continue
		}
		if b.RoomID != candidate.RoomID || b.Date != candidate.Date {
			continue
		}
		if overlaps(candidate, b) {
			return fmt.Errorf("%w (%s %s-%s)",
				bookingserrors.ErrTimeConflict, b.Date, b.StartTime, b.EndTime)
		}
	}
	return nil
}

// overlaps reports whether two half-open intervals on the same room and
// date intersect. Touching boundaries (one ends exactly when the other
// starts) are not a conflict.
func overlaps(a, b model.Booking) bool {
	return !(a.EndTime <= b.StartTime || a.StartTime >= b.EndTime)
}

func (l *Ledger) Create(fields model.Booking) (model.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking := model.Booking{
		ID:          uuid.NewString(),
		RoomID:      fields.RoomID,
		Date:        fields.Date,
		StartTime:   fields.StartTime,
		EndTime:     fields.EndTime,
		Description: sanitizer.NormalizeDescription(fields.Description),
	}
	// Scan and insert under one lock: the conflict check is check-then-act.
	if err := l.validateLocked(booking, ""); err != nil {
		return model.Booking{}, err
	}
	l.bookings[booking.ID] = booking
	l.order = append(l.order, booking.ID)
	return booking, nil
}

// Update replaces the stored booking wholesale; id and display position are
// preserved. The booking being edited is excluded from the conflict scan.
func (l *Ledger) Update(id string, fields model.Booking) (model.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.bookings[id]; !ok {
		return model.Booking{}, bookingserrors.ErrNotFound
	}
	booking := model.Booking{
		ID:          id,
		RoomID:      fields.RoomID,
		Date:        fields.Date,
		StartTime:   fields.StartTime,
		EndTime:     fields.EndTime,
		Description: sanitizer.NormalizeDescription(fields.Description),
	}
	if err := l.validateLocked(booking, id); err != nil {
		return model.Booking{}, err
	}
	l.bookings[id] = booking
	return booking, nil
}

// Delete removes the booking if present. Deleting an absent id is a no-op,
// so deletes are idempotent.
func (l *Ledger) Delete(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeLocked(id)
}

// DeleteByRoom removes every booking referencing the room and returns the
// count removed. Called by the room cascade so a deleted room never leaves
// dangling bookings behind.
func (l *Ledger) DeleteByRoom(roomID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for _, id := range l.idsForRoomLocked(roomID) {
		l.removeLocked(id)
		removed++
	}
	return removed
}

func (l *Ledger) Get(id string) (model.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	booking, ok := l.bookings[id]
	if !ok {
		return model.Booking{}, bookingserrors.ErrNotFound
	}
	return booking, nil
}

// ListForRoom returns a snapshot of the room's bookings in insertion order.
func (l *Ledger) ListForRoom(roomID string) []model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Booking, 0)
	for _, id := range l.idsForRoomLocked(roomID) {
		out = append(out, l.bookings[id])
	}
	return out
}

// List returns a snapshot of the whole collection in insertion order.
func (l *Ledger) List() []model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Booking, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.bookings[id])
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

// Restore replaces the whole collection with a persisted snapshot, keeping
// the snapshot's order. Used once at startup.
func (l *Ledger) Restore(bookings []model.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.order = make([]string, 0, len(bookings))
	l.bookings = make(map[string]model.Booking, len(bookings))
	for _, b := range bookings {
		if _, ok := l.bookings[b.ID]; ok {
			continue
		}
		l.bookings[b.ID] = b
		l.order = append(l.order, b.ID)
	}
}

func (l *Ledger) removeLocked(id string) {
	if _, ok := l.bookings[id]; !ok {
		return
	}
	delete(l.bookings, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *Ledger) idsForRoomLocked(roomID string) []string {
	ids := make([]string, 0)
	for _, id := range l.order {
		if l.bookings[id].RoomID == roomID {
			ids = append(ids, id)
		}
	}
	return ids
}
