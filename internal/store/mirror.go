package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"roomly/pkg/model"
)

// Blob keys, one per collection. The values match the storage keys the web
// client used, so existing persisted data round-trips unchanged.
const (
	RoomsKey    = "meet-rooms"
	BookingsKey = "meet-bookings"
)

// Mirror serializes the full room and booking collections to the blob
// store. No partial or delta persistence: every save rewrites the whole
// collection, and a missing blob loads as an empty one.
type Mirror struct {
	blobs BlobStore
}

func NewMirror(blobs BlobStore) *Mirror {
	return &Mirror{blobs: blobs}
}

func (m *Mirror) LoadRooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := m.load(ctx, RoomsKey, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (m *Mirror) LoadBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := m.load(ctx, BookingsKey, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (m *Mirror) SaveRooms(ctx context.Context, rooms []model.Room) error {
	return m.save(ctx, RoomsKey, rooms)
}

func (m *Mirror) SaveBookings(ctx context.Context, bookings []model.Booking) error {
	return m.save(ctx, BookingsKey, bookings)
}

func (m *Mirror) load(ctx context.Context, key string, out any) error {
	data, err := m.blobs.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("corrupt blob %s: %w", key, err)
	}
	return nil
}

func (m *Mirror) save(ctx context.Context, key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	return m.blobs.Save(ctx, key, data)
}
