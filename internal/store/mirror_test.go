package store

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"roomly/pkg/model"
)

func TestMirrorRoundTripRooms(t *testing.T) {
	m := NewMirror(NewMemoryStore())
	ctx := context.Background()

	rooms := []model.Room{
		{ID: "r1", Name: "Alpha", Description: "first floor"},
		{ID: "r2", Name: "Beta"},
	}
	if err := m.SaveRooms(ctx, rooms); err != nil {
		t.Fatalf("SaveRooms failed: %v", err)
	}

	loaded, err := m.LoadRooms(ctx)
	if err != nil {
		t.Fatalf("LoadRooms failed: %v", err)
	}
	if !reflect.DeepEqual(rooms, loaded) {
		t.Fatalf("round trip changed rooms:\nsaved:  %+v\nloaded: %+v", rooms, loaded)
	}
}

func TestMirrorRoundTripBookings(t *testing.T) {
	m := NewMirror(NewMemoryStore())
	ctx := context.Background()

	bookings := []model.Booking{
		{ID: "b1", RoomID: "r1", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00", Description: "standup"},
		{ID: "b2", RoomID: "r1", Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"},
	}
	if err := m.SaveBookings(ctx, bookings); err != nil {
		t.Fatalf("SaveBookings failed: %v", err)
	}

	loaded, err := m.LoadBookings(ctx)
	if err != nil {
		t.Fatalf("LoadBookings failed: %v", err)
	}
	if !reflect.DeepEqual(bookings, loaded) {
		t.Fatalf("round trip changed bookings:\nsaved:  %+v\nloaded: %+v", bookings, loaded)
	}
}

// The wire format must keep the original field names so previously
// persisted blobs keep loading.
func TestMirrorFieldNames(t *testing.T) {
	blobs := NewMemoryStore()
	m := NewMirror(blobs)
	ctx := context.Background()

	bookings := []model.Booking{
		{ID: "b1", RoomID: "r1", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
	}
	if err := m.SaveBookings(ctx, bookings); err != nil {
		t.Fatalf("SaveBookings failed: %v", err)
	}

	raw, err := blobs.Load(ctx, BookingsKey)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("blob is not a JSON array: %v", err)
	}
	for _, key := range []string{"id", "roomId", "date", "startTime", "endTime"} {
		if _, ok := decoded[0][key]; !ok {
			t.Errorf("serialized booking is missing field %q: %v", key, decoded[0])
		}
	}
}

func TestMirrorMissingBlobIsEmptyCollection(t *testing.T) {
	m := NewMirror(NewMemoryStore())
	ctx := context.Background()

	rooms, err := m.LoadRooms(ctx)
	if err != nil {
		t.Fatalf("LoadRooms on empty store failed: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("expected no rooms, got %+v", rooms)
	}

	bookings, err := m.LoadBookings(ctx)
	if err != nil {
		t.Fatalf("LoadBookings on empty store failed: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected no bookings, got %+v", bookings)
	}
}

func TestMirrorCorruptBlob(t *testing.T) {
	blobs := NewMemoryStore()
	ctx := context.Background()
	if err := blobs.Save(ctx, RoomsKey, []byte("{not json")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	m := NewMirror(blobs)
	if _, err := m.LoadRooms(ctx); err == nil {
		t.Fatal("expected an error for a corrupt blob")
	}
}
