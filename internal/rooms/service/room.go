package service

import (
	"context"
	"errors"

	"roomly/internal/bookings/ledger"
	roomserrors "roomly/internal/rooms/errors"
	"roomly/internal/rooms/registry"
	"roomly/internal/store"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/events"
	"roomly/pkg/model"
)

type RoomService interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id string) (*model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	Update(ctx context.Context, id string, updates *model.RoomUpdate) (*model.Room, error)
	Delete(ctx context.Context, id string) error
}

type roomService struct {
	registry *registry.Registry
	ledger   *ledger.Ledger
	mirror   *store.Mirror
	producer events.Producer
	cfg      *config.Config
}

func NewRoomService(
	roomRegistry *registry.Registry,
	bookingLedger *ledger.Ledger,
	mirror *store.Mirror,
	producer events.Producer,
	cfg *config.Config,
) RoomService {
	return &roomService{
		registry: roomRegistry,
		ledger:   bookingLedger,
		mirror:   mirror,
		producer: producer,
		cfg:      cfg,
	}
}

func (s *roomService) Create(ctx context.Context, room *model.Room) error {
	stored, err := s.registry.Create(room.Name, room.Description)
	if err != nil {
		return s.mapRegistryError(err, "")
	}
	*room = stored

	s.persistRooms(ctx)
	s.publish(ctx, events.TypeRoomCreated, stored.ID, stored)
	s.cfg.Log.Info("Room created successfully", "id", stored.ID, "name", stored.Name)
	return nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	room, err := s.registry.Get(id)
	if err != nil {
		return nil, apperrors.NotFoundWithID("Room", id)
	}
	return &room, nil
}

func (s *roomService) GetAll(ctx context.Context) ([]model.Room, error) {
	return s.registry.List(), nil
}

func (s *roomService) Update(ctx context.Context, id string, updates *model.RoomUpdate) (*model.Room, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	stored, err := s.registry.Update(id, updates.Name, updates.Description)
	if err != nil {
		return nil, s.mapRegistryError(err, id)
	}

	s.persistRooms(ctx)
	s.publish(ctx, events.TypeRoomUpdated, stored.ID, stored)
	s.cfg.Log.Info("Room updated successfully", "id", id)
	return &stored, nil
}

// Delete removes the room and cascades to every booking referencing it, so
// a dangling room reference is never observable. Bookings go first: if the
// process dies between the two steps, the worst case is a room with no
// bookings, never bookings without a room.
func (s *roomService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Room ID cannot be empty")
	}
	if _, err := s.registry.Get(id); err != nil {
		return s.mapRegistryError(err, id)
	}

	removed := s.ledger.DeleteByRoom(id)
	if err := s.registry.Delete(id); err != nil {
		return s.mapRegistryError(err, id)
	}

	s.persistRooms(ctx)
	s.persistBookings(ctx)
	s.publish(ctx, events.TypeRoomDeleted, id, map[string]any{"cascadedBookings": removed})
	s.cfg.Log.Info("Room deleted", "id", id, "cascaded_bookings", removed)
	return nil
}

// --- Helpers ---

func (s *roomService) mapRegistryError(err error, id string) error {
	switch {
	case errors.Is(err, roomserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Room", id)
	case errors.Is(err, roomserrors.ErrNameRequired):
		return apperrors.Validation("Room name is required", nil)
	default:
		return apperrors.Internal("Failed to store room", err)
	}
}

func (s *roomService) persistRooms(ctx context.Context) {
	if err := s.mirror.SaveRooms(ctx, s.registry.List()); err != nil {
		s.cfg.Log.Error("Failed to persist rooms", "error", err)
	}
}

func (s *roomService) persistBookings(ctx context.Context) {
	if err := s.mirror.SaveBookings(ctx, s.ledger.List()); err != nil {
		s.cfg.Log.Error("Failed to persist bookings", "error", err)
	}
}

func (s *roomService) publish(ctx context.Context, eventType, entityID string, payload any) {
	err := s.producer.Publish(ctx, events.Event{
		Type:     eventType,
		EntityID: entityID,
		Payload:  payload,
	})
	if err != nil {
		s.cfg.Log.Warn("Failed to publish event", "type", eventType, "entity_id", entityID, "error", err)
	}
}
