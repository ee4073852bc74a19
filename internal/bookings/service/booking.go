package service

import (
	"context"
	"errors"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/internal/bookings/ledger"
	"roomly/internal/bookings/validator"
	roomserrors "roomly/internal/rooms/errors"
	"roomly/internal/rooms/registry"
	"roomly/internal/store"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/events"
	"roomly/pkg/model"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	ListForRoom(ctx context.Context, roomID string) ([]model.Booking, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	ledger    *ledger.Ledger
	rooms     *registry.Registry
	validator *validator.BookingValidator
	mirror    *store.Mirror
	producer  events.Producer
	cfg       *config.Config
}

func NewBookingService(
	bookingLedger *ledger.Ledger,
	rooms *registry.Registry,
	bookingValidator *validator.BookingValidator,
	mirror *store.Mirror,
	producer events.Producer,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		ledger:    bookingLedger,
		rooms:     rooms,
		validator: bookingValidator,
		mirror:    mirror,
		producer:  producer,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	if err := s.verifyRoomExists(booking.RoomID); err != nil {
		return err
	}

	stored, err := s.ledger.Create(*booking)
	if err != nil {
		return s.mapLedgerError(err, "")
	}
	*booking = stored

	s.persist(ctx)
	s.publish(ctx, events.TypeBookingCreated, stored.ID, stored)
	s.cfg.Log.Info("Booking created successfully",
		"id", stored.ID,
		"room_id", stored.RoomID,
		"date", stored.Date,
		"start_time", stored.StartTime,
		"end_time", stored.EndTime,
	)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.ledger.Get(id)
	if err != nil {
		return nil, apperrors.NotFoundWithID("Booking", id)
	}
	return &booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]model.Booking, error) {
	return s.ledger.List(), nil
}

func (s *bookingService) ListForRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	if roomID == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}
	return s.ledger.ListForRoom(roomID), nil
}

func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	if err := s.verifyRoomExists(updates.RoomID); err != nil {
		return nil, err
	}

	stored, err := s.ledger.Update(id, model.Booking{
		RoomID:      updates.RoomID,
		Date:        updates.Date,
		StartTime:   updates.StartTime,
		EndTime:     updates.EndTime,
		Description: updates.Description,
	})
	if err != nil {
		return nil, s.mapLedgerError(err, id)
	}

	s.persist(ctx)
	s.publish(ctx, events.TypeBookingUpdated, stored.ID, stored)
	s.cfg.Log.Info("Booking updated successfully", "id", id)
	return &stored, nil
}

// Delete is idempotent: deleting an id that is already gone succeeds.
func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	s.ledger.Delete(id)
	s.persist(ctx)
	s.publish(ctx, events.TypeBookingDeleted, id, nil)
	s.cfg.Log.Info("Booking deleted", "id", id)
	return nil
}

// --- Helpers ---

// The room reference is soft: the ledger itself never checks it. The
// service does, so a booking can never be born dangling.
func (s *bookingService) verifyRoomExists(roomID string) error {
	if _, err := s.rooms.Get(roomID); err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Room", roomID)
		}
		return apperrors.Internal("Failed to check room existence", err)
	}
	return nil
}

func (s *bookingService) mapLedgerError(err error, id string) error {
	switch {
	case errors.Is(err, bookingserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Booking", id)
	case errors.Is(err, bookingserrors.ErrMissingFields):
		return apperrors.Validation("Date, start time and end time are required", nil)
	case errors.Is(err, bookingserrors.ErrInvalidTimeRange):
		return apperrors.Validation("Start time must precede end time", nil)
	case errors.Is(err, bookingserrors.ErrTimeConflict):
		return apperrors.Conflict(err.Error())
	default:
		return apperrors.Internal("Failed to store booking", err)
	}
}

// persist mirrors the full collection after an accepted mutation. The
// in-memory ledger stays the source of truth: a failed save is logged and
// never rolls the mutation back.
func (s *bookingService) persist(ctx context.Context) {
	if err := s.mirror.SaveBookings(ctx, s.ledger.List()); err != nil {
		s.cfg.Log.Error("Failed to persist bookings", "error", err)
	}
}

func (s *bookingService) publish(ctx context.Context, eventType, entityID string, payload any) {
	err := s.producer.Publish(ctx, events.Event{
		Type:     eventType,
		EntityID: entityID,
		Payload:  payload,
	})
	if err != nil {
		s.cfg.Log.Warn("Failed to publish event", "type", eventType, "entity_id", entityID, "error", err)
	}
}
