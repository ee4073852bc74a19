package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/bookings/ledger"
	"roomly/internal/bookings/service"
	"roomly/internal/bookings/validator"
	"roomly/internal/rooms/registry"
	"roomly/internal/store"
	"roomly/pkg/config"
	"roomly/pkg/events"
	"roomly/pkg/logger"
)

func newTestRouter(t *testing.T) (*httprouter.Router, string) {
	t.Helper()
	cfg := &config.Config{
		Log: logger.New(logger.Config{Output: io.Discard}),
	}
	rooms := registry.New()
	room, err := rooms.Create("Test Room", "")
	if err != nil {
		t.Fatalf("room setup failed: %v", err)
	}

	svc := service.NewBookingService(
		ledger.New(),
		rooms,
		validator.NewBookingValidator(cfg.Log),
		store.NewMirror(store.NewMemoryStore()),
		events.NopProducer{},
		cfg,
	)

	router := httprouter.New()
	NewBookingHandler(svc, cfg.Log).RegisterRoutes(router)
	return router, room.ID
}

func doJSON(t *testing.T, router *httprouter.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func bookingBody(roomID, date, start, end string) map[string]any {
	return map[string]any{
		"roomId":    roomID,
		"date":      date,
		"startTime": start,
		"endTime":   end,
	}
}

func createdID(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.Data.ID
}

func TestCreateBookingReturns201(t *testing.T) {
	router, roomID := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-06-01", "09:00", "10:00"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if createdID(t, rec) == "" {
		t.Fatal("response is missing the generated id")
	}
}

func TestCreateConflictReturns409(t *testing.T) {
	router, roomID := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-06-01", "09:00", "10:00"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-06-01", "09:30", "10:30"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if resp.Code != "CONFLICT" || resp.Message == "" {
		t.Fatalf("error body not displayable: %+v", resp)
	}
}

func TestCreateValidationReturns422(t *testing.T) {
	router, roomID := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-06-01", "10:00", "09:00"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateBadBodyReturns400(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestBoundaryTouchAccepted(t *testing.T) {
	router, roomID := newTestRouter(t)

	first := doJSON(t, router, http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-06-01", "09:00", "10:00"))
	second := doJSON(t, router, http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-06-01", "10:00", "11:00"))
	if first.Code != http.StatusCreated || second.Code != http.StatusCreated {
		t.Fatalf("boundary-touching bookings rejected: %d, %d", first.Code, second.Code)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	router, roomID := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-06-01", "09:00", "10:00"))
	id := createdID(t, rec)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/bookings/id/"+id, bookingBody(roomID, "2024-06-01", "09:30", "10:30"))
	if rec.Code != http.StatusOK {
		t.Fatalf("update status %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/bookings/id/"+id, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status %d, want 204", rec.Code)
	}

	// Idempotent: a second delete of the same id also succeeds.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/bookings/id/"+id, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("repeat delete status %d, want 204", rec.Code)
	}
}

func TestUpdateMissingReturns404(t *testing.T) {
	router, roomID := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/bookings/id/missing", bookingBody(roomID, "2024-06-01", "09:00", "10:00"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404: %s", rec.Code, rec.Body.String())
	}
}

func TestListForRoom(t *testing.T) {
	router, roomID := newTestRouter(t)

	for i := 9; i < 12; i++ {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/bookings",
			bookingBody(roomID, "2024-06-01", fmt.Sprintf("%02d:00", i), fmt.Sprintf("%02d:00", i+1)))
		if rec.Code != http.StatusCreated {
			t.Fatalf("setup create failed: %d", rec.Code)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/api/v1/bookings/room/"+roomID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var resp struct {
		Data  []map[string]any `json:"data"`
		Count int              `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 3 || len(resp.Data) != 3 {
		t.Fatalf("expected 3 bookings, got count=%d len=%d", resp.Count, len(resp.Data))
	}
}
