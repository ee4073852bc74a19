package validator

import (
	"io"
	"strings"
	"testing"

	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func newTestValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{Output: io.Discard}))
}

func validBooking() *model.Booking {
	return &model.Booking{
		RoomID:    "1f0e9d8c-0000-4000-8000-000000000001",
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
}

func TestValidBookingPasses(t *testing.T) {
	v := newTestValidator()
	if err := v.Validate(validBooking()); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}
}

func TestDateShapes(t *testing.T) {
	v := newTestValidator()

	bad := []string{"06/01/2024", "2024-6-1", "2024-13-01", "2024-00-10", "2024-01-32", "yesterday"}
	for _, date := range bad {
		b := validBooking()
		b.Date = date
		if err := v.Validate(b); err == nil {
			t.Errorf("date %q should be rejected", date)
		}
	}

	good := []string{"2024-01-01", "1999-12-31", "2024-02-29"}
	for _, date := range good {
		b := validBooking()
		b.Date = date
		if err := v.Validate(b); err != nil {
			t.Errorf("date %q should be accepted: %v", date, err)
		}
	}
}

func TestTimeShapes(t *testing.T) {
	v := newTestValidator()

	bad := []string{"9:00", "09:60", "24:00", "0900", "9am", "09:00:00"}
	for _, tm := range bad {
		b := validBooking()
		b.StartTime = tm
		if err := v.Validate(b); err == nil {
			t.Errorf("time %q should be rejected", tm)
		}
	}

	good := []string{"00:00", "09:30", "23:59"}
	for _, tm := range good {
		b := validBooking()
		b.StartTime = tm
		if err := v.Validate(b); err != nil {
			t.Errorf("time %q should be accepted: %v", tm, err)
		}
	}
}

func TestRequiredFieldMessagesNameTheField(t *testing.T) {
	v := newTestValidator()

	b := validBooking()
	b.Date = ""
	err := v.Validate(b)
	if err == nil {
		t.Fatal("missing date should be rejected")
	}
	if !strings.Contains(err.Error(), "Date") {
		t.Fatalf("error should name the field, got: %v", err)
	}
}

func TestValidateUpdate(t *testing.T) {
	v := newTestValidator()

	ok := &model.BookingUpdate{
		RoomID:    "1f0e9d8c-0000-4000-8000-000000000001",
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	if err := v.ValidateUpdate(ok); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}

	bad := &model.BookingUpdate{
		RoomID:    "not-a-uuid",
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	if err := v.ValidateUpdate(bad); err == nil {
		t.Fatal("malformed room id should be rejected")
	}
}
