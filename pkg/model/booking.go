package model

// Booking reserves one room for a contiguous time interval on one date.
// Date and time fields are plain strings (YYYY-MM-DD, HH:MM) compared
// lexicographically; the intervals are half-open [StartTime, EndTime).
type Booking struct {
	ID          string `json:"id,omitempty" validate:"omitempty,uuid4"`
	RoomID      string `json:"roomId" validate:"required,uuid4"`
	Date        string `json:"date" validate:"required,ymd"`
	StartTime   string `json:"startTime" validate:"required,hhmm"`
	EndTime     string `json:"endTime" validate:"required,hhmm"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type BookingUpdate struct {
	RoomID      string `json:"roomId" validate:"required,uuid4"`
	Date        string `json:"date" validate:"required,ymd"`
	StartTime   string `json:"startTime" validate:"required,hhmm"`
	EndTime     string `json:"endTime" validate:"required,hhmm"`
	Description string `json:"description" validate:"omitempty,max=500"`
}
