package model

type Room struct {
	ID          string `json:"id,omitempty" validate:"omitempty,uuid4"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type RoomUpdate struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}
