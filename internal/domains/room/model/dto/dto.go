package dto

import "mahalo/internal/domains/room/model"

type RoomResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	BaseCapacity int      `json:"base_capacity"`
	MaxGuests    int      `json:"max_guests"`
	NightlyRate  float64  `json:"nightly_rate"`
	Images       []string `json:"images,omitempty"`
}

func (r RoomResponse) FromModel(room model.Room, rate float64, images []string) RoomResponse {
	return RoomResponse{
		ID:           room.ID,
		Name:         room.Name,
		Location:     room.Location,
		Description:  room.Description,
		BaseCapacity: room.BaseCapacity,
		MaxGuests:    room.EffectiveMax(),
		NightlyRate:  rate,
		Images:       images,
	}
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}
