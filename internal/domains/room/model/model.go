package model

const EntityName = "room"

// Room is a catalog entry. BaseCapacity is the advertised occupancy,
// HardCapacity the physical ceiling, and BookingCap the booking-rule limit;
// guests may exceed the base but never the effective maximum.
type Room struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	BaseCapacity int    `json:"base_capacity"`
	HardCapacity int    `json:"hard_capacity"`
	BookingCap   int    `json:"booking_cap"`
	Active       bool   `json:"active"`
}

// EffectiveMax is the lesser of the physical ceiling and the booking cap.
func (r Room) EffectiveMax() int {
	if r.BookingCap < r.HardCapacity {
		return r.BookingCap
	}

	return r.HardCapacity
}

// FitsGuests reports whether a party of the given size may book the room.
func (r Room) FitsGuests(guests int) bool {
	return guests >= 1 && guests <= r.EffectiveMax()
}

// Catalog returns the fixed room inventory the club operates.
func Catalog() []Room {
	return []Room{
		{
			ID:           "1",
			Name:         "Garden View Room",
			Location:     "garden wing",
			Description:  "Ground-floor room opening onto the garden terrace.",
			BaseCapacity: 2,
			HardCapacity: 4,
			BookingCap:   3,
			Active:       true,
		},
		{
			ID:           "2",
			Name:         "Garden View Double",
			Location:     "garden wing",
			Description:  "Two queen beds facing the palm garden.",
			BaseCapacity: 4,
			HardCapacity: 5,
			BookingCap:   4,
			Active:       true,
		},
		{
			ID:           "3",
			Name:         "Ocean View Room",
			Location:     "main building",
			Description:  "Second-floor room with a balcony over the bay.",
			BaseCapacity: 2,
			HardCapacity: 3,
			BookingCap:   3,
			Active:       true,
		},
		{
			ID:           "4",
			Name:         "Ocean View Double",
			Location:     "main building",
			Description:  "Corner double with wraparound sea views.",
			BaseCapacity: 4,
			HardCapacity: 6,
			BookingCap:   5,
			Active:       true,
		},
		{
			ID:           "5",
			Name:         "Beachfront Suite",
			Location:     "beachfront",
			Description:  "Suite with private deck steps from the sand.",
			BaseCapacity: 2,
			HardCapacity: 3,
			BookingCap:   2,
			Active:       true,
		},
		{
			ID:           "6",
			Name:         "Penthouse Suite",
			Location:     "main building",
			Description:  "Top-floor suite with a private plunge pool.",
			BaseCapacity: 4,
			HardCapacity: 6,
			BookingCap:   6,
			Active:       true,
		},
	}
}
