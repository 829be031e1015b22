package model

import (
	"mahalo/shared/constant"
	"mahalo/shared/model"
	"mahalo/shared/timezone"
	"time"
)

const (
	EntityName = "reservation"

	FieldID           = "id"
	FieldType         = "type"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldStatus       = "status"
	FieldDate         = "date"
	FieldCheckOut     = "check_out"
	FieldRoomID       = "room_id"
	FieldLocation     = "location"
	FieldMemberNumber = "member_number"

	EventTypeDecorated   = "decorated"
	EventTypeUndecorated = "undecorated"
)

// Reservation is the tagged union over the three bookable products. The
// populated fields depend on Type; the zero values of the others are omitted
// on the wire.
type Reservation struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
	MemberNumber    string `json:"member_number,omitempty"`
	IsMember        bool   `json:"is_member"`

	// Date is the ISO day of the booking; for rooms it is the check-in day.
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	CheckOut string `json:"check_out,omitempty"`

	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	RoomID      string `json:"room_id,omitempty"`
	Guests      int    `json:"guests,omitempty"`
	Location    string `json:"location,omitempty"`
	TableType   string `json:"table_type,omitempty"`
	DaypassType string `json:"daypass_type,omitempty"`
	EventType   string `json:"event_type,omitempty"`
	Company     string `json:"company,omitempty"`

	// Total is the price quoted when the booking was taken; later rate table
	// edits do not reprice existing reservations.
	Total float64 `json:"total,omitempty"`

	CheckedOut bool `json:"checked_out,omitempty"`

	model.Metadata
}

// Key implements repository.Entity.
func (r Reservation) Key() string {
	return r.ID
}

// Fields implements repository.Entity. Status is derived at read time.
func (r Reservation) Fields() map[string]string {
	return map[string]string{
		FieldID:           r.ID,
		FieldType:         r.Type,
		FieldName:         r.Name,
		FieldEmail:        r.Email,
		FieldDate:         r.Date,
		FieldCheckOut:     r.CheckOut,
		FieldRoomID:       r.RoomID,
		FieldLocation:     r.Location,
		FieldMemberNumber: r.MemberNumber,
		FieldStatus:       r.Status(timezone.Now()),
	}
}

// Status reports the derived lifecycle state at the reference instant.
func (r Reservation) Status(ref time.Time) string {
	if r.Type == constant.ReservationTypeRoom && r.CheckedOut {
		return constant.ReservationStatusCheckedOut
	}

	if r.Expired(ref) {
		return constant.ReservationStatusExpired
	}

	return constant.ReservationStatusActive
}

// Expired decides whether the reservation lies in the past relative to the
// establishment's local time at the reference instant. The predicate is pure
// and fails safe: unknown types and malformed dates are never expired, so
// ambiguous records are never swept.
func (r Reservation) Expired(ref time.Time) bool {
	today := timezone.Today(ref)
	clock := timezone.Clock(ref)

	switch r.Type {
	case constant.ReservationTypeRoom:
		if r.CheckedOut {
			return true
		}

		day, ok := calendarDay(r.CheckOut)
		if !ok {
			return false
		}

		// A same-day checkout is still current: the guest may be checking
		// out later today.
		return day < today
	case constant.ReservationTypeRestaurant:
		return dayTimePassed(r.Date, r.Time, today, clock)
	case constant.ReservationTypeEvent:
		end := r.EndTime
		if end == "" {
			end = r.Time
		}

		if end == "" {
			end = constant.EndOfDay
		}

		return dayTimePassed(r.Date, end, today, clock)
	default:
		return false
	}
}

// Blocks reports whether this reservation takes the room out of the
// candidate [checkIn, checkOut) range. Nights are half-open, so a stay
// ending on a day another begins does not collide, and a checked-out stay
// never blocks regardless of its dates.
func (r Reservation) Blocks(roomID, checkIn, checkOut string) bool {
	if r.Type != constant.ReservationTypeRoom || r.RoomID != roomID || r.CheckedOut {
		return false
	}

	in, okIn := calendarDay(r.Date)
	out, okOut := calendarDay(r.CheckOut)
	if !okIn || !okOut {
		return false
	}

	return in < checkOut && out > checkIn
}

// calendarDay extracts the leading "YYYY-MM-DD" of a stored date value and
// reports whether it is a real date.
func calendarDay(value string) (string, bool) {
	if len(value) < len(constant.DateLayout) {
		return "", false
	}

	day := value[:len(constant.DateLayout)]

	if _, err := time.Parse(constant.DateLayout, day); err != nil {
		return "", false
	}

	return day, true
}

// dayTimePassed reports whether the (date, HH:MM) pair is strictly in the
// past. Zero-padded ISO dates and 24-hour clocks order lexicographically, so
// plain string comparison is exact.
func dayTimePassed(date, hhmm, today, clock string) bool {
	day, ok := calendarDay(date)
	if !ok {
		return false
	}

	if day < today {
		return true
	}

	if day > today {
		return false
	}

	if _, err := time.Parse(constant.ClockLayout, hhmm); err != nil {
		return false
	}

	return hhmm < clock
}
