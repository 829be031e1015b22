package model_test

import (
	"mahalo/internal/domains/reservation/model"
	"mahalo/shared/constant"
	"mahalo/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// noon on 2024-06-15 in the establishment timezone
func refTime() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, timezone.GetLocation())
}

func TestRoomExpiration(t *testing.T) {
	ref := refTime()

	tests := []struct {
		name        string
		reservation model.Reservation
		want        bool
	}{
		{
			name:        "checked out is always expired regardless of dates",
			reservation: model.Reservation{Type: constant.ReservationTypeRoom, CheckOut: "2999-01-01", CheckedOut: true},
			want:        true,
		},
		{
			name:        "checkout day in the past",
			reservation: model.Reservation{Type: constant.ReservationTypeRoom, CheckOut: "2024-06-14"},
			want:        true,
		},
		{
			name:        "same-day checkout is not expired",
			reservation: model.Reservation{Type: constant.ReservationTypeRoom, CheckOut: "2024-06-15"},
			want:        false,
		},
		{
			name:        "future checkout",
			reservation: model.Reservation{Type: constant.ReservationTypeRoom, CheckOut: "2024-06-20"},
			want:        false,
		},
		{
			name:        "timestamped checkout value uses the calendar day only",
			reservation: model.Reservation{Type: constant.ReservationTypeRoom, CheckOut: "2024-06-14T23:00:00Z"},
			want:        true,
		},
		{
			name:        "malformed checkout fails safe",
			reservation: model.Reservation{Type: constant.ReservationTypeRoom, CheckOut: "next tuesday"},
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reservation.Expired(ref))
		})
	}
}

func TestRestaurantExpiration(t *testing.T) {
	ref := refTime()

	tests := []struct {
		name        string
		date, clock string
		want        bool
	}{
		{"past day", "2024-06-14", "20:00", true},
		{"future day never expired", "2024-06-16", "08:00", false},
		{"today before current time", "2024-06-15", "11:59", true},
		{"today exactly current time", "2024-06-15", "12:00", false},
		{"today after current time", "2024-06-15", "12:01", false},
		{"today with malformed time fails safe", "2024-06-15", "noonish", false},
		{"malformed date fails safe", "15/06/2024", "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := model.Reservation{Type: constant.ReservationTypeRestaurant, Date: tt.date, Time: tt.clock}
			assert.Equal(t, tt.want, reservation.Expired(ref))
		})
	}
}

func TestEventExpiration(t *testing.T) {
	ref := refTime()

	tests := []struct {
		name        string
		reservation model.Reservation
		want        bool
	}{
		{
			name:        "ends before current time",
			reservation: model.Reservation{Type: constant.ReservationTypeEvent, Date: "2024-06-15", StartTime: "08:00", EndTime: "11:00"},
			want:        true,
		},
		{
			name:        "still running",
			reservation: model.Reservation{Type: constant.ReservationTypeEvent, Date: "2024-06-15", StartTime: "10:00", EndTime: "14:00"},
			want:        false,
		},
		{
			name:        "missing end time falls back to time",
			reservation: model.Reservation{Type: constant.ReservationTypeEvent, Date: "2024-06-15", Time: "11:30"},
			want:        true,
		},
		{
			name:        "no times at all lasts until end of day",
			reservation: model.Reservation{Type: constant.ReservationTypeEvent, Date: "2024-06-15"},
			want:        false,
		},
		{
			name:        "past day",
			reservation: model.Reservation{Type: constant.ReservationTypeEvent, Date: "2024-06-01"},
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reservation.Expired(ref))
		})
	}
}

func TestUnknownTypeNeverExpires(t *testing.T) {
	ref := refTime()

	reservation := model.Reservation{Type: "spa", Date: "1999-01-01"}
	assert.False(t, reservation.Expired(ref))

	reservation = model.Reservation{Date: "1999-01-01"}
	assert.False(t, reservation.Expired(ref))
}

func TestExpiredIsPure(t *testing.T) {
	ref := refTime()
	reservation := model.Reservation{Type: constant.ReservationTypeRestaurant, Date: "2024-06-14", Time: "20:00"}

	before := reservation
	_ = reservation.Expired(ref)
	_ = reservation.Expired(ref)

	assert.Equal(t, before, reservation)
}

func TestStatus(t *testing.T) {
	ref := refTime()

	checkedOut := model.Reservation{Type: constant.ReservationTypeRoom, CheckOut: "2024-06-20", CheckedOut: true}
	assert.Equal(t, constant.ReservationStatusCheckedOut, checkedOut.Status(ref))

	expired := model.Reservation{Type: constant.ReservationTypeRestaurant, Date: "2024-06-01", Time: "10:00"}
	assert.Equal(t, constant.ReservationStatusExpired, expired.Status(ref))

	active := model.Reservation{Type: constant.ReservationTypeRestaurant, Date: "2024-06-16", Time: "10:00"}
	assert.Equal(t, constant.ReservationStatusActive, active.Status(ref))
}

func TestBlocks(t *testing.T) {
	stay := model.Reservation{
		Type:     constant.ReservationTypeRoom,
		RoomID:   "1",
		Date:     "2030-07-01",
		CheckOut: "2030-07-04",
	}

	t.Run("overlapping range collides", func(t *testing.T) {
		assert.True(t, stay.Blocks("1", "2030-07-03", "2030-07-06"))
		assert.True(t, stay.Blocks("1", "2030-06-28", "2030-07-02"))
		assert.True(t, stay.Blocks("1", "2030-07-02", "2030-07-03"))
	})

	t.Run("half open boundaries touch without colliding", func(t *testing.T) {
		assert.False(t, stay.Blocks("1", "2030-07-04", "2030-07-06"))
		assert.False(t, stay.Blocks("1", "2030-06-28", "2030-07-01"))
	})

	t.Run("other rooms and other types never collide", func(t *testing.T) {
		assert.False(t, stay.Blocks("2", "2030-07-02", "2030-07-03"))

		dinner := stay
		dinner.Type = constant.ReservationTypeRestaurant
		assert.False(t, dinner.Blocks("1", "2030-07-02", "2030-07-03"))
	})

	t.Run("checked out stays free the room", func(t *testing.T) {
		done := stay
		done.CheckedOut = true
		assert.False(t, done.Blocks("1", "2030-07-02", "2030-07-03"))
	})

	t.Run("timestamped checkout compares by day", func(t *testing.T) {
		timestamped := stay
		timestamped.CheckOut = "2030-07-04T10:00:00Z"
		assert.False(t, timestamped.Blocks("1", "2030-07-04", "2030-07-06"))
	})
}
