package dto

import (
	"mahalo/internal/domains/reservation/model"
	"mahalo/shared"
	"mahalo/shared/constant"
	gDto "mahalo/shared/dto"
	gModel "mahalo/shared/model"
	"mahalo/shared/timezone"
)

type CreateRoomReservationRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Email           string `json:"email"            validate:"required,email,max=100"`
	Phone           string `json:"phone"            validate:"omitempty,max=30"`
	RoomID          string `json:"room_id"          validate:"required"`
	CheckIn         string `json:"check_in"         validate:"required,date"`
	CheckOut        string `json:"check_out"        validate:"required,date"`
	Guests          int    `json:"guests"           validate:"required,min=1"`
	IsMember        bool   `json:"is_member"`
	MemberNumber    string `json:"member_number"    validate:"omitempty,max=10"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

// Member reports whether the booking qualifies for member pricing, either by
// the explicit flag or by carrying a member number.
func (c *CreateRoomReservationRequest) Member() bool {
	return c.IsMember || c.MemberNumber != constant.Empty
}

func (c *CreateRoomReservationRequest) ToModel(id, user string, total float64) model.Reservation {
	return model.Reservation{
		ID:              id,
		Type:            constant.ReservationTypeRoom,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		SpecialRequests: c.SpecialRequests,
		MemberNumber:    c.MemberNumber,
		IsMember:        c.Member(),
		Date:            c.CheckIn,
		CheckOut:        c.CheckOut,
		RoomID:          c.RoomID,
		Guests:          c.Guests,
		Total:           total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateRestaurantReservationRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Email           string `json:"email"            validate:"required,email,max=100"`
	Phone           string `json:"phone"            validate:"omitempty,max=30"`
	Date            string `json:"date"             validate:"required,date"`
	Time            string `json:"time"             validate:"required,clock"`
	PartySize       int    `json:"party_size"       validate:"required,min=1,max=40"`
	TableType       string `json:"table_type"       validate:"omitempty,oneof=standard front_row lounge"`
	DaypassType     string `json:"daypass_type"     validate:"omitempty,oneof=simple food_refund food_drink_refund"`
	Location        string `json:"location"         validate:"omitempty,max=100"`
	IsMember        bool   `json:"is_member"`
	MemberNumber    string `json:"member_number"    validate:"omitempty,max=10"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateRestaurantReservationRequest) Member() bool {
	return c.IsMember || c.MemberNumber != constant.Empty
}

func (c *CreateRestaurantReservationRequest) ToModel(id, user string, total float64) model.Reservation {
	return model.Reservation{
		ID:              id,
		Type:            constant.ReservationTypeRestaurant,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		SpecialRequests: c.SpecialRequests,
		MemberNumber:    c.MemberNumber,
		IsMember:        c.Member(),
		Date:            c.Date,
		Time:            c.Time,
		Guests:          c.PartySize,
		Location:        c.Location,
		TableType:       c.TableType,
		DaypassType:     c.DaypassType,
		Total:           total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateEventReservationRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Email           string `json:"email"            validate:"required,email,max=100"`
	Phone           string `json:"phone"            validate:"omitempty,max=30"`
	Date            string `json:"date"             validate:"required,date"`
	StartTime       string `json:"start_time"       validate:"required,clock"`
	EndTime         string `json:"end_time"         validate:"required,clock"`
	Guests          int    `json:"guests"           validate:"required,min=1"`
	EventType       string `json:"event_type"       validate:"required,oneof=decorated undecorated"`
	Location        string `json:"location"         validate:"omitempty,max=100"`
	Company         string `json:"company"          validate:"omitempty,max=100"`
	IsMember        bool   `json:"is_member"`
	MemberNumber    string `json:"member_number"    validate:"omitempty,max=10"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateEventReservationRequest) Member() bool {
	return c.IsMember || c.MemberNumber != constant.Empty
}

func (c *CreateEventReservationRequest) ToModel(id, user string, total float64) model.Reservation {
	return model.Reservation{
		ID:              id,
		Type:            constant.ReservationTypeEvent,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		SpecialRequests: c.SpecialRequests,
		MemberNumber:    c.MemberNumber,
		IsMember:        c.Member(),
		Date:            c.Date,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		Guests:          c.Guests,
		EventType:       c.EventType,
		Location:        c.Location,
		Company:         c.Company,
		Total:           total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReservationResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	MemberNumber    string  `json:"member_number,omitempty"`
	IsMember        bool    `json:"is_member"`
	Date            string  `json:"date,omitempty"`
	Time            string  `json:"time,omitempty"`
	CheckIn         string  `json:"check_in,omitempty"`
	CheckOut        string  `json:"check_out,omitempty"`
	StartTime       string  `json:"start_time,omitempty"`
	EndTime         string  `json:"end_time,omitempty"`
	RoomID          string  `json:"room_id,omitempty"`
	Guests          int     `json:"guests,omitempty"`
	Location        string  `json:"location,omitempty"`
	TableType       string  `json:"table_type,omitempty"`
	DaypassType     string  `json:"daypass_type,omitempty"`
	EventType       string  `json:"event_type,omitempty"`
	Company         string  `json:"company,omitempty"`
	Total           float64 `json:"total,omitempty"`
	CheckedOut      bool    `json:"checked_out,omitempty"`

	gDto.Metadata
}

func (r ReservationResponse) FromModel(m model.Reservation) ReservationResponse {
	res := ReservationResponse{
		ID:              m.ID,
		Type:            m.Type,
		Status:          m.Status(timezone.Now()),
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		SpecialRequests: m.SpecialRequests,
		MemberNumber:    m.MemberNumber,
		IsMember:        m.IsMember,
		Date:            m.Date,
		Time:            m.Time,
		CheckOut:        m.CheckOut,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		RoomID:          m.RoomID,
		Guests:          m.Guests,
		Location:        m.Location,
		TableType:       m.TableType,
		DaypassType:     m.DaypassType,
		EventType:       m.EventType,
		Company:         m.Company,
		Total:           m.Total,
		CheckedOut:      m.CheckedOut,
	}

	if m.Type == constant.ReservationTypeRoom {
		res.CheckIn = m.Date
		res.Date = constant.Empty
	}

	res.Metadata.FromModel(m.Metadata)

	return res
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
	TotalPages   int                   `json:"total_pages"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, total, limit int) {
	r.Reservations = make([]ReservationResponse, 0, len(models))

	for _, m := range models {
		r.Reservations = append(r.Reservations, ReservationResponse{}.FromModel(m))
	}

	r.Total = total
	r.TotalPages = shared.CalculateTotalPage(total, limit)
}

// AvailabilityResponse answers a room availability probe. AvailableFrom is
// only set when the range is blocked and some conflicting stay ends after
// the requested checkout.
type AvailabilityResponse struct {
	Available     bool   `json:"available"`
	RoomID        string `json:"room_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	AvailableFrom string `json:"available_from,omitempty"`
}

type CleanupResponse struct {
	Removed int      `json:"removed"`
	IDs     []string `json:"ids"`
}

type MembershipNumberResponse struct {
	MemberNumber string `json:"member_number"`
	Digits       int    `json:"digits"`
}

type CheckoutResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	CheckedOut bool   `json:"checked_out"`
}
