package model

import (
	"mahalo/shared/constant"
	"math"
	"time"
)

const (
	EntityName = "price_table"

	// EventBaselineHours is included in every event rental; time beyond it
	// is surcharged per hour, time under it triggers the short-booking fee.
	EventBaselineHours = 5.0

	ShortBookingFactor = 0.15

	MemberDiscountEvent      = 0.10
	MemberDiscountRoom       = 0.10
	MemberDiscountRestaurant = 0.15
)

const (
	DaypassSimple          = "simple"
	DaypassFoodRefund      = "food_refund"
	DaypassFoodDrinkRefund = "food_drink_refund"
)

// Bracket is an inclusive guest-count range with its rental price.
type Bracket struct {
	MinGuests int     `json:"min_guests"`
	MaxGuests int     `json:"max_guests"`
	Price     float64 `json:"price"`
}

// EventRateCard holds the bracket table and surcharge rate for one venue
// presentation (decorated or undecorated).
type EventRateCard struct {
	Brackets      []Bracket `json:"brackets"`
	ExtraHourRate float64   `json:"extra_hour_rate"`
}

type EventRates struct {
	Decorated   EventRateCard `json:"decorated"`
	Undecorated EventRateCard `json:"undecorated"`
}

// RestaurantRates maps per-person prices: daypass tiers and table types.
type RestaurantRates struct {
	Daypass map[string]float64 `json:"daypass"`
	Tables  map[string]float64 `json:"tables"`
}

// PriceTable is the full nested rate configuration. The admin replaces it
// wholesale; last write wins, no versioning.
type PriceTable struct {
	Rooms      map[string]float64 `json:"rooms"`
	Restaurant RestaurantRates    `json:"restaurant"`
	Events     EventRates         `json:"events"`
}

type EventQuote struct {
	Bracket            Bracket `json:"bracket"`
	BasePrice          float64 `json:"base_price"`
	ExtraHours         int     `json:"extra_hours"`
	ExtraHourCharge    float64 `json:"extra_hour_charge"`
	ShortBookingCharge float64 `json:"short_booking_charge"`
	Subtotal           float64 `json:"subtotal"`
	MemberDiscount     float64 `json:"member_discount"`
	Total              float64 `json:"total"`
}

type RoomQuote struct {
	NightlyRate    float64 `json:"nightly_rate"`
	Nights         int     `json:"nights"`
	Subtotal       float64 `json:"subtotal"`
	MemberDiscount float64 `json:"member_discount"`
	Total          float64 `json:"total"`
}

type RestaurantQuote struct {
	RateType       string  `json:"rate_type"`
	Tier           string  `json:"tier"`
	PerPerson      float64 `json:"per_person"`
	PartySize      int     `json:"party_size"`
	Subtotal       float64 `json:"subtotal"`
	MemberDiscount float64 `json:"member_discount"`
	Total          float64 `json:"total"`
}

// bracketFor finds the inclusive bracket covering the guest count, clamping
// out-of-range counts to the nearest bracket so pricing never fails.
func (c EventRateCard) bracketFor(guests int) Bracket {
	if len(c.Brackets) == 0 {
		return Bracket{}
	}

	for _, bracket := range c.Brackets {
		if guests >= bracket.MinGuests && guests <= bracket.MaxGuests {
			return bracket
		}
	}

	if guests < c.Brackets[0].MinGuests {
		return c.Brackets[0]
	}

	return c.Brackets[len(c.Brackets)-1]
}

// durationHours computes the booked span in hours. A missing or inverted
// range is treated as exactly the baseline so no surcharge applies.
func durationHours(startTime, endTime string) float64 {
	start, errStart := time.Parse(constant.ClockLayout, startTime)
	end, errEnd := time.Parse(constant.ClockLayout, endTime)

	if errStart != nil || errEnd != nil || !end.After(start) {
		return EventBaselineHours
	}

	return end.Sub(start).Hours()
}

// QuoteEvent prices a venue rental: a bracketed base fee, then either the
// per-hour surcharge beyond the baseline or the flat short-booking fee under
// it (never both), then the membership discount on the subtotal.
func (t PriceTable) QuoteEvent(guests int, decorated bool, startTime, endTime string, isMember bool) EventQuote {
	card := t.Events.Undecorated
	if decorated {
		card = t.Events.Decorated
	}

	bracket := card.bracketFor(guests)

	quote := EventQuote{
		Bracket:   bracket,
		BasePrice: bracket.Price,
	}

	hours := durationHours(startTime, endTime)

	switch {
	case hours < EventBaselineHours:
		quote.ShortBookingCharge = math.Round(bracket.Price * ShortBookingFactor)
	case hours > EventBaselineHours:
		quote.ExtraHours = int(math.Ceil(hours - EventBaselineHours))
		quote.ExtraHourCharge = float64(quote.ExtraHours) * card.ExtraHourRate
	}

	quote.Subtotal = bracket.Price + quote.ExtraHourCharge + quote.ShortBookingCharge
	quote.Total = quote.Subtotal

	if isMember {
		quote.Total = math.Round(quote.Subtotal * (1 - MemberDiscountEvent))
		quote.MemberDiscount = quote.Subtotal - quote.Total
	}

	return quote
}

// nightsBetween counts nights in the half-open [checkIn, checkOut) range,
// clamping malformed or degenerate ranges to a single night.
func nightsBetween(checkIn, checkOut string) int {
	in, errIn := time.Parse(constant.DateLayout, checkIn)
	out, errOut := time.Parse(constant.DateLayout, checkOut)

	if errIn != nil || errOut != nil {
		return 1
	}

	nights := int(math.Round(out.Sub(in).Hours() / 24))
	if nights < 1 {
		return 1
	}

	return nights
}

// QuoteRoom prices a stay: nightly rate times nights with the membership
// discount applied to the product.
func (t PriceTable) QuoteRoom(roomID, checkIn, checkOut string, isMember bool) RoomQuote {
	quote := RoomQuote{
		NightlyRate: t.Rooms[roomID],
		Nights:      nightsBetween(checkIn, checkOut),
	}

	quote.Subtotal = math.Round(quote.NightlyRate * float64(quote.Nights))
	quote.Total = quote.Subtotal

	if isMember {
		quote.Total = math.Round(quote.Subtotal * (1 - MemberDiscountRoom))
		quote.MemberDiscount = quote.Subtotal - quote.Total
	}

	return quote
}

// QuoteRestaurant prices either a per-person daypass tier or a per-person
// table-type rate, multiplied by the party size.
func (t PriceTable) QuoteRestaurant(daypassType, tableType string, partySize int, isMember bool) RestaurantQuote {
	if partySize < 1 {
		partySize = 1
	}

	quote := RestaurantQuote{
		PartySize: partySize,
	}

	if daypassType != "" {
		quote.RateType = "daypass"
		quote.Tier = daypassType
		quote.PerPerson = t.Restaurant.Daypass[daypassType]
	} else {
		quote.RateType = "table"
		quote.Tier = tableType
		quote.PerPerson = t.Restaurant.Tables[tableType]
	}

	quote.Subtotal = math.Round(quote.PerPerson * float64(partySize))
	quote.Total = quote.Subtotal

	if isMember {
		quote.Total = math.Round(quote.Subtotal * (1 - MemberDiscountRestaurant))
		quote.MemberDiscount = quote.Subtotal - quote.Total
	}

	return quote
}
