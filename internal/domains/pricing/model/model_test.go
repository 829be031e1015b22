package model_test

import (
	"testing"

	"mahalo/internal/domains/pricing/model"

	"github.com/stretchr/testify/assert"
)

func TestQuoteEvent(t *testing.T) {
	table := model.DefaultPriceTable()

	t.Run("baseline duration charges the bracket base only", func(t *testing.T) {
		quote := table.QuoteEvent(50, false, "14:00", "19:00", false)

		assert.Equal(t, float64(8000), quote.BasePrice)
		assert.Equal(t, 0, quote.ExtraHours)
		assert.Equal(t, float64(0), quote.ExtraHourCharge)
		assert.Equal(t, float64(0), quote.ShortBookingCharge)
		assert.Equal(t, float64(8000), quote.Total)
	})

	t.Run("short booking pays the flat fee instead of a surcharge", func(t *testing.T) {
		quote := table.QuoteEvent(50, false, "14:00", "17:00", false)

		assert.Equal(t, float64(1200), quote.ShortBookingCharge)
		assert.Equal(t, float64(0), quote.ExtraHourCharge)
		assert.Equal(t, float64(9200), quote.Total)
	})

	t.Run("hours beyond the baseline bill per started hour", func(t *testing.T) {
		quote := table.QuoteEvent(50, false, "12:00", "18:30", false)

		assert.Equal(t, 2, quote.ExtraHours)
		assert.Equal(t, float64(1600), quote.ExtraHourCharge)
		assert.Equal(t, float64(9600), quote.Total)
	})

	t.Run("decorated venues use their own card", func(t *testing.T) {
		quote := table.QuoteEvent(120, true, "12:00", "18:00", false)

		assert.Equal(t, float64(24000), quote.BasePrice)
		assert.Equal(t, float64(1200), quote.ExtraHourCharge)
	})

	t.Run("member discount applies after surcharges", func(t *testing.T) {
		quote := table.QuoteEvent(50, false, "12:00", "18:00", true)

		assert.Equal(t, float64(8800), quote.Subtotal)
		assert.Equal(t, float64(880), quote.MemberDiscount)
		assert.Equal(t, float64(7920), quote.Total)
	})

	t.Run("guest counts clamp to the nearest bracket", func(t *testing.T) {
		low := table.QuoteEvent(0, false, "12:00", "17:00", false)
		high := table.QuoteEvent(900, false, "12:00", "17:00", false)

		assert.Equal(t, float64(8000), low.BasePrice)
		assert.Equal(t, float64(25000), high.BasePrice)
	})

	t.Run("unparseable times quote the baseline", func(t *testing.T) {
		quote := table.QuoteEvent(50, false, "noon", "later", false)

		assert.Equal(t, float64(8000), quote.Total)
		assert.Equal(t, 0, quote.ExtraHours)
		assert.Equal(t, float64(0), quote.ShortBookingCharge)
	})
}

func TestQuoteRoom(t *testing.T) {
	table := model.DefaultPriceTable()

	t.Run("nightly rate times nights", func(t *testing.T) {
		quote := table.QuoteRoom("1", "2024-06-15", "2024-06-18", false)

		assert.Equal(t, 3, quote.Nights)
		assert.Equal(t, float64(5400), quote.Total)
	})

	t.Run("member pays ninety percent", func(t *testing.T) {
		quote := table.QuoteRoom("1", "2024-06-15", "2024-06-18", true)

		assert.Equal(t, float64(5400), quote.Subtotal)
		assert.Equal(t, float64(4860), quote.Total)
		assert.Equal(t, float64(540), quote.MemberDiscount)
	})

	t.Run("malformed dates clamp to one night", func(t *testing.T) {
		quote := table.QuoteRoom("1", "soon", "2024-06-18", false)

		assert.Equal(t, 1, quote.Nights)
		assert.Equal(t, float64(1800), quote.Total)
	})
}

func TestQuoteRestaurant(t *testing.T) {
	table := model.DefaultPriceTable()

	t.Run("daypass tier per person", func(t *testing.T) {
		quote := table.QuoteRestaurant(model.DaypassFoodRefund, "", 4, false)

		assert.Equal(t, "daypass", quote.RateType)
		assert.Equal(t, float64(2200), quote.Total)
	})

	t.Run("table type when no daypass is requested", func(t *testing.T) {
		quote := table.QuoteRestaurant("", "front_row", 2, false)

		assert.Equal(t, "table", quote.RateType)
		assert.Equal(t, float64(800), quote.Total)
	})

	t.Run("member pays eighty five percent", func(t *testing.T) {
		quote := table.QuoteRestaurant(model.DaypassSimple, "", 2, true)

		assert.Equal(t, float64(700), quote.Subtotal)
		assert.Equal(t, float64(595), quote.Total)
	})

	t.Run("party size clamps to at least one", func(t *testing.T) {
		quote := table.QuoteRestaurant(model.DaypassSimple, "", 0, false)

		assert.Equal(t, 1, quote.PartySize)
		assert.Equal(t, float64(350), quote.Total)
	})
}
