package model

// DefaultPriceTable seeds the rate configuration the service boots with.
// Admins replace it through the prices endpoint; nothing here is persisted
// back to source.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		Rooms: map[string]float64{
			"1": 1800,
			"2": 2400,
			"3": 2800,
			"4": 3200,
			"5": 4500,
			"6": 6000,
		},
		Restaurant: RestaurantRates{
			Daypass: map[string]float64{
				DaypassSimple:          350,
				DaypassFoodRefund:      550,
				DaypassFoodDrinkRefund: 750,
			},
			Tables: map[string]float64{
				"standard":  200,
				"front_row": 400,
				"lounge":    600,
			},
		},
		Events: EventRates{
			Decorated: EventRateCard{
				Brackets: []Bracket{
					{MinGuests: 1, MaxGuests: 50, Price: 11000},
					{MinGuests: 51, MaxGuests: 100, Price: 16000},
					{MinGuests: 101, MaxGuests: 200, Price: 24000},
					{MinGuests: 201, MaxGuests: 300, Price: 33000},
				},
				ExtraHourRate: 1200,
			},
			Undecorated: EventRateCard{
				Brackets: []Bracket{
					{MinGuests: 1, MaxGuests: 50, Price: 8000},
					{MinGuests: 51, MaxGuests: 100, Price: 12000},
					{MinGuests: 101, MaxGuests: 200, Price: 18000},
					{MinGuests: 201, MaxGuests: 300, Price: 25000},
				},
				ExtraHourRate: 800,
			},
		},
	}
}
