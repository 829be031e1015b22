package dto

import "mahalo/internal/domains/pricing/model"

// UpdatePricesRequest replaces the whole rate table in one shot.
type UpdatePricesRequest struct {
	Rooms      map[string]float64    `json:"rooms" validate:"required"`
	Restaurant model.RestaurantRates `json:"restaurant" validate:"required"`
	Events     model.EventRates      `json:"events" validate:"required"`
}

func (r UpdatePricesRequest) ToModel() model.PriceTable {
	return model.PriceTable{
		Rooms:      r.Rooms,
		Restaurant: r.Restaurant,
		Events:     r.Events,
	}
}

type PricesResponse struct {
	Rooms      map[string]float64    `json:"rooms"`
	Restaurant model.RestaurantRates `json:"restaurant"`
	Events     model.EventRates      `json:"events"`
}

func (r PricesResponse) FromModel(table model.PriceTable) PricesResponse {
	return PricesResponse{
		Rooms:      table.Rooms,
		Restaurant: table.Restaurant,
		Events:     table.Events,
	}
}
