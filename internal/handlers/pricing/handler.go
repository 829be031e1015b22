package pricing

import (
	"net/http"

	"mahalo/infras/otel"
	"mahalo/internal/domains/pricing/model/dto"
	"mahalo/internal/domains/pricing/service"
	"mahalo/shared/constant"
	"mahalo/shared/validator"
	"mahalo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/prices", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPrices)
		routerGroup.Put("/", handler.UpdatePrices)
	})
}

// GetPrices returns the current rate table.
// @Summary Get the price table
// @Tags Pricing
// @Produce json
// @Success 200 {object} response.Data[dto.PricesResponse]
// @Router /v1/prices [get]
func (handler *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrices")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Get(ctx))
}

// UpdatePrices replaces the rate table wholesale.
// @Summary Replace the price table
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.UpdatePricesRequest true "New price table"
// @Success 200 {object} response.Data[dto.PricesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/prices [put]
// @Security BearerAuth
func (handler *Handler) UpdatePrices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePrices")
	defer scope.End()

	var req dto.UpdatePricesRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update price table")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price table updated")

	response.WithJSON(w, http.StatusOK, res)
}
