package reservation

import (
	"net/http"
	"strconv"

	"mahalo/infras/otel"
	"mahalo/internal/domains/reservation/model"
	"mahalo/internal/domains/reservation/model/dto"
	"mahalo/internal/domains/reservation/service"
	"mahalo/shared/constant"
	gDto "mahalo/shared/dto"
	"mahalo/shared/validator"
	"mahalo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/rooms", handler.CreateRoomReservation)
		routerGroup.Post("/restaurant", handler.CreateRestaurantReservation)
		routerGroup.Post("/events", handler.CreateEventReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
		routerGroup.Post("/{id}/checkout", handler.CheckoutReservation)
		routerGroup.Post("/cleanup", handler.CleanupReservations)
	})

	router.Get("/membership/number", handler.MembershipNumber)
}

// CreateRoomReservation books a room stay.
// @Summary Create a room reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomReservationRequest true "Room reservation"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/rooms [post]
func (handler *Handler) CreateRoomReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomReservation")
	defer scope.End()

	var req dto.CreateRoomReservationRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room reservation")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room reservation created")

	response.WithJSON(writer, http.StatusCreated, res)
}

// CreateRestaurantReservation books a table or daypass.
// @Summary Create a restaurant reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateRestaurantReservationRequest true "Restaurant reservation"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/restaurant [post]
func (handler *Handler) CreateRestaurantReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRestaurantReservation")
	defer scope.End()

	var req dto.CreateRestaurantReservationRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateRestaurant(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create restaurant reservation")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Restaurant reservation created")

	response.WithJSON(writer, http.StatusCreated, res)
}

// CreateEventReservation books the venue for a private event.
// @Summary Create an event reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateEventReservationRequest true "Event reservation"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/events [post]
func (handler *Handler) CreateEventReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEventReservation")
	defer scope.End()

	var req dto.CreateEventReservationRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateEvent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event reservation")
		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Event reservation created")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetReservations lists reservations with pagination and filters.
// @Summary List reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by type"
// @Param status query string false "Filter by status"
// @Param email query string false "Filter by email"
// @Param q query string false "Free text search"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	for _, field := range []string{model.FieldType, model.FieldStatus, model.FieldEmail} {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
			})
		}
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Operator: gDto.FilterOperatorAny,
			Value:    search,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a single reservation.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteReservation removes a reservation for good.
// @Summary Delete a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation deleted successfully")
}

// CheckoutReservation marks a room stay as checked out.
// @Summary Check out a room reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.CheckoutResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckoutReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutReservation")
	defer scope.End()

	res, err := handler.service.Checkout(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out reservation")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation checked out")

	response.WithJSON(w, http.StatusOK, res)
}

// CleanupReservations sweeps expired reservations. Invoked by an external
// scheduler, never self-triggered.
// @Summary Remove expired reservations
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[dto.CleanupResponse]
// @Router /v1/reservations/cleanup [post]
// @Security BearerAuth
func (handler *Handler) CleanupReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CleanupReservations")
	defer scope.End()

	res, err := handler.service.Cleanup(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clean up reservations")
		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cleanup sweep completed")

	response.WithJSON(w, http.StatusOK, res)
}

// CheckAvailability probes a room's date range. Routed under the rooms
// group so the path reads naturally.
// @Summary Check room availability
// @Tags Reservation
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date"
// @Param check_out query string true "Check-out date"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := r.URL.Query()
	checkIn := query.Get(constant.RequestParamCheckIn)
	checkOut := query.Get(constant.RequestParamCheckOut)

	for _, date := range []string{checkIn, checkOut} {
		if err := validator.ValidateVar(date, "required,date"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.CheckAvailability(ctx, query.Get(constant.RequestParamRoomID), checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// MembershipNumber issues a fresh membership number.
// @Summary Generate a membership number
// @Tags Reservation
// @Produce json
// @Param digits query integer false "Number width, clamped to 4..10"
// @Success 200 {object} response.Data[dto.MembershipNumberResponse]
// @Router /v1/membership/number [get]
func (handler *Handler) MembershipNumber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MembershipNumber")
	defer scope.End()

	digits := 0
	if raw := r.URL.Query().Get(constant.RequestParamDigits); raw != constant.Empty {
		if parsed, err := strconv.Atoi(raw); err == nil {
			digits = parsed
		}
	}

	res, err := handler.service.MembershipNumber(ctx, digits)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
