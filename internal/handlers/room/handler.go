package room

import (
	"net/http"

	"mahalo/infras/otel"
	"mahalo/internal/domains/room/service"
	reservationHandler "mahalo/internal/handlers/reservation"
	"mahalo/shared/constant"
	"mahalo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Room
	reservations reservationHandler.Handler
	otel         otel.Otel
}

func New(service service.Room, reservations reservationHandler.Handler, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		reservations: reservations,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		// Static segment, registered alongside the id wildcard on purpose.
		routerGroup.Get("/availability", handler.reservations.CheckAvailability)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms lists the room catalog with current nightly rates.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID returns one room with its image gallery.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
