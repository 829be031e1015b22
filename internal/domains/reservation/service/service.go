package service

import (
	"context"
	"fmt"

	"mahalo/config"
	"mahalo/infras/kafka"
	"mahalo/infras/otel"
	pricing "mahalo/internal/domains/pricing/service"
	"mahalo/internal/domains/reservation/model"
	"mahalo/internal/domains/reservation/model/dto"
	"mahalo/internal/domains/reservation/repository"
	room "mahalo/internal/domains/room/service"
	"mahalo/shared"
	"mahalo/shared/constant"
	gDto "mahalo/shared/dto"
	"mahalo/shared/failure"
	"mahalo/shared/membership"
	"mahalo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const membershipAttempts = 20

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mocks/service_mock.go -package=service_mocks

// Reservation handles bookings for the three products, the admin listing
// and cleanup operations, and the room availability probe.
type Reservation interface {
	CreateRoom(ctx context.Context, req dto.CreateRoomReservationRequest) (dto.ReservationResponse, error)
	CreateRestaurant(ctx context.Context, req dto.CreateRestaurantReservationRequest) (dto.ReservationResponse, error)
	CreateEvent(ctx context.Context, req dto.CreateEventReservationRequest) (dto.ReservationResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Delete(ctx context.Context, id string) error
	Checkout(ctx context.Context, id string) (dto.CheckoutResponse, error)
	CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (dto.AvailabilityResponse, error)
	Cleanup(ctx context.Context) (dto.CleanupResponse, error)
	MembershipNumber(ctx context.Context, digits int) (dto.MembershipNumberResponse, error)
}

type serviceImpl struct {
	repo    repository.Reservation
	pricing pricing.Pricing
	rooms   room.Room
	kafka   kafka.Client
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Reservation, pricing pricing.Pricing, rooms room.Room, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:    repo,
		pricing: pricing,
		rooms:   rooms,
		kafka:   kafka,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) CreateRoom(ctx context.Context, req dto.CreateRoomReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoomReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.CheckOut <= req.CheckIn {
		err = failure.BadRequestFromString("check_out must be after check_in")

		return
	}

	roomEntry, ok := s.rooms.Find(req.RoomID)
	if !ok {
		err = failure.NotFound("room")

		return
	}

	if !roomEntry.FitsGuests(req.Guests) {
		err = failure.BadRequestFromString(fmt.Sprintf("room %s takes at most %d guests", roomEntry.ID, roomEntry.EffectiveMax()))

		return
	}

	availability, err := s.CheckAvailability(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		return
	}

	if !availability.Available {
		msg := "room is not available for the requested dates"
		if availability.AvailableFrom != constant.Empty {
			msg = fmt.Sprintf("%s, free from %s", msg, availability.AvailableFrom)
		}
		err = failure.Conflict(msg)

		return
	}

	quote := s.pricing.Table(ctx).QuoteRoom(req.RoomID, req.CheckIn, req.CheckOut, req.Member())

	reservation := req.ToModel(s.repo.NextID(), req.Email, quote.Total)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert room reservation")

		return res, fmt.Errorf("failed to insert room reservation: %w", err)
	}

	s.notify(ctx, "reservation.created", reservation)

	return dto.ReservationResponse{}.FromModel(reservation), nil
}

func (s *serviceImpl) CreateRestaurant(ctx context.Context, req dto.CreateRestaurantReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRestaurantReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if (req.DaypassType == constant.Empty) == (req.TableType == constant.Empty) {
		err = failure.BadRequestFromString("exactly one of daypass_type or table_type is required")

		return
	}

	quote := s.pricing.Table(ctx).QuoteRestaurant(req.DaypassType, req.TableType, req.PartySize, req.Member())

	reservation := req.ToModel(s.repo.NextID(), req.Email, quote.Total)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert restaurant reservation")

		return res, fmt.Errorf("failed to insert restaurant reservation: %w", err)
	}

	s.notify(ctx, "reservation.created", reservation)

	return dto.ReservationResponse{}.FromModel(reservation), nil
}

func (s *serviceImpl) CreateEvent(ctx context.Context, req dto.CreateEventReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateEventReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.EndTime <= req.StartTime {
		err = failure.BadRequestFromString("end_time must be after start_time")

		return
	}

	quote := s.pricing.Table(ctx).QuoteEvent(
		req.Guests,
		req.EventType == model.EventTypeDecorated,
		req.StartTime,
		req.EndTime,
		req.Member(),
	)

	reservation := req.ToModel(s.repo.NextID(), req.Email, quote.Total)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert event reservation")

		return res, fmt.Errorf("failed to insert event reservation: %w", err)
	}

	s.notify(ctx, "reservation.created", reservation)

	return dto.ReservationResponse{}.FromModel(reservation), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, ok := s.repo.Get(ctx, id)
	if !ok {
		err = failure.NotFound(model.EntityName)

		return
	}

	return dto.ReservationResponse{}.FromModel(reservation), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, total := s.repo.GetAll(ctx, params, filter)

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.repo.Exist(ctx, id) {
		err = failure.NotFound(model.EntityName)

		return
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	return nil
}

// Checkout flips a room reservation to checked out. The transition happens
// once; repeating it is a conflict so double submissions surface.
func (s *serviceImpl) Checkout(ctx context.Context, id string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckoutReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, ok := s.repo.Get(ctx, id)
	if !ok {
		err = failure.NotFound(model.EntityName)

		return
	}

	if reservation.Type != constant.ReservationTypeRoom {
		err = failure.BadRequestFromString("only room reservations can be checked out")

		return
	}

	if reservation.CheckedOut {
		err = failure.Conflict("reservation is already checked out")

		return
	}

	reservation.CheckedOut = true
	reservation.ModifiedAt = timezone.Now()
	reservation.ModifiedBy = reservation.Email

	if err = s.repo.Update(ctx, reservation); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check out reservation")

		return res, fmt.Errorf("failed to check out reservation: %w", err)
	}

	s.notify(ctx, "reservation.checked_out", reservation)

	return dto.CheckoutResponse{
		ID:         reservation.ID,
		Status:     reservation.Status(timezone.Now()),
		CheckedOut: true,
	}, nil
}

// CheckAvailability scans current stays for overlaps with the candidate
// [checkIn, checkOut) range. When blocked, it also reports the earliest
// conflicting checkout that lies past the candidate's own checkout.
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if checkOut <= checkIn {
		err = failure.BadRequestFromString("check_out must be after check_in")

		return
	}

	if _, ok := s.rooms.Find(roomID); !ok {
		err = failure.NotFound("room")

		return
	}

	res = dto.AvailabilityResponse{
		Available: true,
		RoomID:    roomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}

	for _, existing := range s.repo.All(ctx) {
		if !existing.Blocks(roomID, checkIn, checkOut) {
			continue
		}

		res.Available = false

		if existing.CheckOut > checkOut {
			if res.AvailableFrom == constant.Empty || existing.CheckOut < res.AvailableFrom {
				res.AvailableFrom = existing.CheckOut
			}
		}
	}

	return res, nil
}

// Cleanup removes every expired reservation in one sweep. Each removal is
// its own mirror round trip, so a mid-sweep mirror outage leaves already
// removed records behind on the mirror until the next write reconciles.
func (s *serviceImpl) Cleanup(ctx context.Context) (res dto.CleanupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CleanupReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	res.IDs = []string{}

	for _, reservation := range s.repo.All(ctx) {
		if !reservation.Expired(now) {
			continue
		}

		if err := s.repo.Delete(ctx, reservation.ID); err != nil {
			log.Error().Err(err).Str("id", reservation.ID).Msg("failed to remove expired reservation, skipping")

			continue
		}

		res.IDs = append(res.IDs, reservation.ID)
	}

	res.Removed = len(res.IDs)

	if res.Removed > 0 {
		s.notify(ctx, "reservation.cleanup", res)
	}

	return res, nil
}

// MembershipNumber issues a zero-padded number not already held by any
// reservation on file.
func (s *serviceImpl) MembershipNumber(ctx context.Context, digits int) (res dto.MembershipNumberResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MembershipNumber")
	defer scope.End()
	defer scope.TraceIfError(err)

	for attempt := 0; attempt < membershipAttempts; attempt++ {
		number := membership.Generate(digits)
		if s.repo.Count(ctx, shared.FilterByEq(model.FieldMemberNumber, number)) > 0 {
			continue
		}

		return dto.MembershipNumberResponse{
			MemberNumber: number,
			Digits:       len(number),
		}, nil
	}

	err = failure.Conflict("could not issue a unique membership number, retry with more digits")

	return
}

// notify publishes a booking event. Delivery is best effort and never
// affects the request outcome.
func (s *serviceImpl) notify(ctx context.Context, key string, value any) {
	if !s.cfg.External.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.External.Kafka.NotificationTopic, kafka.Message{
			Key:   key,
			Value: value,
		})
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to publish reservation notification")
		}
	}()
}
