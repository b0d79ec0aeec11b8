package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"

	"libraryhub/config"
	"libraryhub/infras/kafka"
	"libraryhub/infras/otel"
	"libraryhub/infras/s3"
	"libraryhub/internal/domains/booking/gate"
	"libraryhub/internal/domains/booking/model"
	"libraryhub/internal/domains/booking/model/dto"
	"libraryhub/internal/domains/booking/repository"
	libraryModel "libraryhub/internal/domains/library/model"
	libraryRepo "libraryhub/internal/domains/library/repository"
	seatRepo "libraryhub/internal/domains/seat/repository"
	userRepo "libraryhub/internal/domains/user/repository"
	"libraryhub/shared"
	"libraryhub/shared/cache"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"
	"libraryhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

const (
	errBookingNotFound  = "booking not found"
	errLibraryNotFound  = "library not found"
	errResourceNotFound = "resource not found"
	errSeatNotFound     = "seat not found"
	errUserNotFound     = "user not found"
	errSeatUnavailable  = "seat unavailable"
	errSeatTaken        = "seat already booked for this date"
	errNoSeatAvailable  = "no seat available"
)

// orderByDay sorts bookings by day and then by start time.
const orderByDay = model.TableName + "." + model.FieldBookingDate + ", " + model.TableName + "." + model.FieldStartTime

type Booking interface {
	GetSeatAvailability(ctx context.Context, libraryID, date string) ([]dto.SeatAvailability, error)
	GetAvailableSeats(ctx context.Context, libraryID, date string) ([]dto.SeatAvailability, error)

	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error

	GetAll(ctx context.Context, params gDto.QueryParams) (dto.BookingList, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByUserID(ctx context.Context, userID string, params gDto.QueryParams) (dto.BookingList, error)
	GetByRoomID(ctx context.Context, roomID string, params gDto.QueryParams) (dto.BookingList, error)
	GetByDate(ctx context.Context, date string, params gDto.QueryParams) (dto.BookingList, error)
	GetByDateRange(ctx context.Context, startDate, endDate string, params gDto.QueryParams) (dto.BookingList, error)
	GetByStatus(ctx context.Context, status string, params gDto.QueryParams) (dto.BookingList, error)
	GetByLibrary(ctx context.Context, libraryID string, params gDto.QueryParams) (dto.BookingList, error)

	Export(ctx context.Context, libraryID, startDate, endDate string) (dto.ExportResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	seatRepo    seatRepo.Seat
	libraryRepo libraryRepo.Library
	userRepo    userRepo.User
	gate        gate.Gate
	cfg         *config.Config
	cache       cache.RedisCache
	kafka       kafka.Client
	s3          s3.S3
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	seatRepo seatRepo.Seat,
	libraryRepo libraryRepo.Library,
	userRepo userRepo.User,
	gate gate.Gate,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	s3 s3.S3,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		seatRepo:    seatRepo,
		libraryRepo: libraryRepo,
		userRepo:    userRepo,
		gate:        gate,
		cfg:         cfg,
		cache:       cache,
		kafka:       kafka,
		s3:          s3,
		otel:        otel,
	}
}

func today() string {
	return timezone.Today()
}

func (s *serviceImpl) ensureLibrary(ctx context.Context, libraryID, notFound string) error {
	exist, err := s.libraryRepo.Exist(ctx, shared.FilterByID(libraryID, libraryModel.FieldID, libraryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check library")

		return fmt.Errorf("failed to check library: %w", err)
	}

	if !exist {
		return failure.NotFound(notFound) //nolint:wrapcheck
	}

	return nil
}

// invalidate drops the cached reads touched by a write to booking id.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyLibraryList)
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetBooking, id))
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func eq(field string, value any) gDto.Filter {
	return gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq, Table: model.TableName}
}

func active() gDto.Filter {
	return gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName}
}

func dayBound(argName, operator, day string) gDto.Filter {
	return gDto.Filter{Field: model.FieldBookingDate, ArgName: argName, Value: day, Operator: operator, Table: model.TableName}
}

// activeOnDay matches the bookings holding seatID on day, ignoring excludeID when set.
func activeOnDay(seatID, day, excludeID string) gDto.FilterGroup {
	filters := []any{eq(model.FieldSeatID, seatID), eq(model.FieldBookingDate, day), active()}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field: model.FieldID, ArgName: "exclude_id", Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName,
		})
	}

	return gDto.And(filters...)
}
