package service

import (
	"context"
	"fmt"

	"libraryhub/internal/domains/booking/model"
	"libraryhub/internal/domains/booking/model/dto"
	seatModel "libraryhub/internal/domains/seat/model"
	"libraryhub/shared"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"

	"github.com/rs/zerolog/log"
)

// seatsOn loads every seat of the library together with the active bookings that
// hold each seat on day. Bookings on other days never appear.
func (s *serviceImpl) seatsOn(ctx context.Context, libraryID, day string) ([]seatModel.Seat, map[string][]model.Booking, error) {
	seats, err := s.seatRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  seatModel.TableName + "." + seatModel.FieldName,
		SortDir: gDto.SortDirAsc,
	}, shared.FilterByID(libraryID, seatModel.FieldLibraryID, seatModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("libraryId", libraryID).Msg("failed to get seats")

		return nil, nil, fmt.Errorf("failed to get seats: %w", err)
	}

	if len(seats) == 0 {
		return seats, map[string][]model.Booking{}, nil
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  orderByDay,
		SortDir: gDto.SortDirAsc,
	}, gDto.And(eq(model.FieldLibraryID, libraryID), eq(model.FieldBookingDate, day), active()))
	if err != nil {
		log.Error().Err(err).Str("libraryId", libraryID).Msg("failed to get bookings for day")

		return nil, nil, fmt.Errorf("failed to get bookings for day: %w", err)
	}

	bySeat := make(map[string][]model.Booking, len(bookings))
	for _, booking := range bookings {
		bySeat[booking.SeatID] = append(bySeat[booking.SeatID], booking)
	}

	return seats, bySeat, nil
}

func (s *serviceImpl) GetSeatAvailability(ctx context.Context, libraryID, date string) (res []dto.SeatAvailability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetSeatAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := dto.ParseDay(date)
	if err != nil {
		return nil, err
	}

	if err = s.ensureLibrary(ctx, libraryID, errLibraryNotFound); err != nil {
		return nil, err
	}

	seats, bySeat, err := s.seatsOn(ctx, libraryID, day.Format(constant.DayFormat))
	if err != nil {
		return nil, err
	}

	now := today()

	res = make([]dto.SeatAvailability, len(seats))
	for i, seat := range seats {
		res[i].FromModel(seat, bySeat[seat.ID], now)
	}

	return res, nil
}

func (s *serviceImpl) GetAvailableSeats(ctx context.Context, libraryID, date string) (res []dto.SeatAvailability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAvailableSeats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seats, err := s.GetSeatAvailability(ctx, libraryID, date)
	if err != nil {
		return nil, err
	}

	res = make([]dto.SeatAvailability, 0, len(seats))
	for _, seat := range seats {
		if seat.Available {
			res = append(res, seat)
		}
	}

	return res, nil
}

// firstAvailableSeat picks the first seat, by name, that can be booked on day.
func (s *serviceImpl) firstAvailableSeat(ctx context.Context, libraryID, day string) (seatModel.Seat, error) {
	seats, bySeat, err := s.seatsOn(ctx, libraryID, day)
	if err != nil {
		return seatModel.Seat{}, err
	}

	for _, seat := range seats {
		if seat.IsAvailable && len(bySeat[seat.ID]) == 0 {
			return seat, nil
		}
	}

	return seatModel.Seat{}, failure.Conflict(errNoSeatAvailable) //nolint:wrapcheck
}
