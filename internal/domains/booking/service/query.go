package service

import (
	"context"
	"fmt"
	"slices"

	"libraryhub/internal/domains/booking/model"
	"libraryhub/internal/domains/booking/model/dto"
	seatModel "libraryhub/internal/domains/seat/model"
	userModel "libraryhub/internal/domains/user/model"
	"libraryhub/shared"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"

	"github.com/rs/zerolog/log"
)

var queryableStatuses = []string{model.StatusPending, model.StatusConfirmed, model.StatusCancelled, model.StatusCompleted}

// list runs a booking query through the cache. Without a limit the full result set
// is returned; with one, a page and its pagination metadata.
func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.BookingList, err error) {
	now := today()

	params.SortBy = orderByDay
	params.SortDir = gDto.SortDirAsc

	if params.IsPaginated() && params.Page == 0 {
		params.Page = constant.DefaultValuePage
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllBooking, now), params, filter)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	details, err := s.repo.GetAllDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromDetails(details, now)

	if params.IsPaginated() {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", err)
		}

		res.Pagination = &dto.Pagination{
			Page:      params.Page,
			Limit:     params.Limit,
			TotalData: total,
			TotalPage: shared.CalculateTotalPage(total, params.Limit),
		}
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.BookingList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, params, gDto.FilterGroup{})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := today()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id, now)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	detail, err := s.repo.GetDetail(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound(errBookingNotFound) //nolint:wrapcheck
	}

	res.FromDetail(detail, now)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetByUserID(ctx context.Context, userID string, params gDto.QueryParams) (res dto.BookingList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByUserID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user")

		return res, fmt.Errorf("failed to check user: %w", err)
	}

	if !exist {
		return res, failure.NotFound(errUserNotFound) //nolint:wrapcheck
	}

	return s.list(ctx, params, gDto.And(eq(model.FieldUserID, userID)))
}

// GetByRoomID accepts either a seat id or a library id.
func (s *serviceImpl) GetByRoomID(ctx context.Context, roomID string, params gDto.QueryParams) (res dto.BookingList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByRoomID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	isSeat, err := s.seatRepo.Exist(ctx, shared.FilterByID(roomID, seatModel.FieldID, seatModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check seat")

		return res, fmt.Errorf("failed to check seat: %w", err)
	}

	if isSeat {
		return s.list(ctx, params, gDto.And(eq(model.FieldSeatID, roomID)))
	}

	if err = s.ensureLibrary(ctx, roomID, errResourceNotFound); err != nil {
		return res, err
	}

	return s.list(ctx, params, gDto.And(eq(model.FieldLibraryID, roomID)))
}

func (s *serviceImpl) GetByDate(ctx context.Context, date string, params gDto.QueryParams) (res dto.BookingList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := dto.ParseDay(date)
	if err != nil {
		return res, err
	}

	return s.list(ctx, params, gDto.And(
		dayBound("day_from", gDto.FilterOperatorGreaterEq, day.Format(constant.DayFormat)),
		dayBound("day_to", gDto.FilterOperatorLess, day.AddDate(0, 0, 1).Format(constant.DayFormat)),
	))
}

// parseRange validates an inclusive [startDate, endDate] pair of days.
func parseRange(startDate, endDate string) (string, string, error) {
	if startDate == constant.Empty || endDate == constant.Empty {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("startDate and endDate are required") //nolint:wrapcheck
	}

	from, err := dto.ParseDay(startDate)
	if err != nil {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("startDate must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	to, err := dto.ParseDay(endDate)
	if err != nil {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("endDate must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	if from.After(to) {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("startDate must not be after endDate") //nolint:wrapcheck
	}

	return from.Format(constant.DayFormat), to.Format(constant.DayFormat), nil
}

func rangeFilters(from, to string) []any {
	return []any{
		dayBound("range_from", gDto.FilterOperatorGreaterEq, from),
		dayBound("range_to", gDto.FilterOperatorLessEq, to),
	}
}

func (s *serviceImpl) GetByDateRange(ctx context.Context, startDate, endDate string, params gDto.QueryParams) (res dto.BookingList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByDateRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to, err := parseRange(startDate, endDate)
	if err != nil {
		return res, err
	}

	return s.list(ctx, params, gDto.And(rangeFilters(from, to)...))
}

// GetByStatus matches the status callers see. Confirmed bookings dated before today
// read as completed, so both statuses split the confirmed rows on today's date.
func (s *serviceImpl) GetByStatus(ctx context.Context, status string, params gDto.QueryParams) (res dto.BookingList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(queryableStatuses, status) {
		return res, failure.BadRequestFromString("status must be one of pending confirmed cancelled completed") //nolint:wrapcheck
	}

	now := today()

	var filter gDto.FilterGroup

	switch status {
	case model.StatusConfirmed:
		filter = gDto.And(eq(model.FieldStatus, model.StatusConfirmed), dayBound("today", gDto.FilterOperatorGreaterEq, now))
	case model.StatusCompleted:
		filter = gDto.And(eq(model.FieldStatus, model.StatusConfirmed), dayBound("today", gDto.FilterOperatorLess, now))
	default:
		filter = gDto.And(eq(model.FieldStatus, status))
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) GetByLibrary(ctx context.Context, libraryID string, params gDto.QueryParams) (res dto.BookingList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByLibrary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureLibrary(ctx, libraryID, errLibraryNotFound); err != nil {
		return res, err
	}

	return s.list(ctx, params, gDto.And(eq(model.FieldLibraryID, libraryID)))
}
