package service

import (
	"context"
	"fmt"
	"time"

	"libraryhub/internal/domains/booking/model"
	"libraryhub/internal/domains/booking/model/dto"
	seatModel "libraryhub/internal/domains/seat/model"
	userModel "libraryhub/internal/domains/user/model"
	"libraryhub/shared"
	"libraryhub/shared/constant"
	"libraryhub/shared/failure"
	gRepo "libraryhub/shared/repository"
	"libraryhub/shared/timezone"
	"libraryhub/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func actor(ctx context.Context, fallback string) string {
	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user != constant.Empty {
		return user
	}

	return fallback
}

// conflictOnDuplicate turns a unique index violation on (seat_id, booking_date) into
// the same conflict the pre-checks report.
func conflictOnDuplicate(err error) error {
	if gRepo.IsUniqueViolation(err) {
		return failure.Conflict(errSeatTaken) //nolint:wrapcheck
	}

	return err
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	slot, err := req.Slot()
	if err != nil {
		return res, err
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound(errUserNotFound) //nolint:wrapcheck
	}

	var seat seatModel.Seat

	if req.SeatID != constant.Empty {
		seat, err = s.seatRepo.Get(ctx, shared.FilterByID(req.SeatID, seatModel.FieldID, seatModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get seat")

			return res, fmt.Errorf("failed to get seat: %w", err)
		}
	}

	libraryID := req.ResourceID
	if libraryID == constant.Empty {
		if seat.ID == constant.Empty {
			return res, failure.NotFound(errSeatNotFound) //nolint:wrapcheck
		}

		libraryID = seat.LibraryID
	}

	if err = s.ensureLibrary(ctx, libraryID, errResourceNotFound); err != nil {
		return res, err
	}

	if req.SeatID == constant.Empty {
		seat, err = s.firstAvailableSeat(ctx, libraryID, slot.DayString())
		if err != nil {
			return res, err
		}
	}

	if err = checkSeat(seat, libraryID); err != nil {
		return res, err
	}

	if err = s.gate.Check(ctx, user, libraryID, slot.Day, constant.Empty); err != nil {
		return res, err //nolint:wrapcheck
	}

	booking := req.ToModel(actor(ctx, user.ID), libraryID, seat.ID, slot)

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return s.reserve(ctx, tx, booking)
	})
	if err != nil {
		log.Error().Err(err).Str("seatId", seat.ID).Str("date", slot.DayString()).Msg("failed to create booking")

		return res, conflictOnDuplicate(err)
	}

	s.invalidate(ctx, booking.ID)
	s.publish(ctx, EventBookingCreated, booking)

	res.FromStored(booking)

	return res, nil
}

func checkSeat(seat seatModel.Seat, libraryID string) error {
	if seat.ID == constant.Empty || seat.LibraryID != libraryID {
		return failure.NotFound(errSeatNotFound) //nolint:wrapcheck
	}

	if !seat.IsAvailable {
		return failure.Conflict(errSeatUnavailable) //nolint:wrapcheck
	}

	return nil
}

// reserve repeats the seat checks under a row lock on the seat, so concurrent
// requests for the same seat are serialized, then writes the booking and moves
// the library counter.
func (s *serviceImpl) reserve(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	seat, err := s.seatRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(booking.SeatID, seatModel.FieldID, seatModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to lock seat: %w", err)
	}

	if err = checkSeat(seat, booking.LibraryID); err != nil {
		return err
	}

	taken, err := s.repo.ExistTx(ctx, tx, activeOnDay(booking.SeatID, booking.Day(), constant.Empty))
	if err != nil {
		return fmt.Errorf("failed to check seat bookings: %w", err)
	}

	if taken {
		return failure.Conflict(errSeatTaken) //nolint:wrapcheck
	}

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = s.libraryRepo.AdjustSeatCountersTx(ctx, tx, booking.LibraryID, 0, -1); err != nil {
		return fmt.Errorf("failed to decrement available seats: %w", err)
	}

	return nil
}

// lock reads booking id under a row lock, failing with not found when it is missing.
func (s *serviceImpl) lock(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, tx, byID(id))
	if err != nil {
		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(errBookingNotFound) //nolint:wrapcheck
	}

	return booking, nil
}

// Cancel releases the seat for the booking's day and gives the library its seat back.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := today()

	var booking model.Booking

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		switch booking.EffectiveStatus(now) {
		case model.StatusCancelled:
			return failure.Conflict("booking already cancelled") //nolint:wrapcheck
		case model.StatusCompleted:
			return failure.Conflict("completed booking cannot be cancelled") //nolint:wrapcheck
		}

		booking.Status = model.StatusCancelled
		booking.ModifiedAt = timezone.Now()
		booking.ModifiedBy = actor(ctx, booking.UserID)

		err = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        booking.Status,
			constant.FieldModifiedAt: booking.ModifiedAt,
			constant.FieldModifiedBy: booking.ModifiedBy,
		}, byID(id))
		if err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		if err = s.libraryRepo.AdjustSeatCountersTx(ctx, tx, booking.LibraryID, 0, 1); err != nil {
			return fmt.Errorf("failed to increment available seats: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to cancel booking")

		return res, err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, EventBookingCancelled, booking)

	res.FromModel(booking, now)

	return res, nil
}

// Update reschedules an active booking or moves it between pending and confirmed.
// Setting the status to cancelled behaves exactly like Cancel.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("at least one of date, startTime, endTime or status is required") //nolint:wrapcheck
	}

	if req.Status == model.StatusCancelled {
		if req.ChangesSlot() {
			return res, failure.BadRequestFromString("a booking cannot be rescheduled and cancelled at once") //nolint:wrapcheck
		}

		return s.Cancel(ctx, id)
	}

	now := today()

	var booking model.Booking

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		switch booking.EffectiveStatus(now) {
		case model.StatusCancelled:
			return failure.Conflict("cancelled booking cannot be updated") //nolint:wrapcheck
		case model.StatusCompleted:
			return failure.Conflict("completed booking cannot be updated") //nolint:wrapcheck
		}

		booking.ModifiedAt = timezone.Now()
		booking.ModifiedBy = actor(ctx, booking.UserID)

		fields := map[string]any{
			constant.FieldModifiedAt: booking.ModifiedAt,
			constant.FieldModifiedBy: booking.ModifiedBy,
		}

		if req.ChangesSlot() {
			slot, err := req.Slot(booking)
			if err != nil {
				return err
			}

			if slot.DayString() != booking.Day() {
				if err := s.admitMove(ctx, tx, booking, slot.Day); err != nil {
					return err
				}

				taken, err := s.repo.ExistTx(ctx, tx, activeOnDay(booking.SeatID, slot.DayString(), booking.ID))
				if err != nil {
					return fmt.Errorf("failed to check seat bookings: %w", err)
				}

				if taken {
					return failure.Conflict(errSeatTaken) //nolint:wrapcheck
				}
			}

			booking.BookingDate = slot.Day
			booking.StartTime = slot.Start
			booking.EndTime = slot.End

			fields[model.FieldBookingDate] = slot.Day
			fields[model.FieldStartTime] = slot.Start
			fields[model.FieldEndTime] = slot.End
		}

		if req.Status != constant.Empty {
			booking.Status = req.Status
			fields[model.FieldStatus] = req.Status
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, byID(id)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to update booking")

		return res, conflictOnDuplicate(err)
	}

	s.invalidate(ctx, id)
	s.publish(ctx, EventBookingUpdated, booking)

	res.FromModel(booking, now)

	return res, nil
}

// admitMove repeats the seat and quota checks of Create for a booking moving to day.
func (s *serviceImpl) admitMove(ctx context.Context, tx *sqlx.Tx, booking model.Booking, day time.Time) error {
	seat, err := s.seatRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(booking.SeatID, seatModel.FieldID, seatModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to lock seat: %w", err)
	}

	if err = checkSeat(seat, booking.LibraryID); err != nil {
		return err
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(booking.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound(errUserNotFound) //nolint:wrapcheck
	}

	return s.gate.Check(ctx, user, booking.LibraryID, day, booking.ID) //nolint:wrapcheck
}

// Delete removes the booking row. An active booking gives its seat back first.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var booking model.Booking

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if err = s.repo.DeleteTx(ctx, tx, byID(id)); err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if booking.IsActive() {
			if err = s.libraryRepo.AdjustSeatCountersTx(ctx, tx, booking.LibraryID, 0, 1); err != nil {
				return fmt.Errorf("failed to increment available seats: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to delete booking")

		return err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, EventBookingDeleted, booking)

	return nil
}
