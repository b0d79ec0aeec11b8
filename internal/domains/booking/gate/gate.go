// Package gate decides whether a member may take another booking under the quota
// of their membership plan.
package gate

//go:generate go run go.uber.org/mock/mockgen -source=./gate.go -destination=../mocks/gate_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"libraryhub/config"
	"libraryhub/infras/otel"
	"libraryhub/internal/domains/booking/model"
	"libraryhub/internal/domains/booking/repository"
	planModel "libraryhub/internal/domains/plan/model"
	planRepo "libraryhub/internal/domains/plan/repository"
	userModel "libraryhub/internal/domains/user/model"
	"libraryhub/shared"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"

	"github.com/rs/zerolog/log"
)

const errQuotaExceeded = "monthly booking quota exceeded"

type Gate interface {
	// Check refuses the booking when the member's plan quota is used up for day.
	// A non-empty excludeID leaves that booking out of the count, for reschedules.
	Check(ctx context.Context, user userModel.User, libraryID string, day time.Time, excludeID string) error
}

// window returns the half-open range [from, to) of days counted against the quota.
type window func(day time.Time) (from, to time.Time)

func calendarMonth(day time.Time) (time.Time, time.Time) {
	from := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)

	return from, from.AddDate(0, 1, 0)
}

func rolling30d(day time.Time) (time.Time, time.Time) {
	to := day.AddDate(0, 0, 1)

	return to.AddDate(0, 0, -constant.RollingWindowDays), to
}

// New selects the policy named by BOOKING_MEMBERSHIP_QUOTA_MODE. Unknown modes fall
// back to no enforcement.
func New(cfg *config.Config, bookingRepo repository.Booking, planRepo planRepo.Plan, otel otel.Otel) Gate {
	var win window

	switch cfg.Booking.MembershipQuotaMode {
	case config.QuotaModeCalendarMonth:
		win = calendarMonth
	case config.QuotaModeRolling30d:
		win = rolling30d
	case config.QuotaModeOff, constant.Empty:
		return &noop{}
	default:
		log.Warn().Str("mode", cfg.Booking.MembershipQuotaMode).Msg("unknown membership quota mode, quota disabled")

		return &noop{}
	}

	return &quota{
		window:      win,
		bookingRepo: bookingRepo,
		planRepo:    planRepo,
		otel:        otel,
	}
}

type noop struct{}

func (*noop) Check(context.Context, userModel.User, string, time.Time, string) error {
	return nil
}

type quota struct {
	window      window
	bookingRepo repository.Booking
	planRepo    planRepo.Plan
	otel        otel.Otel
}

func (q *quota) Check(ctx context.Context, user userModel.User, libraryID string, day time.Time, excludeID string) (err error) {
	ctx, scope := q.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gate.Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !user.HasMembershipOn(day) {
		return nil
	}

	plan, err := q.planRepo.Get(ctx, shared.FilterByID(*user.MembershipPlanID, planModel.FieldID, planModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get membership plan")

		return fmt.Errorf("failed to get membership plan: %w", err)
	}

	if plan.ID == constant.Empty || plan.LibraryID != libraryID || !plan.HasQuota() {
		return nil
	}

	from, to := q.window(day)

	filters := []any{
		gDto.Filter{Field: model.FieldUserID, Value: user.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldLibraryID, Value: libraryID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		gDto.Filter{
			Field: model.FieldBookingDate, ArgName: "window_from", Value: from.Format(constant.DayFormat),
			Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName,
		},
		gDto.Filter{
			Field: model.FieldBookingDate, ArgName: "window_to", Value: to.Format(constant.DayFormat),
			Operator: gDto.FilterOperatorLess, Table: model.TableName,
		},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field: model.FieldID, ArgName: "exclude_id", Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName,
		})
	}

	used, err := q.bookingRepo.Count(ctx, gDto.And(filters...))
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings in quota window")

		return fmt.Errorf("failed to count bookings in quota window: %w", err)
	}

	if used >= plan.AllowedBookingsPerMonth {
		log.Info().
			Str("userId", user.ID).
			Str("libraryId", libraryID).
			Int("used", used).
			Int("allowed", plan.AllowedBookingsPerMonth).
			Msg("booking refused by membership quota")

		return failure.Forbidden(errQuotaExceeded) //nolint:wrapcheck
	}

	return nil
}
