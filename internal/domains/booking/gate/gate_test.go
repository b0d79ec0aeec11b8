package gate_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"libraryhub/config"
	"libraryhub/infras/otel/mocks"
	"libraryhub/internal/domains/booking/gate"
	bookingMocks "libraryhub/internal/domains/booking/mocks"
	planMocks "libraryhub/internal/domains/plan/mocks"
	planModel "libraryhub/internal/domains/plan/model"
	userModel "libraryhub/internal/domains/user/model"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"
)

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestGate_Check(t *testing.T) {
	day := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	subscriber := userModel.User{
		ID:                  "user-1",
		MembershipPlanID:    strPtr("plan-1"),
		MembershipExpiresAt: timePtr(day.AddDate(0, 1, 0)),
	}

	plan := planModel.Plan{ID: "plan-1", LibraryID: "lib-1", AllowedBookingsPerMonth: 3}

	tests := []struct {
		name      string
		mode      string
		user      userModel.User
		libraryID string
		excludeID string
		setupMock func(bookingRepo *bookingMocks.MockBooking, planRepo *planMocks.MockPlan)
		wantCode  int
	}{
		{
			name:      "quota disabled",
			mode:      config.QuotaModeOff,
			user:      subscriber,
			libraryID: "lib-1",
			setupMock: func(*bookingMocks.MockBooking, *planMocks.MockPlan) {},
		},
		{
			name:      "unknown mode disables the quota",
			mode:      "weekly",
			user:      subscriber,
			libraryID: "lib-1",
			setupMock: func(*bookingMocks.MockBooking, *planMocks.MockPlan) {},
		},
		{
			name:      "user without membership",
			mode:      config.QuotaModeCalendarMonth,
			user:      userModel.User{ID: "user-2"},
			libraryID: "lib-1",
			setupMock: func(*bookingMocks.MockBooking, *planMocks.MockPlan) {},
		},
		{
			name: "expired membership",
			mode: config.QuotaModeCalendarMonth,
			user: userModel.User{
				ID:                  "user-1",
				MembershipPlanID:    strPtr("plan-1"),
				MembershipExpiresAt: timePtr(day.AddDate(0, 0, -1)),
			},
			libraryID: "lib-1",
			setupMock: func(*bookingMocks.MockBooking, *planMocks.MockPlan) {},
		},
		{
			name:      "plan of another library",
			mode:      config.QuotaModeCalendarMonth,
			user:      subscriber,
			libraryID: "lib-2",
			setupMock: func(_ *bookingMocks.MockBooking, planRepo *planMocks.MockPlan) {
				planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(plan, nil)
			},
		},
		{
			name:      "unlimited plan",
			mode:      config.QuotaModeCalendarMonth,
			user:      subscriber,
			libraryID: "lib-1",
			setupMock: func(_ *bookingMocks.MockBooking, planRepo *planMocks.MockPlan) {
				unlimited := plan
				unlimited.AllowedBookingsPerMonth = 0

				planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(unlimited, nil)
			},
		},
		{
			name:      "under the calendar month quota",
			mode:      config.QuotaModeCalendarMonth,
			user:      subscriber,
			libraryID: "lib-1",
			setupMock: func(bookingRepo *bookingMocks.MockBooking, planRepo *planMocks.MockPlan) {
				planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(plan, nil)
				bookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "2026-03-01", args["window_from"])
						assert.Equal(t, "2026-04-01", args["window_to"])
						assert.Equal(t, "user-1", args["user_id"])
						assert.Equal(t, "lib-1", args["library_id"])

						return 2, nil
					})
			},
		},
		{
			name:      "rescheduled booking is left out of its own count",
			mode:      config.QuotaModeCalendarMonth,
			user:      subscriber,
			libraryID: "lib-1",
			excludeID: "b-1",
			setupMock: func(bookingRepo *bookingMocks.MockBooking, planRepo *planMocks.MockPlan) {
				planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(plan, nil)
				bookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						clause, args := filter.GetWhereClause()
						assert.Contains(t, clause, "bookings.id != :exclude_id")
						assert.Equal(t, "b-1", args["exclude_id"])

						return 2, nil
					})
			},
		},
		{
			name:      "quota reached",
			mode:      config.QuotaModeCalendarMonth,
			user:      subscriber,
			libraryID: "lib-1",
			setupMock: func(bookingRepo *bookingMocks.MockBooking, planRepo *planMocks.MockPlan) {
				planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(plan, nil)
				bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:      "rolling window ends after the booking day",
			mode:      config.QuotaModeRolling30d,
			user:      subscriber,
			libraryID: "lib-1",
			setupMock: func(bookingRepo *bookingMocks.MockBooking, planRepo *planMocks.MockPlan) {
				planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(plan, nil)
				bookingRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "2026-02-14", args["window_from"])
						assert.Equal(t, "2026-03-16", args["window_to"])

						return 0, nil
					})
			},
		},
		{
			name:      "count failure",
			mode:      config.QuotaModeRolling30d,
			user:      subscriber,
			libraryID: "lib-1",
			setupMock: func(bookingRepo *bookingMocks.MockBooking, planRepo *planMocks.MockPlan) {
				planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(plan, nil)
				bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bookingRepo := bookingMocks.NewMockBooking(ctrl)
			planRepo := planMocks.NewMockPlan(ctrl)
			tt.setupMock(bookingRepo, planRepo)

			cfg := &config.Config{}
			cfg.Booking.MembershipQuotaMode = tt.mode

			err := gate.New(cfg, bookingRepo, planRepo, mocks.NewOtel()).Check(context.Background(), tt.user, tt.libraryID, day, tt.excludeID)

			if tt.wantCode == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
