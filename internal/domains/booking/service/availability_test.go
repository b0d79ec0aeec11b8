package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"libraryhub/internal/domains/booking/model"
	seatModel "libraryhub/internal/domains/seat/model"
	gDto "libraryhub/shared/dto"
)

func TestBookingService_GetSeatAvailability(t *testing.T) {
	day := dayString(1)

	tests := []struct {
		name          string
		date          string
		setupMock     func(f *fixture)
		wantCode      int
		wantAvailable map[string]bool
	}{
		{
			name: "maintenance and booked seats are unavailable",
			date: day,
			setupMock: func(f *fixture) {
				f.libraryExists(true)
				f.seatRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]seatModel.Seat{newSeat("seat-1", true), newSeat("seat-2", true), newSeat("seat-3", false)}, nil)
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
						clause, args := where(filter)
						assert.Contains(t, clause, "bookings.booking_date = :booking_date")
						assert.Contains(t, clause, "bookings.status IN")
						assert.Equal(t, day, args["booking_date"])
						assert.Equal(t, libraryID, args["library_id"])

						return []model.Booking{newBooking("b-1", "seat-2", 1, model.StatusConfirmed)}, nil
					})
			},
			wantAvailable: map[string]bool{"seat-1": true, "seat-2": false, "seat-3": false},
		},
		{
			name: "library without seats",
			date: day,
			setupMock: func(f *fixture) {
				f.libraryExists(true)
				f.seatRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]seatModel.Seat{}, nil)
			},
			wantAvailable: map[string]bool{},
		},
		{
			name:      "malformed date",
			date:      "01/02/2026",
			setupMock: func(*fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown library",
			date: day,
			setupMock: func(f *fixture) {
				f.libraryExists(false)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetSeatAvailability(context.Background(), libraryID, tt.date)

			assertCode(t, tt.wantCode, err)

			if tt.wantCode != 0 {
				return
			}

			require.Len(t, res, len(tt.wantAvailable))

			for _, seat := range res {
				assert.Equal(t, tt.wantAvailable[seat.ID], seat.Available, seat.ID)

				if seat.ID == "seat-2" {
					require.Len(t, seat.Bookings, 1)
					assert.Equal(t, "b-1", seat.Bookings[0].ID)
				}
			}
		})
	}
}

func TestBookingService_GetAvailableSeats(t *testing.T) {
	f := newFixture(t)

	f.libraryExists(true)
	f.seatRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]seatModel.Seat{newSeat("seat-1", true), newSeat("seat-2", true), newSeat("seat-3", false)}, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{newBooking("b-1", "seat-1", 2, model.StatusPending)}, nil)

	res, err := f.svc.GetAvailableSeats(context.Background(), libraryID, dayString(2))

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "seat-2", res[0].ID)
	assert.True(t, res[0].Available)
	assert.Empty(t, res[0].Bookings)
}
