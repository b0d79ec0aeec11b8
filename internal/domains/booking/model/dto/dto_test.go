package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryhub/internal/domains/booking/model"
	"libraryhub/internal/domains/booking/model/dto"
	seatModel "libraryhub/internal/domains/seat/model"
	"libraryhub/shared/failure"
	"libraryhub/shared/timezone"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		start     string
		end       string
		wantDay   string
		wantError string
	}{
		{
			name:    "date with clock times",
			date:    "2024-06-01",
			start:   "09:00",
			end:     "11:00",
			wantDay: "2024-06-01",
		},
		{
			name:    "rfc3339 timestamps without date",
			start:   timezone.Format(time.Date(2024, time.June, 1, 9, 0, 0, 0, timezone.GetLocation()), time.RFC3339),
			end:     timezone.Format(time.Date(2024, time.June, 1, 11, 0, 0, 0, timezone.GetLocation()), time.RFC3339),
			wantDay: "2024-06-01",
		},
		{
			name:      "clock times need a date",
			start:     "09:00",
			end:       "11:00",
			wantError: "date is required when startTime and endTime are clock times",
		},
		{
			name:      "end before start",
			date:      "2024-06-01",
			start:     "11:00",
			end:       "09:00",
			wantError: "endTime must be after startTime",
		},
		{
			name:      "empty window",
			date:      "2024-06-01",
			start:     "09:00",
			end:       "09:00",
			wantError: "endTime must be after startTime",
		},
		{
			name:      "malformed date",
			date:      "01/06/2024",
			start:     "09:00",
			end:       "11:00",
			wantError: "date must be formatted as YYYY-MM-DD",
		},
		{
			name:      "malformed clock",
			date:      "2024-06-01",
			start:     "9am",
			end:       "11:00",
			wantError: "startTime must be formatted as HH:MM or RFC3339",
		},
		{
			name:      "date disagrees with timestamps",
			date:      "2024-06-02",
			start:     timezone.Format(time.Date(2024, time.June, 1, 9, 0, 0, 0, timezone.GetLocation()), time.RFC3339),
			end:       timezone.Format(time.Date(2024, time.June, 1, 11, 0, 0, 0, timezone.GetLocation()), time.RFC3339),
			wantError: "date must match the day of startTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := dto.ParseSlot(tt.date, tt.start, tt.end)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantError, err.Error())
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, slot.DayString())
			assert.True(t, slot.End.After(slot.Start))
			assert.Equal(t, time.UTC, slot.Day.Location())
		})
	}
}

func TestUpdateBookingRequest_Slot(t *testing.T) {
	loc := timezone.GetLocation()
	current := model.Booking{
		BookingDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   time.Date(2024, time.June, 1, 9, 0, 0, 0, loc),
		EndTime:     time.Date(2024, time.June, 1, 11, 0, 0, 0, loc),
	}

	t.Run("moving the date keeps the wall clock", func(t *testing.T) {
		req := dto.UpdateBookingRequest{Date: "2024-06-03"}

		slot, err := req.Slot(current)

		require.NoError(t, err)
		assert.Equal(t, "2024-06-03", slot.DayString())
		assert.Equal(t, "09:00", timezone.Format(slot.Start, "15:04"))
		assert.Equal(t, "11:00", timezone.Format(slot.End, "15:04"))
	})

	t.Run("changing the end time keeps the date", func(t *testing.T) {
		req := dto.UpdateBookingRequest{EndTime: "12:30"}

		slot, err := req.Slot(current)

		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", slot.DayString())
		assert.Equal(t, "12:30", timezone.Format(slot.End, "15:04"))
	})

	t.Run("end before the kept start", func(t *testing.T) {
		req := dto.UpdateBookingRequest{EndTime: "08:00"}

		_, err := req.Slot(current)

		assert.Error(t, err)
	})
}

func TestSeatAvailability_FromModel(t *testing.T) {
	seat := seatModel.Seat{ID: "s-1", LibraryID: "lib-1", Name: "A-1", IsAvailable: true}
	booking := model.Booking{
		ID:          "b-1",
		SeatID:      "s-1",
		BookingDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Status:      model.StatusConfirmed,
	}

	var free dto.SeatAvailability
	free.FromModel(seat, nil, "2024-06-01")

	assert.True(t, free.Available)
	assert.Empty(t, free.Bookings)

	var taken dto.SeatAvailability
	taken.FromModel(seat, []model.Booking{booking}, "2024-06-01")

	assert.False(t, taken.Available)
	require.Len(t, taken.Bookings, 1)
	assert.Equal(t, "b-1", taken.Bookings[0].ID)

	seat.IsAvailable = false

	var maintenance dto.SeatAvailability
	maintenance.FromModel(seat, nil, "2024-06-01")

	assert.False(t, maintenance.Available)
}

func TestBookingResponse_StatusSource(t *testing.T) {
	booking := model.Booking{
		ID:          "b-1",
		BookingDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Status:      model.StatusConfirmed,
	}

	var read dto.BookingResponse
	read.FromModel(booking, "2024-06-02")

	assert.Equal(t, model.StatusCompleted, read.Status)

	var written dto.BookingResponse
	written.FromStored(booking)

	assert.Equal(t, model.StatusConfirmed, written.Status)
	assert.Equal(t, "2024-06-01", written.Date)
}
