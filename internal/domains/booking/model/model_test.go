package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"libraryhub/internal/domains/booking/model"
)

func TestBooking_EffectiveStatus(t *testing.T) {
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status string
		today  string
		want   string
	}{
		{name: "confirmed in the future", status: model.StatusConfirmed, today: "2024-05-31", want: model.StatusConfirmed},
		{name: "confirmed today", status: model.StatusConfirmed, today: "2024-06-01", want: model.StatusConfirmed},
		{name: "confirmed in the past", status: model.StatusConfirmed, today: "2024-06-02", want: model.StatusCompleted},
		{name: "cancelled in the past", status: model.StatusCancelled, today: "2024-06-02", want: model.StatusCancelled},
		{name: "pending in the past", status: model.StatusPending, today: "2024-06-02", want: model.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{BookingDate: day, Status: tt.status}

			assert.Equal(t, tt.want, booking.EffectiveStatus(tt.today))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, model.Booking{Status: model.StatusPending}.IsActive())
	assert.True(t, model.Booking{Status: model.StatusConfirmed}.IsActive())
	assert.False(t, model.Booking{Status: model.StatusCancelled}.IsActive())
}
