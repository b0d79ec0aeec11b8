package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"libraryhub/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("date is required")), wantCode: http.StatusBadRequest, wantMsg: "date is required"},
		{name: "bad request from string", err: failure.BadRequestFromString("startDate must not be after endDate"), wantCode: http.StatusBadRequest, wantMsg: "startDate must not be after endDate"},
		{name: "unauthorized", err: failure.Unauthorized("Invalid token claims"), wantCode: http.StatusUnauthorized, wantMsg: "Invalid token claims"},
		{name: "forbidden", err: failure.Forbidden("monthly booking quota exceeded"), wantCode: http.StatusForbidden, wantMsg: "monthly booking quota exceeded"},
		{name: "not found", err: failure.NotFound("seat not found"), wantCode: http.StatusNotFound, wantMsg: "seat not found"},
		{name: "conflict", err: failure.Conflict("seat already booked for this date"), wantCode: http.StatusConflict, wantMsg: "seat already booked for this date"},
		{name: "internal", err: failure.InternalError(errors.New("pq: connection reset")), wantCode: http.StatusInternalServerError, wantMsg: "pq: connection reset"},
		{name: "forbidden sentinel", err: failure.ForbiddenError, wantCode: http.StatusForbidden, wantMsg: "You don't have the required permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "direct failure", err: failure.NotFound("library not found"), want: http.StatusNotFound},
		{name: "wrapped once", err: fmt.Errorf("create booking: %w", failure.Conflict("seat unavailable")), want: http.StatusConflict},
		{
			name: "wrapped twice",
			err:  fmt.Errorf("handler: %w", fmt.Errorf("service: %w", failure.Forbidden("quota"))),
			want: http.StatusForbidden,
		},
		{name: "joined", err: errors.Join(errors.New("rollback failed"), failure.BadRequestFromString("bad")), want: http.StatusBadRequest},
		{name: "plain error", err: errors.New("driver: bad connection"), want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestFailureMatchesWithErrorsAs(t *testing.T) {
	err := fmt.Errorf("cancel booking: %w", failure.Conflict("booking already cancelled"))

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, http.StatusConflict, fail.Code)
	assert.Equal(t, "booking already cancelled", fail.Message)
}
