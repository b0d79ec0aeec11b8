package booking_test

import (
	"encoding/json"
	"errors"
	"libraryhub/infras/otel/mocks"
	bookingMocks "libraryhub/internal/domains/booking/mocks"
	"libraryhub/internal/domains/booking/model/dto"
	"libraryhub/internal/handlers/booking"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *bookingMocks.MockBookingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(service, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func serve(router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)

	return rec, payload
}

func TestHandler_CreateBooking(t *testing.T) {
	validBody := `{"userId":"user-1","seatId":"seat-1","date":"2026-03-15","startTime":"09:00","endTime":"11:00"}`

	tests := []struct {
		name        string
		body        string
		setupMock   func(service *bookingMocks.MockBookingService)
		wantCode    int
		wantMessage string
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().Create(gomock.Any(), dto.CreateBookingRequest{
					UserID:    "user-1",
					SeatID:    "seat-1",
					Date:      "2026-03-15",
					StartTime: "09:00",
					EndTime:   "11:00",
				}).Return(dto.BookingResponse{ID: "b-1", UserID: "user-1", Status: "confirmed"}, nil)
			},
			wantCode:    http.StatusCreated,
			wantMessage: "Booking created successfully",
		},
		{
			name:        "malformed json",
			body:        `{"userId":`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "failed to decode request body: unexpected EOF",
		},
		{
			name:     "missing user",
			body:     `{"seatId":"seat-1","date":"2026-03-15","startTime":"09:00","endTime":"11:00"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "seat already booked",
			body: validBody,
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.Conflict("seat already booked for this date"))
			},
			wantCode:    http.StatusConflict,
			wantMessage: "seat already booked for this date",
		},
		{
			name: "quota exceeded",
			body: validBody,
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.Forbidden("monthly booking quota exceeded"))
			},
			wantCode:    http.StatusForbidden,
			wantMessage: "monthly booking quota exceeded",
		},
		{
			name: "unexpected failure is hidden",
			body: validBody,
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.InternalError(errors.New("pq: connection reset")))
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(service)
			}

			rec, payload := serve(router, http.MethodPost, "/booking/create", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, payload["message"])
			}

			if tt.wantCode == http.StatusCreated {
				created, ok := payload["booking"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "b-1", created["id"])
			}
		})
	}
}

func TestHandler_GetBookings(t *testing.T) {
	t.Run("full set without pagination", func(t *testing.T) {
		router, service := newRouter(t)
		service.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}).Return(dto.BookingList{
			Bookings: []dto.BookingResponse{{ID: "b-1"}, {ID: "b-2"}},
		}, nil)

		rec, payload := serve(router, http.MethodGet, "/booking/getAll", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, payload["bookings"], 2)
		assert.NotContains(t, payload, "pagination")
	})

	t.Run("paginated", func(t *testing.T) {
		router, service := newRouter(t)
		service.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 100}).Return(dto.BookingList{
			Bookings:   []dto.BookingResponse{{ID: "b-101"}},
			Pagination: &dto.Pagination{Page: 2, Limit: 100, TotalData: 101, TotalPage: 2},
		}, nil)

		rec, payload := serve(router, http.MethodGet, "/booking/getAll?page=2&limit=500", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		pagination, ok := payload["pagination"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 101, pagination["total_data"], 0)
		assert.InDelta(t, 2, pagination["total_page"], 0)
	})
}

func TestHandler_Lookups(t *testing.T) {
	list := dto.BookingList{Bookings: []dto.BookingResponse{{ID: "b-1"}}}

	tests := []struct {
		name      string
		target    string
		setupMock func(service *bookingMocks.MockBookingService)
		wantCode  int
	}{
		{
			name:   "by user",
			target: "/booking/getByUserId/user-1",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().GetByUserID(gomock.Any(), "user-1", gDto.QueryParams{}).Return(list, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "unknown user",
			target: "/booking/getByUserId/ghost",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().GetByUserID(gomock.Any(), "ghost", gDto.QueryParams{}).
					Return(dto.BookingList{}, failure.NotFound("user not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "by room",
			target: "/booking/getByRoomId/seat-1",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().GetByRoomID(gomock.Any(), "seat-1", gDto.QueryParams{}).Return(list, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "by date",
			target: "/booking/getByDate/2026-03-15",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().GetByDate(gomock.Any(), "2026-03-15", gDto.QueryParams{}).Return(list, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "by date range",
			target: "/booking/getByDateRange?startDate=2026-03-01&endDate=2026-03-31",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().GetByDateRange(gomock.Any(), "2026-03-01", "2026-03-31", gDto.QueryParams{}).Return(list, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "date range without end",
			target: "/booking/getByDateRange?startDate=2026-03-01",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().GetByDateRange(gomock.Any(), "2026-03-01", "", gDto.QueryParams{}).
					Return(dto.BookingList{}, failure.BadRequestFromString("startDate and endDate are required"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "by status",
			target: "/booking/getByStatus/completed",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().GetByStatus(gomock.Any(), "completed", gDto.QueryParams{}).Return(list, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "by library",
			target: "/booking/getByLibrary/lib-1?limit=10",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().GetByLibrary(gomock.Any(), "lib-1", gDto.QueryParams{Limit: 10}).Return(list, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "by id",
			target: "/booking/getById/b-1",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().Get(gomock.Any(), "b-1").Return(dto.BookingResponse{ID: "b-1"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "unknown id",
			target: "/booking/getById/missing",
			setupMock: func(service *bookingMocks.MockBookingService) {
				service.EXPECT().Get(gomock.Any(), "missing").Return(dto.BookingResponse{}, failure.NotFound("booking not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			rec, _ := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_UpdateBooking(t *testing.T) {
	router, service := newRouter(t)
	service.EXPECT().Update(gomock.Any(), "b-1", dto.UpdateBookingRequest{Date: "2026-03-16"}).
		Return(dto.BookingResponse{ID: "b-1", Date: "2026-03-16"}, nil)

	rec, payload := serve(router, http.MethodPut, "/booking/update/b-1", `{"date":"2026-03-16"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking updated successfully", payload["message"])
}

func TestHandler_UpdateBooking_InvalidStatus(t *testing.T) {
	router, _ := newRouter(t)

	rec, _ := serve(router, http.MethodPut, "/booking/update/b-1", `{"status":"completed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		router, service := newRouter(t)
		service.EXPECT().Cancel(gomock.Any(), "b-1").Return(dto.BookingResponse{ID: "b-1", Status: "cancelled"}, nil)

		rec, payload := serve(router, http.MethodPost, "/booking/cancel/b-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)

		cancelled, ok := payload["booking"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "cancelled", cancelled["status"])
	})

	t.Run("already cancelled", func(t *testing.T) {
		router, service := newRouter(t)
		service.EXPECT().Cancel(gomock.Any(), "b-1").Return(dto.BookingResponse{}, failure.Conflict("booking is already cancelled"))

		rec, _ := serve(router, http.MethodPost, "/booking/cancel/b-1", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_DeleteBooking(t *testing.T) {
	router, service := newRouter(t)
	service.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

	rec, payload := serve(router, http.MethodDelete, "/booking/delete/b-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking deleted successfully", payload["message"])
}

func TestHandler_ExportBookings(t *testing.T) {
	router, service := newRouter(t)
	service.EXPECT().Export(gomock.Any(), "lib-1", "2026-03-01", "2026-03-31").
		Return(dto.ExportResponse{URL: "https://cdn.example.com/exports/bookings/lib-1.json", Count: 3}, nil)

	rec, payload := serve(router, http.MethodGet, "/booking/export?libraryId=lib-1&startDate=2026-03-01&endDate=2026-03-31", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bookings exported successfully", payload["message"])
	assert.Equal(t, "https://cdn.example.com/exports/bookings/lib-1.json", payload["url"])
}
