package library_test

import (
	"encoding/json"
	otelMocks "libraryhub/infras/otel/mocks"
	bookingMocks "libraryhub/internal/domains/booking/mocks"
	bookingDto "libraryhub/internal/domains/booking/model/dto"
	"libraryhub/internal/domains/library/mocks"
	"libraryhub/internal/domains/library/model/dto"
	seatDto "libraryhub/internal/domains/seat/model/dto"
	"libraryhub/internal/handlers/library"
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

type fixture struct {
	router  *chi.Mux
	service *mocks.MockLibraryService
	booking *bookingMocks.MockBookingService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		router:  chi.NewRouter(),
		service: mocks.NewMockLibraryService(ctrl),
		booking: bookingMocks.NewMockBookingService(ctrl),
	}

	handler := library.New(f.service, f.booking, otelMocks.NewOtel())
	handler.Router(f.router)

	return f
}

func (f fixture) serve(method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var payload map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)

	return rec, payload
}

func TestHandler_CreateLibrary(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"name":"Central","address":"1 Main St"}`,
			setupMock: func(f fixture) {
				f.service.EXPECT().Create(gomock.Any(), dto.CreateLibraryRequest{Name: "Central", Address: "1 Main St"}).
					Return(dto.LibraryResponse{ID: "lib-1", Name: "Central"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing address",
			body:     `{"name":"Central"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown status",
			body:     `{"name":"Central","address":"1 Main St","status":"closed"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			rec, _ := f.serve(http.MethodPost, "/library/create", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetLibraries(t *testing.T) {
	f := newFixture(t)
	f.service.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}).Return(dto.GetLibrariesResponse{
		Libraries: []dto.LibraryResponse{{ID: "lib-1"}},
		TotalData: 1,
		TotalPage: 1,
	}, nil)

	rec, payload := f.serve(http.MethodGet, "/library/getAll", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, payload["libraries"], 1)

	pagination, ok := payload["pagination"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 10, pagination["limit"], 0)
}

func TestHandler_GetLibraryByID_NotFound(t *testing.T) {
	f := newFixture(t)
	f.service.EXPECT().Get(gomock.Any(), "missing").Return(dto.LibraryResponse{}, failure.NotFound("library not found"))

	rec, payload := f.serve(http.MethodGet, "/library/getById/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "library not found", payload["message"])
}

func TestHandler_GetAvailableSeats(t *testing.T) {
	free := bookingDto.SeatAvailability{SeatResponse: seatDto.SeatResponse{ID: "seat-1"}, Available: true}
	taken := bookingDto.SeatAvailability{SeatResponse: seatDto.SeatResponse{ID: "seat-2"}}

	tests := []struct {
		name      string
		target    string
		setupMock func(f fixture)
		wantCode  int
		wantSeats int
	}{
		{
			name:   "free seats only",
			target: "/library/getAvailableSeats/lib-1?date=2026-03-15",
			setupMock: func(f fixture) {
				f.booking.EXPECT().GetAvailableSeats(gomock.Any(), "lib-1", "2026-03-15").
					Return([]bookingDto.SeatAvailability{free}, nil)
			},
			wantCode:  http.StatusOK,
			wantSeats: 1,
		},
		{
			name:   "every seat annotated",
			target: "/library/getAvailableSeats/lib-1?date=2026-03-15&all=true",
			setupMock: func(f fixture) {
				f.booking.EXPECT().GetSeatAvailability(gomock.Any(), "lib-1", "2026-03-15").
					Return([]bookingDto.SeatAvailability{free, taken}, nil)
			},
			wantCode:  http.StatusOK,
			wantSeats: 2,
		},
		{
			name:   "malformed date",
			target: "/library/getAvailableSeats/lib-1?date=15-03-2026",
			setupMock: func(f fixture) {
				f.booking.EXPECT().GetAvailableSeats(gomock.Any(), "lib-1", "15-03-2026").
					Return(nil, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			rec, payload := f.serve(http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Len(t, payload["seats"], tt.wantSeats)
			}
		})
	}
}

func TestHandler_RecountSeats(t *testing.T) {
	f := newFixture(t)
	f.service.EXPECT().RecountSeats(gomock.Any(), "lib-1").
		Return(dto.LibraryResponse{ID: "lib-1", TotalSeats: 4, AvailableSeats: 3}, nil)

	rec, payload := f.serve(http.MethodPost, "/library/recount/lib-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	recounted, ok := payload["library"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 3, recounted["availableSeats"], 0)
}
