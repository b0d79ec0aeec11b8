package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"libraryhub/config"
	kafkaMocks "libraryhub/infras/kafka/mocks"
	"libraryhub/infras/otel/mocks"
	s3Mocks "libraryhub/infras/s3/mocks"
	bookingMocks "libraryhub/internal/domains/booking/mocks"
	"libraryhub/internal/domains/booking/model"
	"libraryhub/internal/domains/booking/service"
	libraryMocks "libraryhub/internal/domains/library/mocks"
	seatMocks "libraryhub/internal/domains/seat/mocks"
	seatModel "libraryhub/internal/domains/seat/model"
	userMocks "libraryhub/internal/domains/user/mocks"
	userModel "libraryhub/internal/domains/user/model"
	"libraryhub/shared/cache"
	cacheMocks "libraryhub/shared/cache/mocks"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"
	"libraryhub/shared/timezone"
)

const (
	libraryID = "lib-1"
	userID    = "user-1"
)

type fixture struct {
	repo        *bookingMocks.MockBooking
	gate        *bookingMocks.MockGate
	seatRepo    *seatMocks.MockSeat
	libraryRepo *libraryMocks.MockLibrary
	userRepo    *userMocks.MockUser
	cache       *cacheMocks.MockRedisCache
	kafka       *kafkaMocks.MockClient
	s3          *s3Mocks.MockS3
	svc         service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Kafka.Topics.Booking = "libraryhub.booking"
	cfg.Booking.ExportDirectory = "exports/bookings"

	f := &fixture{
		repo:        bookingMocks.NewMockBooking(ctrl),
		gate:        bookingMocks.NewMockGate(ctrl),
		seatRepo:    seatMocks.NewMockSeat(ctrl),
		libraryRepo: libraryMocks.NewMockLibrary(ctrl),
		userRepo:    userMocks.NewMockUser(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.repo, f.seatRepo, f.libraryRepo, f.userRepo, f.gate, cfg, f.cache, f.kafka, f.s3, mocks.NewOtel())

	return f
}

// inTx runs the transaction body against a nil tx, which the mocked repositories accept.
func (f *fixture) inTx() {
	f.repo.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func (f *fixture) libraryExists(exist bool) {
	f.libraryRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(exist, nil)
}

// written expects the cache invalidation and event that follow every committed write.
func (f *fixture) written() {
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.kafka.EXPECT().SendMessages(gomock.Any(), "libraryhub.booking", gomock.Any()).Return(nil)
}

func (f *fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil)
}

func dayFromToday(days int) time.Time {
	now := timezone.Now().AddDate(0, 0, days)

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func dayString(days int) string {
	return dayFromToday(days).Format(constant.DayFormat)
}

func newBooking(id, seatID string, days int, status string) model.Booking {
	day := dayFromToday(days)
	start, _ := timezone.Parse("2006-01-02 15:04", day.Format(constant.DayFormat)+" 09:00")

	return model.Booking{
		ID:          id,
		UserID:      userID,
		SeatID:      seatID,
		LibraryID:   libraryID,
		BookingDate: day,
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		Status:      status,
	}
}

func newSeat(id string, available bool) seatModel.Seat {
	return seatModel.Seat{ID: id, LibraryID: libraryID, Name: id, Type: seatModel.TypeRegular, IsAvailable: available}
}

func member() userModel.User {
	return userModel.User{ID: userID, Name: "Ada Reader", Email: "ada@example.com", Role: constant.RoleMember, Active: true}
}

// where renders a filter group the way the repository would.
func where(filter gDto.FilterGroup) (string, map[string]any) {
	return filter.GetWhereClause()
}

func assertCode(t *testing.T, wantCode int, err error) {
	t.Helper()

	if wantCode == 0 {
		require.NoError(t, err)

		return
	}

	require.Error(t, err)
	assert.Equal(t, wantCode, failure.GetCode(err), err.Error())
}
