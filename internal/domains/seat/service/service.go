package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Seat=MockSeatService

import (
	"context"
	"fmt"

	"libraryhub/infras/otel"
	libraryModel "libraryhub/internal/domains/library/model"
	libraryRepo "libraryhub/internal/domains/library/repository"
	"libraryhub/internal/domains/seat/model"
	"libraryhub/internal/domains/seat/model/dto"
	"libraryhub/internal/domains/seat/repository"
	"libraryhub/shared"
	"libraryhub/shared/cache"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"
	"libraryhub/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Seat interface {
	Create(ctx context.Context, req dto.CreateSeatRequest) ([]dto.SeatResponse, error)
	GetByLibrary(ctx context.Context, libraryID string) ([]dto.SeatResponse, error)
	SetAvailability(ctx context.Context, id string, req dto.SetAvailabilityRequest) (dto.SeatResponse, error)
}

type serviceImpl struct {
	repo        repository.Seat
	libraryRepo libraryRepo.Library
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Seat, libraryRepo libraryRepo.Library, cache cache.RedisCache, otel otel.Otel) Seat {
	return &serviceImpl{
		repo:        repo,
		libraryRepo: libraryRepo,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) libraryExists(ctx context.Context, libraryID string) error {
	exist, err := s.libraryRepo.Exist(ctx, shared.FilterByID(libraryID, libraryModel.FieldID, libraryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check library")

		return fmt.Errorf("failed to check library: %w", err)
	}

	if !exist {
		return failure.NotFound("library not found") //nolint:wrapcheck
	}

	return nil
}

// Create adds seats to a library and grows its counters in the same transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSeatRequest) (res []dto.SeatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.libraryExists(ctx, req.LibraryID); err != nil {
		return nil, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	seats := req.ToModels(user)

	available := 0
	for _, seat := range seats {
		if seat.IsAvailable {
			available++
		}
	}

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertBulkTx(ctx, tx, seats); err != nil {
			return fmt.Errorf("failed to insert seats: %w", err)
		}

		return s.libraryRepo.AdjustSeatCountersTx(ctx, tx, req.LibraryID, len(seats), available) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("libraryId", req.LibraryID).Msg("failed to create seats")

		return nil, fmt.Errorf("failed to create seats: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyLibraryList)

	return dto.FromModels(seats), nil
}

func (s *serviceImpl) GetByLibrary(ctx context.Context, libraryID string) (res []dto.SeatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.GetByLibrary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.libraryExists(ctx, libraryID); err != nil {
		return nil, err
	}

	seats, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldName,
		SortDir: gDto.SortDirAsc,
	}, shared.FilterByID(libraryID, model.FieldLibraryID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get seats")

		return nil, fmt.Errorf("failed to get seats: %w", err)
	}

	return dto.FromModels(seats), nil
}

// SetAvailability toggles the maintenance flag and moves the library's available
// counter by one in the same direction.
func (s *serviceImpl) SetAvailability(ctx context.Context, id string, req dto.SetAvailabilityRequest) (res dto.SeatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.SetAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsAvailable == nil {
		return res, failure.BadRequestFromString("isAvailable is required") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		seat    model.Seat
		changed bool
	)

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		seat, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock seat: %w", err)
		}

		if seat.ID == constant.Empty {
			return failure.NotFound("seat not found") //nolint:wrapcheck
		}

		if seat.IsAvailable == *req.IsAvailable {
			return nil
		}

		now := timezone.Now()

		err = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldIsAvailable:   *req.IsAvailable,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to update seat: %w", err)
		}

		delta := -1
		if *req.IsAvailable {
			delta = 1
		}

		changed = true
		seat.IsAvailable = *req.IsAvailable
		seat.ModifiedAt = now
		seat.ModifiedBy = user

		return s.libraryRepo.AdjustSeatCountersTx(ctx, tx, seat.LibraryID, 0, delta) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("seatId", id).Msg("failed to set seat availability")

		return res, err
	}

	if changed {
		shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyLibraryList)
	}

	res.FromModel(seat)

	return res, nil
}
