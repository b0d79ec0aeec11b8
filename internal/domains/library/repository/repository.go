package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"libraryhub/infras/otel"
	"libraryhub/infras/postgres"
	"libraryhub/internal/domains/library/model"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/logger"
	gRepo "libraryhub/shared/repository"
	"libraryhub/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const (
	queryAdjustSeatCounters = `UPDATE libraries SET
		total_seats = GREATEST(total_seats + :total_delta, 0),
		available_seats = LEAST(GREATEST(available_seats + :available_delta, 0), GREATEST(total_seats + :total_delta, 0)),
		modified_at = :modified_at
	WHERE id = :id`

	queryRecountSeats = `UPDATE libraries SET
		total_seats = (SELECT COUNT(1) FROM seats WHERE seats.library_id = libraries.id),
		available_seats = GREATEST(
			(SELECT COUNT(1) FROM seats WHERE seats.library_id = libraries.id AND seats.is_available)
			- (SELECT COUNT(1) FROM bookings WHERE bookings.library_id = libraries.id
				AND bookings.status IN ('pending', 'confirmed') AND bookings.booking_date >= :today),
			0),
		modified_at = :modified_at
	WHERE id = :id`
)

type Library interface {
	Insert(ctx context.Context, library model.Library) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Library, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Library, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	AdjustSeatCountersTx(ctx context.Context, tx *sqlx.Tx, id string, totalDelta, availableDelta int) error
	RecountSeats(ctx context.Context, id string, today string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Library]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Library {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Library](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// AdjustSeatCountersTx shifts both seat counters by the given deltas. The available
// counter is clamped to [0, total_seats] so repeated cancels never overflow it.
func (r *repositoryImpl) AdjustSeatCountersTx(ctx context.Context, tx *sqlx.Tx, id string, totalDelta, availableDelta int) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".library.AdjustSeatCountersTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAdjustSeatCounters)

	_, err := tx.NamedExecContext(ctx, queryAdjustSeatCounters, map[string]any{
		"id":              id,
		"total_delta":     totalDelta,
		"available_delta": availableDelta,
		"modified_at":     timezone.Now(),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to adjust seat counters (%s): %w", model.EntityName, err)
	}

	return nil
}

// RecountSeats rebuilds both counters from the seats table and the active bookings
// dated today or later.
func (r *repositoryImpl) RecountSeats(ctx context.Context, id string, today string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".library.RecountSeats")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRecountSeats)

	_, err := r.db.Write.NamedExecContext(ctx, queryRecountSeats, map[string]any{
		"id":          id,
		"today":       today,
		"modified_at": timezone.Now(),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to recount seats (%s): %w", model.EntityName, err)
	}

	return nil
}
