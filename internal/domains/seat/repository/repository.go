package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"libraryhub/infras/otel"
	"libraryhub/infras/postgres"
	"libraryhub/internal/domains/seat/model"
	gDto "libraryhub/shared/dto"
	gRepo "libraryhub/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Seat interface {
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, seats []model.Seat) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Seat, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Seat, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Seat, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Seat]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Seat {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Seat](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
