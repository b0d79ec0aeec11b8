package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"libraryhub/infras/otel"
	"libraryhub/infras/postgres"
	"libraryhub/internal/domains/plan/model"
	gDto "libraryhub/shared/dto"
	gRepo "libraryhub/shared/repository"
)

type Plan interface {
	Insert(ctx context.Context, plan model.Plan) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Plan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Plan, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Plan]
}

func New(db *postgres.Connection, otel otel.Otel) Plan {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Plan](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
