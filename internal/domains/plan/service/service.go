package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Plan=MockPlanService

import (
	"context"
	"fmt"

	"libraryhub/infras/otel"
	libraryModel "libraryhub/internal/domains/library/model"
	libraryRepo "libraryhub/internal/domains/library/repository"
	"libraryhub/internal/domains/plan/model"
	"libraryhub/internal/domains/plan/model/dto"
	"libraryhub/internal/domains/plan/repository"
	"libraryhub/shared"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"

	"github.com/rs/zerolog/log"
)

type Plan interface {
	Create(ctx context.Context, req dto.CreatePlanRequest) (dto.PlanResponse, error)
	GetByLibrary(ctx context.Context, libraryID string) ([]dto.PlanResponse, error)
}

type serviceImpl struct {
	repo        repository.Plan
	libraryRepo libraryRepo.Library
	otel        otel.Otel
}

func New(repo repository.Plan, libraryRepo libraryRepo.Library, otel otel.Otel) Plan {
	return &serviceImpl{
		repo:        repo,
		libraryRepo: libraryRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) ensureLibrary(ctx context.Context, libraryID string) error {
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

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePlanRequest) (res dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".plan.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureLibrary(ctx, req.LibraryID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	plan := req.ToModel(user)
	if err = s.repo.Insert(ctx, plan); err != nil {
		log.Error().Err(err).Msg("failed to create membership plan")

		return res, fmt.Errorf("failed to create membership plan: %w", err)
	}

	res.FromModel(plan)

	return res, nil
}

func (s *serviceImpl) GetByLibrary(ctx context.Context, libraryID string) (res []dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".plan.GetByLibrary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureLibrary(ctx, libraryID); err != nil {
		return nil, err
	}

	plans, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.TableName + ".price",
		SortDir: gDto.SortDirAsc,
	}, shared.FilterByID(libraryID, model.FieldLibraryID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get membership plans")

		return nil, fmt.Errorf("failed to get membership plans: %w", err)
	}

	return dto.FromModels(plans), nil
}
