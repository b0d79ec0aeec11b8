package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Library=MockLibraryService

import (
	"context"
	"fmt"

	"libraryhub/config"
	"libraryhub/infras/otel"
	"libraryhub/internal/domains/library/model"
	"libraryhub/internal/domains/library/model/dto"
	"libraryhub/internal/domains/library/repository"
	"libraryhub/shared"
	"libraryhub/shared/cache"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"
	"libraryhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Library interface {
	Create(ctx context.Context, req dto.CreateLibraryRequest) (dto.LibraryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetLibrariesResponse, error)
	Get(ctx context.Context, id string) (dto.LibraryResponse, error)
	RecountSeats(ctx context.Context, id string) (dto.LibraryResponse, error)
}

type serviceImpl struct {
	repo  repository.Library
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Library, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Library {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLibraryRequest) (res dto.LibraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".library.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	library := req.ToModel(user)
	if err = s.repo.Insert(ctx, library); err != nil {
		log.Error().Err(err).Msg("failed to create library")

		return res, fmt.Errorf("failed to create library: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyLibraryList)
	res.FromModel(library)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetLibrariesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".library.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.SortBy = model.TableName + "." + model.FieldName
	req.SortDir = gDto.SortDirAsc
	filter := gDto.FilterGroup{}

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheKeyLibraryList, req, filter)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for libraries")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count libraries")

		return res, fmt.Errorf("failed to count libraries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get libraries")

		return res, fmt.Errorf("failed to get libraries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save libraries to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.LibraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".library.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	library, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get library")

		return res, fmt.Errorf("failed to get library: %w", err)
	}

	if library.ID == constant.Empty {
		return res, failure.NotFound("library not found") //nolint:wrapcheck
	}

	res.FromModel(library)

	return res, nil
}

func (s *serviceImpl) RecountSeats(ctx context.Context, id string) (res dto.LibraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".library.RecountSeats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check library")

		return res, fmt.Errorf("failed to check library: %w", err)
	}

	if !exist {
		return res, failure.NotFound("library not found") //nolint:wrapcheck
	}

	if err = s.repo.RecountSeats(ctx, id, timezone.Today()); err != nil {
		log.Error().Err(err).Str("libraryId", id).Msg("failed to recount seats")

		return res, fmt.Errorf("failed to recount seats: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyLibraryList)

	return s.Get(ctx, id)
}
