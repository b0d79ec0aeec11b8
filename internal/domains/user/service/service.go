package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"
	"time"

	"libraryhub/config"
	"libraryhub/infras/otel"
	planModel "libraryhub/internal/domains/plan/model"
	planRepo "libraryhub/internal/domains/plan/repository"
	"libraryhub/internal/domains/user/model"
	"libraryhub/internal/domains/user/model/dto"
	"libraryhub/internal/domains/user/repository"
	"libraryhub/shared"
	"libraryhub/shared/cache"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"
	"libraryhub/shared/password"
	"libraryhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser = "user:get"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	AssignMembership(ctx context.Context, id string, req dto.AssignMembershipRequest) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo     repository.User
	planRepo planRepo.Plan
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.User, planRepo planRepo.Plan, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:     repo,
		planRepo: planRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// EmailFilter matches a user by email address.
func EmailFilter(email string) gDto.FilterGroup {
	return gDto.And(gDto.Filter{
		Field:    model.FieldEmail,
		Operator: gDto.FilterOperatorEq,
		Value:    email,
		Table:    model.TableName,
	})
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		actor = constant.ContextSystem
	}

	exists, err := s.repo.Exist(ctx, EmailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(actor, hashedPassword)
	if err = s.repo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	res.FromModel(user)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save user to cache")
	}

	return res, nil
}

// AssignMembership attaches a plan to the user. The membership runs for the plan's
// duration starting now and replaces any previous plan.
func (s *serviceImpl) AssignMembership(ctx context.Context, id string, req dto.AssignMembershipRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.AssignMembership")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	plan, err := s.planRepo.Get(ctx, shared.FilterByID(req.PlanID, planModel.FieldID, planModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get membership plan")

		return res, fmt.Errorf("failed to get membership plan: %w", err)
	}

	if plan.ID == constant.Empty {
		return res, failure.NotFound("membership plan not found") //nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	expiresAt := timezone.Now().AddDate(0, 0, plan.DurationDays)

	fields := shared.TransformFields(model.MembershipUpdate{
		PlanID:    plan.ID,
		ExpiresAt: expiresAt,
	}, actor)

	err = s.repo.Update(ctx, fields, filter)
	if err != nil {
		log.Error().Err(err).Str("userId", id).Msg("failed to assign membership")

		return res, fmt.Errorf("failed to assign membership: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
		log.Error().Err(err).Msg("failed to invalidate user cache")
	}

	user.MembershipPlanID = &plan.ID
	user.MembershipExpiresAt = &expiresAt
	user.ModifiedAt, _ = fields[constant.FieldModifiedAt].(time.Time)
	user.ModifiedBy = actor
	res.FromModel(user)

	return res, nil
}
