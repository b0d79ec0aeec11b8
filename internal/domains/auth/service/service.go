package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"fmt"

	"libraryhub/infras/jwt"
	"libraryhub/infras/otel"
	"libraryhub/internal/domains/auth/model/dto"
	userModel "libraryhub/internal/domains/user/model"
	userDto "libraryhub/internal/domains/user/model/dto"
	userRepo "libraryhub/internal/domains/user/repository"
	userService "libraryhub/internal/domains/user/service"
	"libraryhub/shared"
	"libraryhub/shared/constant"
	"libraryhub/shared/failure"
	"libraryhub/shared/password"
	"libraryhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Login answers unknown email and wrong password alike.
const errInvalidCredentials = "invalid email or password"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (userDto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	Me(ctx context.Context) (userDto.UserResponse, error)
}

type serviceImpl struct {
	users userRepo.User
	otel  otel.Otel
	jwt   jwt.JWT
}

func New(users userRepo.User, ot otel.Otel, tokens jwt.JWT) Auth {
	return &serviceImpl{users: users, otel: ot, jwt: tokens}
}

func (s *serviceImpl) scope(ctx context.Context, method string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth."+method)
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.scope(ctx, "Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	taken, err := s.users.Exist(ctx, userService.EmailFilter(req.Email))
	if err != nil {
		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if taken {
		return res, failure.Conflict("email already registered") //nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(constant.ContextGuest, hash)

	if err = s.users.Insert(ctx, user); err != nil {
		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("member registered")

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.scope(ctx, "Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.users.Get(ctx, userService.EmailFilter(req.Email))
	if err != nil {
		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty || password.Verify(req.Password, user.Password) != nil {
		log.Warn().Str("email", req.Email).Msg("rejected login")

		return res, failure.Unauthorized(errInvalidCredentials) //nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated") //nolint:wrapcheck
	}

	pair, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.touchLastLogin(ctx, user.ID)

	res.FromTokenPair(pair)

	return res, nil
}

// touchLastLogin is best effort; a failed write must not fail the login.
func (s *serviceImpl) touchLastLogin(ctx context.Context, userID string) {
	now := timezone.Now()

	err := s.users.Update(ctx, map[string]any{
		userModel.FieldLastLogin: now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: userID,
	}, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to record last login")
	}
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	_, scope := s.scope(ctx, "RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("rejected refresh token")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(pair)

	return res, nil
}

// Me loads the account behind the access token the auth middleware accepted.
func (s *serviceImpl) Me(ctx context.Context) (res userDto.UserResponse, err error) {
	ctx, scope := s.scope(ctx, "Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("missing authenticated user") //nolint:wrapcheck
	}

	user, err := s.users.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}
