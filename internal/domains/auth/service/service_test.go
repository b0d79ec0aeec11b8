package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"libraryhub/infras/jwt"
	jwtMocks "libraryhub/infras/jwt/mocks"
	"libraryhub/infras/otel/mocks"
	"libraryhub/internal/domains/auth/model/dto"
	"libraryhub/internal/domains/auth/service"
	userMocks "libraryhub/internal/domains/user/mocks"
	userModel "libraryhub/internal/domains/user/model"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"
	gModel "libraryhub/shared/model"
	"libraryhub/shared/password"
	"libraryhub/shared/timezone"
)

type fixture struct {
	users *userMocks.MockUser
	jwt   *jwtMocks.MockJWT
	svc   service.Auth
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		users: userMocks.NewMockUser(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.users, mocks.NewOtel(), f.jwt)

	return f
}

func member(t *testing.T, plain string) userModel.User {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return userModel.User{
		ID:       "user-1",
		Name:     "Ada Reader",
		Email:    "ada@example.com",
		Password: hash,
		Role:     constant.RoleMember,
		Active:   true,
		Metadata: gModel.NewMetadata(constant.ContextSystem, timezone.Now()),
	}
}

func assertCode(t *testing.T, wantCode int, err error) {
	t.Helper()

	if wantCode == 0 {
		require.NoError(t, err)

		return
	}

	require.Error(t, err)
	assert.Equal(t, wantCode, failure.GetCode(err))
}

func TestAuth_Register(t *testing.T) {
	req := dto.RegisterRequest{Name: "Ada Reader", Email: "ada@example.com", Password: "password123"}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "registers a member with a hashed password",
			setupMock: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RoleMember, user.Role)
						assert.NoError(t, password.Verify(req.Password, user.Password))

						return nil
					})
			},
		},
		{
			name: "email taken",
			setupMock: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "lookup fails",
			setupMock: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "insert fails",
			setupMock: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Register(context.Background(), req)

			assertCode(t, tt.wantCode, err)

			if tt.wantCode == 0 {
				assert.Equal(t, req.Email, res.Email)
				assert.Equal(t, constant.RoleMember, res.Role)
			}
		})
	}
}

func TestAuth_Login(t *testing.T) {
	pair := &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}

	tests := []struct {
		name      string
		password  string
		setupMock func(f *fixture, user userModel.User)
		wantCode  int
	}{
		{
			name:     "issues a token pair",
			password: "correct horse",
			setupMock: func(f *fixture, user userModel.User) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.jwt.EXPECT().GenerateTokenPair(user.ID, user.Email, user.Role).Return(pair, nil)
				f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, userModel.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name:     "last login write failure is ignored",
			password: "correct horse",
			setupMock: func(f *fixture, user userModel.User) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(pair, nil)
				f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("replica lag"))
			},
		},
		{
			name:     "unknown email",
			password: "correct horse",
			setupMock: func(f *fixture, _ userModel.User) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong password",
			password: "battery staple",
			setupMock: func(f *fixture, user userModel.User) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "deactivated account",
			password: "correct horse",
			setupMock: func(f *fixture, user userModel.User) {
				user.Active = false
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "signing fails",
			password: "correct horse",
			setupMock: func(f *fixture, user userModel.User) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("no key"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f, member(t, "correct horse"))

			res, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: tt.password})

			assertCode(t, tt.wantCode, err)

			if tt.wantCode == 0 {
				assert.Equal(t, "access", res.AccessToken)
				assert.Equal(t, int64(900), res.ExpiresIn)
			}
		})
	}
}

func TestAuth_RefreshToken(t *testing.T) {
	t.Run("rotates the pair", func(t *testing.T) {
		f := newFixture(t)
		f.jwt.EXPECT().RefreshTokens("refresh").Return(&jwt.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "refresh-2", res.RefreshToken)
	})

	t.Run("rejected token is unauthorized", func(t *testing.T) {
		f := newFixture(t)
		f.jwt.EXPECT().RefreshTokens("stale").Return(nil, jwt.ErrExpiredToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "stale"})

		assertCode(t, http.StatusUnauthorized, err)
	})
}

func TestAuth_Me(t *testing.T) {
	signedIn := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(f *fixture, user userModel.User)
		wantCode  int
	}{
		{
			name: "returns the caller",
			ctx:  signedIn,
			setupMock: func(f *fixture, user userModel.User) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
		},
		{
			name:     "no user in context",
			ctx:      context.Background(),
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "account removed",
			ctx:  signedIn,
			setupMock: func(f *fixture, _ userModel.User) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f, member(t, "correct horse"))
			}

			res, err := f.svc.Me(tt.ctx)

			assertCode(t, tt.wantCode, err)

			if tt.wantCode == 0 {
				assert.Equal(t, "user-1", res.ID)
			}
		})
	}
}
