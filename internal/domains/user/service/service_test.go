package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"libraryhub/config"
	"libraryhub/infras/otel/mocks"
	planMocks "libraryhub/internal/domains/plan/mocks"
	planModel "libraryhub/internal/domains/plan/model"
	userMocks "libraryhub/internal/domains/user/mocks"
	"libraryhub/internal/domains/user/model"
	"libraryhub/internal/domains/user/model/dto"
	"libraryhub/internal/domains/user/service"
	"libraryhub/shared/cache"
	cacheMocks "libraryhub/shared/cache/mocks"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/failure"
	"libraryhub/shared/password"
)

type deps struct {
	repo     *userMocks.MockUser
	planRepo *planMocks.MockPlan
	cache    *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.User, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:     userMocks.NewMockUser(ctrl),
		planRepo: planMocks.NewMockPlan(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(d.repo, d.planRepo, cfg, d.cache, mocks.NewOtel()), d
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{Name: "Ada Reader", Email: "ada@example.com", Password: "password123"}

	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "stores a hashed password",
			setupMock: func(d deps) {
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				d.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.NoError(t, password.Verify(req.Password, user.Password))
						assert.Equal(t, constant.RoleMember, user.Role)
						assert.Equal(t, constant.ContextSystem, user.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "duplicate email",
			setupMock: func(d deps) {
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.Create(context.Background(), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, req.Email, res.Email)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("loads and caches the user", func(t *testing.T) {
		svc, d := newService(t)

		d.cache.EXPECT().Get(gomock.Any(), "user:get:user-1", gomock.Any()).Return(cache.Nil)
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1", Name: "Ada Reader"}, nil)
		d.cache.EXPECT().Save(gomock.Any(), "user:get:user-1", gomock.Any(), 60).Return(nil)

		res, err := svc.Get(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, "Ada Reader", res.Name)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, d := newService(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_AssignMembership(t *testing.T) {
	plan := planModel.Plan{ID: "plan-1", LibraryID: "lib-1", DurationDays: 30}

	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "sets plan and expiry",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
				d.planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(plan, nil)
				d.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "plan-1", fields[model.FieldMembershipPlanID])
						assert.Contains(t, fields, model.FieldMembershipExpiresAt)

						return nil
					})
				d.cache.EXPECT().Delete(gomock.Any(), "user:get:user-1").Return(nil)
			},
		},
		{
			name: "unknown user",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown plan",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
				d.planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(planModel.Plan{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "update failure",
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
				d.planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(plan, nil)
				d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.AssignMembership(context.Background(), "user-1", dto.AssignMembershipRequest{PlanID: "plan-1"})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			require.NotNil(t, res.MembershipPlanID)
			assert.Equal(t, "plan-1", *res.MembershipPlanID)
			assert.NotNil(t, res.MembershipExpiresAt)
		})
	}
}
