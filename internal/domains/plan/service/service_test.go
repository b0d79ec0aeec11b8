package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"libraryhub/infras/otel/mocks"
	libraryMocks "libraryhub/internal/domains/library/mocks"
	planMocks "libraryhub/internal/domains/plan/mocks"
	"libraryhub/internal/domains/plan/model"
	"libraryhub/internal/domains/plan/model/dto"
	"libraryhub/internal/domains/plan/service"
	"libraryhub/shared/failure"
)

func TestPlanService_Create(t *testing.T) {
	req := dto.CreatePlanRequest{
		LibraryID:               "lib-1",
		Name:                    "Student",
		Price:                   9.5,
		DurationDays:            30,
		Features:                []string{"quiet zone"},
		AllowedBookingsPerMonth: 8,
	}

	tests := []struct {
		name      string
		setupMock func(repo *planMocks.MockPlan, libraryRepo *libraryMocks.MockLibrary)
		wantCode  int
	}{
		{
			name: "creates the plan",
			setupMock: func(repo *planMocks.MockPlan, libraryRepo *libraryMocks.MockLibrary) {
				libraryRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, plan model.Plan) error {
						assert.Equal(t, 8, plan.AllowedBookingsPerMonth)
						assert.True(t, plan.HasQuota())

						return nil
					})
			},
		},
		{
			name: "unknown library",
			setupMock: func(_ *planMocks.MockPlan, libraryRepo *libraryMocks.MockLibrary) {
				libraryRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := planMocks.NewMockPlan(ctrl)
			libraryRepo := libraryMocks.NewMockLibrary(ctrl)
			tt.setupMock(repo, libraryRepo)

			res, err := service.New(repo, libraryRepo, mocks.NewOtel()).Create(context.Background(), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Student", res.Name)
			assert.Equal(t, "lib-1", res.LibraryID)
		})
	}
}

func TestPlanService_GetByLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := planMocks.NewMockPlan(ctrl)
	libraryRepo := libraryMocks.NewMockLibrary(ctrl)

	libraryRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Plan{{ID: "plan-1", LibraryID: "lib-1", Name: "Basic"}, {ID: "plan-2", LibraryID: "lib-1", Name: "Premium"}}, nil)

	res, err := service.New(repo, libraryRepo, mocks.NewOtel()).GetByLibrary(context.Background(), "lib-1")

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Premium", res[1].Name)
}
