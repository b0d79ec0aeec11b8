package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"libraryhub/infras/jwt"
	"libraryhub/internal/domains/auth/model/dto"
	"libraryhub/shared/constant"
)

func TestTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.TokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Ada Reader",
		Email:    "ada@example.com",
		Password: "plain-text",
	}

	user := req.ToUserModel(constant.ContextGuest, "hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ada Reader", user.Name)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, constant.RoleMember, user.Role)
	assert.True(t, user.Active)
	assert.Nil(t, user.MembershipPlanID)
	assert.Equal(t, constant.ContextGuest, user.CreatedBy)
}
