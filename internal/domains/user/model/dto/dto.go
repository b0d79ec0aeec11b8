package dto

import (
	"time"

	"libraryhub/internal/domains/user/model"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	gModel "libraryhub/shared/model"
	"libraryhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=member admin superadmin"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleMember
	}

	return model.User{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		Active:   true,
		Metadata: gModel.NewMetadata(username, timezone.Now()),
	}
}

type AssignMembershipRequest struct {
	PlanID string `json:"planId" validate:"required,uuid"`
}

type UserResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Role                string  `json:"role"`
	MembershipPlanID    *string `json:"membershipPlanId,omitempty"`
	MembershipExpiresAt *string `json:"membershipExpiresAt,omitempty"`
	LastLogin           *string `json:"lastLogin,omitempty"`
	Active              bool    `json:"active"`
	gDto.Metadata
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Name = user.Name
	r.Email = user.Email
	r.Role = user.Role
	r.MembershipPlanID = user.MembershipPlanID
	r.MembershipExpiresAt = formatOptional(user.MembershipExpiresAt)
	r.LastLogin = formatOptional(user.LastLogin)
	r.Active = user.Active
	r.Metadata.FromModel(user.Metadata)
}
