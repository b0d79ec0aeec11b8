package model

import (
	"time"

	"libraryhub/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                  = "id"
	FieldName                = "name"
	FieldEmail               = "email"
	FieldPassword            = "password"
	FieldRole                = "role"
	FieldMembershipPlanID    = "membership_plan_id"
	FieldMembershipExpiresAt = "membership_expires_at"
	FieldLastLogin           = "last_login"
	FieldActive              = "active"
)

type User struct {
	ID                  string     `db:"id"`
	Name                string     `db:"name"`
	Email               string     `db:"email"`
	Password            string     `db:"password"`
	Role                string     `db:"role"`
	MembershipPlanID    *string    `db:"membership_plan_id"`
	MembershipExpiresAt *time.Time `db:"membership_expires_at"`
	LastLogin           *time.Time `db:"last_login"`
	Active              bool       `db:"active"`
	model.Metadata
}

// HasMembershipOn reports whether the user holds a plan that is still valid on day.
// A plan without an expiry never lapses.
func (u User) HasMembershipOn(day time.Time) bool {
	if u.MembershipPlanID == nil || *u.MembershipPlanID == "" {
		return false
	}

	if u.MembershipExpiresAt == nil {
		return true
	}

	return !day.After(*u.MembershipExpiresAt)
}

// MembershipUpdate holds the columns written when a plan is assigned.
type MembershipUpdate struct {
	PlanID    string    `db:"membership_plan_id"`
	ExpiresAt time.Time `db:"membership_expires_at"`
}
