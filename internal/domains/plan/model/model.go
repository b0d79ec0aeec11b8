package model

import (
	"libraryhub/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "membership_plans"
	EntityName = "membership plan"

	FieldID                      = "id"
	FieldLibraryID               = "library_id"
	FieldName                    = "name"
	FieldAllowedBookingsPerMonth = "allowed_bookings_per_month"
)

// Plan is a membership offered by one library. AllowedBookingsPerMonth of zero
// means bookings are not limited.
type Plan struct {
	ID                      string         `db:"id"`
	LibraryID               string         `db:"library_id"`
	Name                    string         `db:"name"`
	Price                   float64        `db:"price"`
	DurationDays            int            `db:"duration_days"`
	Features                pq.StringArray `db:"features"`
	AllowedBookingsPerMonth int            `db:"allowed_bookings_per_month"`
	ELibraryAccess          bool           `db:"e_library_access"`
	model.Metadata
}

// HasQuota reports whether the plan caps the number of bookings.
func (p Plan) HasQuota() bool {
	return p.AllowedBookingsPerMonth > 0
}
