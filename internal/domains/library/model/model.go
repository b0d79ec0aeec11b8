package model

import "libraryhub/shared/model"

const (
	TableName  = "libraries"
	EntityName = "library"

	FieldID             = "id"
	FieldName           = "name"
	FieldAddress        = "address"
	FieldStatus         = "status"
	FieldTotalSeats     = "total_seats"
	FieldAvailableSeats = "available_seats"
	FieldOwnerID        = "owner_id"
)

const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
)

// Library is a bookable resource. AvailableSeats is a denormalized counter kept
// within [0, TotalSeats] by every booking write.
type Library struct {
	ID             string  `db:"id"`
	Name           string  `db:"name"`
	Address        string  `db:"address"`
	Description    string  `db:"description"`
	Status         string  `db:"status"`
	TotalSeats     int     `db:"total_seats"`
	AvailableSeats int     `db:"available_seats"`
	OwnerID        *string `db:"owner_id"`
	model.Metadata
}
