package model

import "libraryhub/shared/model"

const (
	TableName  = "seats"
	EntityName = "seat"

	FieldID          = "id"
	FieldLibraryID   = "library_id"
	FieldName        = "name"
	FieldType        = "type"
	FieldIsAvailable = "is_available"
)

const (
	TypeRegular   = "regular"
	TypeQuietZone = "quiet_zone"
	TypeComputer  = "computer"
)

// Seat belongs to exactly one library. IsAvailable is a maintenance flag set by
// staff and is never flipped by bookings.
type Seat struct {
	ID          string `db:"id"`
	LibraryID   string `db:"library_id"`
	Name        string `db:"name"`
	Type        string `db:"type"`
	IsAvailable bool   `db:"is_available"`
	model.Metadata
}
