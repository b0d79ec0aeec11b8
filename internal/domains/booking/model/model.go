package model

import (
	"slices"
	"time"

	"libraryhub/shared/constant"
	"libraryhub/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldSeatID      = "seat_id"
	FieldLibraryID   = "library_id"
	FieldBookingDate = "booking_date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldStatus      = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ActiveStatuses hold a seat for their date.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

// Booking reserves one seat for one calendar day. BookingDate is stored as a DATE
// and always carries midnight UTC so its calendar day survives formatting.
type Booking struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	SeatID      string    `db:"seat_id"`
	LibraryID   string    `db:"library_id"`
	BookingDate time.Time `db:"booking_date"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	Status      string    `db:"status"`
	model.Metadata
}

// Day returns the booking's calendar day as YYYY-MM-DD.
func (b Booking) Day() string {
	return b.BookingDate.Format(constant.DayFormat)
}

// IsActive reports whether the stored status still holds the seat.
func (b Booking) IsActive() bool {
	return slices.Contains(ActiveStatuses, b.Status)
}

// EffectiveStatus is the status shown to callers. A confirmed booking whose day
// is before today reads as completed; nothing rewrites the stored row.
func (b Booking) EffectiveStatus(today string) string {
	if b.Status == StatusConfirmed && b.Day() < today {
		return StatusCompleted
	}

	return b.Status
}

// BookingDetail is the read model returned by queries, enriched with the names of
// the user, library and seat it references.
type BookingDetail struct {
	Booking
	UserName    string `db:"user_name"    table:"users"     column:"name"`
	UserEmail   string `db:"user_email"   table:"users"     column:"email"`
	LibraryName string `db:"library_name" table:"libraries" column:"name"`
	SeatName    string `db:"seat_name"    table:"seats"     column:"name"`
	SeatType    string `db:"seat_type"    table:"seats"     column:"type"`
}

func (BookingDetail) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = bookings.user_id " +
		"LEFT JOIN libraries ON libraries.id = bookings.library_id " +
		"LEFT JOIN seats ON seats.id = bookings.seat_id"
}
