package dto

import (
	"libraryhub/internal/domains/booking/model"
	seatModel "libraryhub/internal/domains/seat/model"
	seatDto "libraryhub/internal/domains/seat/model/dto"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	gModel "libraryhub/shared/model"
	"libraryhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	UserID     string `json:"userId"     validate:"required"`
	ResourceID string `json:"resourceId" validate:"required_without=SeatID"`
	SeatID     string `json:"seatId"     validate:"required_without=ResourceID"`
	Date       string `json:"date"       validate:"omitempty,date"`
	StartTime  string `json:"startTime"  validate:"required,clock"`
	EndTime    string `json:"endTime"    validate:"required,clock"`
}

func (c *CreateBookingRequest) Slot() (Slot, error) {
	return ParseSlot(c.Date, c.StartTime, c.EndTime)
}

// ToModel builds a confirmed booking for a resolved library and seat.
func (c *CreateBookingRequest) ToModel(user, libraryID, seatID string, slot Slot) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		UserID:      c.UserID,
		SeatID:      seatID,
		LibraryID:   libraryID,
		BookingDate: slot.Day,
		StartTime:   slot.Start,
		EndTime:     slot.End,
		Status:      model.StatusConfirmed,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateBookingRequest struct {
	Date      string `json:"date"      validate:"omitempty,date"`
	StartTime string `json:"startTime" validate:"omitempty,clock"`
	EndTime   string `json:"endTime"   validate:"omitempty,clock"`
	Status    string `json:"status"    validate:"omitempty,oneof=pending confirmed cancelled"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.Date == constant.Empty && u.StartTime == constant.Empty && u.EndTime == constant.Empty && u.Status == constant.Empty
}

// ChangesSlot reports whether the request moves the booking in time.
func (u *UpdateBookingRequest) ChangesSlot() bool {
	return u.Date != constant.Empty || u.StartTime != constant.Empty || u.EndTime != constant.Empty
}

// Slot merges the requested changes over the current booking window. Missing clock
// times keep the booking's wall clock in the application timezone.
func (u *UpdateBookingRequest) Slot(current model.Booking) (Slot, error) {
	date := u.Date
	start := u.StartTime
	end := u.EndTime

	if start == constant.Empty {
		start = timezone.Format(current.StartTime, constant.ClockFormat)
	}

	if end == constant.Empty {
		end = timezone.Format(current.EndTime, constant.ClockFormat)
	}

	if date == constant.Empty && !isTimestamp(start) {
		date = current.Day()
	}

	return ParseSlot(date, start, end)
}

func isTimestamp(value string) bool {
	return len(value) > len(constant.ClockFormat)
}

type BookingResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	SeatID      string `json:"seatId"`
	LibraryID   string `json:"libraryId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	UserName    string `json:"userName,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
	LibraryName string `json:"libraryName,omitempty"`
	SeatName    string `json:"seatName,omitempty"`
	SeatType    string `json:"seatType,omitempty"`
	gDto.Metadata
}

// FromModel fills the response from a booking, reporting the status as of today.
func (r *BookingResponse) FromModel(booking model.Booking, today string) {
	r.ID = booking.ID
	r.UserID = booking.UserID
	r.SeatID = booking.SeatID
	r.LibraryID = booking.LibraryID
	r.Date = booking.Day()
	r.StartTime = timezone.Format(booking.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(booking.EndTime, constant.DateFormat)
	r.Status = booking.EffectiveStatus(today)
	r.Metadata.FromModel(booking.Metadata)
}

// FromStored fills the response with the status exactly as it was written.
func (r *BookingResponse) FromStored(booking model.Booking) {
	r.FromModel(booking, constant.Empty)
	r.Status = booking.Status
}

func (r *BookingResponse) FromDetail(detail model.BookingDetail, today string) {
	r.FromModel(detail.Booking, today)
	r.UserName = detail.UserName
	r.UserEmail = detail.UserEmail
	r.LibraryName = detail.LibraryName
	r.SeatName = detail.SeatName
	r.SeatType = detail.SeatType
}

// BookingList is a page of bookings. Pagination is nil when the caller asked for
// the full result set.
type BookingList struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	TotalData int `json:"total_data"`
	TotalPage int `json:"total_page"`
}

func (l *BookingList) FromDetails(details []model.BookingDetail, today string) {
	l.Bookings = make([]BookingResponse, len(details))
	for i, detail := range details {
		l.Bookings[i].FromDetail(detail, today)
	}
}

// SeatAvailability is a seat annotated with whether it can be booked on a given day
// and the active bookings holding it that day.
type SeatAvailability struct {
	seatDto.SeatResponse
	Available bool              `json:"available"`
	Bookings  []BookingResponse `json:"bookings"`
}

func (s *SeatAvailability) FromModel(seat seatModel.Seat, bookings []model.Booking, today string) {
	s.SeatResponse.FromModel(seat)
	s.Available = seat.IsAvailable && len(bookings) == 0

	s.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		s.Bookings[i].FromModel(booking, today)
	}
}

type ExportResponse struct {
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// Event is the payload published for every booking state change.
type Event struct {
	Type       string `json:"type"`
	BookingID  string `json:"bookingId"`
	UserID     string `json:"userId"`
	SeatID     string `json:"seatId"`
	LibraryID  string `json:"libraryId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurredAt"`
}

func NewEvent(eventType string, booking model.Booking) Event {
	return Event{
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		SeatID:     booking.SeatID,
		LibraryID:  booking.LibraryID,
		Date:       booking.Day(),
		Status:     booking.Status,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
