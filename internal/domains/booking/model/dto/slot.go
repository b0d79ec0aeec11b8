package dto

import (
	"time"

	"libraryhub/shared/constant"
	"libraryhub/shared/failure"
	"libraryhub/shared/timezone"
)

const clockLayout = constant.DayFormat + " " + constant.ClockFormat

// Slot is a normalized booking window. Day is midnight UTC of the calendar day the
// booking belongs to; Start and End are instants in the application timezone.
type Slot struct {
	Day   time.Time
	Start time.Time
	End   time.Time
}

// DayString returns the slot's calendar day as YYYY-MM-DD.
func (s Slot) DayString() string {
	return s.Day.Format(constant.DayFormat)
}

// ParseDay turns a YYYY-MM-DD string into midnight UTC of that day.
func ParseDay(value string) (time.Time, error) {
	day, err := time.Parse(constant.DayFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	return day, nil
}

// ParseSlot accepts either a calendar date with HH:MM clock times in the application
// timezone, or two RFC3339 timestamps. With timestamps the day is taken from start,
// and an explicit date must agree with it.
func ParseSlot(date, start, end string) (Slot, error) {
	var slot Slot

	startAt, startErr := time.Parse(constant.DateFormat, start)
	endAt, endErr := time.Parse(constant.DateFormat, end)

	switch {
	case startErr == nil && endErr == nil:
		startAt = timezone.ToAppTime(startAt)
		endAt = timezone.ToAppTime(endAt)

		startDay := startAt.Format(constant.DayFormat)
		if date != constant.Empty && date != startDay {
			return slot, failure.BadRequestFromString("date must match the day of startTime") //nolint:wrapcheck
		}

		date = startDay
	case date == constant.Empty:
		return slot, failure.BadRequestFromString("date is required when startTime and endTime are clock times") //nolint:wrapcheck
	default:
		if _, err := ParseDay(date); err != nil {
			return slot, err
		}

		var err error

		startAt, err = timezone.Parse(clockLayout, date+" "+start)
		if err != nil {
			return slot, failure.BadRequestFromString("startTime must be formatted as HH:MM or RFC3339") //nolint:wrapcheck
		}

		endAt, err = timezone.Parse(clockLayout, date+" "+end)
		if err != nil {
			return slot, failure.BadRequestFromString("endTime must be formatted as HH:MM or RFC3339") //nolint:wrapcheck
		}
	}

	day, err := ParseDay(date)
	if err != nil {
		return slot, err
	}

	if !endAt.After(startAt) {
		return slot, failure.BadRequestFromString("endTime must be after startTime") //nolint:wrapcheck
	}

	return Slot{Day: day, Start: startAt, End: endAt}, nil
}
