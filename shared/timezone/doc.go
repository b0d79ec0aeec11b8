// Package timezone pins every wall clock value of the service to APP_TIMEZONE.
//
// Booking days, opening hours and "today" for completed bookings are all calendar
// values, so they are parsed and formatted here rather than with time.Local:
//
//	timezone.Today()                                  // "2026-10-19"
//	timezone.Parse("2006-01-02 15:04", "2026-10-19 09:00")
//	timezone.Format(booking.StartTime, time.RFC3339)
//
// The zone is installed once at startup with SetLocation. Unknown or empty names
// fall back to UTC.
package timezone
