package timezone

import (
	"time"

	"libraryhub/shared/constant"

	"github.com/rs/zerolog/log"
)

var appLocation *time.Location

// SetLocation installs the application timezone. Entrypoints call it once with
// APP_TIMEZONE before serving; until then every helper works in UTC.
func SetLocation(name string) {
	appLocation = load(name)
}

// load resolves an IANA zone name, falling back to UTC when it is empty or unknown.
func load(name string) *time.Location {
	if name == constant.Empty {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names such as 'Asia/Kolkata' or 'UTC'")

		return time.UTC
	}

	log.Info().Str("timezone", name).Msg("Application timezone initialized")

	return loc
}

// GetLocation returns the application timezone, UTC until one is loaded.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns the current calendar day in the application timezone as YYYY-MM-DD.
func Today() string {
	return Now().Format(constant.DayFormat)
}

// ToAppTime converts t to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as a wall clock time in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

// Format renders t in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
