// Package astrotime converts between calendar time and Julian Day numbers.
// Every model in this repository measures elapsed time as Julian Days since
// the J2000.0 epoch.
package astrotime

import (
	"math"
	"time"
)

// J2000 is the reference epoch JD 2451545.0 (2000-01-01T12:00:00Z).
const J2000 = 2451545.0

// Epoch returns the J2000 reference instant as a time.Time.
func Epoch() time.Time {
	return time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
}

// JulianDay converts a calendar instant to a continuous Julian Day number,
// including the fractional day from the time of day. The algorithm is the
// standard one from Meeus, "Astronomical Algorithms": dates from 1582-10-15
// onward are Gregorian, earlier ones Julian, matching CalendarTime's switch.
//
// A zero time.Time is treated as unparseable input and degrades to J2000
// rather than producing a nonsense day count.
func JulianDay(t time.Time) float64 {
	if t.IsZero() {
		return J2000
	}

	t = t.UTC()
	year := t.Year()
	month := int(t.Month())
	day := float64(t.Day()) +
		float64(t.Hour())/24.0 +
		float64(t.Minute())/1440.0 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/86400.0

	gregorian := year > 1582 ||
		(year == 1582 && (month > 10 || (month == 10 && t.Day() >= 15)))

	if month <= 2 {
		year--
		month += 12
	}

	b := 0.0
	if gregorian {
		a := math.Floor(float64(year) / 100.0)
		b = 2 - a + math.Floor(a/4.0)
	}

	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		day + b - 1524.5
}

// gregorianSwitchJD is the first Julian Day of the Gregorian calendar
// (1582-10-15). Dates before it are interpreted in the Julian calendar.
const gregorianSwitchJD = 2299161.0

// CalendarTime converts a Julian Day number back to a UTC calendar instant.
// Inverse of JulianDay via the Meeus algorithm; precision is on the order of
// seconds, so round-trips hold to within a minute.
func CalendarTime(jd float64) time.Time {
	jd += 0.5
	z := math.Floor(jd)
	f := jd - z

	a := z
	if z >= gregorianSwitchJD {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4.0)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	dayWithFraction := b - d - math.Floor(30.6001*e) + f
	day := math.Floor(dayWithFraction)

	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}

	dayFrac := dayWithFraction - day
	secs := dayFrac * 86400.0

	hour := int(secs / 3600.0)
	secs -= float64(hour) * 3600.0
	minute := int(secs / 60.0)
	secs -= float64(minute) * 60.0

	return time.Date(int(year), time.Month(int(month)), int(day),
		hour, minute, int(math.Round(secs)), 0, time.UTC)
}

// DaysSinceEpoch returns the elapsed Julian Days between t and J2000.
// Negative for instants before the epoch.
func DaysSinceEpoch(t time.Time) float64 {
	return JulianDay(t) - J2000
}
