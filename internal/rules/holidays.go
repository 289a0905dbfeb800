package rules

import "time"

// marketHoliday reports whether d is a BRVM trading holiday and names it.
// The exchange sits in Abidjan, so the calendar is the Ivorian one: fixed
// national dates plus the Easter-derived movable feasts. Lunar holidays
// shift year to year and are announced by the exchange, so they are not
// computed here.
func marketHoliday(d time.Time) (string, bool) {
	fixed := map[string]string{
		"01-01": "New Year's Day",
		"05-01": "Labour Day",
		"08-07": "Independence Day",
		"08-15": "Assumption",
		"11-01": "All Saints' Day",
		"11-15": "National Peace Day",
		"12-25": "Christmas Day",
	}
	if name, ok := fixed[d.Format("01-02")]; ok {
		return name, true
	}

	// Movable holidays (computed from Easter)
	easter := easterSunday(d.Year(), d.Location())
	movables := map[time.Time]string{
		easter.AddDate(0, 0, 1):  "Easter Monday",
		easter.AddDate(0, 0, 39): "Ascension Day",
		easter.AddDate(0, 0, 50): "Whit Monday",
	}
	if name, ok := movables[truncateToDate(d)]; ok {
		return name, true
	}

	return "", false
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// easterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm).
func easterSunday(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}
