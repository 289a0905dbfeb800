package rules

import (
	"fmt"
	"time"
)

// WindowStatus describes the advisory state of the trading window at a
// given instant. The simulator never enforces it: orders outside the
// window still execute, mirroring how the account sheet only displays
// session state.
type WindowStatus struct {
	Open    bool
	Reason  string // set when closed
	Holiday string // holiday name when the day is one
	Opens   string // session open as "HH:MM"
	Closes  string // session close as "HH:MM"
}

// InWindow reports whether t falls inside the trading window: a weekday
// between TradingOpen and TradingClose inclusive, evaluated in the market
// location. Holidays are not considered here.
func (r RuleSet) InWindow(t time.Time) bool {
	lt := t.In(r.Location)
	if wd := lt.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	minute := lt.Hour()*60 + lt.Minute()
	return minute >= r.TradingOpen && minute <= r.TradingClose
}

// Status returns the full advisory picture for t: the weekday/hours window
// of InWindow plus the BRVM holiday calendar.
func (r RuleSet) Status(t time.Time) WindowStatus {
	st := WindowStatus{
		Opens:  formatClock(r.TradingOpen),
		Closes: formatClock(r.TradingClose),
	}

	lt := t.In(r.Location)
	if wd := lt.Weekday(); wd == time.Saturday || wd == time.Sunday {
		st.Reason = "market closed (weekend)"
		return st
	}
	if name, ok := marketHoliday(lt); ok {
		st.Holiday = name
		st.Reason = fmt.Sprintf("market closed (holiday: %s)", name)
		return st
	}

	minute := lt.Hour()*60 + lt.Minute()
	switch {
	case minute < r.TradingOpen:
		st.Reason = fmt.Sprintf("market not yet open (opens at %s)", st.Opens)
	case minute > r.TradingClose:
		st.Reason = fmt.Sprintf("market closed (closed at %s)", st.Closes)
	default:
		st.Open = true
	}
	return st
}
