package rules

import (
	"strings"
	"testing"
	"time"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestInWindow(t *testing.T) {
	r := Default()

	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"monday mid-session", at(2026, 3, 2, 10, 0), true},
		{"friday at open", at(2026, 3, 6, 8, 0), true},
		{"friday at close inclusive", at(2026, 3, 6, 15, 30), true},
		{"minute after close", at(2026, 3, 6, 15, 31), false},
		{"minute before open", at(2026, 3, 6, 7, 59), false},
		{"saturday", at(2026, 3, 7, 10, 0), false},
		{"sunday", at(2026, 3, 8, 10, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.InWindow(tc.t); got != tc.want {
				t.Fatalf("InWindow(%v)=%v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	r := Default()

	st := r.Status(at(2026, 3, 2, 10, 0)) // Monday
	if !st.Open || st.Reason != "" {
		t.Fatalf("expected open status, got %+v", st)
	}
	if st.Opens != "08:00" || st.Closes != "15:30" {
		t.Fatalf("unexpected session bounds: %+v", st)
	}

	st = r.Status(at(2026, 3, 7, 10, 0)) // Saturday
	if st.Open || !strings.Contains(st.Reason, "weekend") {
		t.Fatalf("expected weekend closure, got %+v", st)
	}

	st = r.Status(at(2026, 3, 2, 7, 0))
	if st.Open || !strings.Contains(st.Reason, "opens at 08:00") {
		t.Fatalf("expected before-open closure, got %+v", st)
	}

	st = r.Status(at(2026, 3, 2, 16, 0))
	if st.Open || !strings.Contains(st.Reason, "15:30") {
		t.Fatalf("expected after-close closure, got %+v", st)
	}
}

// InWindow only knows weekdays and hours; the holiday calendar is surfaced
// through Status. New Year 2026 falls on a Thursday.
func TestStatus_HolidayVersusInWindow(t *testing.T) {
	r := Default()
	newYear := at(2026, 1, 1, 10, 0)

	if !r.InWindow(newYear) {
		t.Fatal("InWindow must ignore holidays")
	}
	st := r.Status(newYear)
	if st.Open {
		t.Fatal("Status must report holidays as closed")
	}
	if st.Holiday != "New Year's Day" || !strings.Contains(st.Reason, "holiday") {
		t.Fatalf("unexpected holiday status: %+v", st)
	}
}
