package timezone_test

import (
	"mahalo/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTodayAndClock(t *testing.T) {
	// Fixed instant; components must be zero-padded regardless of host TZ.
	instant := time.Date(2024, 3, 7, 8, 5, 0, 0, timezone.GetLocation())

	if got := timezone.Today(instant); got != "2024-03-07" {
		t.Errorf("Today() = %q, want %q", got, "2024-03-07")
	}

	if got := timezone.Clock(instant); got != "08:05" {
		t.Errorf("Clock() = %q, want %q", got, "08:05")
	}
}

func TestTodayIgnoresSourceLocation(t *testing.T) {
	// The same instant expressed in two locations must resolve identically.
	instant := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	shifted := instant.In(time.FixedZone("X", -5*3600))

	if timezone.Today(instant) != timezone.Today(shifted) {
		t.Error("Today() depends on the source location of the instant")
	}

	if timezone.Clock(instant) != timezone.Clock(shifted) {
		t.Error("Clock() depends on the source location of the instant")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}
