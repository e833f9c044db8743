package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/financy/backend/internal/domain/error"
)

func TestResolvePeriodAt(t *testing.T) {
	now := time.Date(2025, time.March, 15, 11, 30, 0, 0, time.UTC)

	t.Run("resolves an explicit month", func(t *testing.T) {
		period, err := ResolvePeriodAt("2025-07", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if period.Label != "2025-07" {
			t.Errorf("expected label 2025-07, got %s", period.Label)
		}
		wantStart := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
		if !period.Start.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, period.Start)
		}
		if !period.End.Equal(wantEnd) {
			t.Errorf("expected end %v, got %v", wantEnd, period.End)
		}
	})

	t.Run("december rolls into january of the next year", func(t *testing.T) {
		period, err := ResolvePeriodAt("2025-12", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantEnd := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !period.End.Equal(wantEnd) {
			t.Errorf("expected end %v, got %v", wantEnd, period.End)
		}
	})

	t.Run("blank token resolves to the current month", func(t *testing.T) {
		for _, token := range []string{"", "   "} {
			period, err := ResolvePeriodAt(token, now)
			if err != nil {
				t.Fatalf("ResolvePeriodAt(%q): unexpected error: %v", token, err)
			}
			if period.Label != "2025-03" {
				t.Errorf("ResolvePeriodAt(%q): expected label 2025-03, got %s", token, period.Label)
			}
		}
	})

	t.Run("adjacent periods are contiguous", func(t *testing.T) {
		first, err := ResolvePeriodAt("2025-01", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := ResolvePeriodAt("2025-02", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.End.Equal(second.Start) {
			t.Errorf("expected %v to equal %v", first.End, second.Start)
		}
	})

	t.Run("boundary instant belongs to the next period", func(t *testing.T) {
		period, err := ResolvePeriodAt("2025-06", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		boundary := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
		if boundary.Before(period.End) {
			t.Errorf("expected boundary %v to be outside [start, end)", boundary)
		}
		lastMoment := boundary.Add(-time.Nanosecond)
		if !lastMoment.Before(period.End) || lastMoment.Before(period.Start) {
			t.Errorf("expected %v to be inside [start, end)", lastMoment)
		}
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		tokens := []string{
			"2025",
			"2025-1",
			"2025-123",
			"25-01",
			"2025/01",
			"2025-00",
			"2025-13",
			"abcd-ef",
			"2025-01-01",
		}
		for _, token := range tokens {
			_, err := ResolvePeriodAt(token, now)
			if !errors.Is(err, domainerror.ErrInvalidPeriod) {
				t.Errorf("ResolvePeriodAt(%q): expected ErrInvalidPeriod, got %v", token, err)
			}
		}
	})
}

func TestFormatPeriod(t *testing.T) {
	t.Run("formats in UTC regardless of location", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		// 2025-01-31 22:00 in UTC-5 is already February in UTC.
		local := time.Date(2025, time.January, 31, 22, 0, 0, 0, loc)
		if got := FormatPeriod(local); got != "2025-02" {
			t.Errorf("expected 2025-02, got %s", got)
		}
	})
}
