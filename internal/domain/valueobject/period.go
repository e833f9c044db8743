package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	domainerror "github.com/financy/backend/internal/domain/error"
)

// periodTokenRegex matches the YYYY-MM period token wire format.
var periodTokenRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Period is a calendar month resolved to a half-open UTC instant range
// [Start, End): a transaction occurring exactly at End belongs to the next
// period.
type Period struct {
	Label string // YYYY-MM
	Start time.Time
	End   time.Time
}

// ResolvePeriod parses a YYYY-MM token into a Period. A blank token resolves
// to the current UTC year-month.
func ResolvePeriod(token string) (Period, error) {
	return ResolvePeriodAt(token, time.Now().UTC())
}

// ResolvePeriodAt is ResolvePeriod with an explicit clock, for callers that
// need a deterministic "current month".
func ResolvePeriodAt(token string, now time.Time) (Period, error) {
	label := strings.TrimSpace(token)
	if label == "" {
		label = FormatPeriod(now)
	}

	if !periodTokenRegex.MatchString(label) {
		return Period{}, domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("period must match YYYY-MM, got %q", label),
			domainerror.ErrInvalidPeriod,
		)
	}

	year, _ := strconv.Atoi(label[:4])
	month, _ := strconv.Atoi(label[5:])
	if month < 1 || month > 12 {
		return Period{}, domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("period month must be between 01 and 12, got %q", label),
			domainerror.ErrInvalidPeriod,
		)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes month 13 into January of the next year.
	end := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)

	return Period{Label: label, Start: start, End: end}, nil
}

// FormatPeriod renders the YYYY-MM token for the UTC month containing t.
func FormatPeriod(t time.Time) string {
	return t.UTC().Format("2006-01")
}
