package period

import (
	"fmt"
	"net/http"
	"time"

	"erp-payroll/internal/shared/apperror"
)

// Layout is the canonical wire form of a payroll month.
const Layout = "2006-01"

var ErrInvalidFormat = apperror.New(
	apperror.CodeInvalidInput,
	"invalid period format, expected YYYY-MM",
	http.StatusBadRequest,
)

// Period is a logical payroll month. All boundary arithmetic is anchored to
// UTC so the first and last day never shift across server time zones.
type Period struct {
	Year  int
	Month time.Month
}

func Parse(v string) (Period, error) {
	t, err := time.ParseInLocation(Layout, v, time.UTC)
	if err != nil {
		return Period{}, ErrInvalidFormat
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func FromTime(t time.Time) Period {
	u := t.UTC()
	return Period{Year: u.Year(), Month: u.Month()}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Bounds returns the first and last day of the month, both at midnight UTC.
// The last day is day zero of the following month, so leap years and short
// months fall out of the calendar math.
func (p Period) Bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}
