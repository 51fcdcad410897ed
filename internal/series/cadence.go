package series

import (
	"fmt"
	"time"
)

// Cadence is the fixed step between periods of a dataset.
type Cadence int

const (
	Hourly Cadence = iota + 1
	Daily
	Quarterly
)

const (
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
	dateLayout      = "2006-01-02"
)

// Step returns the start of period i counted from anchor.
func (c Cadence) Step(anchor time.Time, i int) time.Time {
	switch c {
	case Hourly:
		return anchor.Add(time.Duration(i) * time.Hour)
	case Quarterly:
		return anchor.AddDate(0, 3*i, 0)
	default:
		return anchor.AddDate(0, 0, i)
	}
}

// Label formats a period start the way the dashboard expects it.
func (c Cadence) Label(at time.Time) string {
	at = at.UTC()
	switch c {
	case Hourly:
		return at.Format(timestampLayout)
	case Quarterly:
		return QuarterLabel(at)
	default:
		return at.Format(dateLayout)
	}
}

// QuarterLabel renders "YYYY-Qn".
func QuarterLabel(at time.Time) string {
	return fmt.Sprintf("%d-Q%d", at.Year(), (int(at.Month())-1)/3+1)
}

func (c Cadence) String() string {
	switch c {
	case Hourly:
		return "hourly"
	case Daily:
		return "daily"
	case Quarterly:
		return "quarterly"
	default:
		return fmt.Sprintf("cadence(%d)", int(c))
	}
}

// MarshalText encodes the cadence by name.
func (c Cadence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
