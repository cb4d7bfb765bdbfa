package records

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// referenceUnix is 2001-01-01T00:00:00Z, the epoch of the mobile client's
// default date encoding.
var referenceUnix = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

// Time is a timestamp encoded in JSON as fractional seconds since
// 2001-01-01T00:00:00Z. Precision is one microsecond.
type Time struct {
	time.Time
}

// NewTime normalizes t to UTC with microsecond precision.
func NewTime(t time.Time) Time {
	return Time{Time: t.UTC().Truncate(time.Microsecond)}
}

// Now returns the current time as a Time.
func Now() Time {
	return NewTime(time.Now())
}

// TimePtr is a convenience for optional date fields.
func TimePtr(t time.Time) *Time {
	v := NewTime(t)
	return &v
}

func (t Time) MarshalJSON() ([]byte, error) {
	secs := float64(t.Unix()-referenceUnix) + float64(t.Nanosecond())/1e9
	return json.Marshal(secs)
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("date must be a number of seconds: %w", err)
	}
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return fmt.Errorf("date out of range: %v", secs)
	}
	whole := math.Floor(secs)
	nanos := math.Round((secs - whole) * 1e9)
	parsed := time.Unix(referenceUnix+int64(whole), int64(nanos))
	t.Time = parsed.UTC().Round(time.Microsecond)
	return nil
}
