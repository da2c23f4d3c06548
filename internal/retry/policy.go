package retry

import (
	"fmt"
	"sort"
	"time"
)

// DefaultOptimalHours are the local hours with the best observed success rate
// for a charge retry.
var DefaultOptimalHours = []int{10, 14, 19}

// TimePolicy moves a deadline onto the next preferred local hour.
type TimePolicy struct {
	hours []int
	loc   *time.Location
}

func NewTimePolicy(hours []int, loc *time.Location) (TimePolicy, error) {
	if len(hours) == 0 {
		hours = DefaultOptimalHours
	}
	if loc == nil {
		loc = time.UTC
	}
	sorted := append([]int(nil), hours...)
	sort.Ints(sorted)
	for i, h := range sorted {
		if h < 0 || h > 23 {
			return TimePolicy{}, fmt.Errorf("optimal hour %d out of range", h)
		}
		if i > 0 && sorted[i-1] == h {
			return TimePolicy{}, fmt.Errorf("optimal hour %d listed twice", h)
		}
	}
	return TimePolicy{hours: sorted, loc: loc}, nil
}

func (p TimePolicy) Location() *time.Location {
	if p.loc == nil {
		return time.UTC
	}
	return p.loc
}

// Adjust returns the first preferred hour at or after t on t's local day,
// or the earliest preferred hour of the following day once the last one has
// passed. The result keeps t's location.
func (p TimePolicy) Adjust(t time.Time) time.Time {
	hours := p.hours
	if len(hours) == 0 {
		hours = DefaultOptimalHours
	}
	loc := p.Location()
	local := t.In(loc)
	y, m, d := local.Date()

	for _, h := range hours {
		candidate := time.Date(y, m, d, h, 0, 0, 0, loc)
		if !candidate.Before(local) {
			return candidate.In(t.Location())
		}
	}
	return time.Date(y, m, d+1, hours[0], 0, 0, 0, loc).In(t.Location())
}
