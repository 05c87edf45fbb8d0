package analytics

import "time"

// Symbolic time range tokens. Anything else resolves to DefaultLookback.
const (
	RangeToday     = "today"
	RangeYesterday = "yesterday"
	RangeLastWeek  = "last_week"
	RangeLastMonth = "last_month"
)

const (
	day             = 24 * time.Hour
	DefaultLookback = 90 * day
)

// TimeWindow is the [Start, End) range used to select transactions.
// Membership compares calendar dates only.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls on or after Start's date and before End's date.
func (w TimeWindow) Contains(date time.Time) bool {
	d := dateOf(date)
	return !d.Before(dateOf(w.Start)) && d.Before(dateOf(w.End))
}

// Lookback returns the span for a token. yesterday spans the same 24h as today.
func Lookback(token string) time.Duration {
	switch token {
	case RangeToday, RangeYesterday:
		return day
	case RangeLastWeek:
		return 7 * day
	case RangeLastMonth:
		return 30 * day
	default:
		return DefaultLookback
	}
}

// Resolver maps time range tokens to windows ending at the current instant.
type Resolver struct {
	now func() time.Time
}

// NewResolver creates a Resolver. A nil clock uses time.Now.
func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// Resolve never fails: unknown tokens get the 90 day default.
func (r *Resolver) Resolve(token string) TimeWindow {
	end := r.now()
	return TimeWindow{
		Start: end.Add(-Lookback(token)),
		End:   end,
	}
}
