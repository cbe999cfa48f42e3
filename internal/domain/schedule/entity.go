package schedule

import (
	"fmt"
	"sort"
	"time"

	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval = errs.New("interval start must be before end")
	ErrInvalidWeekday  = errs.New("weekday must be between 0 and 6")
	ErrInvalidTime     = errs.New("invalid time of day")
)

// TimeOfDay is a minute-resolution wall-clock time, zone-agnostic.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, errs.Mark(err, ErrInvalidTime)
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.minutes > other.minutes }

// At anchors the time of day onto a calendar date in the date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.minutes/60, t.minutes%60, 0, 0, date.Location())
}

// Weekday uses the schedule table convention: 0=Monday .. 6=Sunday.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// Rule is one recurring weekly interval for a resource. An unavailable rule
// carves time out of the available ones (a lunch break, a blocked afternoon).
type Rule struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	dayOfWeek   int
	start       TimeOfDay
	end         TimeOfDay
	unavailable bool
}

func NewRule(resourceID uuid.UUID, dayOfWeek int, start, end TimeOfDay, unavailable bool) (*Rule, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrInvalidWeekday
	}
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}
	return &Rule{
		id:          uuid.New(),
		resourceID:  resourceID,
		dayOfWeek:   dayOfWeek,
		start:       start,
		end:         end,
		unavailable: unavailable,
	}, nil
}

func ReconstructRule(id, resourceID uuid.UUID, dayOfWeek int, start, end TimeOfDay, unavailable bool) *Rule {
	return &Rule{
		id:          id,
		resourceID:  resourceID,
		dayOfWeek:   dayOfWeek,
		start:       start,
		end:         end,
		unavailable: unavailable,
	}
}

func (r *Rule) ID() uuid.UUID         { return r.id }
func (r *Rule) ResourceID() uuid.UUID { return r.resourceID }
func (r *Rule) DayOfWeek() int        { return r.dayOfWeek }
func (r *Rule) Start() TimeOfDay      { return r.start }
func (r *Rule) End() TimeOfDay        { return r.end }
func (r *Rule) Unavailable() bool     { return r.unavailable }

// Window is a contiguous bookable interval within one day.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

type interval struct {
	start int
	end   int
}

// DayWindows resolves a day's rules into the ordered open intervals.
// Unavailable rules take precedence over available ones wherever they
// overlap. No available rules means a closed day.
func DayWindows(rules []*Rule) []Window {
	var avail, blocked []interval
	for _, r := range rules {
		iv := interval{start: r.start.minutes, end: r.end.minutes}
		if r.unavailable {
			blocked = append(blocked, iv)
		} else {
			avail = append(avail, iv)
		}
	}

	open := mergeIntervals(avail)
	blocked = mergeIntervals(blocked)

	for _, b := range blocked {
		open = subtractInterval(open, b)
	}

	windows := make([]Window, 0, len(open))
	for _, iv := range open {
		windows = append(windows, Window{
			Start: TimeOfDay{minutes: iv.start},
			End:   TimeOfDay{minutes: iv.end},
		})
	}
	return windows
}

func mergeIntervals(ivs []interval) []interval {
	if len(ivs) == 0 {
		return nil
	}
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].start < ivs[j].start })

	merged := []interval{ivs[0]}
	for _, iv := range ivs[1:] {
		last := &merged[len(merged)-1]
		if iv.start <= last.end {
			if iv.end > last.end {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

func subtractInterval(open []interval, b interval) []interval {
	var result []interval
	for _, o := range open {
		if b.end <= o.start || b.start >= o.end {
			result = append(result, o)
			continue
		}
		if b.start > o.start {
			result = append(result, interval{start: o.start, end: b.start})
		}
		if b.end < o.end {
			result = append(result, interval{start: b.end, end: o.end})
		}
	}
	return result
}
