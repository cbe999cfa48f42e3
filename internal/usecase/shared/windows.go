package shared

import (
	"time"

	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/pkg/errs"
)

// WindowsForDay resolves the open intervals for one calendar day. A resource
// with no schedule rows at all falls back to the configured working-day
// window; a resource that has rows but none matching the weekday is closed.
func WindowsForDay(rules []RuleSnapshot, date time.Time, cfg config.BookingConfig) ([]schedule.Window, error) {
	if len(rules) == 0 {
		return defaultWindow(cfg)
	}

	weekday := schedule.WeekdayIndex(date)
	dayRules := make([]*schedule.Rule, 0, len(rules))
	for _, snap := range rules {
		if snap.DayOfWeek != weekday {
			continue
		}
		start, err := schedule.ParseTimeOfDay(snap.StartTime)
		if err != nil {
			return nil, errs.Wrap(err, "malformed schedule start time")
		}
		end, err := schedule.ParseTimeOfDay(snap.EndTime)
		if err != nil {
			return nil, errs.Wrap(err, "malformed schedule end time")
		}
		dayRules = append(dayRules, schedule.ReconstructRule(
			snap.ID, snap.ResourceID, snap.DayOfWeek, start, end, !snap.Available,
		))
	}

	return schedule.DayWindows(dayRules), nil
}

func defaultWindow(cfg config.BookingConfig) ([]schedule.Window, error) {
	start, err := schedule.ParseTimeOfDay(cfg.DefaultDayStart)
	if err != nil {
		return nil, errs.Wrap(err, "malformed default day start")
	}
	end, err := schedule.ParseTimeOfDay(cfg.DefaultDayEnd)
	if err != nil {
		return nil, errs.Wrap(err, "malformed default day end")
	}
	return []schedule.Window{{Start: start, End: end}}, nil
}

// SlotStartMatches reports whether start lands exactly on a slot boundary of
// one of the day's windows and the full duration fits inside it.
func SlotStartMatches(windows []schedule.Window, date, start time.Time, duration time.Duration) bool {
	for _, w := range windows {
		open := w.Start.At(date)
		close := w.End.At(date)
		if start.Before(open) || start.Add(duration).After(close) {
			continue
		}
		if start.Sub(open)%duration == 0 {
			return true
		}
	}
	return false
}
