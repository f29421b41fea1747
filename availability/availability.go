// Package availability computes pickup availability from a restaurant's
// weekly opening hours. Every function is pure: the caller supplies the
// reference instant, the package never reads the clock or the database.
package availability

import (
	"time"

	"github.com/Vikas94a/restaurant-dashboard/models"
)

const (
	// AsapBuffer is the minimum kitchen lead time for an immediate order.
	// An ASAP request landing closer than this to closing is rejected.
	AsapBuffer = 15 * time.Minute

	// SameDayLead is how far ahead of now the first scheduled slot on the
	// current day may be, before rounding up to the slot grid.
	SameDayLead = 30 * time.Minute

	// SlotInterval is the pickup slot grid spacing.
	SlotInterval = 30 * time.Minute

	// DefaultLookaheadDays bounds how far ahead customers can schedule.
	DefaultLookaheadDays = 7
)

// SlotLayout is the display format for pickup slots. Slot membership is
// checked by comparing formatted strings, so the same layout must be used
// for generation and validation.
const SlotLayout = "3:04 PM"

// DateLayout is the wire format for pickup dates.
const DateLayout = "2006-01-02"

// HoursForDate returns the opening-hours row for date's weekday. The second
// return is false when the table has no row for that weekday; callers treat
// that as closed.
func HoursForDate(hours []models.OpeningHours, date time.Time) (models.OpeningHours, bool) {
	day := models.Weekday(date.Weekday())
	for _, h := range hours {
		if h.Weekday == day {
			return h, true
		}
	}
	return models.OpeningHours{}, false
}

// dayWindow resolves the opening and closing instants for entry on the given
// calendar day. ok is false when the day is closed or the stored times do
// not parse.
func dayWindow(entry models.OpeningHours, date time.Time) (open, closing time.Time, ok bool) {
	if entry.Closed {
		return time.Time{}, time.Time{}, false
	}
	open, err := atClock(date, entry.Open)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	closing, err = atClock(date, entry.Close)
	if err != nil || !closing.After(open) {
		return time.Time{}, time.Time{}, false
	}
	return open, closing, true
}

// atClock anchors an "HH:MM" wall-clock string on date's calendar day, in
// date's location.
func atClock(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// IsAsapAvailable reports whether an immediate pickup order can be accepted
// at now: the buffered instant now+AsapBuffer must fall inside today's
// [open, close) window.
func IsAsapAvailable(hours []models.OpeningHours, now time.Time) bool {
	entry, found := HoursForDate(hours, now)
	if !found {
		return false
	}
	open, closing, ok := dayWindow(entry, now)
	if !ok {
		return false
	}
	buffered := now.Add(AsapBuffer)
	return !buffered.Before(open) && buffered.Before(closing)
}

// AvailableDates returns the open pickup dates within lookaheadDays of now,
// earliest first. Today is excluded once now has reached closing time, even
// though the weekday itself is open. Dates are midnight-normalized in now's
// location.
func AvailableDates(hours []models.OpeningHours, now time.Time, lookaheadDays int) []time.Time {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	var dates []time.Time
	for i := 0; i < lookaheadDays; i++ {
		candidate := midnight(now).AddDate(0, 0, i)
		entry, found := HoursForDate(hours, candidate)
		if !found || entry.Closed {
			continue
		}
		if i == 0 {
			_, closing, ok := dayWindow(entry, candidate)
			if !ok || !now.Before(closing) {
				continue
			}
		}
		dates = append(dates, candidate)
	}
	return dates
}

// PickupTimeSlots generates the scheduled pickup slots for date as display
// strings, ascending. On the current day the first slot is no earlier than
// now+SameDayLead; future days start at opening. Slots sit on the interval
// grid from midnight and end strictly before closing.
func PickupTimeSlots(hours []models.OpeningHours, now, date time.Time, interval time.Duration) []string {
	if interval <= 0 {
		interval = SlotInterval
	}
	entry, found := HoursForDate(hours, date)
	if !found {
		return nil
	}
	open, closing, ok := dayWindow(entry, date)
	if !ok {
		return nil
	}

	start := open
	if sameDay(now, date) {
		earliest := now.Add(SameDayLead)
		if earliest.After(start) {
			start = earliest
		}
	}
	start = roundUpToGrid(start, interval)

	var slots []string
	for t := start; t.Before(closing); t = t.Add(interval) {
		slots = append(slots, t.Format(SlotLayout))
	}
	return slots
}

// roundUpToGrid rounds t up to the next multiple of interval measured from
// midnight; instants already on the grid are unchanged.
func roundUpToGrid(t time.Time, interval time.Duration) time.Time {
	day := midnight(t)
	elapsed := t.Sub(day)
	rounded := elapsed.Truncate(interval)
	if rounded < elapsed {
		rounded += interval
	}
	return day.Add(rounded)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
