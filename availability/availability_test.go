package availability

import (
	"testing"
	"time"

	"github.com/Vikas94a/restaurant-dashboard/models"
)

// 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

// fullWeek returns hours open 10:00-22:00 every day except a closed Tuesday.
func fullWeek() []models.OpeningHours {
	var hours []models.OpeningHours
	for d := models.Sunday; d <= models.Saturday; d++ {
		hours = append(hours, models.OpeningHours{
			Weekday: d,
			Open:    "10:00",
			Close:   "22:00",
			Closed:  d == models.Tuesday,
		})
	}
	return hours
}

func TestHoursForDateMatchesWeekday(t *testing.T) {
	hours := fullWeek()
	entry, found := HoursForDate(hours, monday)
	if !found {
		t.Fatalf("expected an entry for monday")
	}
	if entry.Weekday != models.Monday {
		t.Fatalf("expected monday entry, got %s", entry.Weekday)
	}
	_, found = HoursForDate(hours[:1], monday.AddDate(0, 0, 3))
	if found {
		t.Fatalf("expected no entry when weekday row is missing")
	}
}

func TestAsapAvailableInsideWindow(t *testing.T) {
	hours := fullWeek()
	if !IsAsapAvailable(hours, at(monday, 11, 50)) {
		t.Fatalf("expected asap available at 11:50 (buffered 12:05 inside 10:00-22:00)")
	}
}

func TestAsapBufferAgainstClosing(t *testing.T) {
	hours := fullWeek()
	if IsAsapAvailable(hours, at(monday, 21, 45)) {
		t.Fatalf("expected asap unavailable at 21:45: buffered 22:00 is not before close")
	}
	if IsAsapAvailable(hours, at(monday, 21, 50)) {
		t.Fatalf("expected asap unavailable 10 minutes before close")
	}
	if !IsAsapAvailable(hours, at(monday, 21, 44)) {
		t.Fatalf("expected asap available at 21:44: buffered 21:59 is before close")
	}
}

func TestAsapBufferAgainstOpening(t *testing.T) {
	hours := fullWeek()
	if IsAsapAvailable(hours, at(monday, 9, 30)) {
		t.Fatalf("expected asap unavailable well before opening")
	}
	// Buffered instant reaches opening even though the clock has not.
	if !IsAsapAvailable(hours, at(monday, 9, 50)) {
		t.Fatalf("expected asap available at 9:50: buffered 10:05 is past opening")
	}
}

func TestAsapUnavailableOnClosedDay(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	if IsAsapAvailable(fullWeek(), at(tuesday, 12, 0)) {
		t.Fatalf("expected asap unavailable on a closed tuesday")
	}
}

func TestClosedDayExcludedFromDates(t *testing.T) {
	dates := AvailableDates(fullWeek(), at(monday, 12, 0), DefaultLookaheadDays)
	if len(dates) != 6 {
		t.Fatalf("expected 6 open dates in a 7-day window with one closed day, got %d", len(dates))
	}
	for _, d := range dates {
		if d.Weekday() == time.Tuesday {
			t.Fatalf("closed tuesday %s must not be listed", d.Format(DateLayout))
		}
	}
	if !sameDay(dates[0], monday) {
		t.Fatalf("expected today first, got %s", dates[0].Format(DateLayout))
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			t.Fatalf("dates out of order: %s before %s", dates[i], dates[i-1])
		}
	}
}

func TestTodayExcludedAfterClose(t *testing.T) {
	hours := []models.OpeningHours{}
	for d := models.Sunday; d <= models.Saturday; d++ {
		hours = append(hours, models.OpeningHours{Weekday: d, Open: "09:00", Close: "17:00"})
	}
	now := at(monday, 17, 5)

	dates := AvailableDates(hours, now, DefaultLookaheadDays)
	if len(dates) == 0 {
		t.Fatalf("expected future dates after today's close")
	}
	if sameDay(dates[0], monday) {
		t.Fatalf("today must be excluded once the restaurant has closed")
	}
	if slots := PickupTimeSlots(hours, now, monday, SlotInterval); len(slots) != 0 {
		t.Fatalf("expected no slots today after close, got %v", slots)
	}
}

func TestSlotsSameDayLeadAndGrid(t *testing.T) {
	hours := fullWeek()
	now := at(monday, 11, 50)
	slots := PickupTimeSlots(hours, now, monday, SlotInterval)
	if len(slots) == 0 {
		t.Fatalf("expected slots for an open monday")
	}
	// 11:50 + 30m = 12:20, rounded up to the 30-minute grid.
	if slots[0] != "12:30 PM" {
		t.Fatalf("expected first slot 12:30 PM, got %s", slots[0])
	}
	if last := slots[len(slots)-1]; last != "9:30 PM" {
		t.Fatalf("expected last slot 9:30 PM (strictly before 22:00), got %s", last)
	}
}

func TestSlotsAlignedToGrid(t *testing.T) {
	hours := fullWeek()
	slots := PickupTimeSlots(hours, at(monday, 11, 37), monday, SlotInterval)
	if slots[0] != "12:30 PM" {
		t.Fatalf("expected 12:07 rounded up to 12:30 PM, got %s", slots[0])
	}
	for _, s := range slots {
		parsed, err := time.Parse(SlotLayout, s)
		if err != nil {
			t.Fatalf("slot %q does not parse: %v", s, err)
		}
		minutes := parsed.Hour()*60 + parsed.Minute()
		if minutes%30 != 0 {
			t.Fatalf("slot %q is off the 30-minute grid", s)
		}
	}
}

func TestSlotsExactGridStartUnchanged(t *testing.T) {
	hours := fullWeek()
	// 12:00 + 30m = 12:30, already on the grid: must not round to 13:00.
	slots := PickupTimeSlots(hours, at(monday, 12, 0), monday, SlotInterval)
	if slots[0] != "12:30 PM" {
		t.Fatalf("expected on-grid start to stay 12:30 PM, got %s", slots[0])
	}
}

func TestSlotsFutureDayStartAtOpening(t *testing.T) {
	hours := fullWeek()
	wednesday := monday.AddDate(0, 0, 2)
	slots := PickupTimeSlots(hours, at(monday, 21, 0), wednesday, SlotInterval)
	if len(slots) == 0 {
		t.Fatalf("expected slots for a future open day")
	}
	if slots[0] != "10:00 AM" {
		t.Fatalf("expected future day to start at opening, got %s", slots[0])
	}
}

func TestClosedDayHasNoSlots(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	if slots := PickupTimeSlots(fullWeek(), at(monday, 12, 0), tuesday, SlotInterval); len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %v", slots)
	}
}

func TestNoHoursConfigured(t *testing.T) {
	now := at(monday, 12, 0)
	if IsAsapAvailable(nil, now) {
		t.Fatalf("expected asap unavailable with no hours")
	}
	if dates := AvailableDates(nil, now, DefaultLookaheadDays); len(dates) != 0 {
		t.Fatalf("expected no dates with no hours, got %v", dates)
	}
	err := ValidateSelection(nil, now, PickupSelection{Mode: models.PickupASAP})
	if err != ErrNoHoursConfigured {
		t.Fatalf("expected ErrNoHoursConfigured, got %v", err)
	}
}

func TestValidationSymmetry(t *testing.T) {
	hours := fullWeek()
	now := at(monday, 11, 50)

	for _, date := range AvailableDates(hours, now, DefaultLookaheadDays) {
		for _, slot := range PickupTimeSlots(hours, now, date, SlotInterval) {
			sel := PickupSelection{
				Mode: models.PickupScheduled,
				Date: date.Format(DateLayout),
				Time: slot,
			}
			if err := ValidateSelection(hours, now, sel); err != nil {
				t.Fatalf("listed selection %s %s must validate, got %v", sel.Date, sel.Time, err)
			}
		}
	}

	tuesday := monday.AddDate(0, 0, 1)
	err := ValidateSelection(hours, now, PickupSelection{
		Mode: models.PickupScheduled,
		Date: tuesday.Format(DateLayout),
		Time: "12:00 PM",
	})
	if err != ErrDateClosed {
		t.Fatalf("expected ErrDateClosed for a closed tuesday, got %v", err)
	}

	err = ValidateSelection(hours, now, PickupSelection{
		Mode: models.PickupScheduled,
		Date: monday.Format(DateLayout),
		Time: "9:45 PM", // off-grid
	})
	if err != ErrTimeUnavailable {
		t.Fatalf("expected ErrTimeUnavailable for an off-grid time, got %v", err)
	}

	err = ValidateSelection(hours, at(monday, 21, 55), PickupSelection{Mode: models.PickupASAP})
	if err != ErrAsapUnavailable {
		t.Fatalf("expected ErrAsapUnavailable near close, got %v", err)
	}
}

func TestValidateSelectionRejectsStaleDate(t *testing.T) {
	hours := fullWeek()
	// Valid at 16:00, but the customer idles past closing before submitting.
	sel := PickupSelection{Mode: models.PickupScheduled, Date: monday.Format(DateLayout), Time: "9:30 PM"}
	if err := ValidateSelection(hours, at(monday, 16, 0), sel); err != nil {
		t.Fatalf("selection should validate during opening hours, got %v", err)
	}
	if err := ValidateSelection(hours, at(monday, 22, 10), sel); err != ErrDateClosed {
		t.Fatalf("expected ErrDateClosed after closing, got %v", err)
	}
}

func TestDefaultSelection(t *testing.T) {
	hours := fullWeek()

	sel := DefaultSelection(hours, at(monday, 12, 0))
	if sel.Mode != models.PickupASAP {
		t.Fatalf("expected asap default while open, got %s", sel.Mode)
	}

	sel = DefaultSelection(hours, at(monday, 22, 30))
	if sel.Mode != models.PickupScheduled {
		t.Fatalf("expected scheduled default after close, got %s", sel.Mode)
	}
	// Tuesday is closed, so the first open date is Wednesday at opening.
	wednesday := monday.AddDate(0, 0, 2)
	if sel.Date != wednesday.Format(DateLayout) {
		t.Fatalf("expected default date %s, got %s", wednesday.Format(DateLayout), sel.Date)
	}
	if sel.Time != "10:00 AM" {
		t.Fatalf("expected default slot 10:00 AM, got %s", sel.Time)
	}

	if sel := DefaultSelection(nil, at(monday, 12, 0)); sel.Mode != "" {
		t.Fatalf("expected zero selection with no hours, got %+v", sel)
	}
}
