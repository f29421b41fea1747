package availability

import (
	"errors"
	"time"

	"github.com/Vikas94a/restaurant-dashboard/models"
)

// Validation failures. All four are expected, user-facing conditions; the
// submission handler maps them to responses, nothing retries them.
var (
	ErrNoHoursConfigured = errors.New("restaurant has no opening hours configured")
	ErrAsapUnavailable   = errors.New("asap pickup is not available right now")
	ErrDateClosed        = errors.New("restaurant is not open on the chosen date")
	ErrTimeUnavailable   = errors.New("chosen time is not an available pickup slot")
)

// PickupSelection is a customer's transient pickup choice. It is built fresh
// on every checkout and re-validated at submission time; it is never
// persisted on its own, only embedded into the order.
type PickupSelection struct {
	Mode models.PickupOption `json:"mode"`
	Date string              `json:"date,omitempty"` // "YYYY-MM-DD", scheduled only
	Time string              `json:"time,omitempty"` // display slot, scheduled only
}

// ValidateSelection checks sel against the hours table at the instant now.
// A nil return means the selection can be persisted. Validity is
// time-dependent: a selection that passed a minute ago can fail here, which
// is exactly why checkout re-validates before writing the order.
func ValidateSelection(hours []models.OpeningHours, now time.Time, sel PickupSelection) error {
	if len(hours) == 0 {
		return ErrNoHoursConfigured
	}

	if sel.Mode == models.PickupASAP {
		if !IsAsapAvailable(hours, now) {
			return ErrAsapUnavailable
		}
		return nil
	}

	date, err := time.ParseInLocation(DateLayout, sel.Date, now.Location())
	if err != nil {
		return ErrDateClosed
	}
	if !containsDate(AvailableDates(hours, now, DefaultLookaheadDays), date) {
		return ErrDateClosed
	}
	for _, slot := range PickupTimeSlots(hours, now, date, SlotInterval) {
		if slot == sel.Time {
			return nil
		}
	}
	return ErrTimeUnavailable
}

// DefaultSelection picks the initial pickup mode shown to a customer: asap
// when currently offered, otherwise the first open date and its first slot.
// The zero selection is returned when nothing is available in the lookahead
// window.
func DefaultSelection(hours []models.OpeningHours, now time.Time) PickupSelection {
	if IsAsapAvailable(hours, now) {
		return PickupSelection{Mode: models.PickupASAP}
	}
	dates := AvailableDates(hours, now, DefaultLookaheadDays)
	for _, date := range dates {
		slots := PickupTimeSlots(hours, now, date, SlotInterval)
		if len(slots) > 0 {
			return PickupSelection{
				Mode: models.PickupScheduled,
				Date: date.Format(DateLayout),
				Time: slots[0],
			}
		}
	}
	return PickupSelection{}
}

func containsDate(dates []time.Time, date time.Time) bool {
	for _, d := range dates {
		if sameDay(d, date) {
			return true
		}
	}
	return false
}
