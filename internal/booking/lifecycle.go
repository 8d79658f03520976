package booking

import (
	"time"

	"github.com/meetspace/roomclient/internal/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// EndsAt returns the moment the reservation's slot ends, in local time.
// A reservation with an unparseable date or end time is treated as already
// ended, so broken records never offer edit or cancel controls.
func EndsAt(r models.Reservation) (time.Time, bool) {
	t, err := time.ParseInLocation(dateTimeLayout, r.Date+" "+r.EndTime, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsPast reports whether the reservation's slot has already elapsed at now.
func IsPast(r models.Reservation, now time.Time) bool {
	end, ok := EndsAt(r)
	if !ok {
		return true
	}
	return !end.After(now)
}

// CanCancel reports whether cancel controls should be offered: the
// reservation is not already cancelled and its slot has not elapsed.
// This is presentation-level gating; the server enforces the real rules.
func CanCancel(r models.Reservation, now time.Time) bool {
	return r.Status != models.StatusCancelled && !IsPast(r, now)
}

// CanEdit reports whether date/time/purpose/attendee edits should be offered.
// Same conditions as cancel.
func CanEdit(r models.Reservation, now time.Time) bool {
	return CanCancel(r, now)
}

// CanConfirm reports whether an admin may confirm the reservation.
// Only PENDING reservations are confirmable; CANCELLED is terminal.
func CanConfirm(r models.Reservation) bool {
	return r.Status == models.StatusPending
}
