package booking

import (
	"strings"
	"time"

	"github.com/meetspace/roomclient/internal/apperr"
	"github.com/meetspace/roomclient/internal/models"
)

// Form validation runs before any network call; a validation error blocks
// submission entirely.

// ValidateCredentials checks a login form.
func ValidateCredentials(c Credentials) error {
	if strings.TrimSpace(c.Username) == "" {
		return apperr.New(apperr.KindValidation, 0, "Username is required.")
	}
	if c.Password == "" {
		return apperr.New(apperr.KindValidation, 0, "Password is required.")
	}
	return nil
}

// ValidateRegistration checks a registration form.
func ValidateRegistration(d RegisterData) error {
	if strings.TrimSpace(d.Email) == "" {
		return apperr.New(apperr.KindValidation, 0, "Email is required.")
	}
	if !strings.Contains(d.Email, "@") {
		return apperr.New(apperr.KindValidation, 0, "Email is not valid.")
	}
	if len(d.Password) < 6 {
		return apperr.New(apperr.KindValidation, 0, "Password must be at least 6 characters.")
	}
	if strings.TrimSpace(d.FullName) == "" {
		return apperr.New(apperr.KindValidation, 0, "Full name is required.")
	}
	return nil
}

// ValidateReservation checks a create/edit reservation form.
func ValidateReservation(d models.CreateReservationData) error {
	if d.RoomID == "" {
		return apperr.New(apperr.KindValidation, 0, "A room must be selected.")
	}
	if _, err := time.Parse(dateLayout, d.Date); err != nil {
		return apperr.New(apperr.KindValidation, 0, "Date must be in YYYY-MM-DD format.")
	}
	start, err := time.Parse("15:04", d.StartTime)
	if err != nil {
		return apperr.New(apperr.KindValidation, 0, "Start time must be in HH:MM format.")
	}
	end, err := time.Parse("15:04", d.EndTime)
	if err != nil {
		return apperr.New(apperr.KindValidation, 0, "End time must be in HH:MM format.")
	}
	if !end.After(start) {
		return apperr.New(apperr.KindValidation, 0, "End time must be after start time.")
	}
	if strings.TrimSpace(d.Purpose) == "" {
		return apperr.New(apperr.KindValidation, 0, "Purpose is required.")
	}
	if d.Attendees < 1 {
		return apperr.New(apperr.KindValidation, 0, "At least one attendee is required.")
	}
	return nil
}

// ValidateRoom checks an admin room form.
func ValidateRoom(d models.RoomData) error {
	if strings.TrimSpace(d.Name) == "" {
		return apperr.New(apperr.KindValidation, 0, "Room name is required.")
	}
	if d.Capacity < 1 {
		return apperr.New(apperr.KindValidation, 0, "Capacity must be at least 1.")
	}
	if strings.TrimSpace(d.Location) == "" {
		return apperr.New(apperr.KindValidation, 0, "Location is required.")
	}
	return nil
}

// ValidateUser checks an admin user form.
func ValidateUser(d models.CreateUserData) error {
	if strings.TrimSpace(d.Email) == "" || !strings.Contains(d.Email, "@") {
		return apperr.New(apperr.KindValidation, 0, "A valid email is required.")
	}
	if len(d.Password) < 6 {
		return apperr.New(apperr.KindValidation, 0, "Password must be at least 6 characters.")
	}
	if strings.TrimSpace(d.FullName) == "" {
		return apperr.New(apperr.KindValidation, 0, "Full name is required.")
	}
	if d.Role != models.RoleUser && d.Role != models.RoleAdmin {
		return apperr.New(apperr.KindValidation, 0, "Role must be USER or ADMIN.")
	}
	return nil
}
