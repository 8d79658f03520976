package models

import "time"

// ReservationStatus is the server-side state of a reservation.
// CANCELLED is terminal: the backend exposes no transition out of it.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation is a booking of a room for a time interval on one day.
// RoomName and UserName are denormalized by the server for display.
type Reservation struct {
	ID        string            `json:"id"`
	RoomID    string            `json:"roomId"`
	RoomName  string            `json:"roomName"`
	UserID    string            `json:"userId"`
	UserName  string            `json:"userName"`
	Date      string            `json:"date"`      // YYYY-MM-DD
	StartTime string            `json:"startTime"` // HH:MM
	EndTime   string            `json:"endTime"`   // HH:MM
	Status    ReservationStatus `json:"status"`
	Purpose   string            `json:"purpose"`
	Attendees int               `json:"attendees"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// CreateReservationData is the body for POST /api/reservations.
type CreateReservationData struct {
	RoomID    string `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Purpose   string `json:"purpose"`
	Attendees int    `json:"attendees"`
}

// UpdateReservationData is the body for PUT /api/reservations/{id}.
// Empty fields are omitted so the server keeps the existing values.
type UpdateReservationData struct {
	Date      string            `json:"date,omitempty"`
	StartTime string            `json:"startTime,omitempty"`
	EndTime   string            `json:"endTime,omitempty"`
	Purpose   string            `json:"purpose,omitempty"`
	Attendees int               `json:"attendees,omitempty"`
	Status    ReservationStatus `json:"status,omitempty"`
}
