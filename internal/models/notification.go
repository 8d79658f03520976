package models

import "time"

// Notification is a message sent to one user by an admin. Read is one-way:
// once marked read it never returns to unread.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipientId"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CountUnread returns the number of unread notifications in the list.
func CountUnread(list []Notification) int {
	n := 0
	for _, notif := range list {
		if !notif.Read {
			n++
		}
	}
	return n
}
