package booking

import (
	"context"

	"github.com/meetspace/roomclient/internal/gateway"
	"github.com/meetspace/roomclient/internal/models"
)

// ReservationClient calls the /api/reservations endpoints.
type ReservationClient struct {
	gw *gateway.Client
}

// NewReservationClient creates a reservation client over the gateway.
func NewReservationClient(gw *gateway.Client) *ReservationClient {
	return &ReservationClient{gw: gw}
}

// ListOwn fetches the caller's reservations.
func (c *ReservationClient) ListOwn(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	err := c.gw.Get(ctx, "/api/reservations", nil, &out)
	return out, err
}

// ListAll fetches every reservation (admin only).
func (c *ReservationClient) ListAll(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	err := c.gw.Get(ctx, "/api/admin/reservations", nil, &out)
	return out, err
}

// Get fetches one reservation by id.
func (c *ReservationClient) Get(ctx context.Context, id string) (models.Reservation, error) {
	var out models.Reservation
	err := c.gw.Get(ctx, "/api/reservations/"+id, nil, &out)
	return out, err
}

// Create books a room.
func (c *ReservationClient) Create(ctx context.Context, data models.CreateReservationData) (models.Reservation, error) {
	var out models.Reservation
	err := c.gw.Post(ctx, "/api/reservations", data, &out)
	return out, err
}

// Update changes a reservation's slot, purpose, attendee count or status.
func (c *ReservationClient) Update(ctx context.Context, id string, data models.UpdateReservationData) (models.Reservation, error) {
	var out models.Reservation
	err := c.gw.Put(ctx, "/api/reservations/"+id, data, &out)
	return out, err
}

// Delete removes a reservation.
func (c *ReservationClient) Delete(ctx context.Context, id string) error {
	return c.gw.Delete(ctx, "/api/reservations/"+id)
}
