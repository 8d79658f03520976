package booking

import (
	"context"

	"github.com/meetspace/roomclient/internal/gateway"
	"github.com/meetspace/roomclient/internal/models"
)

// RoomClient calls the /api/rooms endpoints.
type RoomClient struct {
	gw *gateway.Client
}

// NewRoomClient creates a room client over the gateway.
func NewRoomClient(gw *gateway.Client) *RoomClient {
	return &RoomClient{gw: gw}
}

// List fetches all rooms with their availability.
func (c *RoomClient) List(ctx context.Context) ([]models.Room, error) {
	var out []models.Room
	err := c.gw.Get(ctx, "/api/rooms", nil, &out)
	return out, err
}

// Get fetches one room by id.
func (c *RoomClient) Get(ctx context.Context, id string) (models.Room, error) {
	var out models.Room
	err := c.gw.Get(ctx, "/api/rooms/"+id, nil, &out)
	return out, err
}

// Create adds a room (admin only).
func (c *RoomClient) Create(ctx context.Context, data models.RoomData) (models.Room, error) {
	var out models.Room
	err := c.gw.Post(ctx, "/api/rooms", data, &out)
	return out, err
}

// Update replaces a room's attributes (admin only).
func (c *RoomClient) Update(ctx context.Context, id string, data models.RoomData) (models.Room, error) {
	var out models.Room
	err := c.gw.Put(ctx, "/api/rooms/"+id, data, &out)
	return out, err
}

// Delete removes a room (admin only).
func (c *RoomClient) Delete(ctx context.Context, id string) error {
	return c.gw.Delete(ctx, "/api/rooms/"+id)
}
