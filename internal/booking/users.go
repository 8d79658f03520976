package booking

import (
	"context"

	"github.com/meetspace/roomclient/internal/gateway"
	"github.com/meetspace/roomclient/internal/models"
)

// UserClient calls the /api/users endpoints (admin only).
type UserClient struct {
	gw *gateway.Client
}

// NewUserClient creates a user client over the gateway.
func NewUserClient(gw *gateway.Client) *UserClient {
	return &UserClient{gw: gw}
}

// List fetches all user accounts.
func (c *UserClient) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.gw.Get(ctx, "/api/users", nil, &out)
	return out, err
}

// Get fetches one user by id.
func (c *UserClient) Get(ctx context.Context, id string) (models.User, error) {
	var out models.User
	err := c.gw.Get(ctx, "/api/users/"+id, nil, &out)
	return out, err
}

// Create adds a user account.
func (c *UserClient) Create(ctx context.Context, data models.CreateUserData) (models.User, error) {
	var out models.User
	err := c.gw.Post(ctx, "/api/users", data, &out)
	return out, err
}

// Update changes a user's email, name or role.
func (c *UserClient) Update(ctx context.Context, id string, data models.UpdateUserData) (models.User, error) {
	var out models.User
	err := c.gw.Put(ctx, "/api/users/"+id, data, &out)
	return out, err
}

// Delete removes a user account.
func (c *UserClient) Delete(ctx context.Context, id string) error {
	return c.gw.Delete(ctx, "/api/users/"+id)
}
