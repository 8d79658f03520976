package booking

import (
	"context"

	"github.com/meetspace/roomclient/internal/gateway"
	"github.com/meetspace/roomclient/internal/models"
)

// NotificationClient calls the /api/notifications endpoints.
type NotificationClient struct {
	gw *gateway.Client
}

// NewNotificationClient creates a notification client over the gateway.
func NewNotificationClient(gw *gateway.Client) *NotificationClient {
	return &NotificationClient{gw: gw}
}

// ListOwn fetches the caller's notifications, newest first.
func (c *NotificationClient) ListOwn(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	err := c.gw.Get(ctx, "/api/notifications", nil, &out)
	return out, err
}

// MarkRead marks one notification as read. Read is one-way on the server.
func (c *NotificationClient) MarkRead(ctx context.Context, id string) error {
	return c.gw.Put(ctx, "/api/notifications/"+id+"/read", nil, nil)
}

// MarkAllRead marks every notification of the caller as read.
func (c *NotificationClient) MarkAllRead(ctx context.Context) error {
	return c.gw.Put(ctx, "/api/notifications/read-all", nil, nil)
}

type createNotificationBody struct {
	Message string `json:"message"`
}

// Send creates a notification for the given user (admin only).
func (c *NotificationClient) Send(ctx context.Context, userID, message string) (models.Notification, error) {
	var out models.Notification
	err := c.gw.Post(ctx, "/api/notifications/"+userID, createNotificationBody{Message: message}, &out)
	return out, err
}
