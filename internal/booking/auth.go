// Package booking holds the typed clients for the reservation backend, one
// per resource. They are thin request/response wrappers over the gateway and
// add no error semantics of their own.
package booking

import (
	"context"

	"github.com/meetspace/roomclient/internal/gateway"
	"github.com/meetspace/roomclient/internal/models"
)

// Credentials is the body for POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterData is the body for POST /auth/register.
type RegisterData struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	FullName string      `json:"fullName"`
	Role     models.Role `json:"role"`
}

// AuthResponse is the token/identity pair returned by login and register.
type AuthResponse struct {
	Token string          `json:"token"`
	User  models.Identity `json:"user"`
}

// AuthClient calls the /auth endpoints.
type AuthClient struct {
	gw *gateway.Client
}

// NewAuthClient creates an auth client over the gateway.
func NewAuthClient(gw *gateway.Client) *AuthClient {
	return &AuthClient{gw: gw}
}

// Login exchanges credentials for a token/identity pair.
func (c *AuthClient) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var out AuthResponse
	err := c.gw.PostCredentials(ctx, "/auth/login", creds, &out)
	return out, err
}

// Register creates an account and returns its token/identity pair.
func (c *AuthClient) Register(ctx context.Context, data RegisterData) (AuthResponse, error) {
	var out AuthResponse
	err := c.gw.PostCredentials(ctx, "/auth/register", data, &out)
	return out, err
}

// Me returns the identity the backend associates with the current token.
// Used to revalidate a rehydrated session.
func (c *AuthClient) Me(ctx context.Context) (models.Identity, error) {
	var out models.Identity
	err := c.gw.Get(ctx, "/auth/me", nil, &out)
	return out, err
}
