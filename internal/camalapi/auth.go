package camalapi

import (
	"context"
	"net/http"

	"github.com/edvin/camal/internal/model"
)

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.Envelope[model.Session], error) {
	var env model.Envelope[model.Session]
	if err := c.Do(ctx, http.MethodPost, "auth/login", nil, req, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Profile returns the user the access token in ctx belongs to.
func (c *Client) Profile(ctx context.Context) (*model.Envelope[model.User], error) {
	var env model.Envelope[model.User]
	if err := c.Do(ctx, http.MethodGet, "auth/profile", nil, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
