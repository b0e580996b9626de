package api

import (
	"context"

	"storefront-gateway/internal/domain"
)

func (c *Client) Login(ctx context.Context, in domain.LoginInput) (*domain.LoginResult, error) {
	var result domain.LoginResult
	if err := c.post(ctx, "/auth/login", in, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (*domain.LoginResult, error) {
	var result domain.LoginResult
	if err := c.post(ctx, "/auth/register", in, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me fetches the profile for the currently attached token.
func (c *Client) Me(ctx context.Context) (*domain.Customer, error) {
	var customer domain.Customer
	if err := c.get(ctx, "/auth/me", nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Logout invalidates the remote session for the attached token.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}
