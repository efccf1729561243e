package client

import (
	"context"
	"log/slog"
	"net/http"

	"retrolog/internal/models"
	"retrolog/internal/observability"
)

// Register creates a new account. Any transport or backend failure is logged
// and surfaced as nil, matching the repository boundary contract.
func (c *Client) Register(ctx context.Context, name, email, password string) *models.AuthResponse {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}

	var resp models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/register", body, "", &resp); err != nil {
		observability.Logger.Error("registration failed",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &resp
}

// Login authenticates an existing account. Failures are logged and surfaced
// as nil; invalid credentials are indistinguishable from transport errors
// at this boundary.
func (c *Client) Login(ctx context.Context, email, password string) *models.AuthResponse {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", body, "", &resp); err != nil {
		observability.Logger.Error("login failed",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &resp
}
