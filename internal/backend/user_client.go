package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ngmaloney/wardrobe-terminal/internal/models"
)

// CreateUser registers a user after a successful sign-in
func (c *Client) CreateUser(ctx context.Context, user NewUser) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/users", user)
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", apiError(resp)
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return payload.Message, nil
}

// UpdatePreference changes the stored temperature preference
func (c *Client) UpdatePreference(ctx context.Context, email string, pref models.Preference) error {
	if email == "" {
		return ErrNoSession
	}

	body := struct {
		Email      string            `json:"email"`
		Preference models.Preference `json:"preference"`
	}{email, pref}

	req, err := c.newRequest(ctx, http.MethodPut, "/users/preference", body)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("failed to update preference: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	return nil
}

// DeleteUser removes the backend user record
func (c *Client) DeleteUser(ctx context.Context, email string) error {
	if email == "" {
		return ErrNoSession
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/users/delete/"+url.PathEscape(email), nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return apiError(resp)
	}

	return nil
}
