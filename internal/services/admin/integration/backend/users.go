package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/cashdesk/internal/datatable"
)

// minPasswordLength is the shortest password the reset form accepts.
const minPasswordLength = 8

// ListUsers returns every registered user.
func (c *Client) ListUsers(ctx context.Context) ([]datatable.Row, error) {
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/users",
		Path:   []string{"users"},
	})
	if err != nil {
		return nil, err
	}
	return normalizeRows(body, "users")
}

// GetUser loads one user.
func (c *Client) GetUser(ctx context.Context, userID string) (datatable.Row, error) {
	id, err := segment("user id", userID)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/users/{id}",
		Path:   []string{"users", id},
	})
	if err != nil {
		return nil, err
	}
	return normalizeObject(body, "user")
}

// ListUserTransactions returns a user's transactions. Grouped responses are
// flattened with the group name stored under GroupField.
func (c *Client) ListUserTransactions(ctx context.Context, userID string) ([]datatable.Row, error) {
	id, err := segment("user id", userID)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/users/{id}/transactions",
		Path:   []string{"users", id, "transactions"},
	})
	if err != nil {
		return nil, err
	}
	return normalizeTransactions(body)
}

// ResetUserPassword sets a new password for a user.
func (c *Client) ResetUserPassword(ctx context.Context, userID string, newPassword string) error {
	id, err := segment("user id", userID)
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(newPassword)) < minPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	payload, err := newBody().set("newPassword", newPassword).bytes()
	if err != nil {
		return err
	}
	_, err = c.do(ctx, request{
		Method: http.MethodPatch,
		Route:  "/users/{id}/reset-password",
		Path:   []string{"users", id, "reset-password"},
		Body:   payload,
	})
	return err
}
