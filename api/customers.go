package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"shopadmin/models"
)

// ListCustomers returns every storefront account.
// GET /users, envelope {data}.
func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var out models.DataEnvelope[[]models.Customer]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/users"}, &out)
	return out.Data, err
}

// GetCustomer returns one storefront account.
// GET /users/:id, envelope {data}.
func (c *Client) GetCustomer(ctx context.Context, userID models.ID) (models.Customer, error) {
	var out models.DataEnvelope[models.Customer]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/users/" + pathID(userID.String())}, &out)
	return out.Data, err
}

// CustomerOrders lists a customer's orders.
// GET /users/:id/orders, envelope {data}.
func (c *Client) CustomerOrders(ctx context.Context, userID models.ID) ([]models.Order, error) {
	var out models.DataEnvelope[[]models.Order]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: AdminBackend, path: "/users/" + pathID(userID.String()) + "/orders"}, &out)
	return out.Data, err
}

// SetCustomerStatus sets a customer Active or Inactive.
// PUT /users/:id/status.
func (c *Client) SetCustomerStatus(ctx context.Context, userID models.ID, status string) error {
	body := models.StatusRequest{Status: status}
	return c.do(ctx, request{method: fiber.MethodPut, backend: RetailBackend, path: "/users/" + pathID(userID.String()) + "/status", body: body}, nil)
}
