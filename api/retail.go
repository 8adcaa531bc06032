package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"shopadmin/models"
)

// ListRetailers returns every retailer.
// GET /retailers, envelope {data}.
func (c *Client) ListRetailers(ctx context.Context) ([]models.Retailer, error) {
	var out models.DataEnvelope[[]models.Retailer]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/retailers"}, &out)
	return out.Data, err
}

// GetRetailer returns one retailer.
// GET /retailers/:id, envelope {data}.
func (c *Client) GetRetailer(ctx context.Context, retailerID models.ID) (models.Retailer, error) {
	var out models.DataEnvelope[models.Retailer]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/retailers/" + pathID(retailerID.String())}, &out)
	return out.Data, err
}

// CreateRetailer registers a retailer and returns the stored record.
// POST /retailers, envelope {data}.
func (c *Client) CreateRetailer(ctx context.Context, req models.RetailerRequest) (models.Retailer, error) {
	var out models.DataEnvelope[models.Retailer]
	err := c.do(ctx, request{method: fiber.MethodPost, backend: RetailBackend, path: "/retailers", body: req}, &out)
	return out.Data, err
}

// SetRetailerStatus sets a retailer Active or Inactive.
// PUT /retailers/:id/status.
func (c *Client) SetRetailerStatus(ctx context.Context, retailerID models.ID, status string) error {
	body := models.StatusRequest{Status: status}
	return c.do(ctx, request{method: fiber.MethodPut, backend: RetailBackend, path: "/retailers/" + pathID(retailerID.String()) + "/status", body: body}, nil)
}

// RetailerOrders lists a retailer's orders.
// GET /retailers/:id/orders, envelope {data}.
func (c *Client) RetailerOrders(ctx context.Context, retailerID models.ID) ([]models.Order, error) {
	var out models.DataEnvelope[[]models.Order]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: AdminBackend, path: "/retailers/" + pathID(retailerID.String()) + "/orders"}, &out)
	return out.Data, err
}

// RetailerProducts lists a retailer's products.
// GET /retailers/:id/products, envelope {data}.
func (c *Client) RetailerProducts(ctx context.Context, retailerID models.ID) ([]models.Product, error) {
	var out models.DataEnvelope[[]models.Product]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: AdminBackend, path: "/retailers/" + pathID(retailerID.String()) + "/products"}, &out)
	return out.Data, err
}

// Tracking returns an order's tracking history, oldest first.
// GET /orders/:id/tracking, envelope {data}.
func (c *Client) Tracking(ctx context.Context, orderID models.ID) ([]models.TrackingEvent, error) {
	var out models.DataEnvelope[[]models.TrackingEvent]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/orders/" + pathID(orderID.String()) + "/tracking"}, &out)
	return out.Data, err
}

// AddTracking appends a tracking event.
// POST /orders/:id/tracking.
func (c *Client) AddTracking(ctx context.Context, orderID models.ID, req models.TrackingRequest) error {
	return c.do(ctx, request{method: fiber.MethodPost, backend: RetailBackend, path: "/orders/" + pathID(orderID.String()) + "/tracking", body: req}, nil)
}
