package mockapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopadmin/models"
	"shopadmin/utils"
)

// HandleListRetailers returns {data: retailers}.
// GET /retailers
func (s *server) HandleListRetailers(c *fiber.Ctx) error {
	retailers := s.db.Retailers()
	if retailers == nil {
		retailers = []models.Retailer{}
	}
	return c.JSON(fiber.Map{"data": retailers})
}

// HandleCreateRetailer registers a retailer.
// POST /retailers
func (s *server) HandleCreateRetailer(c *fiber.Ctx) error {
	var req models.RetailerRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.RetailerName) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Retailer_Name is required")
	}
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "A valid email is required")
	}
	r := s.db.AddRetailer(models.Retailer{
		RetailerID:   models.ID("RT-" + uuid.NewString()[:8]),
		RetailerName: strings.TrimSpace(req.RetailerName),
		Email:        req.Email,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": r})
}

// HandleGetRetailer returns {data: retailer}.
// GET /retailers/:id
func (s *server) HandleGetRetailer(c *fiber.Ctx) error {
	r, err := s.db.Retailer(models.ID(c.Params("id")))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Retailer not found")
	}
	return c.JSON(fiber.Map{"data": r})
}

// HandleSetRetailerStatus sets a retailer Active or Inactive.
// PUT /retailers/:id/status
func (s *server) HandleSetRetailerStatus(c *fiber.Ctx) error {
	var req models.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Status != utils.StatusActive && req.Status != utils.StatusInactive {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid status")
	}
	if err := s.db.SetRetailerStatus(models.ID(c.Params("id")), req.Status); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Retailer not found")
	}
	return messageJSON(c, "Retailer status updated")
}

// HandleRetailerOrders returns {data: orders}.
// GET /retailers/:id/orders
func (s *server) HandleRetailerOrders(c *fiber.Ctx) error {
	orders, err := s.db.RetailerOrders(models.ID(c.Params("id")))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Retailer not found")
	}
	return c.JSON(fiber.Map{"data": orders})
}

// HandleRetailerProducts returns {data: products}.
// GET /retailers/:id/products
func (s *server) HandleRetailerProducts(c *fiber.Ctx) error {
	products, err := s.db.RetailerProducts(models.ID(c.Params("id")))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Retailer not found")
	}
	return c.JSON(fiber.Map{"data": products})
}

// HandleGetTracking returns {data: events}.
// GET /orders/:id/tracking
func (s *server) HandleGetTracking(c *fiber.Ctx) error {
	events, err := s.db.Tracking(models.ID(c.Params("id")))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Order not found")
	}
	return c.JSON(fiber.Map{"data": events})
}

// HandleAddTracking appends a tracking event and moves the order to its status.
// POST /orders/:id/tracking
func (s *server) HandleAddTracking(c *fiber.Ctx) error {
	var req models.TrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !models.IsTrackingStatus(req.Status) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid tracking status")
	}
	if err := s.db.AddTracking(models.ID(c.Params("id")), req.Status, req.Notes); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Order not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Tracking updated successfully"})
}
