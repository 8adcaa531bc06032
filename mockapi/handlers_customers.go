package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/models"
	"shopadmin/utils"
)

// HandleListCustomers returns {data: customers}.
// GET /users
func (s *server) HandleListCustomers(c *fiber.Ctx) error {
	customers := s.db.Customers()
	if customers == nil {
		customers = []models.Customer{}
	}
	return c.JSON(fiber.Map{"data": customers})
}

// HandleGetCustomer returns {data: customer}.
// GET /users/:id
func (s *server) HandleGetCustomer(c *fiber.Ctx) error {
	cust, err := s.db.Customer(models.ID(c.Params("id")))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(fiber.Map{"data": cust})
}

// HandleCustomerOrders returns {data: orders}.
// GET /users/:id/orders
func (s *server) HandleCustomerOrders(c *fiber.Ctx) error {
	orders, err := s.db.CustomerOrders(models.ID(c.Params("id")))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(fiber.Map{"data": orders})
}

// HandleSetCustomerStatus sets a customer Active or Inactive.
// PUT /users/:id/status
func (s *server) HandleSetCustomerStatus(c *fiber.Ctx) error {
	var req models.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Status != utils.StatusActive && req.Status != utils.StatusInactive {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid status")
	}
	if err := s.db.SetCustomerStatus(models.ID(c.Params("id")), req.Status); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	return messageJSON(c, "Status updated successfully")
}
