package mockapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shopadmin/models"
	"shopadmin/utils"
)

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func messageJSON(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// HandleListAdminUsers returns the admin accounts wrapped as [[users], []].
// POST /get_admin_user
func (s *server) HandleListAdminUsers(c *fiber.Ctx) error {
	return c.JSON([]any{s.db.Users(), []any{}})
}

// HandleRegisterAdminUser creates an admin account.
// POST /admin_user_registration
func (s *server) HandleRegisterAdminUser(c *fiber.Ctx) error {
	var req models.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "userId, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("hash password", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	user := models.AdminUser{
		UserID:   models.ID(req.UserID),
		UserName: req.UserName,
		Email:    req.Email,
		Status:   utils.StatusInactive,
	}
	if err := s.db.AddUser(user, hash); err != nil {
		if errors.Is(err, errExists) {
			// The real service reports this as a 200 with a message.
			return messageJSON(c, "User already exists")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to register user")
	}
	return messageJSON(c, "User registered successfully")
}

// HandleUpdateAdminUser changes an account's name, email and password.
// PUT /admin_user_update
func (s *server) HandleUpdateAdminUser(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var hash []byte
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.log.Error("hash password", zap.Error(err))
			return errorJSON(c, fiber.StatusInternalServerError, "Failed to update user")
		}
		hash = h
	}
	if err := s.db.UpdateUser(models.ID(req.UserID), req.UserName, req.Email, hash); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	return messageJSON(c, "User updated successfully")
}

// HandleDeleteAdminUser removes an admin account.
// DELETE /delete_user/:id
func (s *server) HandleDeleteAdminUser(c *fiber.Ctx) error {
	if err := s.db.DeleteUser(models.ID(c.Params("id"))); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	return messageJSON(c, "User deleted successfully")
}

// HandleUpdateAdminUserStatus sets an account Active or Inactive.
// POST /update_admin_user_status
func (s *server) HandleUpdateAdminUserStatus(c *fiber.Ctx) error {
	var req models.UserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Status != utils.StatusActive && req.Status != utils.StatusInactive {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid status")
	}
	if err := s.db.SetUserStatus(models.ID(req.UserID), req.Status); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	return messageJSON(c, "Status updated successfully")
}

// HandleGetUserRoles lists the role names held by one account.
// GET /get_user_roles/:id
func (s *server) HandleGetUserRoles(c *fiber.Ctx) error {
	roles, err := s.db.UserRoles(models.ID(c.Params("id")))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	out := make([]models.UserRole, 0, len(roles))
	for _, r := range roles {
		out = append(out, models.UserRole{RoleName: r})
	}
	return c.JSON(out)
}

// HandleAssignRole grants a role to an account.
// POST /add_admin_role_assign
func (s *server) HandleAssignRole(c *fiber.Ctx) error {
	var req models.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Role) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Role is required")
	}
	if err := s.db.AssignRole(models.ID(req.UserID), req.Role); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "User or role not found")
	}
	return messageJSON(c, "Role assigned successfully")
}
