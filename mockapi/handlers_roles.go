package mockapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopadmin/models"
)

// HandleListRoles returns the roles as a bare array.
// GET /get_admin_role
func (s *server) HandleListRoles(c *fiber.Ctx) error {
	roles := s.db.Roles()
	if roles == nil {
		roles = []models.Role{}
	}
	return c.JSON(roles)
}

// HandleAddRole creates a role.
// POST /add_admin_role
func (s *server) HandleAddRole(c *fiber.Ctx) error {
	var req models.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.RoleID) == "" || strings.TrimSpace(req.RoleName) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "roleId and roleName are required")
	}
	if s.db.RoleNameExists(req.RoleName) {
		return errorJSON(c, fiber.StatusConflict, "Role Name already exists")
	}
	if err := s.db.AddRole(models.Role{RoleID: models.ID(req.RoleID), RoleName: req.RoleName}); err != nil {
		if errors.Is(err, errExists) {
			return errorJSON(c, fiber.StatusConflict, "Role ID already exists")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to add role")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Role added successfully"})
}

// HandleUpdateRole renames a role.
// PUT /update_admin_role
func (s *server) HandleUpdateRole(c *fiber.Ctx) error {
	var req models.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.RoleName) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "roleName is required")
	}
	if err := s.db.UpdateRole(models.ID(req.RoleID), req.RoleName); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Role not found")
	}
	return messageJSON(c, "Role updated successfully")
}

// HandleDeleteRole removes a role.
// DELETE /delete_admin_role/:id
func (s *server) HandleDeleteRole(c *fiber.Ctx) error {
	if err := s.db.DeleteRole(models.ID(c.Params("id"))); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Role not found")
	}
	return messageJSON(c, "Role deleted successfully")
}

// HandleRoleIDExists reports whether a role id is taken.
// GET /check_role_id_exists?roleId=
func (s *server) HandleRoleIDExists(c *fiber.Ctx) error {
	return c.JSON(models.ExistsResponse{Exists: s.db.RoleIDExists(c.Query("roleId"))})
}

// HandleRoleNameExists reports whether a role name is taken.
// GET /check_role_name_exists?roleName=
func (s *server) HandleRoleNameExists(c *fiber.Ctx) error {
	return c.JSON(models.ExistsResponse{Exists: s.db.RoleNameExists(c.Query("roleName"))})
}
