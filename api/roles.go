package api

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"shopadmin/models"
)

// ListRoles returns every admin role.
// GET /get_admin_role, bare array.
func (c *Client) ListRoles(ctx context.Context) ([]models.Role, error) {
	var out []models.Role
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/get_admin_role"}, &out)
	return out, err
}

// AddRole creates a role.
// POST /add_admin_role.
func (c *Client) AddRole(ctx context.Context, req models.RoleRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: fiber.MethodPost, backend: RetailBackend, path: "/add_admin_role", body: req}, &out)
	return out, err
}

// UpdateRole renames a role.
// PUT /update_admin_role.
func (c *Client) UpdateRole(ctx context.Context, req models.RoleRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: fiber.MethodPut, backend: AdminBackend, path: "/update_admin_role", body: req}, &out)
	return out, err
}

// DeleteRole removes a role.
// DELETE /delete_admin_role/:id.
func (c *Client) DeleteRole(ctx context.Context, roleID models.ID) error {
	return c.do(ctx, request{method: fiber.MethodDelete, backend: RetailBackend, path: "/delete_admin_role/" + pathID(roleID.String())}, nil)
}

// RoleIDExists asks whether a role id is taken.
// GET /check_role_id_exists?roleId=.
func (c *Client) RoleIDExists(ctx context.Context, roleID string) (bool, error) {
	var out models.ExistsResponse
	q := url.Values{"roleId": {roleID}}
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/check_role_id_exists", query: q}, &out)
	return out.Exists, err
}

// RoleNameExists asks whether a role name is taken.
// GET /check_role_name_exists?roleName=.
func (c *Client) RoleNameExists(ctx context.Context, roleName string) (bool, error) {
	var out models.ExistsResponse
	q := url.Values{"roleName": {roleName}}
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/check_role_name_exists", query: q}, &out)
	return out.Exists, err
}
