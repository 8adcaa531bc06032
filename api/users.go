package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"shopadmin/models"
)

// ListAdminUsers returns every admin account.
// POST /get_admin_user, envelope [[users...]].
func (c *Client) ListAdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	var out models.NestedList[models.AdminUser]
	err := c.do(ctx, request{method: fiber.MethodPost, backend: AdminBackend, path: "/get_admin_user"}, &out)
	if err != nil {
		return nil, err
	}
	return out.First(), nil
}

// RegisterAdminUser creates an admin account. A 200 response may still carry
// a business refusal such as "User already exists" in Message.
// POST /admin_user_registration.
func (c *Client) RegisterAdminUser(ctx context.Context, req models.RegisterUserRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: fiber.MethodPost, backend: AdminBackend, path: "/admin_user_registration", body: req}, &out)
	return out, err
}

// UpdateAdminUser changes name, email and password.
// PUT /admin_user_update.
func (c *Client) UpdateAdminUser(ctx context.Context, req models.UpdateUserRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: fiber.MethodPut, backend: AdminBackend, path: "/admin_user_update", body: req}, &out)
	return out, err
}

// DeleteAdminUser removes an admin account.
// DELETE /delete_user/:id.
func (c *Client) DeleteAdminUser(ctx context.Context, userID models.ID) error {
	return c.do(ctx, request{method: fiber.MethodDelete, backend: AdminBackend, path: "/delete_user/" + pathID(userID.String())}, nil)
}

// UpdateAdminUserStatus sets an account Active or Inactive.
// POST /update_admin_user_status.
func (c *Client) UpdateAdminUserStatus(ctx context.Context, userID models.ID, status string) error {
	body := models.UserStatusRequest{UserID: userID.String(), Status: status}
	return c.do(ctx, request{method: fiber.MethodPost, backend: AdminBackend, path: "/update_admin_user_status", body: body}, nil)
}

// UserRoles lists the roles assigned to one admin account.
// GET /get_user_roles/:id, bare array.
func (c *Client) UserRoles(ctx context.Context, userID models.ID) ([]models.UserRole, error) {
	var out []models.UserRole
	err := c.do(ctx, request{method: fiber.MethodGet, backend: AdminBackend, path: "/get_user_roles/" + pathID(userID.String())}, &out)
	return out, err
}

// AssignRole grants a role to an admin account.
// POST /add_admin_role_assign.
func (c *Client) AssignRole(ctx context.Context, userID models.ID, role string) error {
	body := models.AssignRoleRequest{UserID: userID.String(), Role: role}
	return c.do(ctx, request{method: fiber.MethodPost, backend: AdminBackend, path: "/add_admin_role_assign", body: body}, nil)
}
