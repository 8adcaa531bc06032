package admin

import (
	"context"

	"go.uber.org/zap"

	"shopadmin/models"
)

const (
	roleFallback       = "Error adding role. Please try again."
	updateRoleFallback = "Error updating role. Please try again."
)

// AddRole creates a role after checking that neither its id nor its name
// is taken. A failed check is logged and does not block the create.
func (c *Console) AddRole(ctx context.Context, f RoleForm) error {
	taken := map[string]string{}
	if exists, err := c.api.RoleIDExists(ctx, f.RoleID); err != nil {
		c.log.Warn("check role id", zap.String("role_id", f.RoleID), zap.Error(err))
	} else if exists {
		taken["roleId"] = "Role ID already exists"
	}
	if exists, err := c.api.RoleNameExists(ctx, f.RoleName); err != nil {
		c.log.Warn("check role name", zap.String("role_name", f.RoleName), zap.Error(err))
	} else if exists {
		taken["roleName"] = "Role Name already exists"
	}
	if len(taken) > 0 {
		return &ValidationError{Fields: taken}
	}

	if _, err := c.api.AddRole(ctx, models.RoleRequest{RoleID: f.RoleID, RoleName: f.RoleName}); err != nil {
		c.log.Error("add role", zap.String("role_id", f.RoleID), zap.Error(err))
		return err
	}
	if _, err := c.Roles.Refresh(ctx); err != nil {
		c.log.Warn("refresh roles", zap.Error(err))
	}
	return nil
}

// UpdateRole renames a role and patches it locally.
func (c *Console) UpdateRole(ctx context.Context, f RoleUpdateForm) error {
	if _, err := c.api.UpdateRole(ctx, models.RoleRequest{RoleID: f.RoleID, RoleName: f.RoleName}); err != nil {
		c.log.Error("update role", zap.String("role_id", f.RoleID), zap.Error(err))
		return err
	}
	c.Roles.Update(models.ID(f.RoleID), func(r *models.Role) { r.RoleName = f.RoleName })
	return nil
}

func (c *Console) AddRoleModal() *Modal[RoleForm] {
	return NewModal(c.validate.Check, c.AddRole, roleFallback)
}

func (c *Console) UpdateRoleModal() *Modal[RoleUpdateForm] {
	return NewModal(c.validate.Check, c.UpdateRole, updateRoleFallback)
}

// UpdateRoleSeed prefills the rename dialog from a role row.
func UpdateRoleSeed(r models.Role) RoleUpdateForm {
	return RoleUpdateForm{RoleID: r.RoleID.String(), RoleName: r.RoleName}
}

func (c *Console) DeleteRoleConfirm() *Confirm[models.Role] {
	return NewConfirm("Role", c.Roles, c.api.DeleteRole)
}
