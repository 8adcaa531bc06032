package admin

import (
	"context"

	"go.uber.org/zap"

	"shopadmin/models"
	"shopadmin/utils"
)

// Backend messages that mean success.
const (
	MsgUserRegistered     = "User registered successfully"
	MsgSubCategoryCreated = "Sub Category Created Successfully"
	registerFallback      = "Error registering user. Please try again."
	updateUserFallback    = "Error updating user. Please try again."
	loadUsersFallback     = "Failed to load users"
)

// RegisterUser creates an admin account. Only the exact success message
// counts; any other message is a business error. The new user is added
// locally as Inactive.
func (c *Console) RegisterUser(ctx context.Context, f UserForm) error {
	resp, err := c.api.RegisterAdminUser(ctx, models.RegisterUserRequest{
		UserID:   f.UserID,
		UserName: f.UserName,
		Email:    f.Email,
		Password: f.Password,
	})
	if err != nil {
		c.log.Error("register user", zap.String("user_id", f.UserID), zap.Error(err))
		return err
	}
	if resp.Message != MsgUserRegistered {
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		if msg == "" {
			msg = registerFallback
		}
		return &BusinessError{Message: msg}
	}
	c.Users.Insert(models.AdminUser{
		UserID:       models.ID(f.UserID),
		UserName:     f.UserName,
		Email:        f.Email,
		Status:       utils.StatusInactive,
		RegisteredAt: models.NewTimestamp(c.now()),
	})
	return nil
}

// UpdateUser edits an admin account and patches its name and email.
func (c *Console) UpdateUser(ctx context.Context, f UserUpdateForm) error {
	_, err := c.api.UpdateAdminUser(ctx, models.UpdateUserRequest{
		UserID:   f.UserID,
		UserName: f.UserName,
		Email:    f.Email,
		Password: f.Password,
	})
	if err != nil {
		c.log.Error("update user", zap.String("user_id", f.UserID), zap.Error(err))
		return err
	}
	c.Users.Update(models.ID(f.UserID), func(u *models.AdminUser) {
		u.UserName = f.UserName
		u.Email = f.Email
	})
	return nil
}

// AddUserModal is the registration dialog.
func (c *Console) AddUserModal() *Modal[UserForm] {
	return NewModal(c.validate.Check, c.RegisterUser, registerFallback)
}

// UpdateUserModal is the edit dialog; open it seeded from the row.
func (c *Console) UpdateUserModal() *Modal[UserUpdateForm] {
	return NewModal(c.validate.Check, c.UpdateUser, updateUserFallback)
}

// UpdateUserSeed prefills the edit dialog from a user row.
func UpdateUserSeed(u models.AdminUser) UserUpdateForm {
	return UserUpdateForm{UserID: u.UserID.String(), UserName: u.UserName, Email: u.Email}
}

// DeleteUserConfirm is the delete confirmation for admin users.
func (c *Console) DeleteUserConfirm() *Confirm[models.AdminUser] {
	return NewConfirm("User", c.Users, c.api.DeleteAdminUser)
}

// BeginUserToggle flips a user's status locally.
func (c *Console) BeginUserToggle(id models.ID) (*Toggle, error) {
	return beginToggle(c.Users, id,
		func(u *models.AdminUser) *string { return &u.Status },
		c.api.UpdateAdminUserStatus, c.log)
}
