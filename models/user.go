package models

// AdminUser is a back-office account listed on the users screen. Roles holds
// the comma-joined role names resolved per user.
type AdminUser struct {
	UserID       ID        `json:"userId"`
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	Roles        string    `json:"roles,omitempty"`
	RegisteredAt Timestamp `json:"Registred_at"`
}

func (u AdminUser) Key() ID { return u.UserID }

// Role is an admin role definition.
type Role struct {
	RoleID   ID     `json:"roleId"`
	RoleName string `json:"roleName"`
}

func (r Role) Key() ID { return r.RoleID }

// UserRole is one entry of GET /get_user_roles/:id.
type UserRole struct {
	RoleName string `json:"roleName"`
}

// Customer is a storefront account as seen by the admin.
type Customer struct {
	UserID    ID        `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Country   string    `json:"country,omitempty"`
	Status    string    `json:"status"`
	CreatedAt Timestamp `json:"created_at"`
}

func (c Customer) Key() ID { return c.UserID }

// --- Request bodies ---

// RegisterUserRequest is the body of POST /admin_user_registration.
type RegisterUserRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PUT /admin_user_update.
type UpdateUserRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserStatusRequest is the body of POST /update_admin_user_status.
type UserStatusRequest struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// AssignRoleRequest is the body of POST /add_admin_role_assign.
type AssignRoleRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// StatusRequest is the body of the retailer and customer status endpoints.
type StatusRequest struct {
	Status string `json:"status"`
}
