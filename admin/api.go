package admin

import (
	"context"

	"shopadmin/api"
	"shopadmin/models"
)

// API is the set of backend calls the console needs. *api.Client
// satisfies it; tests substitute a fake.
type API interface {
	ListAdminUsers(ctx context.Context) ([]models.AdminUser, error)
	RegisterAdminUser(ctx context.Context, req models.RegisterUserRequest) (models.MessageResponse, error)
	UpdateAdminUser(ctx context.Context, req models.UpdateUserRequest) (models.MessageResponse, error)
	DeleteAdminUser(ctx context.Context, userID models.ID) error
	UpdateAdminUserStatus(ctx context.Context, userID models.ID, status string) error
	UserRoles(ctx context.Context, userID models.ID) ([]models.UserRole, error)
	AssignRole(ctx context.Context, userID models.ID, role string) error

	ListRoles(ctx context.Context) ([]models.Role, error)
	AddRole(ctx context.Context, req models.RoleRequest) (models.MessageResponse, error)
	UpdateRole(ctx context.Context, req models.RoleRequest) (models.MessageResponse, error)
	DeleteRole(ctx context.Context, roleID models.ID) error
	RoleIDExists(ctx context.Context, roleID string) (bool, error)
	RoleNameExists(ctx context.Context, roleName string) (bool, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	AddCategory(ctx context.Context, req models.CategoryRequest) (models.MessageResponse, error)
	DeleteCategory(ctx context.Context, catID models.ID) error
	ListSubCategories(ctx context.Context) ([]models.SubCategory, error)
	AddSubCategory(ctx context.Context, req models.SubCategoryRequest) (models.MessageResponse, error)
	DeleteSubCategory(ctx context.Context, subCatID models.ID) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID models.ID) (models.Product, error)

	ListRetailers(ctx context.Context) ([]models.Retailer, error)
	GetRetailer(ctx context.Context, retailerID models.ID) (models.Retailer, error)
	CreateRetailer(ctx context.Context, req models.RetailerRequest) (models.Retailer, error)
	SetRetailerStatus(ctx context.Context, retailerID models.ID, status string) error
	RetailerOrders(ctx context.Context, retailerID models.ID) ([]models.Order, error)
	RetailerProducts(ctx context.Context, retailerID models.ID) ([]models.Product, error)
	Tracking(ctx context.Context, orderID models.ID) ([]models.TrackingEvent, error)
	AddTracking(ctx context.Context, orderID models.ID, req models.TrackingRequest) error

	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, userID models.ID) (models.Customer, error)
	CustomerOrders(ctx context.Context, userID models.ID) ([]models.Order, error)
	SetCustomerStatus(ctx context.Context, userID models.ID, status string) error
}

var _ API = (*api.Client)(nil)
