package admin

import (
	"context"
	"errors"
	"sync"

	"shopadmin/api"
	"shopadmin/models"
)

var errOffline = &api.TransportError{Endpoint: "test", Err: errors.New("connection refused")}

// fakeAPI is an in-memory API. Fields ending in Err make the matching call
// fail; calls counts every invocation by method name.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	users     []models.AdminUser
	userRoles map[models.ID][]models.UserRole
	roles     []models.Role
	cats      []models.Category
	subs      []models.SubCategory
	products  []models.Product
	retailers []models.Retailer
	customers []models.Customer
	orders    map[models.ID][]models.Order
	tracking  map[models.ID][]models.TrackingEvent

	registerMsg    string
	subCategoryMsg string
	roleIDTaken    bool
	roleNameTaken  bool

	registerErr  error
	deleteErr    error
	statusErr    error
	assignErr    error
	userRolesErr map[models.ID]error
	existsErr    error
	retailerErr  error
	ordersErr    error
	productErr   error
	trackingErr  error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls: map[string]int{},
		users: []models.AdminUser{
			{UserID: "U1", UserName: "asha", Email: "asha@example.com", Status: "Active"},
			{UserID: "U2", UserName: "bilal", Email: "bilal@example.com", Status: "Inactive"},
			{UserID: "U3", UserName: "chen", Email: "chen@example.com", Status: "Active"},
		},
		userRoles: map[models.ID][]models.UserRole{
			"U1": {{RoleName: "Super Admin"}},
			"U3": {{RoleName: "Support"}, {RoleName: "Catalog Manager"}},
		},
		roles: []models.Role{{RoleID: "R1", RoleName: "Super Admin"}, {RoleID: "R2", RoleName: "Support"}},
		cats:  []models.Category{{CatID: "1", CatName: "Electronics"}, {CatID: "2", CatName: "Fashion"}},
		subs:  []models.SubCategory{{SubCatID: "1", SubCatName: "Phones", CatID: "1"}},
		retailers: []models.Retailer{
			{RetailerID: "RT1", RetailerName: "Northwind", Status: "Active"},
			{RetailerID: "RT2", RetailerName: "Contoso", Status: "Inactive"},
		},
		customers: []models.Customer{
			{UserID: "C1", Username: "dmitri", Status: "Active"},
			{UserID: "C2", Username: "elena", Status: "Inactive"},
		},
		orders: map[models.ID][]models.Order{
			"RT1": {{OrderID: "O1"}, {OrderID: "O2"}},
			"C1":  {{OrderID: "O1"}},
		},
		tracking:       map[models.ID][]models.TrackingEvent{"O1": {{Status: "Pending"}}},
		registerMsg:    MsgUserRegistered,
		subCategoryMsg: MsgSubCategoryCreated,
		userRolesErr:   map[models.ID]error{},
	}
}

func (f *fakeAPI) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) ListAdminUsers(context.Context) ([]models.AdminUser, error) {
	f.hit("ListAdminUsers")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.AdminUser(nil), f.users...), nil
}

func (f *fakeAPI) RegisterAdminUser(_ context.Context, req models.RegisterUserRequest) (models.MessageResponse, error) {
	f.hit("RegisterAdminUser")
	if f.registerErr != nil {
		return models.MessageResponse{}, f.registerErr
	}
	return models.MessageResponse{Message: f.registerMsg}, nil
}

func (f *fakeAPI) UpdateAdminUser(context.Context, models.UpdateUserRequest) (models.MessageResponse, error) {
	f.hit("UpdateAdminUser")
	return models.MessageResponse{Message: "User updated successfully"}, nil
}

func (f *fakeAPI) DeleteAdminUser(context.Context, models.ID) error {
	f.hit("DeleteAdminUser")
	return f.deleteErr
}

func (f *fakeAPI) UpdateAdminUserStatus(context.Context, models.ID, string) error {
	f.hit("UpdateAdminUserStatus")
	return f.statusErr
}

func (f *fakeAPI) UserRoles(_ context.Context, id models.ID) ([]models.UserRole, error) {
	f.hit("UserRoles")
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.userRolesErr[id]; err != nil {
		return nil, err
	}
	return f.userRoles[id], nil
}

func (f *fakeAPI) AssignRole(context.Context, models.ID, string) error {
	f.hit("AssignRole")
	return f.assignErr
}

func (f *fakeAPI) ListRoles(context.Context) ([]models.Role, error) {
	f.hit("ListRoles")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Role(nil), f.roles...), nil
}

func (f *fakeAPI) AddRole(_ context.Context, req models.RoleRequest) (models.MessageResponse, error) {
	f.hit("AddRole")
	f.mu.Lock()
	f.roles = append(f.roles, models.Role{RoleID: models.ID(req.RoleID), RoleName: req.RoleName})
	f.mu.Unlock()
	return models.MessageResponse{Message: "Role added successfully"}, nil
}

func (f *fakeAPI) UpdateRole(context.Context, models.RoleRequest) (models.MessageResponse, error) {
	f.hit("UpdateRole")
	return models.MessageResponse{Message: "Role updated successfully"}, nil
}

func (f *fakeAPI) DeleteRole(context.Context, models.ID) error {
	f.hit("DeleteRole")
	return f.deleteErr
}

func (f *fakeAPI) RoleIDExists(context.Context, string) (bool, error) {
	f.hit("RoleIDExists")
	return f.roleIDTaken, f.existsErr
}

func (f *fakeAPI) RoleNameExists(context.Context, string) (bool, error) {
	f.hit("RoleNameExists")
	return f.roleNameTaken, f.existsErr
}

func (f *fakeAPI) ListCategories(context.Context) ([]models.Category, error) {
	f.hit("ListCategories")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Category(nil), f.cats...), nil
}

func (f *fakeAPI) AddCategory(_ context.Context, req models.CategoryRequest) (models.MessageResponse, error) {
	f.hit("AddCategory")
	f.mu.Lock()
	f.cats = append(f.cats, models.Category{CatID: "9", CatName: req.CatName})
	f.mu.Unlock()
	return models.MessageResponse{Message: "Category added successfully"}, nil
}

func (f *fakeAPI) DeleteCategory(context.Context, models.ID) error {
	f.hit("DeleteCategory")
	return f.deleteErr
}

func (f *fakeAPI) ListSubCategories(context.Context) ([]models.SubCategory, error) {
	f.hit("ListSubCategories")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.SubCategory(nil), f.subs...), nil
}

func (f *fakeAPI) AddSubCategory(context.Context, models.SubCategoryRequest) (models.MessageResponse, error) {
	f.hit("AddSubCategory")
	return models.MessageResponse{Message: f.subCategoryMsg}, nil
}

func (f *fakeAPI) DeleteSubCategory(context.Context, models.ID) error {
	f.hit("DeleteSubCategory")
	return f.deleteErr
}

func (f *fakeAPI) ListProducts(context.Context) ([]models.Product, error) {
	f.hit("ListProducts")
	return f.products, nil
}

func (f *fakeAPI) GetProduct(_ context.Context, id models.ID) (models.Product, error) {
	f.hit("GetProduct")
	if f.productErr != nil {
		return models.Product{}, f.productErr
	}
	return models.Product{ProductID: id, ProductName: "product " + id.String()}, nil
}

func (f *fakeAPI) ListRetailers(context.Context) ([]models.Retailer, error) {
	f.hit("ListRetailers")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Retailer(nil), f.retailers...), nil
}

func (f *fakeAPI) GetRetailer(_ context.Context, id models.ID) (models.Retailer, error) {
	f.hit("GetRetailer")
	if f.retailerErr != nil {
		return models.Retailer{}, f.retailerErr
	}
	for _, r := range f.retailers {
		if r.RetailerID == id {
			return r, nil
		}
	}
	return models.Retailer{}, &api.Error{Endpoint: "GET /retailers/:id", Status: 404, Message: "Retailer not found"}
}

func (f *fakeAPI) CreateRetailer(_ context.Context, req models.RetailerRequest) (models.Retailer, error) {
	f.hit("CreateRetailer")
	return models.Retailer{RetailerID: "RT9", RetailerName: req.RetailerName, Email: req.Email, Status: "Active"}, nil
}

func (f *fakeAPI) SetRetailerStatus(context.Context, models.ID, string) error {
	f.hit("SetRetailerStatus")
	return f.statusErr
}

func (f *fakeAPI) RetailerOrders(_ context.Context, id models.ID) ([]models.Order, error) {
	f.hit("RetailerOrders")
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders[id], nil
}

func (f *fakeAPI) RetailerProducts(_ context.Context, id models.ID) ([]models.Product, error) {
	f.hit("RetailerProducts")
	return []models.Product{{ProductID: "P1"}}, nil
}

func (f *fakeAPI) Tracking(_ context.Context, id models.ID) ([]models.TrackingEvent, error) {
	f.hit("Tracking")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.TrackingEvent(nil), f.tracking[id]...), nil
}

func (f *fakeAPI) AddTracking(_ context.Context, id models.ID, req models.TrackingRequest) error {
	f.hit("AddTracking")
	if f.trackingErr != nil {
		return f.trackingErr
	}
	f.mu.Lock()
	f.tracking[id] = append(f.tracking[id], models.TrackingEvent{Status: req.Status, Notes: req.Notes})
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) ListCustomers(context.Context) ([]models.Customer, error) {
	f.hit("ListCustomers")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Customer(nil), f.customers...), nil
}

func (f *fakeAPI) GetCustomer(_ context.Context, id models.ID) (models.Customer, error) {
	f.hit("GetCustomer")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.customers {
		if c.UserID == id {
			return c, nil
		}
	}
	return models.Customer{}, &api.Error{Endpoint: "GET /users/:id", Status: 404, Message: "User not found"}
}

func (f *fakeAPI) CustomerOrders(_ context.Context, id models.ID) ([]models.Order, error) {
	f.hit("CustomerOrders")
	return f.orders[id], nil
}

func (f *fakeAPI) SetCustomerStatus(_ context.Context, id models.ID, status string) error {
	f.hit("SetCustomerStatus")
	if f.statusErr != nil {
		return f.statusErr
	}
	f.mu.Lock()
	for i := range f.customers {
		if f.customers[i].UserID == id {
			f.customers[i].Status = status
		}
	}
	f.mu.Unlock()
	return nil
}
