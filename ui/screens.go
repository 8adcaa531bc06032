package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shopadmin/admin"
	"shopadmin/models"
	"shopadmin/table"
	"shopadmin/utils"
)

// Screen ids.
const (
	ScreenUsers         = "users"
	ScreenRoles         = "roles"
	ScreenCategories    = "categories"
	ScreenSubCategories = "subcategories"
	ScreenProducts      = "products"
	ScreenRetailers     = "retailers"
	ScreenCustomers     = "customers"
)

var (
	keyAdd      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	keyEdit     = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	keyDelete   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	keyToggle   = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle status"))
	keyAssign   = key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "assign role"))
	keyView     = key.NewBinding(key.WithKeys("v", "enter"), key.WithHelp("v", "details"))
	keyOrders   = key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "orders"))
	keyProducts = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "products"))
)

func textCol[T any](title string, width int, value func(T) string) table.Column[T] {
	return table.Column[T]{Title: title, Width: width, Value: value, Sortable: true}
}

// toggleCmd applies an optimistic status flip and commits it in the
// background.
func toggleCmd(d deps, screen string, begin func(models.ID) (*admin.Toggle, error), id models.ID) tea.Cmd {
	t, err := begin(id)
	if err != nil {
		d.log.Warn(err.Error())
		return nil
	}
	ctx := d.ctx
	return run(screen, func() error { return t.Commit(ctx) })
}

func userColumns() []table.Column[models.AdminUser] {
	return []table.Column[models.AdminUser]{
		textCol("User ID", 10, func(u models.AdminUser) string { return u.UserID.String() }),
		textCol("User Name", 16, func(u models.AdminUser) string { return u.UserName }),
		textCol("Email", 26, func(u models.AdminUser) string { return u.Email }),
		textCol("Roles", 24, func(u models.AdminUser) string { return u.Roles }),
		textCol("Status", 9, func(u models.AdminUser) string { return u.Status }),
		textCol("Registered", 17, func(u models.AdminUser) string { return u.RegisteredAt.String() }),
	}
}

func newUsersScreen(d deps) *listScreen[models.AdminUser] {
	c := d.console
	cols := userColumns()
	s := newListScreen(d, ScreenUsers, "Users", c.Users, cols, table.StandardPageSizes)

	addModal, editModal, del := c.AddUserModal(), c.UpdateUserModal(), c.DeleteUserConfirm()
	userFields := []field[admin.UserForm]{
		{name: "userId", label: "User ID", get: func(f admin.UserForm) string { return f.UserID }, set: func(f *admin.UserForm, v string) { f.UserID = v }},
		{name: "userName", label: "User Name", get: func(f admin.UserForm) string { return f.UserName }, set: func(f *admin.UserForm, v string) { f.UserName = v }},
		{name: "email", label: "Email", get: func(f admin.UserForm) string { return f.Email }, set: func(f *admin.UserForm, v string) { f.Email = v }},
		{name: "password", label: "Password", secret: true, get: func(f admin.UserForm) string { return f.Password }, set: func(f *admin.UserForm, v string) { f.Password = v }},
	}
	editFields := []field[admin.UserUpdateForm]{
		{name: "userId", label: "User ID", readOnly: true, get: func(f admin.UserUpdateForm) string { return f.UserID }},
		{name: "userName", label: "User Name", get: func(f admin.UserUpdateForm) string { return f.UserName }, set: func(f *admin.UserUpdateForm, v string) { f.UserName = v }},
		{name: "email", label: "Email", get: func(f admin.UserUpdateForm) string { return f.Email }, set: func(f *admin.UserUpdateForm, v string) { f.Email = v }},
		{name: "password", label: "Password", secret: true, get: func(f admin.UserUpdateForm) string { return f.Password }, set: func(f *admin.UserUpdateForm, v string) { f.Password = v }},
	}

	s.actions = []action[models.AdminUser]{
		{binding: keyAdd, run: func(models.AdminUser) (overlay, tea.Cmd) {
			return newFormOverlay(d, ScreenUsers, "Add User", addModal, admin.UserForm{}, userFields)
		}},
		{binding: keyEdit, needsRow: true, run: func(u models.AdminUser) (overlay, tea.Cmd) {
			return newFormOverlay(d, ScreenUsers, "Update User", editModal, admin.UpdateUserSeed(u), editFields)
		}},
		{binding: keyDelete, needsRow: true, run: func(u models.AdminUser) (overlay, tea.Cmd) {
			return newConfirmOverlay(d, ScreenUsers, del, u, fmt.Sprintf("user %q", u.UserName)), nil
		}},
		{binding: keyToggle, needsRow: true, run: func(u models.AdminUser) (overlay, tea.Cmd) {
			return nil, toggleCmd(d, ScreenUsers, c.BeginUserToggle, u.UserID)
		}},
		{binding: keyAssign, needsRow: true, run: func(u models.AdminUser) (overlay, tea.Cmd) {
			return newRoleOverlay(d, ScreenUsers, u)
		}},
	}
	return s
}

func roleColumns() []table.Column[models.Role] {
	return []table.Column[models.Role]{
		textCol("Role ID", 12, func(r models.Role) string { return r.RoleID.String() }),
		textCol("Role Name", 30, func(r models.Role) string { return r.RoleName }),
	}
}

func newRolesScreen(d deps) *listScreen[models.Role] {
	c := d.console
	cols := roleColumns()
	s := newListScreen(d, ScreenRoles, "Roles", c.Roles, cols, table.StandardPageSizes)

	addModal, editModal, del := c.AddRoleModal(), c.UpdateRoleModal(), c.DeleteRoleConfirm()
	s.actions = []action[models.Role]{
		{binding: keyAdd, run: func(models.Role) (overlay, tea.Cmd) {
			return newFormOverlay(d, ScreenRoles, "Add Role", addModal, admin.RoleForm{}, []field[admin.RoleForm]{
				{name: "roleId", label: "Role ID", get: func(f admin.RoleForm) string { return f.RoleID }, set: func(f *admin.RoleForm, v string) { f.RoleID = v }},
				{name: "roleName", label: "Role Name", get: func(f admin.RoleForm) string { return f.RoleName }, set: func(f *admin.RoleForm, v string) { f.RoleName = v }},
			})
		}},
		{binding: keyEdit, needsRow: true, run: func(r models.Role) (overlay, tea.Cmd) {
			return newFormOverlay(d, ScreenRoles, "Update Role", editModal, admin.UpdateRoleSeed(r), []field[admin.RoleUpdateForm]{
				{name: "roleId", label: "Role ID", readOnly: true, get: func(f admin.RoleUpdateForm) string { return f.RoleID }},
				{name: "roleName", label: "Role Name", get: func(f admin.RoleUpdateForm) string { return f.RoleName }, set: func(f *admin.RoleUpdateForm, v string) { f.RoleName = v }},
			})
		}},
		{binding: keyDelete, needsRow: true, run: func(r models.Role) (overlay, tea.Cmd) {
			return newConfirmOverlay(d, ScreenRoles, del, r, fmt.Sprintf("role %q", r.RoleName)), nil
		}},
	}
	return s
}

func categoryColumns() []table.Column[models.Category] {
	return []table.Column[models.Category]{
		textCol("ID", 8, func(cat models.Category) string { return cat.CatID.String() }),
		textCol("Category", 30, func(cat models.Category) string { return cat.CatName }),
	}
}

func newCategoriesScreen(d deps) *listScreen[models.Category] {
	c := d.console
	cols := categoryColumns()
	s := newListScreen(d, ScreenCategories, "Categories", c.Categories, cols, table.StandardPageSizes)

	addModal, del := c.AddCategoryModal(), c.DeleteCategoryConfirm()
	s.actions = []action[models.Category]{
		{binding: keyAdd, run: func(models.Category) (overlay, tea.Cmd) {
			return newFormOverlay(d, ScreenCategories, "Add Category", addModal, admin.CategoryForm{}, []field[admin.CategoryForm]{
				{name: "catName", label: "Category Name", get: func(f admin.CategoryForm) string { return f.CatName }, set: func(f *admin.CategoryForm, v string) { f.CatName = v }},
			})
		}},
		{binding: keyDelete, needsRow: true, run: func(cat models.Category) (overlay, tea.Cmd) {
			return newConfirmOverlay(d, ScreenCategories, del, cat, fmt.Sprintf("category %q", cat.CatName)), nil
		}},
	}
	return s
}

func subCategoryColumns(c *admin.Console) []table.Column[models.SubCategory] {
	return []table.Column[models.SubCategory]{
		textCol("ID", 8, func(sc models.SubCategory) string { return sc.SubCatID.String() }),
		textCol("Sub Category", 26, func(sc models.SubCategory) string { return sc.SubCatName }),
		textCol("Category", 22, func(sc models.SubCategory) string { return c.CategoryName(sc.CatID) }),
	}
}

func newSubCategoriesScreen(d deps) *listScreen[models.SubCategory] {
	c := d.console
	cols := subCategoryColumns(c)
	s := newListScreen(d, ScreenSubCategories, "Sub Categories", c.SubCategories, cols, table.StandardPageSizes)
	s.preload = func(ctx context.Context) error {
		_, err := c.Categories.Load(ctx)
		return err
	}

	addModal, del := c.AddSubCategoryModal(), c.DeleteSubCategoryConfirm()
	categoryIDs := func() []string {
		var ids []string
		for _, cat := range c.CategoryOptions() {
			ids = append(ids, cat.CatID.String())
		}
		return ids
	}
	categoryHint := func() string {
		opts := c.CategoryOptions()
		if opts == nil {
			return "loading categories..."
		}
		parts := make([]string, 0, len(opts))
		for _, cat := range opts {
			parts = append(parts, cat.CatID.String()+"="+cat.CatName)
		}
		sort.Strings(parts)
		return strings.Join(parts, ", ")
	}
	s.actions = []action[models.SubCategory]{
		{binding: keyAdd, run: func(models.SubCategory) (overlay, tea.Cmd) {
			return newFormOverlay(d, ScreenSubCategories, "Add Sub Category", addModal, admin.SubCategoryForm{}, []field[admin.SubCategoryForm]{
				{name: "subCatName", label: "Sub Category Name", get: func(f admin.SubCategoryForm) string { return f.SubCatName }, set: func(f *admin.SubCategoryForm, v string) { f.SubCatName = v }},
				{name: "catId", label: "Category ID", hint: categoryHint, options: categoryIDs, get: func(f admin.SubCategoryForm) string { return f.CatID }, set: func(f *admin.SubCategoryForm, v string) { f.CatID = v }},
			})
		}},
		{binding: keyDelete, needsRow: true, run: func(sc models.SubCategory) (overlay, tea.Cmd) {
			return newConfirmOverlay(d, ScreenSubCategories, del, sc, fmt.Sprintf("sub category %q", sc.SubCatName)), nil
		}},
	}
	return s
}

func productColumns() []table.Column[models.Product] {
	return []table.Column[models.Product]{
		textCol("ID", 8, func(p models.Product) string { return p.ProductID.String() }),
		textCol("Name", 22, func(p models.Product) string { return p.ProductName }),
		textCol("Category", 14, func(p models.Product) string { return p.Category }),
		textCol("Brand", 12, func(p models.Product) string { return p.Brand }),
		textCol("Price", 12, func(p models.Product) string { return p.Price.String() }),
		textCol("Qty", 5, func(p models.Product) string { return fmt.Sprint(p.Quantity) }),
	}
}

func newProductsScreen(d deps) *listScreen[models.Product] {
	c := d.console
	cols := productColumns()
	s := newListScreen(d, ScreenProducts, "Products", c.Products, cols, table.GridPageSizes)
	s.inlineErrors = true

	s.actions = []action[models.Product]{
		{binding: keyView, needsRow: true, run: func(p models.Product) (overlay, tea.Cmd) {
			return newDetailOverlay(d, ScreenProducts, "Product Details", c.ProductDetail(), p.ProductID, productDetail)
		}},
	}
	return s
}

func productDetail(p models.Product) [][2]string {
	list := func(l models.EncodedList) string {
		if l.State == models.ListRaw {
			return l.Raw
		}
		return utils.OrDefault(strings.Join(l.Values(), ", "), "N/A")
	}
	return [][2]string{
		{"Product ID", p.ProductID.String()},
		{"Name", p.ProductName},
		{"Category", p.Category + " / " + p.Subcategory},
		{"Brand", p.Brand},
		{"Price", p.Price.String()},
		{"Quantity", fmt.Sprint(p.Quantity)},
		{"Images", list(p.Images)},
		{"Colors", list(p.Colors)},
		{"Sizes", list(p.Sizes)},
		{"Features", list(p.Features)},
		{"Description", p.Description},
		{"Added", p.AddedAt.String()},
	}
}

func retailerColumns() []table.Column[models.Retailer] {
	return []table.Column[models.Retailer]{
		textCol("ID", 10, func(r models.Retailer) string { return r.RetailerID.String() }),
		textCol("Name", 22, func(r models.Retailer) string { return r.RetailerName }),
		textCol("Email", 28, func(r models.Retailer) string { return r.Email }),
		textCol("Status", 9, func(r models.Retailer) string { return r.Status }),
		textCol("Registered", 17, func(r models.Retailer) string { return r.RegisteredAt.String() }),
	}
}

func newRetailersScreen(d deps) *listScreen[models.Retailer] {
	c := d.console
	cols := retailerColumns()
	s := newListScreen(d, ScreenRetailers, "Retailers", c.Retailers, cols, table.StandardPageSizes)
	s.inlineErrors = true

	addModal := c.AddRetailerModal()
	s.actions = []action[models.Retailer]{
		{binding: keyAdd, run: func(models.Retailer) (overlay, tea.Cmd) {
			return newFormOverlay(d, ScreenRetailers, "Add Retailer", addModal, admin.RetailerForm{}, []field[admin.RetailerForm]{
				{name: "Retailer_Name", label: "Retailer Name", get: func(f admin.RetailerForm) string { return f.Name }, set: func(f *admin.RetailerForm, v string) { f.Name = v }},
				{name: "email", label: "Email", get: func(f admin.RetailerForm) string { return f.Email }, set: func(f *admin.RetailerForm, v string) { f.Email = v }},
			})
		}},
		{binding: keyView, needsRow: true, run: func(r models.Retailer) (overlay, tea.Cmd) {
			return newDetailOverlay(d, ScreenRetailers, "Retailer Details", c.RetailerDetail(), r.RetailerID, func(r models.Retailer) [][2]string {
				return [][2]string{
					{"Retailer ID", r.RetailerID.String()},
					{"Name", r.RetailerName},
					{"Email", r.Email},
					{"Status", r.Status},
					{"Registered", r.RegisteredAt.String()},
				}
			})
		}},
		{binding: keyToggle, needsRow: true, run: func(r models.Retailer) (overlay, tea.Cmd) {
			return nil, toggleCmd(d, ScreenRetailers, c.BeginRetailerToggle, r.RetailerID)
		}},
		{binding: keyOrders, needsRow: true, run: func(r models.Retailer) (overlay, tea.Cmd) {
			return newRetailerOrdersOverlay(d, ScreenRetailers, r.RetailerID)
		}},
		{binding: keyProducts, needsRow: true, run: func(r models.Retailer) (overlay, tea.Cmd) {
			return newRetailerProductsOverlay(d, ScreenRetailers, r.RetailerID)
		}},
	}
	return s
}

func customerColumns() []table.Column[models.Customer] {
	return []table.Column[models.Customer]{
		textCol("ID", 8, func(cu models.Customer) string { return cu.UserID.String() }),
		textCol("Name", 20, func(cu models.Customer) string {
			return utils.OrDefault(utils.FullName(cu.FirstName, cu.LastName), cu.Username)
		}),
		textCol("Email", 26, func(cu models.Customer) string { return cu.Email }),
		textCol("Phone", 16, func(cu models.Customer) string { return cu.Phone }),
		textCol("City", 12, func(cu models.Customer) string { return cu.City }),
		textCol("Status", 9, func(cu models.Customer) string { return cu.Status }),
	}
}

func newCustomersScreen(d deps) *listScreen[models.Customer] {
	c := d.console
	cols := customerColumns()
	s := newListScreen(d, ScreenCustomers, "Customers", c.Customers, cols, table.StandardPageSizes)

	s.actions = []action[models.Customer]{
		{binding: keyView, needsRow: true, run: func(cu models.Customer) (overlay, tea.Cmd) {
			return newDetailOverlay(d, ScreenCustomers, "Customer Details", c.CustomerDetail(), cu.UserID, func(cu models.Customer) [][2]string {
				return [][2]string{
					{"User ID", cu.UserID.String()},
					{"Username", cu.Username},
					{"Name", utils.FullName(cu.FirstName, cu.LastName)},
					{"Email", cu.Email},
					{"Phone", cu.Phone},
					{"Address", strings.Join(nonEmpty(cu.Address, cu.City, cu.State, cu.Country), ", ")},
					{"Status", cu.Status},
					{"Joined", cu.CreatedAt.String()},
				}
			})
		}},
		{binding: keyToggle, needsRow: true, run: func(cu models.Customer) (overlay, tea.Cmd) {
			return nil, toggleCmd(d, ScreenCustomers, c.BeginCustomerToggle, cu.UserID)
		}},
		{binding: keyOrders, needsRow: true, run: func(cu models.Customer) (overlay, tea.Cmd) {
			return newCustomerOrdersOverlay(d, ScreenCustomers, cu.UserID)
		}},
	}
	return s
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
