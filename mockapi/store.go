package mockapi

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"shopadmin/models"
	"shopadmin/utils"
)

var (
	errNotFound = errors.New("not found")
	errExists   = errors.New("already exists")
)

// Store is the in-memory data set served by the development backend. All
// methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	users     []models.AdminUser
	passwords map[models.ID][]byte
	userRoles map[models.ID][]string

	roles         []models.Role
	categories    []models.Category
	subCategories []models.SubCategory
	nextCatID     int
	nextSubCatID  int

	products  []models.Product
	retailers []models.Retailer
	customers []models.Customer

	retailerOrders   map[models.ID][]models.Order
	retailerProducts map[models.ID][]models.ID
	customerOrders   map[models.ID][]models.Order
	tracking         map[models.ID][]models.TrackingEvent

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		passwords:        make(map[models.ID][]byte),
		userRoles:        make(map[models.ID][]string),
		retailerOrders:   make(map[models.ID][]models.Order),
		retailerProducts: make(map[models.ID][]models.ID),
		customerOrders:   make(map[models.ID][]models.Order),
		tracking:         make(map[models.ID][]models.TrackingEvent),
		nextCatID:        1,
		nextSubCatID:     1,
		now:              time.Now,
	}
}

// --- admin users ---

func (s *Store) Users() []models.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AdminUser(nil), s.users...)
}

func (s *Store) AddUser(u models.AdminUser, passwordHash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.users, u.UserID) >= 0 {
		return errExists
	}
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return errExists
		}
	}
	if u.Status == "" {
		u.Status = utils.StatusInactive
	}
	if u.RegisteredAt.IsZero() {
		u.RegisteredAt = models.NewTimestamp(s.now().UTC())
	}
	s.users = append(s.users, u)
	s.passwords[u.UserID] = passwordHash
	return nil
}

func (s *Store) UpdateUser(id models.ID, name, email string, passwordHash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.users, id)
	if i < 0 {
		return errNotFound
	}
	s.users[i].UserName = name
	s.users[i].Email = email
	if passwordHash != nil {
		s.passwords[id] = passwordHash
	}
	return nil
}

func (s *Store) SetUserStatus(id models.ID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.users, id)
	if i < 0 {
		return errNotFound
	}
	s.users[i].Status = status
	return nil
}

func (s *Store) DeleteUser(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.users, ok = without(s.users, id)
	if !ok {
		return errNotFound
	}
	delete(s.passwords, id)
	delete(s.userRoles, id)
	return nil
}

// PasswordHash returns the stored hash for a user.
func (s *Store) PasswordHash(id models.ID) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.passwords[id]
}

func (s *Store) UserRoles(id models.ID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if indexOf(s.users, id) < 0 {
		return nil, errNotFound
	}
	return append([]string(nil), s.userRoles[id]...), nil
}

func (s *Store) AssignRole(id models.ID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.users, id) < 0 {
		return errNotFound
	}
	found := false
	for _, r := range s.roles {
		if r.RoleName == role || string(r.RoleID) == role {
			role = r.RoleName
			found = true
			break
		}
	}
	if !found {
		return errNotFound
	}
	for _, r := range s.userRoles[id] {
		if r == role {
			return nil
		}
	}
	s.userRoles[id] = append(s.userRoles[id], role)
	return nil
}

// --- roles ---

func (s *Store) Roles() []models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Role(nil), s.roles...)
}

func (s *Store) RoleIDExists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.roles, models.ID(id)) >= 0
}

func (s *Store) RoleNameExists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.roles {
		if r.RoleName == name {
			return true
		}
	}
	return false
}

func (s *Store) AddRole(r models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.roles, r.RoleID) >= 0 {
		return errExists
	}
	s.roles = append(s.roles, r)
	return nil
}

func (s *Store) UpdateRole(id models.ID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.roles, id)
	if i < 0 {
		return errNotFound
	}
	s.roles[i].RoleName = name
	return nil
}

func (s *Store) DeleteRole(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.roles, ok = without(s.roles, id)
	if !ok {
		return errNotFound
	}
	return nil
}

// --- catalog ---

func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

func (s *Store) AddCategory(name string) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Category{CatID: models.ID(strconv.Itoa(s.nextCatID)), CatName: name}
	s.nextCatID++
	s.categories = append(s.categories, c)
	return c
}

func (s *Store) DeleteCategory(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sc := range s.subCategories {
		if sc.CatID == id {
			return errExists
		}
	}
	var ok bool
	s.categories, ok = without(s.categories, id)
	if !ok {
		return errNotFound
	}
	return nil
}

func (s *Store) SubCategories() []models.SubCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SubCategory(nil), s.subCategories...)
}

func (s *Store) AddSubCategory(name string, catID models.ID) (models.SubCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.categories, catID) < 0 {
		return models.SubCategory{}, errNotFound
	}
	sc := models.SubCategory{SubCatID: models.ID(strconv.Itoa(s.nextSubCatID)), SubCatName: name, CatID: catID}
	s.nextSubCatID++
	s.subCategories = append(s.subCategories, sc)
	return sc, nil
}

func (s *Store) DeleteSubCategory(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.subCategories, ok = without(s.subCategories, id)
	if !ok {
		return errNotFound
	}
	return nil
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

func (s *Store) Product(id models.ID) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.products, id)
	if i < 0 {
		return models.Product{}, errNotFound
	}
	return s.products[i], nil
}

// --- retailers ---

func (s *Store) Retailers() []models.Retailer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Retailer(nil), s.retailers...)
}

func (s *Store) Retailer(id models.ID) (models.Retailer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.retailers, id)
	if i < 0 {
		return models.Retailer{}, errNotFound
	}
	return s.retailers[i], nil
}

func (s *Store) AddRetailer(r models.Retailer) models.Retailer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Status == "" {
		r.Status = utils.StatusActive
	}
	if r.RegisteredAt.IsZero() {
		r.RegisteredAt = models.NewTimestamp(s.now().UTC())
	}
	s.retailers = append(s.retailers, r)
	return r
}

func (s *Store) SetRetailerStatus(id models.ID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.retailers, id)
	if i < 0 {
		return errNotFound
	}
	s.retailers[i].Status = status
	return nil
}

func (s *Store) RetailerOrders(id models.ID) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if indexOf(s.retailers, id) < 0 {
		return nil, errNotFound
	}
	return append([]models.Order{}, s.retailerOrders[id]...), nil
}

func (s *Store) RetailerProducts(id models.ID) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if indexOf(s.retailers, id) < 0 {
		return nil, errNotFound
	}
	out := []models.Product{}
	for _, pid := range s.retailerProducts[id] {
		if i := indexOf(s.products, pid); i >= 0 {
			out = append(out, s.products[i])
		}
	}
	return out, nil
}

// --- orders ---

func (s *Store) Tracking(orderID models.ID) ([]models.TrackingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.orderExists(orderID) {
		return nil, errNotFound
	}
	return append([]models.TrackingEvent{}, s.tracking[orderID]...), nil
}

func (s *Store) AddTracking(orderID models.ID, status, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.orderExists(orderID) {
		return errNotFound
	}
	s.tracking[orderID] = append(s.tracking[orderID], models.TrackingEvent{
		Status:     status,
		Notes:      notes,
		UpdateTime: models.NewTimestamp(s.now().UTC()),
	})
	s.setOrderStatus(orderID, status)
	return nil
}

func (s *Store) orderExists(orderID models.ID) bool {
	for _, orders := range s.retailerOrders {
		if indexOf(orders, orderID) >= 0 {
			return true
		}
	}
	for _, orders := range s.customerOrders {
		if indexOf(orders, orderID) >= 0 {
			return true
		}
	}
	return false
}

func (s *Store) setOrderStatus(orderID models.ID, status string) {
	for _, group := range []map[models.ID][]models.Order{s.retailerOrders, s.customerOrders} {
		for _, orders := range group {
			if i := indexOf(orders, orderID); i >= 0 {
				orders[i].OrderStatus = status
			}
		}
	}
}

// --- customers ---

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

func (s *Store) Customer(id models.ID) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.customers, id)
	if i < 0 {
		return models.Customer{}, errNotFound
	}
	return s.customers[i], nil
}

func (s *Store) SetCustomerStatus(id models.ID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.customers, id)
	if i < 0 {
		return errNotFound
	}
	s.customers[i].Status = status
	return nil
}

func (s *Store) CustomerOrders(id models.ID) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if indexOf(s.customers, id) < 0 {
		return nil, errNotFound
	}
	return append([]models.Order{}, s.customerOrders[id]...), nil
}

type keyed interface {
	Key() models.ID
}

func indexOf[T keyed](items []T, id models.ID) int {
	for i, it := range items {
		if it.Key() == id {
			return i
		}
	}
	return -1
}

func without[T keyed](items []T, id models.ID) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	return append(items[:i:i], items[i+1:]...), true
}

func price(s string) models.Price {
	return models.NewPrice(decimal.RequireFromString(s))
}
