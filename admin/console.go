// Package admin holds the screen logic of the console: the shared
// collections, form modals, delete confirmations, optimistic status toggles,
// detail views and role assignment. It has no terminal dependencies.
package admin

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shopadmin/models"
	"shopadmin/store"
	"shopadmin/utils"
)

// roleLookupLimit bounds the per-user role fetches made while loading users.
const roleLookupLimit = 8

// Console binds the backend API to one cached collection per resource.
type Console struct {
	api      API
	log      *zap.Logger
	validate *formValidator
	now      func() time.Time

	Users         *store.Collection[models.AdminUser]
	Roles         *store.Collection[models.Role]
	Categories    *store.Collection[models.Category]
	SubCategories *store.Collection[models.SubCategory]
	Products      *store.Collection[models.Product]
	Retailers     *store.Collection[models.Retailer]
	Customers     *store.Collection[models.Customer]
}

// NewConsole creates a Console. A nil logger discards output.
func NewConsole(a API, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Console{
		api:      a,
		log:      log.Named("admin"),
		validate: newFormValidator(),
		now:      time.Now,
	}
	c.Users = store.NewCollection("users", c.fetchUsers, log)
	c.Roles = store.NewCollection("roles", a.ListRoles, log)
	c.Categories = store.NewCollection("categories", a.ListCategories, log)
	c.SubCategories = store.NewCollection("subcategories", a.ListSubCategories, log)
	c.Products = store.NewCollection("products", a.ListProducts, log)
	c.Retailers = store.NewCollection("retailers", a.ListRetailers, log)
	c.Customers = store.NewCollection("customers", a.ListCustomers, log)
	return c
}

// fetchUsers loads admin accounts and fills in each one's roles. A failed
// role lookup leaves that user's roles empty.
func (c *Console) fetchUsers(ctx context.Context) ([]models.AdminUser, error) {
	users, err := c.api.ListAdminUsers(ctx)
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.SetLimit(roleLookupLimit)
	for i := range users {
		i := i
		g.Go(func() error {
			roles, err := c.api.UserRoles(ctx, users[i].UserID)
			if err != nil {
				c.log.Warn("fetch user roles", zap.Stringer("user_id", users[i].UserID), zap.Error(err))
				users[i].Roles = ""
				return nil
			}
			names := make([]string, 0, len(roles))
			for _, r := range roles {
				names = append(names, r.RoleName)
			}
			users[i].Roles = utils.JoinRoles(names)
			return nil
		})
	}
	_ = g.Wait()
	return users, nil
}
