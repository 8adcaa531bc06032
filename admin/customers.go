package admin

import (
	"context"

	"go.uber.org/zap"

	"shopadmin/models"
	"shopadmin/utils"
)

const (
	customerFallback       = "Failed to load customer details"
	customerOrdersFallback = "Failed to load customer orders"
)

// CustomerDetail is the customer detail view.
func (c *Console) CustomerDetail() *Detail[models.Customer] {
	return NewDetail(c.api.GetCustomer, customerFallback)
}

// UnknownCustomer is shown when a customer's name could not be fetched.
const UnknownCustomer = "Unknown Customer"

// CustomerOrders fetches the customer's name and orders concurrently.
func (c *Console) CustomerOrders(ctx context.Context, id models.ID) (NestedView[models.Order], error) {
	return nestedView(ctx, c, id, c.customerName, c.api.CustomerOrders, UnknownCustomer, customerOrdersFallback)
}

func (c *Console) customerName(ctx context.Context, id models.ID) (string, error) {
	cu, err := c.api.GetCustomer(ctx, id)
	if err != nil {
		return "", err
	}
	if name := utils.FullName(cu.FirstName, cu.LastName); name != "" {
		return name, nil
	}
	return cu.Username, nil
}

// BeginCustomerToggle flips a customer's status locally. After a
// successful write the customer list is refetched.
func (c *Console) BeginCustomerToggle(id models.ID) (*Toggle, error) {
	t, err := beginToggle(c.Customers, id,
		func(cu *models.Customer) *string { return &cu.Status },
		c.api.SetCustomerStatus, c.log)
	if err != nil {
		return nil, err
	}
	t.after = func(ctx context.Context) {
		if _, err := c.Customers.Refresh(ctx); err != nil {
			c.log.Warn("refresh customers", zap.Error(err))
		}
	}
	return t, nil
}
