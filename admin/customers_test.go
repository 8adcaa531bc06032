package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerToggleRefetchesOnSuccess(t *testing.T) {
	c, f := newConsole(t)
	ctx := context.Background()
	_, err := c.Customers.Load(ctx)
	require.NoError(t, err)

	tg, err := c.BeginCustomerToggle("C2")
	require.NoError(t, err)
	require.NoError(t, tg.Commit(ctx))
	assert.Equal(t, 2, f.count("ListCustomers"))
	cu, _ := c.Customers.Get("C2")
	assert.Equal(t, "Active", cu.Status)

	f.statusErr = errOffline
	tg, err = c.BeginCustomerToggle("C1")
	require.NoError(t, err)
	require.Error(t, tg.Commit(ctx))
	cu, _ = c.Customers.Get("C1")
	assert.Equal(t, "Active", cu.Status)
	assert.Equal(t, 2, f.count("ListCustomers"), "no refetch after a failed write")
}

func TestCustomerOrders(t *testing.T) {
	c, _ := newConsole(t)
	view, err := c.CustomerOrders(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "dmitri", view.OwnerName)
	assert.Len(t, view.Items, 1)
}
