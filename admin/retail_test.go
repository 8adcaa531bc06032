package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/models"
)

func TestRetailerOrdersJoinsBothFetches(t *testing.T) {
	c, f := newConsole(t)
	ctx := context.Background()

	view, err := c.RetailerOrders(ctx, "RT1")
	require.NoError(t, err)
	assert.Equal(t, "Northwind", view.OwnerName)
	assert.Len(t, view.Items, 2)
	assert.Empty(t, view.Err)

	f.retailerErr = errOffline
	view, err = c.RetailerOrders(ctx, "RT1")
	require.NoError(t, err)
	assert.Equal(t, UnknownRetailer, view.OwnerName)
	assert.Len(t, view.Items, 2, "orders still shown")

	f.retailerErr = nil
	f.ordersErr = errOffline
	view, err = c.RetailerOrders(ctx, "RT1")
	require.Error(t, err)
	assert.Equal(t, "Northwind", view.OwnerName)
	assert.Equal(t, "Failed to load orders", view.Err)

	products, err := c.RetailerProducts(ctx, "RT2")
	require.NoError(t, err)
	assert.Equal(t, "Contoso", products.OwnerName)
	assert.Len(t, products.Items, 1)
}

func TestAddRetailer(t *testing.T) {
	c, _ := newConsole(t)
	ctx := context.Background()
	_, err := c.Retailers.Load(ctx)
	require.NoError(t, err)

	m := c.AddRetailerModal()
	m.Open(RetailerForm{Name: "Fabrikam", Email: "nope"})
	require.Error(t, m.Submit(ctx))
	assert.Equal(t, "Enter a valid email address", m.FieldErrors()["email"])

	m.SetForm(RetailerForm{Name: "Fabrikam", Email: "ops@fabrikam.example.com"})
	require.NoError(t, m.Submit(ctx))
	r, ok := c.Retailers.Get("RT9")
	require.True(t, ok)
	assert.Equal(t, "Fabrikam", r.RetailerName)
}

func TestRetailerToggleReverts(t *testing.T) {
	c, f := newConsole(t)
	ctx := context.Background()
	_, err := c.Retailers.Load(ctx)
	require.NoError(t, err)

	f.statusErr = errOffline
	tg, err := c.BeginRetailerToggle("RT1")
	require.NoError(t, err)
	r, _ := c.Retailers.Get("RT1")
	assert.Equal(t, "Inactive", r.Status)
	require.Error(t, tg.Commit(ctx))
	r, _ = c.Retailers.Get("RT1")
	assert.Equal(t, "Active", r.Status)
}

func TestTrackingModal(t *testing.T) {
	c, f := newConsole(t)
	ctx := context.Background()

	history := c.TrackingHistory()
	history.Open("O1")
	require.NoError(t, history.Load(ctx))

	m := c.AddTrackingModal(history)
	m.Open(TrackingForm{Status: "Lost"})
	require.Error(t, m.Submit(ctx))
	assert.Equal(t, "Select a valid status", m.FieldErrors()["status"])
	assert.Equal(t, 0, f.count("AddTracking"))

	m.SetForm(TrackingForm{Status: models.TrackingOutForDelivery, Notes: "On the van"})
	require.NoError(t, m.Submit(ctx))
	events, ok := history.Value()
	require.True(t, ok)
	require.Len(t, events, 2)
	assert.Equal(t, models.TrackingOutForDelivery, events[1].Status)
	assert.Equal(t, 2, f.count("Tracking"))

	f.trackingErr = errOffline
	m.Open(TrackingForm{Status: models.TrackingDelivered})
	require.Error(t, m.Submit(ctx))
	assert.Equal(t, "Failed to update tracking", m.Err())
}
