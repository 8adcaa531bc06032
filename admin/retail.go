package admin

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shopadmin/models"
)

// UnknownRetailer is shown when a retailer's name could not be fetched.
const UnknownRetailer = "Unknown Retailer"

const (
	retailerFallback       = "Error adding retailer. Please try again."
	retailerDetailFallback = "Failed to load retailer details"
	ordersFallback         = "Failed to load orders"
	productsFallback       = "Failed to load products"
	trackingFallback       = "Failed to load tracking history"
	addTrackingFallback    = "Failed to update tracking"
)

// AddRetailer registers a retailer and adds the stored record locally.
func (c *Console) AddRetailer(ctx context.Context, f RetailerForm) error {
	r, err := c.api.CreateRetailer(ctx, models.RetailerRequest{RetailerName: f.Name, Email: f.Email})
	if err != nil {
		c.log.Error("create retailer", zap.String("name", f.Name), zap.Error(err))
		return err
	}
	if r.RetailerID == "" {
		if _, err := c.Retailers.Refresh(ctx); err != nil {
			c.log.Warn("refresh retailers", zap.Error(err))
		}
		return nil
	}
	c.Retailers.Insert(r)
	return nil
}

func (c *Console) AddRetailerModal() *Modal[RetailerForm] {
	return NewModal(c.validate.Check, c.AddRetailer, retailerFallback)
}

// RetailerDetail is the retailer detail view.
func (c *Console) RetailerDetail() *Detail[models.Retailer] {
	return NewDetail(c.api.GetRetailer, retailerDetailFallback)
}

// BeginRetailerToggle flips a retailer's status locally.
func (c *Console) BeginRetailerToggle(id models.ID) (*Toggle, error) {
	return beginToggle(c.Retailers, id,
		func(r *models.Retailer) *string { return &r.Status },
		c.api.SetRetailerStatus, c.log)
}

// NestedView is an owner's display name joined with one of its nested
// collections.
type NestedView[T any] struct {
	OwnerID   models.ID
	OwnerName string
	Items     []T
	// Err is set when the collection failed to load.
	Err string
}

// RetailerOrders fetches the retailer's name and orders concurrently and
// waits for both, whatever their outcome.
func (c *Console) RetailerOrders(ctx context.Context, id models.ID) (NestedView[models.Order], error) {
	return nestedView(ctx, c, id, c.retailerName, c.api.RetailerOrders, UnknownRetailer, ordersFallback)
}

// RetailerProducts fetches the retailer's name and products concurrently.
func (c *Console) RetailerProducts(ctx context.Context, id models.ID) (NestedView[models.Product], error) {
	return nestedView(ctx, c, id, c.retailerName, c.api.RetailerProducts, UnknownRetailer, productsFallback)
}

func (c *Console) retailerName(ctx context.Context, id models.ID) (string, error) {
	r, err := c.api.GetRetailer(ctx, id)
	return r.RetailerName, err
}

func nestedView[T any](
	ctx context.Context,
	c *Console,
	id models.ID,
	name func(context.Context, models.ID) (string, error),
	list func(context.Context, models.ID) ([]T, error),
	unknown, fallback string,
) (NestedView[T], error) {
	view := NestedView[T]{OwnerID: id, OwnerName: unknown}

	var (
		g        errgroup.Group
		owner    string
		items    []T
		itemsErr error
	)
	g.Go(func() error {
		n, err := name(ctx, id)
		if err != nil {
			c.log.Warn("fetch owner name", zap.Stringer("id", id), zap.Error(err))
			return nil
		}
		owner = n
		return nil
	})
	g.Go(func() error {
		items, itemsErr = list(ctx, id)
		return nil
	})
	_ = g.Wait()

	if owner != "" {
		view.OwnerName = owner
	}
	if itemsErr != nil {
		c.log.Warn("fetch nested collection", zap.Stringer("id", id), zap.Error(itemsErr))
		view.Err = Message(itemsErr, fallback)
		return view, itemsErr
	}
	view.Items = items
	return view, nil
}

// TrackingHistory is the order tracking view.
func (c *Console) TrackingHistory() *Detail[[]models.TrackingEvent] {
	return NewDetail(c.api.Tracking, trackingFallback)
}

// AddTracking appends a tracking event to orderID.
func (c *Console) AddTracking(ctx context.Context, orderID models.ID, f TrackingForm) error {
	err := c.api.AddTracking(ctx, orderID, models.TrackingRequest{Status: f.Status, Notes: f.Notes})
	if err != nil {
		c.log.Error("add tracking", zap.Stringer("order_id", orderID), zap.String("status", f.Status), zap.Error(err))
	}
	return err
}

// AddTrackingModal appends events to the order shown in history and
// reloads it after each successful write.
func (c *Console) AddTrackingModal(history *Detail[[]models.TrackingEvent]) *Modal[TrackingForm] {
	return NewModal(c.validate.Check, func(ctx context.Context, f TrackingForm) error {
		orderID := history.ID()
		if orderID == "" {
			return ErrModalClosed
		}
		if err := c.AddTracking(ctx, orderID, f); err != nil {
			return err
		}
		history.Open(orderID)
		if err := history.Load(ctx); err != nil {
			c.log.Warn("reload tracking", zap.Stringer("order_id", orderID), zap.Error(err))
		}
		return nil
	}, addTrackingFallback)
}
