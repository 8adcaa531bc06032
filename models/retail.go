package models

// Retailer is a seller account. Its orders and products are fetched on demand.
type Retailer struct {
	RetailerID   ID        `json:"retailerId"`
	RetailerName string    `json:"Retailer_Name"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	RegisteredAt Timestamp `json:"Registered_at"`
}

func (r Retailer) Key() ID { return r.RetailerID }

// Order is a customer order placed with a retailer.
type Order struct {
	OrderID       ID          `json:"order_id"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	TotalAmount   Price       `json:"total_amount"`
	PaymentMethod string      `json:"payment_method"`
	PaymentStatus string      `json:"payment_status"`
	OrderStatus   string      `json:"order_status"`
	CreatedAt     Timestamp   `json:"created_at"`
	Products      []OrderLine `json:"products"`
}

func (o Order) Key() ID { return o.OrderID }

// OrderLine is one product of an order.
type OrderLine struct {
	ProductID ID    `json:"product_id"`
	Quantity  int   `json:"quantity"`
	Price     Price `json:"price"`
}

// TrackingEvent is one append-only entry of an order's tracking history.
type TrackingEvent struct {
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	UpdateTime Timestamp `json:"update_time"`
}

// Order tracking statuses offered by the tracking form.
const (
	TrackingPending        = "Pending"
	TrackingConfirmed      = "Confirmed"
	TrackingShipped        = "Shipped"
	TrackingOutForDelivery = "Out for Delivery"
	TrackingDelivered      = "Delivered"
	TrackingCancelled      = "Cancelled"
)

// TrackingStatuses lists the statuses in workflow order.
var TrackingStatuses = []string{
	TrackingPending,
	TrackingConfirmed,
	TrackingShipped,
	TrackingOutForDelivery,
	TrackingDelivered,
	TrackingCancelled,
}

// IsTrackingStatus reports whether s is one of TrackingStatuses.
func IsTrackingStatus(s string) bool {
	for _, st := range TrackingStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// TrackingRequest is the body of POST /orders/:id/tracking.
type TrackingRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// RetailerRequest is the body of POST /retailers.
type RetailerRequest struct {
	RetailerName string `json:"Retailer_Name"`
	Email        string `json:"email"`
}
