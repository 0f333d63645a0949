package domain

import "time"

// Order statuses. Legal transitions are enforced by the order service.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
	OrderStatusReturned  = "returned"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	CartID          string      `json:"cartId"`
	Items           []OrderItem `json:"items"`
	AddressInfo     AddressInfo `json:"addressInfo"`
	OrderStatus     string      `json:"orderStatus"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentStatus   string      `json:"paymentStatus"`
	PaymentID       string      `json:"paymentId,omitempty"`
	PayerID         string      `json:"payerId,omitempty"`
	TotalCents      int64       `json:"totalCents"`
	OrderDate       time.Time   `json:"orderDate"`
	OrderUpdateDate time.Time   `json:"orderUpdateDate"`
}

// OrderItem snapshots a cart line at draft time so later catalog edits do
// not rewrite order history.
type OrderItem struct {
	ProductID      string `json:"productId"`
	Title          string `json:"title"`
	Image          string `json:"image,omitempty"`
	PriceCents     int64  `json:"priceCents"`
	SalePriceCents int64  `json:"salePriceCents"`
	Quantity       int    `json:"quantity"`
}

// UnitPriceCents is the effective per-unit price captured at draft time.
func (i OrderItem) UnitPriceCents() int64 {
	if i.SalePriceCents > 0 {
		return i.SalePriceCents
	}
	return i.PriceCents
}

// AddressInfo is the shipping address copied onto an order at creation.
// The address book row referenced during checkout can change or disappear
// afterwards without affecting the order.
type AddressInfo struct {
	AddressID string `json:"addressId"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes,omitempty"`
}
