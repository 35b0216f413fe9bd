package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment methods offered at checkout.
const (
	PaymentMethodPaystack     = "paystack"
	PaymentMethodFlutterwave  = "flutterwave"
	PaymentMethodBankTransfer = "bank-transfer"
)

type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderItem is a snapshot of a product at purchase time.
type OrderItem struct {
	ProductID    string `json:"productId"`
	Quantity     int    `json:"quantity"`
	Price        int    `json:"price"`
	Name         string `json:"name"`
	ImageKeyword string `json:"imageKeyword,omitempty"`
}

type Order struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customerId"`
	Items             []OrderItem     `json:"items"`
	TotalAmount       int             `json:"totalAmount"`
	Status            OrderStatus     `json:"status"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	PaymentMethod     string          `json:"paymentMethod"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus"`
	OrderDate         time.Time       `json:"orderDate"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

// OrderUpdate carries a partial edit. Nil fields are left untouched.
// Status changes are validated against AllowedTransitions by the store.
type OrderUpdate struct {
	Status            *OrderStatus     `json:"status"`
	PaymentStatus     *PaymentStatus   `json:"paymentStatus"`
	PaymentMethod     *string          `json:"paymentMethod"`
	ShippingAddress   *ShippingAddress `json:"shippingAddress"`
	TotalAmount       *int             `json:"totalAmount"`
	Items             *[]OrderItem     `json:"items"`
	EstimatedDelivery *time.Time       `json:"estimatedDelivery"`
	TrackingNumber    *string          `json:"trackingNumber"`
	Notes             *string          `json:"notes"`
}

// AllowedTransitions defines the valid order status state machine.
var AllowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// IsValidTransition checks if a status transition is allowed.
func IsValidTransition(from, to OrderStatus) bool {
	allowed, exists := AllowedTransitions[from]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is one of the known order statuses.
func IsValidStatus(s OrderStatus) bool {
	_, ok := AllowedTransitions[s]
	return ok
}

// IsValidPaymentStatus reports whether p is a known payment status.
func IsValidPaymentStatus(p PaymentStatus) bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}
