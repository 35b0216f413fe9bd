package handlers

import (
	"net/http"

	"lushlocks-backend/models"
	"lushlocks-backend/store"
	"lushlocks-backend/utils"

	"github.com/gin-gonic/gin"
)

// ShippingFee is the flat delivery charge applied at checkout, in naira.
const ShippingFee = 5000

type OrderHandler struct {
	Store *store.CRUD
	Cart  *store.Cart
}

// Checkout turns the current cart into an order: flat shipping on top of
// the cart total, items snapshotted from the cart lines, cart cleared
// once the order is stored.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req struct {
		CustomerID      string                 `json:"customerId"`
		ShippingAddress models.ShippingAddress `json:"shippingAddress" binding:"required"`
		PaymentMethod   string                 `json:"paymentMethod" binding:"required,oneof=paystack flutterwave bank-transfer"`
		Notes           string                 `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	cartItems := h.Cart.Items()
	if len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	customerID := req.CustomerID
	if customerID == "" {
		if userID, exists := c.Get("user_id"); exists {
			customerID = userID.(string)
		}
	}

	items := make([]models.OrderItem, 0, len(cartItems))
	for _, line := range cartItems {
		items = append(items, models.OrderItem{
			ProductID:    line.ID,
			Quantity:     line.Quantity,
			Price:        line.Price,
			Name:         line.Name,
			ImageKeyword: line.ImageKeyword,
		})
	}

	order, err := h.Store.AddOrder(models.Order{
		CustomerID:      customerID,
		Items:           items,
		TotalAmount:     h.Cart.Total() + ShippingFee,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Cart.Clear()
	c.JSON(http.StatusCreated, order)
}

// CreateOrder stores an order exactly as supplied, total included. Used
// by the admin panel; the store never recomputes the caller's total.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		CustomerID      string                 `json:"customerId" binding:"required"`
		Items           []models.OrderItem     `json:"items" binding:"required"`
		TotalAmount     int                    `json:"totalAmount" binding:"min=0"`
		Status          models.OrderStatus     `json:"status"`
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
		PaymentMethod   string                 `json:"paymentMethod"`
		PaymentStatus   models.PaymentStatus   `json:"paymentStatus"`
		TrackingNumber  string                 `json:"trackingNumber"`
		Notes           string                 `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	order, err := h.Store.AddOrder(models.Order{
		CustomerID:      req.CustomerID,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		Status:          req.Status,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   req.PaymentStatus,
		TrackingNumber:  req.TrackingNumber,
		Notes:           req.Notes,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	if customerID := c.Query("customer_id"); customerID != "" {
		orders := h.Store.OrdersByCustomer(customerID)
		c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
		return
	}

	orders := h.Store.Orders()
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.Store.GetOrder(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var updates models.OrderUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	order, err := h.Store.UpdateOrder(c.Param("id"), updates)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus moves an order through the fulfillment state machine.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	order, err := h.Store.UpdateOrder(c.Param("id"), models.OrderUpdate{Status: &req.Status})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	h.Store.DeleteOrder(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
