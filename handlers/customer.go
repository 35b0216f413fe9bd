package handlers

import (
	"net/http"

	"lushlocks-backend/models"
	"lushlocks-backend/store"
	"lushlocks-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	Store *store.CRUD
}

func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		customer, ok := h.Store.GetCustomerByEmail(email)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, customer)
		return
	}

	customers := h.Store.Customers()
	c.JSON(http.StatusOK, gin.H{"customers": customers, "total": len(customers)})
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, ok := h.Store.GetCustomer(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetCustomerOrders returns the customer's order history.
func (h *CustomerHandler) GetCustomerOrders(c *gin.Context) {
	orders := h.Store.OrdersByCustomer(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req struct {
		Name        string                     `json:"name" binding:"required"`
		Email       string                     `json:"email" binding:"required,email"`
		Phone       string                     `json:"phone"`
		Address     models.ShippingAddress     `json:"address"`
		IsActive    *bool                      `json:"isActive"`
		Preferences models.CustomerPreferences `json:"preferences"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	customer, err := h.Store.AddCustomer(models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		IsActive:    isActive,
		Preferences: req.Preferences,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var updates models.CustomerUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	customer, err := h.Store.UpdateCustomer(c.Param("id"), updates)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	h.Store.DeleteCustomer(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
