package handlers

import (
	"net/http"

	"lushlocks-backend/models"
	"lushlocks-backend/store"
	"lushlocks-backend/utils"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Cart *store.Cart
}

func (h *CartHandler) cartState() gin.H {
	return gin.H{
		"items":         h.Cart.Items(),
		"total":         h.Cart.Total(),
		"itemCount":     h.Cart.ItemCount(),
		"totalQuantity": h.Cart.TotalQuantity(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartState())
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req struct {
		ID           string `json:"id" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Price        int    `json:"price" binding:"min=0"`
		Image        string `json:"image"`
		ImageKeyword string `json:"imageKeyword"`
		Quantity     int    `json:"quantity" binding:"min=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	h.Cart.Add(models.CartItem{
		ID:           req.ID,
		Name:         req.Name,
		Price:        req.Price,
		Image:        req.Image,
		ImageKeyword: req.ImageKeyword,
		Quantity:     req.Quantity,
	})

	c.JSON(http.StatusOK, h.cartState())
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if err := h.Cart.UpdateQuantity(id, *req.Quantity); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.cartState())
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	h.Cart.Remove(c.Param("id"))
	c.JSON(http.StatusOK, h.cartState())
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
