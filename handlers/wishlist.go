package handlers

import (
	"net/http"

	"lushlocks-backend/models"
	"lushlocks-backend/store"
	"lushlocks-backend/utils"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	Wishlist *store.Wishlist
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.Wishlist.Items(),
		"count": h.Wishlist.Count(),
	})
}

func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req struct {
		ID            string   `json:"id" binding:"required"`
		Name          string   `json:"name" binding:"required"`
		Price         int      `json:"price" binding:"min=0"`
		OriginalPrice int      `json:"originalPrice"`
		Image         string   `json:"image"`
		ImageKeyword  string   `json:"imageKeyword"`
		Category      string   `json:"category"`
		Rating        float64  `json:"rating"`
		Reviews       int      `json:"reviews"`
		Colors        []string `json:"colors"`
		InStock       bool     `json:"inStock"`
		OnSale        bool     `json:"onSale"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	h.Wishlist.Add(models.WishlistItem{
		ID:            req.ID,
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		ImageKeyword:  req.ImageKeyword,
		Category:      req.Category,
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		Colors:        req.Colors,
		InStock:       req.InStock,
		OnSale:        req.OnSale,
	})

	c.JSON(http.StatusOK, gin.H{
		"items": h.Wishlist.Items(),
		"count": h.Wishlist.Count(),
	})
}

// CheckWishlist reports whether a product id has been liked, for the
// heart toggle on product cards.
func (h *WishlistHandler) CheckWishlist(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"id":         id,
		"inWishlist": h.Wishlist.Contains(id),
	})
}

func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	h.Wishlist.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"items": h.Wishlist.Items(),
		"count": h.Wishlist.Count(),
	})
}

func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	h.Wishlist.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
}
