package handlers

import (
	"net/http"
	"sort"
	"strings"

	"lushlocks-backend/models"
	"lushlocks-backend/store"
	"lushlocks-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	Store *store.CRUD
}

// GetProducts returns the catalog, optionally filtered the way the
// storefront's product listing filters client-side: category, hair type,
// name search, stock/sale flags, and price sorting.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products := h.Store.Products()

	if category := c.Query("category"); category != "" {
		products = filterProducts(products, func(p models.Product) bool {
			return strings.EqualFold(p.Category, category)
		})
	}
	if hairType := c.Query("hair_type"); hairType != "" {
		products = filterProducts(products, func(p models.Product) bool {
			return strings.EqualFold(p.HairType, hairType)
		})
	}
	if search := c.Query("search"); search != "" {
		needle := strings.ToLower(search)
		products = filterProducts(products, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle)
		})
	}
	if c.Query("in_stock") == "true" {
		products = filterProducts(products, func(p models.Product) bool { return p.InStock })
	}
	if c.Query("on_sale") == "true" {
		products = filterProducts(products, func(p models.Product) bool { return p.OnSale })
	}

	switch c.Query("sort") {
	case "price_asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price_desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "rating":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

func filterProducts(in []models.Product, keep func(models.Product) bool) []models.Product {
	out := in[:0]
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.Store.GetProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req struct {
		Name           string                 `json:"name" binding:"required"`
		Price          int                    `json:"price" binding:"min=0"`
		ImageKeyword   string                 `json:"imageKeyword"`
		Category       string                 `json:"category" binding:"required"`
		HairType       string                 `json:"hairType"`
		Length         string                 `json:"length"`
		Texture        string                 `json:"texture"`
		Rating         float64                `json:"rating"`
		Reviews        int                    `json:"reviews"`
		Colors         []string               `json:"colors"`
		InStock        bool                   `json:"inStock"`
		OnSale         bool                   `json:"onSale"`
		Description    string                 `json:"description"`
		Specifications map[string]interface{} `json:"specifications"`
		Images         []string               `json:"images"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	product, err := h.Store.AddProduct(models.Product{
		Name:           req.Name,
		Price:          req.Price,
		ImageKeyword:   req.ImageKeyword,
		Category:       req.Category,
		HairType:       req.HairType,
		Length:         req.Length,
		Texture:        req.Texture,
		Rating:         req.Rating,
		Reviews:        req.Reviews,
		Colors:         req.Colors,
		InStock:        req.InStock,
		OnSale:         req.OnSale,
		Description:    req.Description,
		Specifications: req.Specifications,
		Images:         req.Images,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var updates models.ProductUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	product, err := h.Store.UpdateProduct(c.Param("id"), updates)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	h.Store.DeleteProduct(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
