package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"subscription-box/internal/domain/products"
)

func (h *Handler) Products(c *gin.Context) {
	var items []products.Product
	if err := h.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": items,
	})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var input struct {
		Name          string          `json:"name" binding:"required"`
		Description   string          `json:"description"`
		Price         decimal.Decimal `json:"price" binding:"required"`
		StockQuantity int             `json:"stock_quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required"})
		return
	}

	product := products.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		IsActive:      true,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"product": product,
		"message": "Product created successfully",
	})
}

// UpdateProduct patches the supplied fields and leaves the rest untouched,
// matching partial-update semantics on the inventory screen.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var input struct {
		Name          *string          `json:"name"`
		Description   *string          `json:"description"`
		Price         *decimal.Decimal `json:"price"`
		StockQuantity *int             `json:"stock_quantity"`
		IsActive      *bool            `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var product products.Product
	if err := h.DB.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := h.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
		"message": "Product updated successfully",
	})
}
