package delivery

import (
	"errors"
	"net/http"
	"time"

	cartdto "tourback/internal/cart/dto"
	"tourback/internal/cart/usecase"

	"github.com/gin-gonic/gin"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartUsecase usecase.CartUsecase
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartUsecase usecase.CartUsecase) *CartHandler {
	return &CartHandler{
		cartUsecase: cartUsecase,
	}
}

// AddItem puts a tour into the cart
// POST /cart
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := c.GetString("userID")

	var req cartdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.cartUsecase.AddItem(userID, req.TourName, req.TourPrice); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Added to cart"})
}

// ListItems returns the pending cart or the purchase history
// GET /cart?status=pending|purchased
func (h *CartHandler) ListItems(c *gin.Context) {
	userID := c.GetString("userID")
	purchased := c.DefaultQuery("status", "pending") == "purchased"

	items, err := h.cartUsecase.ListItems(userID, purchased)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// RemoveItem deletes a pending item
// DELETE /cart/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := c.GetString("userID")
	itemID := c.Param("id")

	if err := h.cartUsecase.RemoveItem(userID, itemID); err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found or already purchased"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Item removed from cart"})
}

// Checkout marks a pending item as purchased
// POST /checkout/:id
func (h *CartHandler) Checkout(c *gin.Context) {
	userID := c.GetString("userID")
	itemID := c.Param("id")

	purchasedAt, err := h.cartUsecase.Checkout(userID, itemID)
	if err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found or already purchased"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":          "Item checkout success",
		"purchased_at": purchasedAt.Format(time.RFC3339),
	})
}
