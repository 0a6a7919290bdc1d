package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/orders/checkout
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.GetString("userID")

	o, err := h.service.Checkout(userID)
	if err != nil {
		if errors.Is(err, ErrEmptyBasket) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not place order"})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// --------------------------------------------------
// GET /api/orders/history
// --------------------------------------------------
func (h *Handler) History(c *gin.Context) {
	userID := c.GetString("userID")

	orders, err := h.service.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// POST /api/orders/repeat/:id
// --------------------------------------------------
func (h *Handler) Repeat(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.service.Repeat(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not repeat order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
