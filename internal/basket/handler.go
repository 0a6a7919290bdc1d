package basket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tavolo/internal/item"
)

const defaultPageSize = 5

// Handler exposes the basket view: paginated reads, aggregates and the
// mutation round-trips.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// --------------------------------------------------
// GET /api/basket
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	q := item.QueryFromRequest(c)
	page := intQuery(c, "page", 1)
	size := intQuery(c, "pageSize", defaultPageSize)

	items := h.svc.Refresh(q)
	c.JSON(http.StatusOK, gin.H{
		"items":      Page(items, page, size),
		"page":       page,
		"totalItems": len(items),
		"totalPages": TotalPages(len(items), size),
	})
}

// --------------------------------------------------
// GET /api/basket/summary
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
	items := h.svc.Refresh(item.Query{})
	c.JSON(http.StatusOK, gin.H{
		"summary":    Summarize(items),
		"totalPrice": h.svc.Total(),
	})
}

// --------------------------------------------------
// POST /api/basket
// --------------------------------------------------
func (h *Handler) Add(c *gin.Context) {
	var p item.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.svc.AddToBasket(p)
	if err != nil {
		item.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// POST /api/basket/:id/increase | /decrease
// --------------------------------------------------
func (h *Handler) Increase(c *gin.Context) {
	h.quantity(c, h.svc.IncreaseQuantity)
}

func (h *Handler) Decrease(c *gin.Context) {
	h.quantity(c, h.svc.DecreaseQuantity)
}

func (h *Handler) quantity(c *gin.Context, mutate func(int64) ([]item.Item, error)) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	items, err := mutate(id)
	if err != nil {
		item.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// PUT /api/basket/:id/ingredients
// --------------------------------------------------
func (h *Handler) EditIngredients(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Ingredients []string `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.svc.EditIngredients(id, req.Ingredients)
	if err != nil {
		item.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// POST /api/basket/:id/review
// --------------------------------------------------
func (h *Handler) AddReview(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Rating  float64 `json:"rating"`
		Comment string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.svc.AddReview(id, req.Rating)
	if err != nil {
		item.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// DELETE /api/basket/:id
// --------------------------------------------------
func (h *Handler) Remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	items, err := h.svc.Remove(id)
	if err != nil {
		item.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
