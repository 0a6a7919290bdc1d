package item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler serves the combined read endpoint plus the basket write path.
type Handler struct {
	store *Store
}

// AdminHandler serves catalog writes; routes using it sit behind the admin
// role gate.
type AdminHandler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func NewAdminHandler(store *Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// QueryFromRequest reads the shared read-pipeline parameters.
func QueryFromRequest(c *gin.Context) Query {
	return Query{
		FilterBy:           c.Query("filterBy"),
		SortOrder:          c.Query("sortOrder"),
		SortAlphabetically: c.Query("sortAlphabetically"),
		SearchQuery:        c.Query("searchQuery"),
		PriceSegment:       c.Query("priceSegment"),
	}
}

// WriteError maps store errors onto HTTP responses. Validation failures carry
// their field detail.
func WriteError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid item data",
			"details": verr.Fields,
		})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// --------------------------------------------------
// GET /api/items
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	collection := CollectionBasket
	if c.Query("type") == string(CollectionMenu) {
		collection = CollectionMenu
	}

	items := h.store.List(collection, QueryFromRequest(c))
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// POST /api/items (add to basket)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var p Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.store.Create(CollectionBasket, p)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// PATCH /api/items
// --------------------------------------------------
type updateRequest struct {
	ID *int64 `json:"id"`
	Patch
}

func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	items, err := h.store.Update(CollectionBasket, *req.ID, req.Patch)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// DELETE /api/items?id=
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	items, err := h.store.Delete(CollectionBasket, id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// Admin catalog writes
// --------------------------------------------------
func (h *AdminHandler) Create(c *gin.Context) {
	var p Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.store.Create(CollectionMenu, p)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": items})
}

func (h *AdminHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var p Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	items, err := h.store.Update(CollectionMenu, id, p)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	items, err := h.store.Delete(CollectionMenu, id)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
