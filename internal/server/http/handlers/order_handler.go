package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopdash/internal/orderview"
	"github.com/polkiloo/shopdash/internal/server/http/dto"
	"github.com/polkiloo/shopdash/internal/usecase"
)

// OrderHandler manages order table endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	view, err := h.facade.OrderTable(c.Request.Context(), q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderViewResponse("", view))
}

// Create handles POST /api/orders/views.
func (h *OrderHandler) Create(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	id, view, err := h.facade.OpenOrderView(c.Request.Context(), q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Location", "/api/orders/views/"+id)
	c.JSON(http.StatusCreated, toOrderViewResponse(id, view))
}

// Get handles GET /api/orders/views/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	view, err := h.facade.OrderView(c.Request.Context(), id)
	h.respond(c, id, view, err)
}

// Delete handles DELETE /api/orders/views/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.CloseOrderView(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles PUT /api/orders/views/:id/search.
func (h *OrderHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, usecase.SetSearch(req.Query))
}

// Sort handles PUT /api/orders/views/:id/sort.
func (h *OrderHandler) Sort(c *gin.Context) {
	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	dir, err := usecase.ParseDirection(req.Direction, "")
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.apply(c, usecase.SetSort(usecase.ParseSortKey(req.Key, ""), dir))
}

// ToggleSort handles POST /api/orders/views/:id/sort/toggle.
func (h *OrderHandler) ToggleSort(c *gin.Context) {
	h.apply(c, usecase.ToggleSortDirection())
}

// Page handles PUT /api/orders/views/:id/page.
func (h *OrderHandler) Page(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, usecase.GoToPage(*req.Page))
}

// NextPage handles POST /api/orders/views/:id/page/next.
func (h *OrderHandler) NextPage(c *gin.Context) {
	h.apply(c, usecase.NextPage())
}

// PreviousPage handles POST /api/orders/views/:id/page/previous.
func (h *OrderHandler) PreviousPage(c *gin.Context) {
	h.apply(c, usecase.PreviousPage())
}

// ToggleSelection handles POST /api/orders/views/:id/selection/:orderID/toggle.
func (h *OrderHandler) ToggleSelection(c *gin.Context) {
	h.apply(c, usecase.ToggleSelection(c.Param("orderID")))
}

// ToggleVisibleSelection handles POST /api/orders/views/:id/selection/visible/toggle.
func (h *OrderHandler) ToggleVisibleSelection(c *gin.Context) {
	h.apply(c, usecase.ToggleVisibleSelection())
}

func (h *OrderHandler) apply(c *gin.Context, ops ...orderview.Operation) {
	id := c.Param("id")
	view, err := h.facade.UpdateOrderView(c.Request.Context(), id, ops...)
	h.respond(c, id, view, err)
}

func (h *OrderHandler) respond(c *gin.Context, id string, view orderview.View, err error) {
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderViewResponse(id, view))
}

func parseQuery(c *gin.Context) (orderview.Query, error) {
	defaults := orderview.DefaultQuery()
	page, err := usecase.ParsePage(c.Query("page"))
	if err != nil {
		return orderview.Query{}, err
	}
	dir, err := usecase.ParseDirection(c.Query("direction"), defaults.Direction)
	if err != nil {
		return orderview.Query{}, err
	}
	return orderview.Query{
		Search:    c.Query("search"),
		SortKey:   usecase.ParseSortKey(c.Query("sort"), defaults.SortKey),
		Direction: dir,
		Page:      page,
	}, nil
}
