package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// OverviewHandler serves dashboard widgets and side panels.
type OverviewHandler struct {
	facade OverviewFacade
	now    func() time.Time
}

// NewOverviewHandler constructs OverviewHandler.
func NewOverviewHandler(facade OverviewFacade) *OverviewHandler {
	return &OverviewHandler{facade: facade, now: time.Now}
}

// Dashboard handles GET /api/dashboard.
func (h *OverviewHandler) Dashboard(c *gin.Context) {
	d, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDashboardResponse(d))
}

// Notifications handles GET /api/notifications.
func (h *OverviewHandler) Notifications(c *gin.Context) {
	items, err := h.facade.Notifications(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNotificationsResponse(items, h.now()))
}

// Activities handles GET /api/activities.
func (h *OverviewHandler) Activities(c *gin.Context) {
	items, err := h.facade.Activities(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toActivityResponses(items, h.now()))
}

// Contacts handles GET /api/contacts.
func (h *OverviewHandler) Contacts(c *gin.Context) {
	users, err := h.facade.Contacts(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContactResponses(users))
}
