package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/portal-actividades/internal/service"
	"github.com/SecondHemisphere/portal-actividades/pkg/response"
)

// DashboardHandler serves the admin dashboard aggregates.
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler builds the DashboardHandler.
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Totals returns the resource counters.
// GET /api/v1/dashboard/totals
func (h *DashboardHandler) Totals(c *gin.Context) {
	totals, err := h.dashboardSvc.Totals(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, totals)
}

// EnrollmentsLastMonths returns the monthly enrollment chart data.
// GET /api/v1/dashboard/enrollments-last-months
func (h *DashboardHandler) EnrollmentsLastMonths(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))

	rows, err := h.dashboardSvc.EnrollmentsLastMonths(c.Request.Context(), months)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rows})
}

// ActivitiesByCategory returns the category distribution chart data.
// GET /api/v1/dashboard/activities-by-category
func (h *DashboardHandler) ActivitiesByCategory(c *gin.Context) {
	rows, err := h.dashboardSvc.ActivitiesByCategory(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rows})
}

// TopRatings returns the best-rated activities.
// GET /api/v1/dashboard/top-ratings
func (h *DashboardHandler) TopRatings(c *gin.Context) {
	rows, err := h.dashboardSvc.TopRatings(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rows})
}
