package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to restaurant statistics
type reportingHandler struct {
	reportingService portssvc.ReportingService
	location         *time.Location
}

func newReportingHandler(rs portssvc.ReportingService, loc *time.Location) *reportingHandler {
	return &reportingHandler{reportingService: rs, location: loc}
}

// RegisterReportingRoutes registers the report routes of a restaurant. loc interprets the from/to dates.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, loc *time.Location) {
	h := newReportingHandler(reportingService, loc)

	reportingGroup := rg.Group("/restaurants/:restaurant_id/reports")
	{
		reportingGroup.GET("/clients", h.getClientsReport)
		reportingGroup.GET("/reservations", h.getReservationsReport)
		reportingGroup.GET("/sales", h.getSalesReport)
		reportingGroup.GET("/ratings", h.getRatingsReport)
	}
}

// serveReport binds the window and writes whatever the report function returns.
func serveReport[T any](h *reportingHandler, c *gin.Context, build func(ctx context.Context, restaurantID string, window domain.ReportWindow) (*T, error)) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	window, err := q.Window(h.location)
	if err != nil {
		errorResponse(c, err, "Invalid report window")
		return
	}

	report, err := build(c.Request.Context(), c.Param("restaurant_id"), window)
	if err != nil {
		errorResponse(c, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getClientsReport godoc
// @Summary Clients report
// @Description Counts visits, distinct and returning clients per space, per date and overall
// @Tags reports
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Day after the last (YYYY-MM-DD)"
// @Success 200 {object} domain.ClientsReports
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Security BearerAuth
// @Router /restaurants/{restaurant_id}/reports/clients [get]
func (h *reportingHandler) getClientsReport(c *gin.Context) {
	serveReport(h, c, h.reportingService.ClientsReport)
}

// getReservationsReport godoc
// @Summary Reservations report
// @Description Counts reservations and their missed, canceled and closed outcomes
// @Tags reports
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Day after the last (YYYY-MM-DD)"
// @Success 200 {object} domain.ReservationsReports
// @Failure 400 {object} map[string]string "Invalid window"
// @Security BearerAuth
// @Router /restaurants/{restaurant_id}/reports/reservations [get]
func (h *reportingHandler) getReservationsReport(c *gin.Context) {
	serveReport(h, c, h.reportingService.ReservationsReport)
}

// getSalesReport godoc
// @Summary Sales report
// @Description Sums paid and closed orders
// @Tags reports
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Day after the last (YYYY-MM-DD)"
// @Success 200 {object} domain.SalesReport
// @Failure 400 {object} map[string]string "Invalid window"
// @Security BearerAuth
// @Router /restaurants/{restaurant_id}/reports/sales [get]
func (h *reportingHandler) getSalesReport(c *gin.Context) {
	serveReport(h, c, h.reportingService.SalesReport)
}

// getRatingsReport godoc
// @Summary Ratings report
// @Description Averages the four review dimensions per date and overall
// @Tags reports
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Day after the last (YYYY-MM-DD)"
// @Success 200 {object} domain.RestaurantRating
// @Failure 400 {object} map[string]string "Invalid window"
// @Security BearerAuth
// @Router /restaurants/{restaurant_id}/reports/ratings [get]
func (h *reportingHandler) getRatingsReport(c *gin.Context) {
	serveReport(h, c, h.reportingService.RatingsReport)
}
