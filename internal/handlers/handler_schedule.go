package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
	"github.com/Shunea/be-easyreserv-sub002/internal/middleware"
	"github.com/gin-gonic/gin"
)

// scheduleHandler handles HTTP requests related to shifts.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
	location        *time.Location
}

func newScheduleHandler(ss portssvc.ScheduleSvcFacade, loc *time.Location) *scheduleHandler {
	return &scheduleHandler{scheduleService: ss, location: loc}
}

// RegisterScheduleRoutes registers shift routes under rg. loc interprets listing dates.
func RegisterScheduleRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade, loc *time.Location) {
	h := newScheduleHandler(scheduleService, loc)
	rg.POST("/staff/:staff_id/schedules", h.planShift)
	rg.GET("/restaurants/:restaurant_id/schedules", h.listSchedules)

	schedules := rg.Group("/schedules/:schedule_id")
	{
		schedules.GET("", h.getSchedule)
		schedules.POST("/check-in", h.checkIn)
		schedules.POST("/check-out", h.checkOut)
		schedules.POST("/cancel", h.cancelShift)
	}
}

// planShift godoc
// @Summary Plan a shift
// @Description Plans a shift for a staff member. Overlapping active shifts are rejected.
// @Tags schedules
// @Accept  json
// @Produce  json
// @Param   staff_id path string true "Staff ID"
// @Param   shift body dto.PlanShiftRequest true "Shift window"
// @Success 201 {object} dto.ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid window or overlapping shift"
// @Failure 404 {object} map[string]string "Staff member not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Security BearerAuth
// @Router /staff/{staff_id}/schedules [post]
func (h *scheduleHandler) planShift(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.PlanShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	date, err := req.ShiftDate()
	if err != nil {
		errorResponse(c, err, "Invalid shift date")
		return
	}

	sched, err := h.scheduleService.PlanShift(c.Request.Context(), c.Param("staff_id"), date, req.StartTime, req.EndTime, actor)
	if err != nil {
		errorResponse(c, err, "Failed to plan shift")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Shift planned", slog.String("schedule_id", sched.ScheduleID))
	c.JSON(http.StatusCreated, dto.ToScheduleResponse(sched))
}

// listSchedules godoc
// @Summary List shifts of a restaurant
// @Description Lists shifts whose date falls in [from, to), cancelled ones included
// @Tags schedules
// @Produce  json
// @Param   restaurant_id path string true "Restaurant ID"
// @Param   from query string true "First day (YYYY-MM-DD)"
// @Param   to query string true "Day after the last (YYYY-MM-DD)"
// @Success 200 {array} dto.ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Security BearerAuth
// @Router /restaurants/{restaurant_id}/schedules [get]
func (h *scheduleHandler) listSchedules(c *gin.Context) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	window, err := q.Window(h.location)
	if err != nil {
		errorResponse(c, err, "Invalid window")
		return
	}

	schedules, err := h.scheduleService.ListSchedules(c.Request.Context(), c.Param("restaurant_id"), window)
	if err != nil {
		errorResponse(c, err, "Failed to list shifts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListScheduleResponse(schedules))
}

// getSchedule godoc
// @Summary Get a shift
// @Tags schedules
// @Produce  json
// @Param   schedule_id path string true "Schedule ID"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /schedules/{schedule_id} [get]
func (h *scheduleHandler) getSchedule(c *gin.Context) {
	sched, err := h.scheduleService.GetSchedule(c.Request.Context(), c.Param("schedule_id"))
	if err != nil {
		errorResponse(c, err, "Failed to retrieve shift")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(sched))
}

// checkIn godoc
// @Summary Check in to a shift
// @Description Stamps the check-in time (now when omitted) and makes the shift the staff member's current schedule
// @Tags schedules
// @Accept  json
// @Produce  json
// @Param   schedule_id path string true "Schedule ID"
// @Param   event body dto.ShiftEventRequest false "Check-in time"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 409 {object} map[string]string "Concurrent update"
// @Failure 422 {object} map[string]string "Shift already checked in or cancelled"
// @Security BearerAuth
// @Router /schedules/{schedule_id}/check-in [post]
func (h *scheduleHandler) checkIn(c *gin.Context) {
	h.shiftEvent(c, h.scheduleService.CheckIn, "Failed to check in")
}

// checkOut godoc
// @Summary Check out of a shift
// @Description Stamps the check-out time (now when omitted) and clears the staff member's current schedule
// @Tags schedules
// @Accept  json
// @Produce  json
// @Param   schedule_id path string true "Schedule ID"
// @Param   event body dto.ShiftEventRequest false "Check-out time"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 409 {object} map[string]string "Concurrent update"
// @Failure 422 {object} map[string]string "Shift not checked in, already checked out, or cancelled"
// @Security BearerAuth
// @Router /schedules/{schedule_id}/check-out [post]
func (h *scheduleHandler) checkOut(c *gin.Context) {
	h.shiftEvent(c, h.scheduleService.CheckOut, "Failed to check out")
}

// shiftEvent binds the optional timestamp and runs a check-in or check-out. A missing body means now.
func (h *scheduleHandler) shiftEvent(c *gin.Context, run func(ctx context.Context, scheduleID string, at time.Time, actor string) (*domain.Schedule, error), failMsg string) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.ShiftEventRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}
	var at time.Time
	if req.At != nil {
		at = *req.At
	}

	sched, err := run(c.Request.Context(), c.Param("schedule_id"), at, actor)
	if err != nil {
		errorResponse(c, err, failMsg)
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(sched))
}

// cancelShift godoc
// @Summary Cancel a shift
// @Description Soft-deletes a shift that has not been completed, recording the reason
// @Tags schedules
// @Accept  json
// @Produce  json
// @Param   schedule_id path string true "Schedule ID"
// @Param   cancel body dto.CancelShiftRequest true "Cancellation reason"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 422 {object} map[string]string "Shift completed or already cancelled"
// @Security BearerAuth
// @Router /schedules/{schedule_id}/cancel [post]
func (h *scheduleHandler) cancelShift(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CancelShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	sched, err := h.scheduleService.CancelShift(c.Request.Context(), c.Param("schedule_id"), req.Reason, actor)
	if err != nil {
		errorResponse(c, err, "Failed to cancel shift")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(sched))
}
