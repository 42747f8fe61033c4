package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
	"github.com/Shunea/be-easyreserv-sub002/internal/middleware"
	"github.com/gin-gonic/gin"
)

// staffHandler handles HTTP requests related to staff members.
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

func newStaffHandler(ss portssvc.StaffSvcFacade) *staffHandler {
	return &staffHandler{staffService: ss}
}

// RegisterStaffRoutes registers staff routes under rg.
func RegisterStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := newStaffHandler(staffService)
	rg.POST("/restaurants/:restaurant_id/staff", h.createStaffMember)
	rg.GET("/staff/:staff_id", h.getStaffMember)
}

// createStaffMember godoc
// @Summary Hire a staff member
// @Description Creates a staff member of a restaurant
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   restaurant_id path string true "Restaurant ID"
// @Param   staff body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create staff member"
// @Security BearerAuth
// @Router /restaurants/{restaurant_id}/staff [post]
func (h *staffHandler) createStaffMember(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	staff, err := h.staffService.CreateStaffMember(c.Request.Context(), c.Param("restaurant_id"), req, actor)
	if err != nil {
		errorResponse(c, err, "Failed to create staff member")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Staff member created", slog.String("staff_id", staff.StaffID))
	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}

// getStaffMember godoc
// @Summary Get a staff member
// @Description Retrieves a staff member, including the shift they are currently checked into
// @Tags staff
// @Produce  json
// @Param   staff_id path string true "Staff ID"
// @Success 200 {object} dto.StaffResponse
// @Failure 404 {object} map[string]string "Staff member not found"
// @Security BearerAuth
// @Router /staff/{staff_id} [get]
func (h *staffHandler) getStaffMember(c *gin.Context) {
	staff, err := h.staffService.GetStaffMember(c.Request.Context(), c.Param("staff_id"))
	if err != nil {
		errorResponse(c, err, "Failed to retrieve staff member")
		return
	}
	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}
