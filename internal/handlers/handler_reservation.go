package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	portssvc "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/dto"
	"github.com/Shunea/be-easyreserv-sub002/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reservationHandler handles HTTP requests related to reservations.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

func newReservationHandler(rs portssvc.ReservationSvcFacade) *reservationHandler {
	return &reservationHandler{reservationService: rs}
}

// RegisterReservationRoutes registers reservation routes under rg.
func RegisterReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := newReservationHandler(reservationService)

	restaurant := rg.Group("/restaurants/:restaurant_id/reservations")
	{
		restaurant.POST("", h.createReservation)
		restaurant.GET("", h.listReservations)
	}

	reservations := rg.Group("/reservations/:reservation_id")
	{
		reservations.GET("", h.getReservation)
		reservations.PATCH("/status", h.transitionReservation)
		reservations.GET("/history", h.getHistory)
	}
}

// createReservation godoc
// @Summary Book a table
// @Description Creates a reservation in PENDING, or PENDING_PREORDER when preorder is set
// @Tags reservations
// @Accept  json
// @Produce  json
// @Param   restaurant_id path string true "Restaurant ID"
// @Param   reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /restaurants/{restaurant_id}/reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.reservationService.CreateReservation(c.Request.Context(), c.Param("restaurant_id"), req, actor)
	if err != nil {
		errorResponse(c, err, "Failed to create reservation")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Reservation created",
		slog.String("reservation_id", res.ReservationID), slog.String("status", string(res.Status)))
	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

// listReservations godoc
// @Summary List reservations of a restaurant
// @Description Lists reservations ordered by reservation time, with token-based pagination
// @Tags reservations
// @Produce  json
// @Param   restaurant_id path string true "Restaurant ID"
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   spaceID query string false "Only this space"
// @Param   status query string false "Only this status"
// @Param   from query string false "Reserved at or after (RFC3339)"
// @Param   to query string false "Reserved before (RFC3339)"
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /restaurants/{restaurant_id}/reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	var params dto.ListReservationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	filter := domain.ReservationFilter{
		RestaurantID: c.Param("restaurant_id"),
		SpaceID:      params.SpaceID,
		From:         params.From,
		To:           params.To,
	}
	if params.Status != "" {
		st := domain.ReservationStatus(params.Status)
		filter.Status = &st
	}

	rows, next, err := h.reservationService.ListReservations(c.Request.Context(), filter, params.Limit, params.NextToken)
	if err != nil {
		errorResponse(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReservationsResponse(rows, next))
}

// getReservation godoc
// @Summary Get a reservation
// @Tags reservations
// @Produce  json
// @Param   reservation_id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} map[string]string "Reservation not found"
// @Security BearerAuth
// @Router /reservations/{reservation_id} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	res, err := h.reservationService.GetReservation(c.Request.Context(), c.Param("reservation_id"))
	if err != nil {
		errorResponse(c, err, "Failed to retrieve reservation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

// transitionReservation godoc
// @Summary Change a reservation's status
// @Description Moves the reservation along an allowed edge of its lifecycle and records it in the history log
// @Tags reservations
// @Accept  json
// @Produce  json
// @Param   reservation_id path string true "Reservation ID"
// @Param   transition body dto.TransitionReservationRequest true "Target status"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Reservation not found"
// @Failure 409 {object} map[string]string "Concurrent update"
// @Failure 422 {object} map[string]string "Transition not allowed"
// @Security BearerAuth
// @Router /reservations/{reservation_id}/status [patch]
func (h *reservationHandler) transitionReservation(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.TransitionReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.reservationService.Transition(c.Request.Context(), c.Param("reservation_id"), req.Status, actor)
	if err != nil {
		errorResponse(c, err, "Failed to change reservation status")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

// getHistory godoc
// @Summary Reservation status history
// @Description Returns the append-only status log in the order the changes happened
// @Tags reservations
// @Produce  json
// @Param   reservation_id path string true "Reservation ID"
// @Success 200 {array} dto.ReservationHistoryResponse
// @Failure 404 {object} map[string]string "Reservation not found"
// @Security BearerAuth
// @Router /reservations/{reservation_id}/history [get]
func (h *reservationHandler) getHistory(c *gin.Context) {
	records, err := h.reservationService.GetHistory(c.Request.Context(), c.Param("reservation_id"))
	if err != nil {
		errorResponse(c, err, "Failed to retrieve reservation history")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationHistoryResponse(records))
}
