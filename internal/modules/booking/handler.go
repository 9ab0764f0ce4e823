package booking

import (
	"errors"
	"net/http"
	"strconv"

	"eventspace/internal/domain"
	"eventspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.SubmitBooking)
	rg.POST("/equipment-requests", h.SubmitEquipment)
	rg.GET("/events/:id/requests", h.EventRequests)
}

func (h *Handler) SubmitBooking(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	requester, ok := requesterFromContext(c)
	if !ok {
		return
	}

	b, err := h.service.SubmitBooking(c.Request.Context(), req, requester)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": gin.H{
			"id":        b.ID,
			"room_id":   b.RoomID,
			"event_id":  b.EventID,
			"req_start": b.ReqStart,
			"req_end":   b.ReqEnd,
			"status":    b.Status.String(),
		},
	})
}

func (h *Handler) SubmitEquipment(c *gin.Context) {
	var req SubmitEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	requester, ok := requesterFromContext(c)
	if !ok {
		return
	}

	er, err := h.service.SubmitEquipment(c.Request.Context(), req, requester)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"request": gin.H{
			"id":           er.ID,
			"equipment_id": er.EquipmentID,
			"event_id":     er.EventID,
			"quantity":     er.Quantity,
			"status":       er.Status.String(),
		},
	})
}

func (h *Handler) EventRequests(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid event id")
		return
	}

	requester, ok := requesterFromContext(c)
	if !ok {
		return
	}

	out, err := h.service.EventRequests(c.Request.Context(), eventID, requester)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, out)
}

func requesterFromContext(c *gin.Context) (domain.Creator, bool) {
	userID := c.GetString("user_id")
	role := domain.Role(c.GetString("role"))

	requester, ok := domain.CreatorForRole(role, userID)
	if !ok {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only organizers and lecturers can submit requests")
		return domain.Creator{}, false
	}
	return requester, true
}

func handleError(c *gin.Context, err error) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT",
			"Room is not available for the event's time window", ConflictDetails{
				RoomID:        conflict.RoomID,
				ExistingStart: conflict.ExistingStart,
				ExistingEnd:   conflict.ExistingEnd,
			})
		return
	}

	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the event's time window")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
	}
}
