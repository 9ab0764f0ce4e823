package admin

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

// RegisterRoutes expects rg to already be guarded by the admin role
// middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/requests", h.PendingRequests)
	rg.GET("/statistics", h.Statistics)
	rg.POST("/bookings/:id/:action", h.BookingAction)
	rg.POST("/bookings/:id/revert-approval", h.RevertBookingApproval)
	rg.POST("/equipment-requests/:id/:action", h.EquipmentRequestAction)
	rg.GET("/users", h.ListUsers)
	rg.DELETE("/users/:id", h.DeleteUser)
}

func (h *Handler) PendingRequests(c *gin.Context) {
	out, err := h.service.PendingRequests(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Statistics(c *gin.Context) {
	out, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) BookingAction(c *gin.Context) {
	id, decision, ok := idAndDecision(c)
	if !ok {
		return
	}

	b, err := h.service.DecideBooking(c.Request.Context(), id, decision, c.GetString("user_id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking": gin.H{
			"id":     b.ID,
			"status": b.Status.String(),
		},
	})
}

func (h *Handler) RevertBookingApproval(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.service.RevertBookingApproval(c.Request.Context(), id, c.GetString("user_id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking": gin.H{
			"id":     b.ID,
			"status": b.Status.String(),
		},
	})
}

func (h *Handler) EquipmentRequestAction(c *gin.Context) {
	id, decision, ok := idAndDecision(c)
	if !ok {
		return
	}

	req, err := h.service.DecideEquipmentRequest(c.Request.Context(), id, decision, c.GetString("user_id"))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"request": gin.H{
			"id":     req.ID,
			"status": req.Status.String(),
		},
	})
}

func (h *Handler) ListUsers(c *gin.Context) {
	role := domain.Role(c.Query("role"))
	users, err := h.service.ListUsers(c.Request.Context(), role, c.Query("search"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func idAndDecision(c *gin.Context) (int64, domain.Decision, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, "", false
	}

	decision := domain.Decision(c.Param("action"))
	if decision != domain.DecisionApprove && decision != domain.DecisionReject {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Action must be approve or reject")
		return 0, "", false
	}
	return id, decision, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
	case errors.Is(err, ErrAlreadyProcessed):
		response.Error(c, http.StatusConflict, "ALREADY_PROCESSED", "This request has already been processed")
	case errors.Is(err, ErrInsufficientStock):
		response.Error(c, http.StatusConflict, "INSUFFICIENT_STOCK", "Not enough stock to approve this request")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrUserInUse):
		response.Error(c, http.StatusConflict, "USER_IN_USE", "Cannot delete user with active bookings or events")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Action failed")
	}
}
