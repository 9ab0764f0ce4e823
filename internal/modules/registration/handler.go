package registration

import (
	"errors"
	"net/http"
	"strconv"

	"eventspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the student-facing registration endpoints. The
// group is expected to carry auth plus a student role check.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/events/:id/register", h.Register)
	rg.DELETE("/events/:id/register", h.Cancel)
	rg.GET("/my-registrations", h.MyRegistrations)
}

func (h *Handler) Register(c *gin.Context) {
	eventID, ok := eventID(c)
	if !ok {
		return
	}

	reg, err := h.service.Register(c.Request.Context(), c.GetString("user_id"), eventID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"registration": reg})
}

func (h *Handler) Cancel(c *gin.Context) {
	eventID, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), c.GetString("user_id"), eventID); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) MyRegistrations(c *gin.Context) {
	out, err := h.service.MyRegistrations(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"registrations": out})
}

func eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid event id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event or registration not found")
	case errors.Is(err, ErrEventNotOpen):
		response.Error(c, http.StatusConflict, "EVENT_NOT_OPEN", "Event is not open for registration")
	case errors.Is(err, ErrAlreadyRegistered):
		response.Error(c, http.StatusConflict, "ALREADY_REGISTERED", "Already registered for this event")
	case errors.Is(err, ErrEventFull):
		response.Error(c, http.StatusConflict, "EVENT_FULL", "No spots left for this event")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Registration failed")
	}
}
