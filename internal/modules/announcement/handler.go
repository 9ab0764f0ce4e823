package announcement

import (
	"errors"
	"net/http"

	"eventspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts announcement endpoints; mount under the admin-only
// group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/announcements", h.Send)
	rg.GET("/announcements", h.History)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Send(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid announcement")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send announcement")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"announcement": a})
}

func (h *Handler) History(c *gin.Context) {
	items, err := h.service.History(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load announcements")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcements": items})
}
