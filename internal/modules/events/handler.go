package events

import (
	"context"
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

// RegisterPublicRoutes covers browsing; any authenticated role may read.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.List)
	rg.GET("/events/:id", h.Detail)
}

// RegisterCreatorRoutes covers event ownership; the handlers themselves
// reject principals that cannot own events.
func (h *Handler) RegisterCreatorRoutes(rg *gin.RouterGroup) {
	rg.POST("/events", h.Create)
	rg.GET("/my-events", h.MyEvents)
	rg.POST("/events/:id/publish", h.Publish)
	rg.POST("/events/:id/cancel", h.Cancel)
	rg.DELETE("/events/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	creator, ok := creatorFromContext(c)
	if !ok {
		return
	}

	e, err := h.service.Create(c.Request.Context(), req, creator)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"event": e})
}

func (h *Handler) List(c *gin.Context) {
	var f ListFilters
	f.Search = c.Query("search")
	f.Sort = c.Query("sort")
	if v, err := strconv.ParseInt(c.Query("category"), 10, 64); err == nil {
		f.CategoryID = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		f.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		f.Limit = v
	}

	out, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Detail(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	out, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": out})
}

func (h *Handler) MyEvents(c *gin.Context) {
	creator, ok := creatorFromContext(c)
	if !ok {
		return
	}

	out, err := h.service.MyEvents(c.Request.Context(), creator)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": out})
}

func (h *Handler) Publish(c *gin.Context) {
	h.transition(c, h.service.Publish)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

func (h *Handler) transition(c *gin.Context, op func(ctx context.Context, id int64, creator domain.Creator) (*domain.Event, error)) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	creator, ok := creatorFromContext(c)
	if !ok {
		return
	}

	e, err := op(c.Request.Context(), id, creator)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": gin.H{"id": e.ID, "status": e.Status}})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	creator, ok := creatorFromContext(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, creator); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid event id")
		return 0, false
	}
	return id, true
}

func creatorFromContext(c *gin.Context) (domain.Creator, bool) {
	userID := c.GetString("user_id")
	role := domain.Role(c.GetString("role"))

	creator, ok := domain.CreatorForRole(role, userID)
	if !ok {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only organizers and lecturers can manage events")
		return domain.Creator{}, false
	}
	return creator, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Event status does not allow this action")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Event action failed")
	}
}
