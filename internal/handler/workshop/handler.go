package workshop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-directory/internal/handler"
	"github.com/jwalitptl/clinic-directory/internal/model"
	workshopService "github.com/jwalitptl/clinic-directory/internal/service/workshop"
	"github.com/jwalitptl/clinic-directory/pkg/httputil"
)

type Handler struct {
	service workshopService.WorkshopServicer
}

func NewHandler(service workshopService.WorkshopServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	workshops := r.Group("/workshops")
	{
		workshops.GET("", h.ListWorkshops)
		workshops.GET("/:id", h.GetWorkshop)
		workshops.POST("", h.CreateWorkshop)
		workshops.PATCH("/:id", h.UpdateWorkshop)
		workshops.GET("/:id/bookings", h.ListWorkshopBookings)
	}
}

func (h *Handler) ListWorkshops(c *gin.Context) {
	var filter model.WorkshopFilter
	if !handler.BindQuery(c, &filter, "Invalid workshop filter") {
		return
	}

	workshops, err := h.service.ListWorkshops(c.Request.Context(), filter)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to fetch workshops")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, workshops)
}

func (h *Handler) GetWorkshop(c *gin.Context) {
	id, ok := handler.ParseID(c, "Workshop")
	if !ok {
		return
	}

	workshop, err := h.service.GetWorkshop(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to fetch workshop")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, workshop)
}

func (h *Handler) CreateWorkshop(c *gin.Context) {
	var req model.WorkshopInput
	if !handler.BindJSON(c, &req, "Invalid workshop data") {
		return
	}

	workshop, err := h.service.CreateWorkshop(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to create workshop")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, workshop)
}

func (h *Handler) UpdateWorkshop(c *gin.Context) {
	id, ok := handler.ParseID(c, "Workshop")
	if !ok {
		return
	}

	var req model.WorkshopUpdate
	if !handler.BindJSON(c, &req, "Invalid workshop data") {
		return
	}

	workshop, err := h.service.UpdateWorkshop(c.Request.Context(), id, req)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to update workshop")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, workshop)
}

func (h *Handler) ListWorkshopBookings(c *gin.Context) {
	id, ok := handler.ParseID(c, "Workshop")
	if !ok {
		return
	}

	bookings, err := h.service.WorkshopBookings(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to fetch bookings")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, bookings)
}
