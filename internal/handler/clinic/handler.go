package clinic

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-directory/internal/handler"
	"github.com/jwalitptl/clinic-directory/internal/model"
	clinicService "github.com/jwalitptl/clinic-directory/internal/service/clinic"
	"github.com/jwalitptl/clinic-directory/pkg/httputil"
)

type Handler struct {
	service clinicService.ClinicServicer
}

func NewHandler(service clinicService.ClinicServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clinics := r.Group("/clinics")
	{
		clinics.GET("", h.ListClinics)
		clinics.GET("/:id", h.GetClinic)
		clinics.POST("", h.CreateClinic)
	}
}

func (h *Handler) ListClinics(c *gin.Context) {
	var filter model.ClinicFilter
	if !handler.BindQuery(c, &filter, "Invalid clinic filter") {
		return
	}

	clinics, err := h.service.ListClinics(c.Request.Context(), filter)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to fetch clinics")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, clinics)
}

func (h *Handler) GetClinic(c *gin.Context) {
	id, ok := handler.ParseID(c, "Clinic")
	if !ok {
		return
	}

	clinic, err := h.service.GetClinic(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to fetch clinic")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, clinic)
}

func (h *Handler) CreateClinic(c *gin.Context) {
	var req model.ClinicInput
	if !handler.BindJSON(c, &req, "Invalid clinic data") {
		return
	}

	clinic, err := h.service.CreateClinic(c.Request.Context(), req)
	if err != nil {
		httputil.RespondWithError(c, err, "Failed to create clinic")
		return
	}
	httputil.RespondWithSuccess(c, http.StatusCreated, clinic)
}
