package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-directory/internal/handler"
	"github.com/jwalitptl/clinic-directory/internal/model"
	contactService "github.com/jwalitptl/clinic-directory/internal/service/contact"
	"github.com/jwalitptl/clinic-directory/pkg/httputil"
)

type Handler struct {
	service contactService.ContactServicer
}

func NewHandler(service contactService.ContactServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.SendMessage)
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req model.ContactMessage
	if !handler.BindJSON(c, &req, "Invalid contact data") {
		return
	}

	if err := h.service.Send(c.Request.Context(), req); err != nil {
		httputil.RespondWithError(c, err, "Failed to send message")
		return
	}
	httputil.RespondWithMessage(c, http.StatusOK, "Message sent successfully")
}
