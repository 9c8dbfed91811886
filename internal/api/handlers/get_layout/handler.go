package get_layout

import (
	"net/http"

	"github.com/m04kA/SMC-ContainerSlots/internal/api/handlers"
)

type Handler struct {
	service ContainerService
}

func NewHandler(service ContainerService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/layout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetLayout())
}
