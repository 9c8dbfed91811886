package get_container

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ContainerSlots/internal/api/handlers"
	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers"
)

const msgNotFound = "контейнер не найден"

type Handler struct {
	service ContainerService
	logger  Logger
}

func NewHandler(service ContainerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/containers/{containerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	containerID := mux.Vars(r)["containerId"]

	result, err := h.service.GetContainer(r.Context(), containerID)
	if err != nil {
		switch {
		case errors.Is(err, containers.ErrContainerNotFound):
			h.logger.Warn("GET /containers/{id} - Container not found: id=%s", containerID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /containers/{id} - Failed to get container: id=%s, error=%v", containerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
