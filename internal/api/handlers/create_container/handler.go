package create_container

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ContainerSlots/internal/api/handlers"
	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers"
	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAlreadyExists      = "контейнер с таким ID уже существует"
)

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

// Handle POST /api/v1/containers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContainerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /containers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateContainer(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, containers.ErrInvalidInput):
			h.logger.Warn("POST /containers - Validation error: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, containers.ErrContainerAlreadyExists):
			h.logger.Warn("POST /containers - Container already exists: id=%s", req.ID)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /containers - Failed to create container: id=%s, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /containers - Container created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
