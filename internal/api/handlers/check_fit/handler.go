package check_fit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ContainerSlots/internal/api/handlers"
	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers"
	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDimensions  = "габариты должны быть неотрицательными числами"
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

// Handle POST /api/v1/fit-check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.FitCheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fit-check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CheckFit(&req)
	if err != nil {
		switch {
		case errors.Is(err, containers.ErrInvalidInput):
			h.logger.Warn("POST /fit-check - Invalid dimensions: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDimensions)
		default:
			h.logger.Error("POST /fit-check - Failed to check fit: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
