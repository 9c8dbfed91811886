package preview_allocation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ContainerSlots/internal/api/handlers"
	previewAllocation "github.com/m04kA/SMC-ContainerSlots/internal/usecase/preview_allocation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "контейнер не найден"
)

type Handler struct {
	useCase PreviewAllocationUseCase
	logger  Logger
}

func NewHandler(useCase PreviewAllocationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/containers/{containerId}/allocation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	containerID := mux.Vars(r)["containerId"]

	var req AllocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /containers/{id}/allocation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(containerID))
	if err != nil {
		switch {
		case errors.Is(err, previewAllocation.ErrInvalidInput):
			h.logger.Warn("POST /containers/{id}/allocation - Validation error: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, previewAllocation.ErrContainerNotFound):
			h.logger.Warn("POST /containers/{id}/allocation - Container not found: id=%s", containerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /containers/{id}/allocation - Failed to preview: id=%s, error=%v", containerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
