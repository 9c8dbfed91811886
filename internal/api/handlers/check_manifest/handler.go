package check_manifest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ContainerSlots/internal/api/handlers"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	checkManifest "github.com/m04kA/SMC-ContainerSlots/internal/usecase/check_manifest"
)

const (
	formFileField = "file"

	msgMissingFile     = "ожидается multipart/form-data с полем file"
	msgFileTooLarge    = "файл манифеста больше 5 МБ"
	msgInvalidManifest = "не удалось разобрать манифест"
	msgNotFound        = "контейнер не найден"
)

type Handler struct {
	useCase CheckManifestUseCase
	logger  Logger
}

func NewHandler(useCase CheckManifestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/containers/{containerId}/manifest (multipart, поле file)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	containerID := mux.Vars(r)["containerId"]

	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxManifestSizeBytes)

	file, header, err := r.FormFile(formFileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("POST /containers/{id}/manifest - File too large: limit=%d", tooLarge.Limit)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		h.logger.Warn("POST /containers/{id}/manifest - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	h.logger.Info("POST /containers/{id}/manifest - Received %s (%d bytes) for container=%s",
		header.Filename, header.Size, containerID)

	result, err := h.useCase.Execute(r.Context(), &checkManifest.Request{
		ContainerID: containerID,
		File:        file,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkManifest.ErrInvalidInput):
			h.logger.Warn("POST /containers/{id}/manifest - Validation error: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, checkManifest.ErrInvalidManifest):
			h.logger.Warn("POST /containers/{id}/manifest - Invalid manifest: %v", err)
			handlers.RespondBadRequest(w, msgInvalidManifest+": "+unwrapReason(err))

		case errors.Is(err, checkManifest.ErrContainerNotFound):
			h.logger.Warn("POST /containers/{id}/manifest - Container not found: id=%s", containerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /containers/{id}/manifest - Failed to check manifest: id=%s, error=%v", containerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// unwrapReason убирает префикс use case из текста ошибки разбора
func unwrapReason(err error) string {
	return strings.TrimPrefix(err.Error(), checkManifest.ErrInvalidManifest.Error()+": ")
}
