package create_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ContainerSlots/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ContainerSlots/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "контейнер не найден"
	msgDeparted           = "контейнер уже отправлен"
	msgInvalidCell        = "ячейка вне сетки контейнера"
	msgCellOccupied       = "выбранная ячейка уже занята"
	msgNoPlacement        = "нет свободного места под груз"
	msgDoesNotFit         = "груз превышает габариты контейнера"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/containers/{containerId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	containerID := mux.Vars(r)["containerId"]

	var req ReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /containers/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(containerID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /containers/{id}/reservations - Validation error: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createReservation.ErrInvalidCell):
			h.logger.Warn("POST /containers/{id}/reservations - Invalid cell: id=%s, %v", containerID, err)
			handlers.RespondBadRequest(w, msgInvalidCell)

		case errors.Is(err, createReservation.ErrContainerNotFound):
			h.logger.Warn("POST /containers/{id}/reservations - Container not found: id=%s", containerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createReservation.ErrContainerDeparted):
			h.logger.Warn("POST /containers/{id}/reservations - Container departed: id=%s", containerID)
			handlers.RespondConflict(w, msgDeparted)

		case errors.Is(err, createReservation.ErrCellOccupied):
			h.logger.Warn("POST /containers/{id}/reservations - Cell occupied: id=%s, %v", containerID, err)
			handlers.RespondConflict(w, msgCellOccupied)

		case errors.Is(err, createReservation.ErrNoPlacement):
			h.logger.Warn("POST /containers/{id}/reservations - No placement: id=%s, %v", containerID, err)
			handlers.RespondConflict(w, msgNoPlacement)

		case errors.Is(err, createReservation.ErrCargoDoesNotFit):
			h.logger.Warn("POST /containers/{id}/reservations - Cargo does not fit: id=%s", containerID)
			handlers.RespondUnprocessable(w, msgDoesNotFit)

		default:
			h.logger.Error("POST /containers/{id}/reservations - Failed to reserve: id=%s, error=%v", containerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /containers/{id}/reservations - Reserved: id=%s, cells=%v, invoice=%s",
		containerID, result.Cells, result.InvoiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
