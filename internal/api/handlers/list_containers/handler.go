package list_containers

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ContainerSlots/internal/api/handlers"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers"
)

const msgInvalidMonth = "некорректный месяц, ожидается YYYY-MM"

type Handler struct {
	service ContainerService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service ContainerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/containers?month=YYYY-MM
// Без параметра month возвращаются рейсы текущего месяца
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = h.now().Format(domain.MonthFormat)
	}

	result, err := h.service.ListContainers(r.Context(), month)
	if err != nil {
		switch {
		case errors.Is(err, containers.ErrInvalidInput):
			h.logger.Warn("GET /containers - Invalid month: %s", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
		default:
			h.logger.Error("GET /containers - Failed to list containers: month=%s, error=%v", month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
