package check_manifest

import (
	"context"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// ContainerRepository интерфейс репозитория контейнеров
type ContainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Container, error)
}

// AllocationMetrics интерфейс для метрик подбора ячеек
type AllocationMetrics interface {
	ObserveAllocation(mode, outcome string, cells int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
