package containers

import (
	"context"
	"math/rand"
	"time"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// ContainerRepository интерфейс репозитория контейнеров
type ContainerRepository interface {
	Create(ctx context.Context, c *domain.Container) (*domain.Container, error)
	GetByID(ctx context.Context, id string) (*domain.Container, error)
	ListByDepartureRange(ctx context.Context, from, to time.Time) ([]*domain.Container, error)
	CountByDepartureRange(ctx context.Context, from, to time.Time) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// RandomSource источник случайности для демо-занятости (для тестирования)
type RandomSource interface {
	Float64() float64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealRandomSource глобальный генератор math/rand
type RealRandomSource struct{}

// Float64 возвращает случайное число в [0, 1)
func (r *RealRandomSource) Float64() float64 {
	return rand.Float64()
}
