package create_reservation

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// ContainerRepository интерфейс репозитория контейнеров
type ContainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Container, error)
	AddOccupiedCells(ctx context.Context, id string, cells []int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RandomSource источник случайных чисел для трекинг-номера (для тестирования)
type RandomSource interface {
	Intn(n int) int
}

// IDGenerator генератор уникальной части номера счёта (для тестирования)
type IDGenerator interface {
	NewID() string
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// RealRandomSource глобальный генератор math/rand (безопасен для конкурентного использования)
type RealRandomSource struct{}

// Intn возвращает случайное число в [0, n)
func (r *RealRandomSource) Intn(n int) int {
	return rand.Intn(n)
}

// UUIDGenerator генерирует случайный UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID в строковом виде
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
