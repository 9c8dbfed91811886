package allocator

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

var (
	// ErrInvalidLayout возвращается NewLayout при некорректной конфигурации сетки
	ErrInvalidLayout = errors.New("allocator: invalid layout")
)

// Layout неизменяемая конфигурация контейнера: логическая сетка ячеек,
// внешние габариты и размер одной стандартной ячейки (все размеры в мм).
// Передаётся по значению, глобального состояния нет.
type Layout struct {
	Rows     int
	Cols     int
	Envelope domain.Dimensions
	SlotUnit domain.Dimensions
}

// NewLayout создаёт и валидирует конфигурацию сетки
func NewLayout(rows, cols int, envelope, slotUnit domain.Dimensions) (Layout, error) {
	l := Layout{
		Rows:     rows,
		Cols:     cols,
		Envelope: envelope,
		SlotUnit: slotUnit,
	}

	if err := l.Validate(); err != nil {
		return Layout{}, err
	}

	return l, nil
}

// DefaultLayout сетка 5×4 (первая ревизия контейнера)
func DefaultLayout() Layout {
	return Layout{
		Rows:     domain.DefaultGridRows,
		Cols:     domain.DefaultGridCols,
		Envelope: domain.DefaultContainerEnvelope,
		SlotUnit: domain.DefaultSlotUnit,
	}
}

// WideLayout сетка 2×10 (вторая ревизия, те же физические габариты)
func WideLayout() Layout {
	return Layout{
		Rows:     2,
		Cols:     10,
		Envelope: domain.DefaultContainerEnvelope,
		SlotUnit: domain.DefaultSlotUnit,
	}
}

// Validate проверяет, что сетка непустая, а габариты положительные
func (l Layout) Validate() error {
	if l.Rows <= 0 || l.Cols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidLayout, l.Rows, l.Cols)
	}

	if !l.Envelope.IsPositive() {
		return fmt.Errorf("%w: container envelope must be positive", ErrInvalidLayout)
	}

	if !l.SlotUnit.IsPositive() {
		return fmt.Errorf("%w: slot unit must be positive", ErrInvalidLayout)
	}

	return nil
}

// TotalCells общее количество ячеек в сетке
func (l Layout) TotalCells() int {
	return l.Rows * l.Cols
}

// CellID возвращает 1-based идентификатор ячейки (row-major)
func (l Layout) CellID(row, col int) int {
	return row*l.Cols + col + 1
}

// CellPosition возвращает строку и столбец ячейки; ok=false для id вне сетки
func (l Layout) CellPosition(id int) (row, col int, ok bool) {
	if id < 1 || id > l.TotalCells() {
		return 0, 0, false
	}
	return (id - 1) / l.Cols, (id - 1) % l.Cols, true
}

// ContainsCell проверяет, что id принадлежит сетке
func (l Layout) ContainsCell(id int) bool {
	_, _, ok := l.CellPosition(id)
	return ok
}

// WithGrid возвращает копию конфигурации с другой сеткой и теми же габаритами.
// Используется для контейнеров, созданных под иную ревизию сетки.
func (l Layout) WithGrid(rows, cols int) (Layout, error) {
	return NewLayout(rows, cols, l.Envelope, l.SlotUnit)
}
