package allocator

import (
	"math"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// Outcome результат попытки размещения
type Outcome string

const (
	OutcomePlaced     Outcome = "placed"
	OutcomeNoBlock    Outcome = "no_block"
	OutcomeDoesNotFit Outcome = "does_not_fit"
)

// Placement сводный результат размещения груза в сетке
type Placement struct {
	Fits          bool
	BlockWidth    int   // ячеек по ширине (столбцы)
	BlockLength   int   // ячеек по длине (строки)
	RequiredSlots int   // 0 = груз не помещается в контейнер
	Cells         []int // пустой список = свободного блока нет
}

// Outcome классифицирует размещение для логов и метрик
func (p Placement) Outcome() Outcome {
	switch {
	case !p.Fits:
		return OutcomeDoesNotFit
	case len(p.Cells) == 0:
		return OutcomeNoBlock
	default:
		return OutcomePlaced
	}
}

// FitsInContainer проверяет, что груз не превышает габариты контейнера ни по одной оси
func (l Layout) FitsInContainer(cargo domain.Dimensions) bool {
	return cargo.Width <= l.Envelope.Width &&
		cargo.Height <= l.Envelope.Height &&
		cargo.Length <= l.Envelope.Length
}

// BlockShape возвращает размер прямоугольного блока в ячейках.
// Высота не учитывается: размещение одноуровневое.
// Нулевая ось считается как одна ячейка, чтобы не искать блок нулевой площади.
func (l Layout) BlockShape(cargo domain.Dimensions) (width, length int) {
	return slotsAlong(cargo.Width, l.SlotUnit.Width), slotsAlong(cargo.Length, l.SlotUnit.Length)
}

// RequiredSlotCount вычисляет количество ячеек для груза.
// 0 означает, что груз не помещается; результат никогда не превышает TotalCells.
func (l Layout) RequiredSlotCount(cargo domain.Dimensions) int {
	if !l.FitsInContainer(cargo) {
		return 0
	}

	width, length := l.BlockShape(cargo)

	required := width * length
	if total := l.TotalCells(); required > total {
		return total
	}
	return required
}

// FindAvailableBlock ищет первый (row-major) свободный прямоугольник под груз.
// Блок принимается, только если он полностью свободен и содержит ровно
// requiredCount ячеек. Возвращает пустой список, если размещение невозможно.
// occupied не изменяется; id вне сетки и дубликаты игнорируются.
func (l Layout) FindAvailableBlock(occupied []int, requiredCount int, cargo domain.Dimensions) []int {
	if !l.FitsInContainer(cargo) {
		return []int{}
	}

	blockWidth, blockLength := l.BlockShape(cargo)
	if blockWidth*blockLength != requiredCount {
		return []int{}
	}

	grid := l.occupancyGrid(occupied)

	for row := 0; row <= l.Rows-blockLength; row++ {
		for col := 0; col <= l.Cols-blockWidth; col++ {
			if !l.isBlockFree(grid, row, col, blockWidth, blockLength) {
				continue
			}

			cells := make([]int, 0, requiredCount)
			for r := row; r < row+blockLength; r++ {
				for c := col; c < col+blockWidth; c++ {
					cells = append(cells, l.CellID(r, c))
				}
			}
			return cells
		}
	}

	return []int{}
}

// FindFreeCells подбирает count отдельных ячеек под стандартные паллеты
// (одна паллета = одна ячейка) в порядке row-major.
// Если свободных ячеек меньше count, возвращает пустой список.
func (l Layout) FindFreeCells(occupied []int, count int) []int {
	if count <= 0 {
		return []int{}
	}

	grid := l.occupancyGrid(occupied)

	cells := make([]int, 0, count)
	for i, taken := range grid {
		if taken {
			continue
		}
		cells = append(cells, i+1)
		if len(cells) == count {
			return cells
		}
	}

	return []int{}
}

// Place выполняет полный расчёт: проверка габаритов, количество ячеек и поиск блока
func (l Layout) Place(occupied []int, cargo domain.Dimensions) Placement {
	if !l.FitsInContainer(cargo) {
		return Placement{Cells: []int{}}
	}

	width, length := l.BlockShape(cargo)
	required := l.RequiredSlotCount(cargo)

	return Placement{
		Fits:          true,
		BlockWidth:    width,
		BlockLength:   length,
		RequiredSlots: required,
		Cells:         l.FindAvailableBlock(occupied, required, cargo),
	}
}

// PlacePallets размещение стандартных паллет: каждая занимает одну ячейку,
// смежность не требуется
func (l Layout) PlacePallets(occupied []int, count int) Placement {
	return Placement{
		Fits:          count > 0 && count <= l.TotalCells(),
		BlockWidth:    1,
		BlockLength:   1,
		RequiredSlots: count,
		Cells:         l.FindFreeCells(occupied, count),
	}
}

// occupancyGrid строит плоскую сетку занятости (row-major) из списка id
func (l Layout) occupancyGrid(occupied []int) []bool {
	grid := make([]bool, l.TotalCells())
	for _, id := range occupied {
		if l.ContainsCell(id) {
			grid[id-1] = true
		}
	}
	return grid
}

// isBlockFree проверяет прямоугольник; первая занятая ячейка прерывает проверку
func (l Layout) isBlockFree(grid []bool, row, col, width, length int) bool {
	for r := row; r < row+length; r++ {
		for c := col; c < col+width; c++ {
			if grid[r*l.Cols+c] {
				return false
			}
		}
	}
	return true
}

func slotsAlong(size, unit float64) int {
	n := int(math.Ceil(size / unit))
	if n < 1 {
		return 1
	}
	return n
}
