package manifest

import (
	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// OutcomeInvalid строка не разобрана, размещение не выполнялось
const OutcomeInvalid allocator.Outcome = "invalid"

// Line результат размещения одной позиции манифеста
type Line struct {
	Item
	Outcome       allocator.Outcome
	RequiredSlots int
	Cells         []int
	Price         float64
}

// Plan предварительный план загрузки контейнера по манифесту
type Plan struct {
	Lines      []Line
	Placed     int
	Rejected   int // не поместились или нет свободного блока
	Invalid    int
	Cells      []int // все ячейки, занятые планом, в порядке размещения
	TotalPrice float64
}

// BuildPlan размещает позиции в порядке листа (first-fit).
// Каждая размещённая позиция занимает ячейки для следующих строк;
// исходный список occupied не изменяется.
func BuildPlan(layout allocator.Layout, occupied []int, items []Item, tiers []domain.PriceTier) Plan {
	taken := make([]int, len(occupied), len(occupied)+layout.TotalCells())
	copy(taken, occupied)

	plan := Plan{
		Lines: make([]Line, 0, len(items)),
		Cells: []int{},
	}

	for _, item := range items {
		if !item.Valid() {
			plan.Lines = append(plan.Lines, Line{Item: item, Outcome: OutcomeInvalid, Cells: []int{}})
			plan.Invalid++
			continue
		}

		placement := layout.Place(taken, item.Cargo)
		line := Line{
			Item:          item,
			Outcome:       placement.Outcome(),
			RequiredSlots: placement.RequiredSlots,
			Cells:         placement.Cells,
		}

		if line.Outcome == allocator.OutcomePlaced {
			line.Price = domain.TotalPrice(tiers, placement.Cells)
			taken = append(taken, placement.Cells...)
			plan.Cells = append(plan.Cells, placement.Cells...)
			plan.TotalPrice += line.Price
			plan.Placed++
		} else {
			plan.Rejected++
		}

		plan.Lines = append(plan.Lines, line)
	}

	return plan
}
