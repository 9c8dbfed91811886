package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ContainerID == "" {
		return fmt.Errorf("%w: containerId is required", ErrInvalidInput)
	}

	switch req.Mode {
	case domain.ModeCustom:
		if req.Cargo == nil {
			return fmt.Errorf("%w: dimensions are required for custom cargo", ErrInvalidInput)
		}
		if !req.Cargo.IsValidInput() {
			return fmt.Errorf("%w: dimensions must be finite and non-negative", ErrInvalidInput)
		}
		if len(req.Cells) > 0 {
			return fmt.Errorf("%w: cells can only be selected for palletized cargo", ErrInvalidInput)
		}
	case domain.ModePalletized:
		if len(req.Cells) == 0 && req.PalletCount <= 0 {
			return fmt.Errorf("%w: either cells or palletCount is required", ErrInvalidInput)
		}
		if req.PalletCount > domain.MaxPalletsPerReservation || len(req.Cells) > domain.MaxPalletsPerReservation {
			return fmt.Errorf("%w: at most %d pallets per reservation", ErrInvalidInput, domain.MaxPalletsPerReservation)
		}
	default:
		return fmt.Errorf("%w: unknown cargo mode %q", ErrInvalidInput, req.Mode)
	}

	return nil
}

// validateSelectedCells проверяет явно выбранные ячейки: в пределах сетки,
// свободны и без повторов
func validateSelectedCells(layout allocator.Layout, container *domain.Container, cells []int) error {
	seen := make(map[int]struct{}, len(cells))

	for _, id := range cells {
		if !layout.ContainsCell(id) {
			return fmt.Errorf("%w: cell %d, grid has %d cells", ErrInvalidCell, id, layout.TotalCells())
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: cell %d selected twice", ErrInvalidInput, id)
		}
		if container.IsOccupied(id) {
			return fmt.Errorf("%w: cell %d", ErrCellOccupied, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// isDeparted проверяет, что дата отправления раньше сегодняшнего дня
func isDeparted(departure, now time.Time) bool {
	departureDay := time.Date(departure.Year(), departure.Month(), departure.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return departureDay.Before(today)
}
