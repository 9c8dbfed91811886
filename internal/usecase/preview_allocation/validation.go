package preview_allocation

import (
	"fmt"

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
	case domain.ModePalletized:
		if req.PalletCount <= 0 || req.PalletCount > domain.MaxPalletsPerReservation {
			return fmt.Errorf("%w: palletCount must be in 1..%d", ErrInvalidInput, domain.MaxPalletsPerReservation)
		}
	default:
		return fmt.Errorf("%w: unknown cargo mode %q", ErrInvalidInput, req.Mode)
	}

	return nil
}
