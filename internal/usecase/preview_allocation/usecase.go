package preview_allocation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	containerRepo "github.com/m04kA/SMC-ContainerSlots/internal/infra/storage/container"
)

// UseCase use case предварительного подбора ячеек без бронирования
type UseCase struct {
	containerRepo ContainerRepository
	layout        allocator.Layout
	priceTiers    []domain.PriceTier
	metrics       AllocationMetrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	containerRepo ContainerRepository,
	layout allocator.Layout,
	priceTiers []domain.PriceTier,
	metrics AllocationMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		containerRepo: containerRepo,
		layout:        layout,
		priceTiers:    priceTiers,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute подбирает ячейки под груз по текущей занятости контейнера.
// Невозможность размещения - штатный ответ с пустым списком ячеек, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewAllocation: container=%s, mode=%s", req.ContainerID, req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PreviewAllocation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем контейнер
	container, err := uc.containerRepo.GetByID(ctx, req.ContainerID)
	if err != nil {
		if errors.Is(err, containerRepo.ErrContainerNotFound) {
			uc.logger.Warn("PreviewAllocation: container id=%s not found", req.ContainerID)
			return nil, ErrContainerNotFound
		}
		uc.logger.Error("PreviewAllocation: failed to get container id=%s: %v", req.ContainerID, err)
		return nil, fmt.Errorf("%w: failed to get container: %v", ErrInternal, err)
	}

	// 3. Сетка контейнера может отличаться от текущей ревизии
	layout, err := uc.layout.WithGrid(container.Rows, container.Cols)
	if err != nil {
		uc.logger.Error("PreviewAllocation: container id=%s has invalid grid: %v", container.ID, err)
		return nil, fmt.Errorf("%w: invalid container grid: %v", ErrInternal, err)
	}

	// 4. Подбираем ячейки
	var placement allocator.Placement
	if req.Mode == domain.ModePalletized {
		placement = layout.PlacePallets(container.OccupiedIDs(), req.PalletCount)
	} else {
		placement = layout.Place(container.OccupiedIDs(), *req.Cargo)
	}

	outcome := placement.Outcome()
	uc.metrics.ObserveAllocation(string(req.Mode), string(outcome), len(placement.Cells))

	uc.logger.Info("PreviewAllocation: container=%s, outcome=%s, required=%d, cells=%v",
		container.ID, outcome, placement.RequiredSlots, placement.Cells)

	return &Response{
		ContainerID:    container.ID,
		Mode:           req.Mode,
		Outcome:        string(outcome),
		Fits:           placement.Fits,
		BlockWidth:     placement.BlockWidth,
		BlockLength:    placement.BlockLength,
		RequiredSlots:  placement.RequiredSlots,
		Cells:          placement.Cells,
		TotalPrice:     domain.TotalPrice(uc.priceTiers, placement.Cells),
		AvailableCells: container.AvailableCells(),
	}, nil
}
