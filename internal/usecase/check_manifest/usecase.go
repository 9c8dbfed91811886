package check_manifest

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	containerRepo "github.com/m04kA/SMC-ContainerSlots/internal/infra/storage/container"
	"github.com/m04kA/SMC-ContainerSlots/internal/manifest"
)

// UseCase use case проверки манифеста: план загрузки без бронирования
type UseCase struct {
	containerRepo ContainerRepository
	layout        allocator.Layout
	priceTiers    []domain.PriceTier
	maxRows       int
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
		maxRows:       domain.MaxManifestRows,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute разбирает манифест и размещает позиции по порядку строк
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckManifest: container=%s", req.ContainerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckManifest: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбираем файл до обращения к БД
	items, err := manifest.Parse(req.File, uc.maxRows)
	if err != nil {
		uc.logger.Warn("CheckManifest: failed to parse manifest: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	// 3. Получаем контейнер
	container, err := uc.containerRepo.GetByID(ctx, req.ContainerID)
	if err != nil {
		if errors.Is(err, containerRepo.ErrContainerNotFound) {
			uc.logger.Warn("CheckManifest: container id=%s not found", req.ContainerID)
			return nil, ErrContainerNotFound
		}
		uc.logger.Error("CheckManifest: failed to get container id=%s: %v", req.ContainerID, err)
		return nil, fmt.Errorf("%w: failed to get container: %v", ErrInternal, err)
	}

	layout, err := uc.layout.WithGrid(container.Rows, container.Cols)
	if err != nil {
		uc.logger.Error("CheckManifest: container id=%s has invalid grid: %v", container.ID, err)
		return nil, fmt.Errorf("%w: invalid container grid: %v", ErrInternal, err)
	}

	// 4. Строим план
	plan := manifest.BuildPlan(layout, container.OccupiedIDs(), items, uc.priceTiers)

	lines := make([]LineResult, len(plan.Lines))
	for i, line := range plan.Lines {
		if line.Outcome != manifest.OutcomeInvalid {
			uc.metrics.ObserveAllocation(string(domain.ModeCustom), string(line.Outcome), len(line.Cells))
		}

		lines[i] = LineResult{
			Line:          line.Line,
			Reference:     line.Reference,
			Width:         line.Cargo.Width,
			Height:        line.Cargo.Height,
			Length:        line.Cargo.Length,
			Outcome:       string(line.Outcome),
			RequiredSlots: line.RequiredSlots,
			Cells:         line.Cells,
			Price:         line.Price,
			Error:         line.Err,
		}
	}

	uc.logger.Info("CheckManifest: container=%s, rows=%d, placed=%d, rejected=%d, invalid=%d",
		container.ID, len(items), plan.Placed, plan.Rejected, plan.Invalid)

	return &Response{
		ContainerID:    container.ID,
		Lines:          lines,
		Placed:         plan.Placed,
		Rejected:       plan.Rejected,
		Invalid:        plan.Invalid,
		Cells:          plan.Cells,
		TotalPrice:     plan.TotalPrice,
		AvailableCells: container.AvailableCells(),
	}, nil
}
