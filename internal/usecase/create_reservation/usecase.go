package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	containerRepo "github.com/m04kA/SMC-ContainerSlots/internal/infra/storage/container"
)

// UseCase use case бронирования ячеек контейнера
type UseCase struct {
	containerRepo ContainerRepository
	txManager     TransactionManager
	layout        allocator.Layout
	priceTiers    []domain.PriceTier
	timeProvider  TimeProvider
	random        RandomSource
	ids           IDGenerator
	metrics       AllocationMetrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	containerRepo ContainerRepository,
	txManager TransactionManager,
	layout allocator.Layout,
	priceTiers []domain.PriceTier,
	metrics AllocationMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		containerRepo: containerRepo,
		txManager:     txManager,
		layout:        layout,
		priceTiers:    priceTiers,
		timeProvider:  &RealTimeProvider{},
		random:        &RealRandomSource{},
		ids:           &UUIDGenerator{},
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет use case бронирования.
// Чтение занятости и запись новых ячеек происходят в одной сериализуемой
// транзакции, строка контейнера блокируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: container=%s, mode=%s, pallets=%d, cells=%v",
		req.ContainerID, req.Mode, req.PalletCount, req.Cells)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var (
		container *domain.Container
		cells     []int
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем контейнер с блокировкой (FOR UPDATE)
		c, err := uc.containerRepo.GetByID(txCtx, req.ContainerID)
		if err != nil {
			if errors.Is(err, containerRepo.ErrContainerNotFound) {
				uc.logger.Warn("CreateReservation: container id=%s not found", req.ContainerID)
				return ErrContainerNotFound
			}
			uc.logger.Error("CreateReservation: failed to get container id=%s: %v", req.ContainerID, err)
			return fmt.Errorf("%w: failed to get container: %v", ErrInternal, err)
		}

		// 3.2. Ушедший контейнер забронировать нельзя
		if isDeparted(c.DepartureDate, now) {
			uc.logger.Warn("CreateReservation: container id=%s departed on %s",
				c.ID, c.DepartureDate.Format(domain.DateFormat))
			return ErrContainerDeparted
		}

		// 3.3. Сетка контейнера
		layout, err := uc.layout.WithGrid(c.Rows, c.Cols)
		if err != nil {
			uc.logger.Error("CreateReservation: container id=%s has invalid grid: %v", c.ID, err)
			return fmt.Errorf("%w: invalid container grid: %v", ErrInternal, err)
		}

		// 3.4. Определяем ячейки
		selected, err := uc.resolveCells(layout, c, req)
		if err != nil {
			uc.logger.Warn("CreateReservation: container=%s: %v", c.ID, err)
			return err
		}

		// 3.5. Помечаем ячейки занятыми
		ids := make([]int64, len(selected))
		for i, id := range selected {
			ids[i] = int64(id)
		}

		if err := uc.containerRepo.AddOccupiedCells(txCtx, c.ID, ids); err != nil {
			uc.logger.Error("CreateReservation: failed to occupy cells of container id=%s: %v", c.ID, err)
			return fmt.Errorf("%w: failed to occupy cells: %v", ErrInternal, err)
		}

		c.OccupiedCells = append(c.OccupiedCells, ids...)
		container = c
		cells = selected
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveAllocation(string(req.Mode), string(allocator.OutcomePlaced), len(cells))

	// 4. Формируем бронь и счёт
	reservation := domain.Reservation{
		ContainerID: container.ID,
		Mode:        req.Mode,
		Cargo:       req.Cargo,
		Cells:       cells,
		TotalPrice:  domain.TotalPrice(uc.priceTiers, cells),
		Invoice:     buildInvoice(container, now, uc.ids.NewID(), uc.random),
	}

	uc.logger.Info("CreateReservation: container=%s, cells=%v, total=%.2f, invoice=%s",
		reservation.ContainerID, reservation.Cells, reservation.TotalPrice, reservation.Invoice.ID)

	return &Response{
		ContainerID:      reservation.ContainerID,
		Mode:             reservation.Mode,
		Cells:            reservation.Cells,
		TotalPrice:       reservation.TotalPrice,
		AvailableCells:   container.AvailableCells(),
		InvoiceID:        reservation.Invoice.ID,
		Barcode:          reservation.Invoice.Barcode,
		TrackingNumber:   reservation.Invoice.TrackingNumber,
		Route:            reservation.Invoice.Route,
		PurchaseDate:     reservation.Invoice.PurchaseDate,
		DepartureDate:    reservation.Invoice.DepartureDate,
		EstimatedArrival: reservation.Invoice.EstimatedArrival,
	}, nil
}

// resolveCells выбирает ячейки для брони: явный выбор, N паллет или блок под груз
func (uc *UseCase) resolveCells(layout allocator.Layout, container *domain.Container, req *Request) ([]int, error) {
	if req.Mode == domain.ModePalletized && len(req.Cells) > 0 {
		if err := validateSelectedCells(layout, container, req.Cells); err != nil {
			return nil, err
		}
		return req.Cells, nil
	}

	var placement allocator.Placement
	if req.Mode == domain.ModePalletized {
		placement = layout.PlacePallets(container.OccupiedIDs(), req.PalletCount)
	} else {
		placement = layout.Place(container.OccupiedIDs(), *req.Cargo)
	}

	switch outcome := placement.Outcome(); outcome {
	case allocator.OutcomeDoesNotFit:
		uc.metrics.ObserveAllocation(string(req.Mode), string(outcome), 0)
		if req.Mode == domain.ModePalletized {
			return nil, fmt.Errorf("%w: %d pallets, grid has %d cells", ErrNoPlacement, req.PalletCount, layout.TotalCells())
		}
		return nil, ErrCargoDoesNotFit
	case allocator.OutcomeNoBlock:
		uc.metrics.ObserveAllocation(string(req.Mode), string(outcome), 0)
		return nil, fmt.Errorf("%w: %d cells required, %d available",
			ErrNoPlacement, placement.RequiredSlots, container.AvailableCells())
	}

	return placement.Cells, nil
}
