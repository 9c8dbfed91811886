package containers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	containerRepo "github.com/m04kA/SMC-ContainerSlots/internal/infra/storage/container"
	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers/models"
)

// demoDepartureDays демо-рейсы отправляются 5-го и 20-го числа
var demoDepartureDays = []int{5, 20}

var containerIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// DemoSettings параметры генерации демо-рейсов
type DemoSettings struct {
	OccupancyRate float64
	Routes        []string
}

// Service сервис для работы с рейсами контейнеров
type Service struct {
	containerRepo ContainerRepository
	txManager     TransactionManager
	layout        allocator.Layout
	priceTiers    []domain.PriceTier
	demo          DemoSettings
	random        RandomSource
	logger        Logger
}

// NewService создает новый экземпляр сервиса контейнеров
func NewService(
	containerRepo ContainerRepository,
	txManager TransactionManager,
	layout allocator.Layout,
	priceTiers []domain.PriceTier,
	demo DemoSettings,
	logger Logger,
) *Service {
	return &Service{
		containerRepo: containerRepo,
		txManager:     txManager,
		layout:        layout,
		priceTiers:    priceTiers,
		demo:          demo,
		random:        &RealRandomSource{},
		logger:        logger,
	}
}

// GetLayout возвращает текущую ревизию сетки с ценами ячеек
func (s *Service) GetLayout() *models.LayoutResponse {
	return &models.LayoutResponse{
		Rows:     s.layout.Rows,
		Cols:     s.layout.Cols,
		Envelope: toDTO(s.layout.Envelope),
		SlotUnit: toDTO(s.layout.SlotUnit),
		Cells:    models.BuildCells(s.layout, s.priceTiers, nil),
	}
}

// CheckFit рассчитывает размещение груза на текущей сетке без обращения к БД
func (s *Service) CheckFit(req *models.FitCheckRequest) (*models.FitCheckResponse, error) {
	cargo := req.Dimensions.ToDomain()
	if !cargo.IsValidInput() {
		return nil, fmt.Errorf("%w: dimensions must be finite and non-negative", ErrInvalidInput)
	}

	placement := s.layout.Place(req.OccupiedCells, cargo)

	return models.FromPlacement(placement, s.priceTiers), nil
}

// GetContainer возвращает контейнер с сеткой ячеек
func (s *Service) GetContainer(ctx context.Context, id string) (*models.ContainerResponse, error) {
	s.logger.Info("GetContainer: id=%s", id)

	container, err := s.containerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, containerRepo.ErrContainerNotFound) {
			s.logger.Warn("GetContainer: container id=%s not found", id)
			return nil, ErrContainerNotFound
		}
		s.logger.Error("GetContainer: failed to get container id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetContainer - repository error: %v", ErrInternal, err)
	}

	layout, err := s.layout.WithGrid(container.Rows, container.Cols)
	if err != nil {
		s.logger.Error("GetContainer: container id=%s has invalid grid: %v", id, err)
		return nil, fmt.Errorf("%w: GetContainer - invalid grid: %v", ErrInternal, err)
	}

	return models.FromDomainContainer(container, &layout, s.priceTiers), nil
}

// ListContainers возвращает контейнеры, отправляющиеся в указанном месяце (YYYY-MM)
func (s *Service) ListContainers(ctx context.Context, month string) (*models.ContainerListResponse, error) {
	s.logger.Info("ListContainers: month=%s", month)

	from, err := time.Parse(domain.MonthFormat, month)
	if err != nil {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", ErrInvalidInput)
	}
	to := from.AddDate(0, 1, 0)

	containers, err := s.containerRepo.ListByDepartureRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListContainers: failed to list containers for %s: %v", month, err)
		return nil, fmt.Errorf("%w: ListContainers - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListContainers: found %d containers for %s", len(containers), month)

	return models.FromDomainContainerList(month, containers, s.priceTiers), nil
}

// CreateContainer создает рейс на текущей ревизии сетки
func (s *Service) CreateContainer(ctx context.Context, req *models.CreateContainerRequest) (*models.ContainerResponse, error) {
	s.logger.Info("CreateContainer: id=%s, departure=%s, route=%s", req.ID, req.DepartureDate, req.Route)

	// 1. Валидируем и конвертируем входные данные
	container, err := s.toDomainContainer(req)
	if err != nil {
		s.logger.Warn("CreateContainer: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем
	created, err := s.containerRepo.Create(ctx, container)
	if err != nil {
		if errors.Is(err, containerRepo.ErrContainerExists) {
			s.logger.Warn("CreateContainer: container id=%s already exists", req.ID)
			return nil, ErrContainerAlreadyExists
		}
		s.logger.Error("CreateContainer: failed to create container id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: CreateContainer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateContainer: created container id=%s", created.ID)

	return models.FromDomainContainer(created, &s.layout, s.priceTiers), nil
}

// SeedMonth создает демо-рейсы на месяц: два контейнера (5-го и 20-го числа)
// со случайной начальной занятостью. Если в месяце уже есть рейсы, ничего не делает.
func (s *Service) SeedMonth(ctx context.Context, year int, month time.Month) (*models.SeedResponse, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	label := from.Format(domain.MonthFormat)

	if len(s.demo.Routes) == 0 {
		return nil, fmt.Errorf("%w: at least one demo route is required", ErrInvalidInput)
	}

	created := 0
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Месяц уже заполнен
		count, err := s.containerRepo.CountByDepartureRange(txCtx, from, to)
		if err != nil {
			return fmt.Errorf("%w: SeedMonth - count containers: %v", ErrInternal, err)
		}
		if count > 0 {
			s.logger.Info("SeedMonth: %s already has %d containers, skipping", label, count)
			return nil
		}

		// 2. Создаем рейсы
		for i, day := range demoDepartureDays {
			departure := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

			container := &domain.Container{
				ID:               fmt.Sprintf("CNT-%s-%03d", from.Format("200601"), i+1),
				DepartureDate:    departure,
				DeliveryDeadline: departure.AddDate(0, 0, domain.DefaultDeliveryLeadDays),
				Route:            s.demo.Routes[i%len(s.demo.Routes)],
				Rows:             s.layout.Rows,
				Cols:             s.layout.Cols,
				OccupiedCells:    s.randomOccupancy(),
			}

			if _, err := s.containerRepo.Create(txCtx, container); err != nil {
				return fmt.Errorf("%w: SeedMonth - create container %s: %v", ErrInternal, container.ID, err)
			}
			created++
		}

		return nil
	})

	if err != nil {
		s.logger.Error("SeedMonth: failed to seed %s: %v", label, err)
		return nil, err
	}

	if created > 0 {
		s.logger.Info("SeedMonth: created %d demo containers for %s", created, label)
	}

	return &models.SeedResponse{Month: label, Created: created}, nil
}

// SeedUpcoming заполняет текущий и следующие months-1 месяцев
func (s *Service) SeedUpcoming(ctx context.Context, now time.Time, months int) error {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		if _, err := s.SeedMonth(ctx, m.Year(), m.Month()); err != nil {
			return err
		}
	}

	return nil
}

// randomOccupancy помечает каждую ячейку занятой с вероятностью OccupancyRate
func (s *Service) randomOccupancy() []int64 {
	occupied := make([]int64, 0)
	for id := 1; id <= s.layout.TotalCells(); id++ {
		if s.random.Float64() < s.demo.OccupancyRate {
			occupied = append(occupied, int64(id))
		}
	}
	return occupied
}

// toDomainContainer валидирует запрос и собирает domain модель
func (s *Service) toDomainContainer(req *models.CreateContainerRequest) (*domain.Container, error) {
	if req.ID == "" || len(req.ID) > domain.MaxContainerIDLength || !containerIDPattern.MatchString(req.ID) {
		return nil, fmt.Errorf("%w: id must be 1..%d characters of letters, digits, '-' or '_'",
			ErrInvalidInput, domain.MaxContainerIDLength)
	}

	if req.Route == "" || len(req.Route) > domain.MaxRouteLength {
		return nil, fmt.Errorf("%w: route must be 1..%d characters", ErrInvalidInput, domain.MaxRouteLength)
	}

	departure, err := time.Parse(domain.DateFormat, req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	deadline := departure.AddDate(0, 0, domain.DefaultDeliveryLeadDays)
	if req.DeliveryDeadline != nil {
		deadline, err = time.Parse(domain.DateFormat, *req.DeliveryDeadline)
		if err != nil {
			return nil, fmt.Errorf("%w: deliveryDeadline must be in YYYY-MM-DD format", ErrInvalidInput)
		}
		if deadline.Before(departure) {
			return nil, fmt.Errorf("%w: deliveryDeadline must not be before departureDate", ErrInvalidInput)
		}
	}

	occupied := make([]int64, 0, len(req.OccupiedCells))
	seen := make(map[int]struct{}, len(req.OccupiedCells))
	for _, id := range req.OccupiedCells {
		if !s.layout.ContainsCell(id) {
			return nil, fmt.Errorf("%w: cell %d is outside the %dx%d grid", ErrInvalidInput, id, s.layout.Rows, s.layout.Cols)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		occupied = append(occupied, int64(id))
	}

	return &domain.Container{
		ID:               req.ID,
		DepartureDate:    departure,
		DeliveryDeadline: deadline,
		Route:            req.Route,
		Rows:             s.layout.Rows,
		Cols:             s.layout.Cols,
		OccupiedCells:    occupied,
	}, nil
}

func toDTO(d domain.Dimensions) models.DimensionsDTO {
	return models.DimensionsDTO{Width: d.Width, Height: d.Height, Length: d.Length}
}
