package models

import (
	"time"

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// Request модели

// CreateContainerRequest запрос на создание рейса контейнера
type CreateContainerRequest struct {
	ID               string  `json:"id"`
	DepartureDate    string  `json:"departureDate"`              // YYYY-MM-DD
	DeliveryDeadline *string `json:"deliveryDeadline,omitempty"` // YYYY-MM-DD, по умолчанию отправление + 30 дней
	Route            string  `json:"route"`
	OccupiedCells    []int   `json:"occupiedCells,omitempty"` // ячейки, занятые до открытия продаж
}

// DimensionsDTO габариты груза в мм
type DimensionsDTO struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

// ToDomain конвертирует DTO в domain модель
func (d DimensionsDTO) ToDomain() domain.Dimensions {
	return domain.Dimensions{Width: d.Width, Height: d.Height, Length: d.Length}
}

// FitCheckRequest запрос на проверку груза без привязки к контейнеру
type FitCheckRequest struct {
	Dimensions    DimensionsDTO `json:"dimensions"`
	OccupiedCells []int         `json:"occupiedCells,omitempty"`
}

// Response модели

// CellResponse ячейка сетки контейнера
type CellResponse struct {
	ID       int     `json:"id"`
	Row      int     `json:"row"`
	Col      int     `json:"col"`
	Price    float64 `json:"price"`
	Occupied bool    `json:"occupied"`
}

// ContainerResponse ответ с данными контейнера
type ContainerResponse struct {
	ID               string         `json:"id"`
	DepartureDate    string         `json:"departureDate"`
	DeliveryDeadline string         `json:"deliveryDeadline"`
	Route            string         `json:"route"`
	Rows             int            `json:"rows"`
	Cols             int            `json:"cols"`
	TotalCells       int            `json:"totalCells"`
	AvailableCells   int            `json:"availableCells"`
	OccupancyRate    float64        `json:"occupancyRate"` // проценты
	OccupiedCells    []int          `json:"occupiedCells"`
	Cells            []CellResponse `json:"cells,omitempty"` // только в детальном ответе
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ContainerListResponse ответ со списком контейнеров месяца
type ContainerListResponse struct {
	Month      string              `json:"month"`
	Containers []ContainerResponse `json:"containers"`
}

// LayoutResponse текущая ревизия сетки и тарифы
type LayoutResponse struct {
	Rows     int            `json:"rows"`
	Cols     int            `json:"cols"`
	Envelope DimensionsDTO  `json:"envelope"`
	SlotUnit DimensionsDTO  `json:"slotUnit"`
	Cells    []CellResponse `json:"cells"`
}

// FitCheckResponse результат проверки груза
type FitCheckResponse struct {
	Fits          bool    `json:"fits"`
	Outcome       string  `json:"outcome"`
	BlockWidth    int     `json:"blockWidth"`
	BlockLength   int     `json:"blockLength"`
	RequiredSlots int     `json:"requiredSlots"`
	Cells         []int   `json:"cells"`
	TotalPrice    float64 `json:"totalPrice"`
}

// SeedResponse результат генерации демо-рейсов
type SeedResponse struct {
	Month   string `json:"month"`
	Created int    `json:"created"`
}

// Методы конвертации

// FromDomainContainer конвертирует domain модель в DTO.
// Сетка ячеек заполняется, если передан layout контейнера.
func FromDomainContainer(c *domain.Container, layout *allocator.Layout, tiers []domain.PriceTier) *ContainerResponse {
	if c == nil {
		return nil
	}

	resp := &ContainerResponse{
		ID:               c.ID,
		DepartureDate:    c.DepartureDate.Format(domain.DateFormat),
		DeliveryDeadline: c.DeliveryDeadline.Format(domain.DateFormat),
		Route:            c.Route,
		Rows:             c.Rows,
		Cols:             c.Cols,
		TotalCells:       c.TotalCells(),
		AvailableCells:   c.AvailableCells(),
		OccupancyRate:    c.OccupancyRate(),
		OccupiedCells:    c.OccupiedIDs(),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}

	if layout != nil {
		resp.Cells = BuildCells(*layout, tiers, c.IsOccupied)
	}

	return resp
}

// FromDomainContainerList конвертирует список domain моделей в DTO (без сетки ячеек)
func FromDomainContainerList(month string, containers []*domain.Container, tiers []domain.PriceTier) *ContainerListResponse {
	resp := &ContainerListResponse{
		Month:      month,
		Containers: make([]ContainerResponse, 0, len(containers)),
	}

	for _, c := range containers {
		if item := FromDomainContainer(c, nil, tiers); item != nil {
			resp.Containers = append(resp.Containers, *item)
		}
	}

	return resp
}

// BuildCells строит сетку ячеек с ценами в порядке row-major
func BuildCells(layout allocator.Layout, tiers []domain.PriceTier, isOccupied func(id int) bool) []CellResponse {
	cells := make([]CellResponse, 0, layout.TotalCells())

	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			id := layout.CellID(row, col)
			cells = append(cells, CellResponse{
				ID:       id,
				Row:      row,
				Col:      col,
				Price:    domain.PriceForCell(tiers, id),
				Occupied: isOccupied != nil && isOccupied(id),
			})
		}
	}

	return cells
}

// FromPlacement конвертирует результат аллокатора в DTO
func FromPlacement(p allocator.Placement, tiers []domain.PriceTier) *FitCheckResponse {
	return &FitCheckResponse{
		Fits:          p.Fits,
		Outcome:       string(p.Outcome()),
		BlockWidth:    p.BlockWidth,
		BlockLength:   p.BlockLength,
		RequiredSlots: p.RequiredSlots,
		Cells:         p.Cells,
		TotalPrice:    domain.TotalPrice(tiers, p.Cells),
	}
}
