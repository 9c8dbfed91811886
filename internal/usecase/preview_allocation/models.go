package preview_allocation

import "github.com/m04kA/SMC-ContainerSlots/internal/domain"

// Request модель запроса на предварительный подбор ячеек
type Request struct {
	ContainerID string             // ID контейнера
	Mode        domain.CargoMode   // Тип груза
	Cargo       *domain.Dimensions // Габариты (только для custom)
	PalletCount int                // Количество паллет (только для palletized)
}

// Response модель ответа с результатом подбора
type Response struct {
	ContainerID    string
	Mode           domain.CargoMode
	Outcome        string // placed / no_block / does_not_fit
	Fits           bool
	BlockWidth     int
	BlockLength    int
	RequiredSlots  int
	Cells          []int
	TotalPrice     float64
	AvailableCells int // свободно до бронирования
}
