package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// Request модель запроса на бронирование ячеек
type Request struct {
	ContainerID string             // ID контейнера
	Mode        domain.CargoMode   // Тип груза
	Cargo       *domain.Dimensions // Габариты (только для custom)
	PalletCount int                // Количество паллет, ячейки подбираются автоматически
	Cells       []int              // Явно выбранные ячейки под паллеты (приоритетнее PalletCount)
}

// Response модель ответа с забронированными ячейками и сводкой счёта
type Response struct {
	ContainerID    string
	Mode           domain.CargoMode
	Cells          []int
	TotalPrice     float64
	AvailableCells int // свободно после бронирования

	InvoiceID        string
	Barcode          string
	TrackingNumber   string
	Route            string
	PurchaseDate     time.Time
	DepartureDate    time.Time
	EstimatedArrival time.Time
}
