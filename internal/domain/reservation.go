package domain

import "time"

// Reservation результат бронирования ячеек контейнера.
// В хранилище фиксируется только занятость ячеек, сама бронь не сохраняется.
type Reservation struct {
	ContainerID string
	Mode        CargoMode
	Cargo       *Dimensions // nil для паллет
	Cells       []int
	TotalPrice  float64
	Invoice     Invoice
}

// Invoice сводка счёта (рендеринг документа вне сервиса)
type Invoice struct {
	ID               string
	Barcode          string
	TrackingNumber   string
	PurchaseDate     time.Time
	DepartureDate    time.Time
	EstimatedArrival time.Time
	Route            string
}
