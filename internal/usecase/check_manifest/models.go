package check_manifest

import "io"

// Request модель запроса на проверку манифеста
type Request struct {
	ContainerID string    // ID контейнера
	File        io.Reader // XLSX манифест
}

// LineResult результат по одной строке манифеста
type LineResult struct {
	Line          int
	Reference     string
	Width         float64
	Height        float64
	Length        float64
	Outcome       string // placed / no_block / does_not_fit / invalid
	RequiredSlots int
	Cells         []int
	Price         float64
	Error         string
}

// Response модель ответа с планом загрузки
type Response struct {
	ContainerID    string
	Lines          []LineResult
	Placed         int
	Rejected       int
	Invalid        int
	Cells          []int
	TotalPrice     float64
	AvailableCells int // свободно до применения плана
}
