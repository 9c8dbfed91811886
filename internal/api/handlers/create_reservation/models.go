package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	createReservation "github.com/m04kA/SMC-ContainerSlots/internal/usecase/create_reservation"
)

// DimensionsRequest габариты груза в мм
type DimensionsRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

// ReservationRequest HTTP request model
type ReservationRequest struct {
	Mode        string             `json:"mode"` // palletized / custom
	Dimensions  *DimensionsRequest `json:"dimensions,omitempty"`
	PalletCount int                `json:"palletCount,omitempty"`
	Cells       []int              `json:"cells,omitempty"` // явный выбор ячеек под паллеты
}

// InvoiceResponse сводка счёта
type InvoiceResponse struct {
	ID               string `json:"id"`
	Barcode          string `json:"barcode"`
	TrackingNumber   string `json:"trackingNumber"`
	Route            string `json:"route"`
	PurchaseDate     string `json:"purchaseDate"`
	DepartureDate    string `json:"departureDate"`
	EstimatedArrival string `json:"estimatedArrival"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ContainerID    string          `json:"containerId"`
	Mode           string          `json:"mode"`
	Cells          []int           `json:"cells"`
	TotalPrice     float64         `json:"totalPrice"`
	AvailableCells int             `json:"availableCells"`
	Invoice        InvoiceResponse `json:"invoice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReservationRequest) ToUseCaseRequest(containerID string) *createReservation.Request {
	req := &createReservation.Request{
		ContainerID: containerID,
		Mode:        domain.CargoMode(r.Mode),
		PalletCount: r.PalletCount,
		Cells:       r.Cells,
	}

	if r.Dimensions != nil {
		req.Cargo = &domain.Dimensions{
			Width:  r.Dimensions.Width,
			Height: r.Dimensions.Height,
			Length: r.Dimensions.Length,
		}
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ContainerID:    resp.ContainerID,
		Mode:           string(resp.Mode),
		Cells:          resp.Cells,
		TotalPrice:     resp.TotalPrice,
		AvailableCells: resp.AvailableCells,
		Invoice: InvoiceResponse{
			ID:               resp.InvoiceID,
			Barcode:          resp.Barcode,
			TrackingNumber:   resp.TrackingNumber,
			Route:            resp.Route,
			PurchaseDate:     resp.PurchaseDate.Format(time.RFC3339),
			DepartureDate:    resp.DepartureDate.Format(domain.DateFormat),
			EstimatedArrival: resp.EstimatedArrival.Format(domain.DateFormat),
		},
	}
}
