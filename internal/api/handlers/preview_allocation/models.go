package preview_allocation

import (
	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
	previewAllocation "github.com/m04kA/SMC-ContainerSlots/internal/usecase/preview_allocation"
)

// DimensionsRequest габариты груза в мм
type DimensionsRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

// AllocationRequest HTTP request model
type AllocationRequest struct {
	Mode        string             `json:"mode"` // palletized / custom
	Dimensions  *DimensionsRequest `json:"dimensions,omitempty"`
	PalletCount int                `json:"palletCount,omitempty"`
}

// AllocationResponse HTTP response model
type AllocationResponse struct {
	ContainerID    string  `json:"containerId"`
	Mode           string  `json:"mode"`
	Outcome        string  `json:"outcome"`
	Fits           bool    `json:"fits"`
	BlockWidth     int     `json:"blockWidth"`
	BlockLength    int     `json:"blockLength"`
	RequiredSlots  int     `json:"requiredSlots"`
	Cells          []int   `json:"cells"`
	TotalPrice     float64 `json:"totalPrice"`
	AvailableCells int     `json:"availableCells"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AllocationRequest) ToUseCaseRequest(containerID string) *previewAllocation.Request {
	req := &previewAllocation.Request{
		ContainerID: containerID,
		Mode:        domain.CargoMode(r.Mode),
		PalletCount: r.PalletCount,
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
func FromUseCaseResponse(resp *previewAllocation.Response) *AllocationResponse {
	return &AllocationResponse{
		ContainerID:    resp.ContainerID,
		Mode:           string(resp.Mode),
		Outcome:        resp.Outcome,
		Fits:           resp.Fits,
		BlockWidth:     resp.BlockWidth,
		BlockLength:    resp.BlockLength,
		RequiredSlots:  resp.RequiredSlots,
		Cells:          resp.Cells,
		TotalPrice:     resp.TotalPrice,
		AvailableCells: resp.AvailableCells,
	}
}
