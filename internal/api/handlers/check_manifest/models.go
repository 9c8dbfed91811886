package check_manifest

import checkManifest "github.com/m04kA/SMC-ContainerSlots/internal/usecase/check_manifest"

// LineResponse результат по строке манифеста
type LineResponse struct {
	Line          int     `json:"line"`
	Reference     string  `json:"reference,omitempty"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Length        float64 `json:"length"`
	Outcome       string  `json:"outcome"`
	RequiredSlots int     `json:"requiredSlots"`
	Cells         []int   `json:"cells"`
	Price         float64 `json:"price"`
	Error         string  `json:"error,omitempty"`
}

// ManifestResponse HTTP response model
type ManifestResponse struct {
	ContainerID    string         `json:"containerId"`
	Lines          []LineResponse `json:"lines"`
	Placed         int            `json:"placed"`
	Rejected       int            `json:"rejected"`
	Invalid        int            `json:"invalid"`
	Cells          []int          `json:"cells"`
	TotalPrice     float64        `json:"totalPrice"`
	AvailableCells int            `json:"availableCells"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkManifest.Response) *ManifestResponse {
	lines := make([]LineResponse, len(resp.Lines))
	for i, l := range resp.Lines {
		lines[i] = LineResponse{
			Line:          l.Line,
			Reference:     l.Reference,
			Width:         l.Width,
			Height:        l.Height,
			Length:        l.Length,
			Outcome:       l.Outcome,
			RequiredSlots: l.RequiredSlots,
			Cells:         l.Cells,
			Price:         l.Price,
			Error:         l.Error,
		}
	}

	return &ManifestResponse{
		ContainerID:    resp.ContainerID,
		Lines:          lines,
		Placed:         resp.Placed,
		Rejected:       resp.Rejected,
		Invalid:        resp.Invalid,
		Cells:          resp.Cells,
		TotalPrice:     resp.TotalPrice,
		AvailableCells: resp.AvailableCells,
	}
}
