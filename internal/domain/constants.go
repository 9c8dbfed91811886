package domain

// Default container geometry (mm)
var (
	DefaultContainerEnvelope = Dimensions{Width: 6060, Height: 4450, Length: 2620}
	DefaultSlotUnit          = Dimensions{Width: 1200, Height: 2500, Length: 1100}

	// PalletFootprint габариты стандартной паллеты
	PalletFootprint = Dimensions{Width: 1200, Height: 2500, Length: 1100}
)

const (
	DefaultGridRows = 5
	DefaultGridCols = 4
)

// DefaultPriceTiers секторные цены: 1-7, 8-14, 15+
var DefaultPriceTiers = []PriceTier{
	{UpToCell: 7, Price: 200},
	{UpToCell: 14, Price: 300},
	{UpToCell: 20, Price: 500},
}

// Business validation constants
const (
	MaxPalletsPerReservation = 100
	MaxRouteLength           = 200
	MaxContainerIDLength     = 64
	MaxManifestRows          = 1000
	MaxManifestSizeBytes     = 5 << 20 // 5 MB
)

// Invoice constants
const (
	BarcodePrefix           = "MC"
	TrackingPrefix          = "TRK"
	InvoicePrefix           = "INV"
	TrackingSuffixLength    = 9
	EstimatedTransitDays    = 30
	DefaultDeliveryLeadDays = 30
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
