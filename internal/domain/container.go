package domain

import "time"

// Container represents a scheduled container departure with its slot grid
type Container struct {
	ID               string
	DepartureDate    time.Time
	DeliveryDeadline time.Time
	Route            string
	Rows             int
	Cols             int
	OccupiedCells    []int64 // ID занятых ячеек (1-based, row-major)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalCells returns the number of cells in the container grid
func (c *Container) TotalCells() int {
	return c.Rows * c.Cols
}

// IsOccupied returns true if the cell is reserved
func (c *Container) IsOccupied(cellID int) bool {
	for _, id := range c.OccupiedCells {
		if int(id) == cellID {
			return true
		}
	}
	return false
}

// OccupiedIDs returns occupied cells as ints, ready for the allocator
func (c *Container) OccupiedIDs() []int {
	ids := make([]int, len(c.OccupiedCells))
	for i, id := range c.OccupiedCells {
		ids[i] = int(id)
	}
	return ids
}

// OccupiedCount returns the number of distinct occupied cells inside the grid
func (c *Container) OccupiedCount() int {
	seen := make(map[int64]struct{}, len(c.OccupiedCells))
	for _, id := range c.OccupiedCells {
		if id >= 1 && int(id) <= c.TotalCells() {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// AvailableCells returns the number of free cells
func (c *Container) AvailableCells() int {
	return c.TotalCells() - c.OccupiedCount()
}

// IsFull returns true if no cells are available
func (c *Container) IsFull() bool {
	return c.AvailableCells() <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (c *Container) OccupancyRate() float64 {
	if c.TotalCells() == 0 {
		return 0
	}
	return float64(c.OccupiedCount()) / float64(c.TotalCells()) * 100
}
