package manifest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

const templateSheet = "Manifest"

// WriteTemplate записывает XLSX манифест с заголовком и переданными позициями
func WriteTemplate(w io.Writer, items []Item) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), templateSheet); err != nil {
		return fmt.Errorf("manifest: rename sheet: %w", err)
	}

	header := []interface{}{ColumnReference, ColumnWidth, ColumnHeight, ColumnLength}
	if err := f.SetSheetRow(templateSheet, "A1", &header); err != nil {
		return fmt.Errorf("manifest: write header: %w", err)
	}

	for i, item := range items {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("manifest: row %d: %w", i+2, err)
		}

		row := []interface{}{item.Reference, item.Cargo.Width, item.Cargo.Height, item.Cargo.Length}
		if err := f.SetSheetRow(templateSheet, axis, &row); err != nil {
			return fmt.Errorf("manifest: write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("manifest: write workbook: %w", err)
	}

	return nil
}

// SampleItems пример позиций для шаблона: паллета и негабаритный груз
func SampleItems() []Item {
	return []Item{
		{Reference: "PAL-001", Cargo: domain.PalletFootprint},
		{Reference: "CRATE-001", Cargo: domain.Dimensions{Width: 2500, Height: 1800, Length: 2000}},
	}
}
