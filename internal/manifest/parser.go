package manifest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

// Названия колонок заголовка (регистр не важен)
const (
	ColumnReference = "reference"
	ColumnWidth     = "width"
	ColumnHeight    = "height"
	ColumnLength    = "length"
)

// Item строка манифеста: одна грузовая позиция
type Item struct {
	Line      int    // номер строки в листе (1-based, с учётом заголовка)
	Reference string // необязательный идентификатор позиции
	Cargo     domain.Dimensions
	Err       string // непустая, если строку не удалось разобрать
}

// Valid возвращает true, если строка разобрана без ошибок
func (i Item) Valid() bool {
	return i.Err == ""
}

type columns struct {
	reference, width, height, length int
}

// Parse читает первый лист XLSX манифеста.
// Пустые строки пропускаются, строки с некорректными значениями
// возвращаются с заполненным Err.
func Parse(r io.Reader, maxRows int) ([]Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenWorkbook, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	// Числовые ячейки читаются без форматирования, иначе "#,##0" даст "1,200"
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrOpenWorkbook, sheet, err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	cols, err := findColumns(rows[0])
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		if maxRows > 0 && len(items) >= maxRows {
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRows, maxRows)
		}

		items = append(items, parseRow(row, i+2, cols))
	}

	return items, nil
}

func findColumns(header []string) (columns, error) {
	cols := columns{reference: -1, width: -1, height: -1, length: -1}

	for i, val := range header {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case ColumnReference:
			cols.reference = i
		case ColumnWidth:
			cols.width = i
		case ColumnHeight:
			cols.height = i
		case ColumnLength:
			cols.length = i
		}
	}

	missing := make([]string, 0, 3)
	if cols.width < 0 {
		missing = append(missing, ColumnWidth)
	}
	if cols.height < 0 {
		missing = append(missing, ColumnHeight)
	}
	if cols.length < 0 {
		missing = append(missing, ColumnLength)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return cols, nil
}

func parseRow(row []string, line int, cols columns) Item {
	item := Item{
		Line:      line,
		Reference: cell(row, cols.reference),
	}

	var err error
	if item.Cargo.Width, err = parseSize(cell(row, cols.width)); err != nil {
		item.Err = fmt.Sprintf("width: %v", err)
		return item
	}
	if item.Cargo.Height, err = parseSize(cell(row, cols.height)); err != nil {
		item.Err = fmt.Sprintf("height: %v", err)
		return item
	}
	if item.Cargo.Length, err = parseSize(cell(row, cols.length)); err != nil {
		item.Err = fmt.Sprintf("length: %v", err)
		return item
	}

	if !item.Cargo.IsValidInput() {
		item.Err = "dimensions must be finite and non-negative"
	}

	return item
}

// parseSize разбирает размер в мм; допускается десятичная запятая.
// Разделители разрядов не поддерживаются: "1,200" и "1.200,5" отклоняются,
// чтобы не прочитать 1200 мм как 1.2 мм.
func parseSize(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("value is empty")
	}

	if strings.Count(s, ",")+strings.Count(s, ".") > 1 {
		return 0, fmt.Errorf("%q has more than one separator", s)
	}

	if i := strings.IndexByte(s, ','); i >= 0 && len(s)-i-1 == 3 {
		return 0, fmt.Errorf("%q looks like a thousands separator", s)
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}

	return v, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
