package manifest

import "errors"

var (
	// ErrOpenWorkbook возвращается, если файл не является корректной XLSX книгой
	ErrOpenWorkbook = errors.New("manifest: failed to open workbook")

	// ErrEmptySheet возвращается, если на первом листе нет строк
	ErrEmptySheet = errors.New("manifest: sheet is empty")

	// ErrMissingColumn возвращается, если в заголовке нет обязательной колонки
	ErrMissingColumn = errors.New("manifest: required column is missing")

	// ErrTooManyRows возвращается при превышении лимита строк
	ErrTooManyRows = errors.New("manifest: too many rows")
)
