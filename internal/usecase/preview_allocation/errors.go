package preview_allocation

import "errors"

var (
	// ErrContainerNotFound возвращается, когда контейнер не найден
	ErrContainerNotFound = errors.New("preview_allocation: container not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("preview_allocation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_allocation: internal error")
)
