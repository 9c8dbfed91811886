package containers

import "errors"

var (
	// ErrContainerNotFound возвращается, когда контейнер не найден
	ErrContainerNotFound = errors.New("container not found")

	// ErrContainerAlreadyExists возвращается при попытке создать контейнер с существующим ID
	ErrContainerAlreadyExists = errors.New("container already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
