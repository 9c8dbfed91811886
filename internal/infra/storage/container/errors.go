package container

import "errors"

var (
	// ErrContainerNotFound возвращается, когда контейнер не найден
	ErrContainerNotFound = errors.New("container.repository: container not found")

	// ErrContainerExists возвращается при попытке создать контейнер с существующим ID
	ErrContainerExists = errors.New("container.repository: container already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("container.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("container.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("container.repository: failed to scan row")
)
