package check_manifest

import "errors"

var (
	// ErrContainerNotFound возвращается, когда контейнер не найден
	ErrContainerNotFound = errors.New("check_manifest: container not found")

	// ErrInvalidManifest возвращается, когда файл манифеста не удалось разобрать
	ErrInvalidManifest = errors.New("check_manifest: invalid manifest file")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_manifest: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_manifest: internal error")
)
