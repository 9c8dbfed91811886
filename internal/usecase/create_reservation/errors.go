package create_reservation

import "errors"

var (
	// ErrContainerNotFound возвращается, когда контейнер не найден
	ErrContainerNotFound = errors.New("create_reservation: container not found")

	// ErrContainerDeparted возвращается при попытке забронировать ушедший контейнер
	ErrContainerDeparted = errors.New("create_reservation: container has already departed")

	// ErrInvalidCell возвращается, когда выбранная ячейка вне сетки контейнера
	ErrInvalidCell = errors.New("create_reservation: cell is outside the container grid")

	// ErrCellOccupied возвращается, когда выбранная ячейка уже занята
	ErrCellOccupied = errors.New("create_reservation: cell is already occupied")

	// ErrCargoDoesNotFit возвращается, когда груз больше габаритов контейнера
	ErrCargoDoesNotFit = errors.New("create_reservation: cargo does not fit in the container")

	// ErrNoPlacement возвращается, когда свободного блока под груз нет
	ErrNoPlacement = errors.New("create_reservation: no free block for the cargo")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
