package list_containers

import (
	"context"

	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers/models"
)

type ContainerService interface {
	ListContainers(ctx context.Context, month string) (*models.ContainerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
