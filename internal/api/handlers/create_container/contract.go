package create_container

import (
	"context"

	"github.com/m04kA/SMC-ContainerSlots/internal/service/containers/models"
)

type ContainerService interface {
	CreateContainer(ctx context.Context, req *models.CreateContainerRequest) (*models.ContainerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
