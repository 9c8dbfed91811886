package check_fit

import "github.com/m04kA/SMC-ContainerSlots/internal/service/containers/models"

type ContainerService interface {
	CheckFit(req *models.FitCheckRequest) (*models.FitCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
