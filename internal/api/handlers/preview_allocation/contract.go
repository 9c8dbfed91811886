package preview_allocation

import (
	"context"

	previewAllocation "github.com/m04kA/SMC-ContainerSlots/internal/usecase/preview_allocation"
)

type PreviewAllocationUseCase interface {
	Execute(ctx context.Context, req *previewAllocation.Request) (*previewAllocation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
