package check_manifest

import (
	"context"

	checkManifest "github.com/m04kA/SMC-ContainerSlots/internal/usecase/check_manifest"
)

type CheckManifestUseCase interface {
	Execute(ctx context.Context, req *checkManifest.Request) (*checkManifest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
