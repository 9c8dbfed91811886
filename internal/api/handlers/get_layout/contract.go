package get_layout

import "github.com/m04kA/SMC-ContainerSlots/internal/service/containers/models"

type ContainerService interface {
	GetLayout() *models.LayoutResponse
}
