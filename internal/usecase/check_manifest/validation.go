package check_manifest

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ContainerID == "" {
		return fmt.Errorf("%w: containerId is required", ErrInvalidInput)
	}

	if req.File == nil {
		return fmt.Errorf("%w: manifest file is required", ErrInvalidInput)
	}

	return nil
}
