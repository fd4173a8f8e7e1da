package interfaces

import (
	"context"

	"vetdesk/internal/domain/entities"
)

// ICatalogRepository abstracts read access to the service catalog. The
// catalog is static reference data defined at process start.
type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
}
