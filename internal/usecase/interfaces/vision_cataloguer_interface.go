package interfaces

import (
	"context"
	"kept_house/internal/domain/entities"
)

// IVisionCataloguer suggests catalogue fields for a group of photos.
type IVisionCataloguer interface {
	Suggest(ctx context.Context, photoURLs []string) (entities.Suggestion, error)
}
