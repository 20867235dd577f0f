package catalog

import (
	"context"

	"shopstream/internal/domain"
)

// Repository supplies the immutable video/product fixture set. The slice a
// repository returns is shared; callers that hand data out must copy first.
type Repository interface {
	Videos(ctx context.Context) ([]domain.Video, error)
}
