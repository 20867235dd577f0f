package cart

import (
	"context"

	"shopstream/internal/domain"
)

// Names of the two persisted collections.
const (
	CartCollection  = "cart"
	SavedCollection = "saved"
)

// Repository persists the cart and saved-for-later collections. Loading an
// absent or unparsable collection yields an empty slice, never an error.
// A replace swaps the named collection wholesale; on failure the previously
// persisted state must remain intact.
type Repository interface {
	Lines(ctx context.Context) ([]domain.CartLine, error)
	ReplaceLines(ctx context.Context, lines []domain.CartLine) error
	SavedItems(ctx context.Context) ([]domain.SavedItem, error)
	ReplaceSavedItems(ctx context.Context, items []domain.SavedItem) error
}
