package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"shopstream/internal/domain"
	cartrepo "shopstream/internal/repository/cart"
)

// Service is the cart engine: the sole mutator of the cart and
// saved-for-later collections. Every operation loads current state, computes
// the full replacement state, persists it and returns it, so callers always
// see a fully materialized collection and a failed persist means no change.
//
// Each collection is guarded by its own mutex; a two-collection action such
// as SaveForLater orders its steps internally but holds no cross-collection
// lock.
type Service struct {
	repo cartrepo.Repository
	now  func() time.Time

	cartMu  sync.Mutex
	savedMu sync.Mutex
	reads   singleflight.Group // collapses concurrent loads of the same collection
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Items returns the current cart contents.
func (s *Service) Items(ctx context.Context) ([]domain.CartLine, error) {
	v, err, _ := s.reads.Do(cartrepo.CartCollection, func() (interface{}, error) {
		return s.repo.Lines(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.CartLine), nil
}

// SavedItems returns the current saved-for-later contents.
func (s *Service) SavedItems(ctx context.Context) ([]domain.SavedItem, error) {
	v, err, _ := s.reads.Do(cartrepo.SavedCollection, func() (interface{}, error) {
		return s.repo.SavedItems(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.SavedItem), nil
}

// AddToCart adds quantity of product to the cart. If a line for the product
// already exists its quantity is incremented and its addedAt kept; otherwise
// a new line is appended.
func (s *Service) AddToCart(ctx context.Context, product domain.Product, quantity int) ([]domain.CartLine, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", domain.ErrInvalidInput)
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("price must not be negative: %w", domain.ErrInvalidInput)
	}

	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	lines, err := s.repo.Lines(ctx)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range lines {
		if lines[i].ID == product.ID {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, domain.CartLine{
			Product:  product,
			Quantity: quantity,
			AddedAt:  s.now(),
		})
	}

	if err := s.repo.ReplaceLines(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets the line's quantity to max(0, quantity); at zero the
// line is removed. Unknown product ids are a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, productID, quantity int) ([]domain.CartLine, error) {
	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	lines, err := s.repo.Lines(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID == productID {
			if quantity <= 0 {
				continue
			}
			l.Quantity = quantity
		}
		updated = append(updated, l)
	}

	if err := s.repo.ReplaceLines(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveItem deletes the line for productID if present. Removing an absent
// line is a no-op.
func (s *Service) RemoveItem(ctx context.Context, productID int) ([]domain.CartLine, error) {
	s.cartMu.Lock()
	defer s.cartMu.Unlock()
	return s.removeLineLocked(ctx, productID)
}

// SaveForLater stores the product in the saved collection (first save wins;
// a repeated save leaves the existing entry and its timestamp alone), then
// removes any cart line for the same product. The two steps are one user
// action: if the cart removal fails after the save went through, the error
// wraps ErrSaveIncomplete so the caller knows the action half-completed.
func (s *Service) SaveForLater(ctx context.Context, product domain.Product) ([]domain.CartLine, error) {
	s.savedMu.Lock()
	items, err := s.repo.SavedItems(ctx)
	if err != nil {
		s.savedMu.Unlock()
		return nil, err
	}
	exists := false
	for _, it := range items {
		if it.ID == product.ID {
			exists = true
			break
		}
	}
	if !exists {
		items = append(items, domain.SavedItem{Product: product, SavedAt: s.now()})
		if err := s.repo.ReplaceSavedItems(ctx, items); err != nil {
			s.savedMu.Unlock()
			return nil, err
		}
	}
	s.savedMu.Unlock()

	s.cartMu.Lock()
	defer s.cartMu.Unlock()
	lines, err := s.removeLineLocked(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("remove cart line after save: %w", errors.Join(domain.ErrSaveIncomplete, err))
	}
	return lines, nil
}

// MoveToCart is the inverse of SaveForLater: it adds the product to the cart
// and drops it from the saved collection, returning both updated
// collections.
func (s *Service) MoveToCart(ctx context.Context, product domain.Product, quantity int) ([]domain.CartLine, []domain.SavedItem, error) {
	lines, err := s.AddToCart(ctx, product, quantity)
	if err != nil {
		return nil, nil, err
	}

	s.savedMu.Lock()
	defer s.savedMu.Unlock()
	items, err := s.repo.SavedItems(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load saved items after add: %w", err)
	}
	kept := make([]domain.SavedItem, 0, len(items))
	for _, it := range items {
		if it.ID != product.ID {
			kept = append(kept, it)
		}
	}
	if err := s.repo.ReplaceSavedItems(ctx, kept); err != nil {
		return nil, nil, fmt.Errorf("remove saved item after add: %w", err)
	}
	return lines, kept, nil
}

// ClearCart unconditionally empties the cart.
func (s *Service) ClearCart(ctx context.Context) ([]domain.CartLine, error) {
	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	empty := []domain.CartLine{}
	if err := s.repo.ReplaceLines(ctx, empty); err != nil {
		return nil, err
	}
	return empty, nil
}

// Checkout totals the supplied lines, clears the cart and returns the order.
// Payment method and shipping info are opaque at this layer; validating them
// is the caller's concern. An empty line set is rejected before anything is
// cleared, and a failed clear fails the checkout with the cart intact.
func (s *Service) Checkout(ctx context.Context, lines []domain.CartLine, paymentMethod, shippingInfo map[string]interface{}) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	s.cartMu.Lock()
	defer s.cartMu.Unlock()

	if err := s.repo.ReplaceLines(ctx, []domain.CartLine{}); err != nil {
		return nil, err
	}

	orderID := uuid.NewString()
	return &domain.Order{
		OrderID:           orderID,
		Total:             domain.TotalPrice(lines),
		TrackingNumber:    trackingNumber(orderID),
		EstimatedDelivery: "2-3 business days",
		PlacedAt:          s.now(),
	}, nil
}

func (s *Service) removeLineLocked(ctx context.Context, productID int) ([]domain.CartLine, error) {
	lines, err := s.repo.Lines(ctx)
	if err != nil {
		return nil, err
	}
	kept := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != productID {
			kept = append(kept, l)
		}
	}
	if err := s.repo.ReplaceLines(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func trackingNumber(orderID string) string {
	ref := strings.ToUpper(strings.ReplaceAll(orderID, "-", ""))
	if len(ref) > 6 {
		ref = ref[len(ref)-6:]
	}
	return "SS" + ref
}
