package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopstream/internal/domain"
	cartrepo "shopstream/internal/repository/cart"
)

// failingRepo wraps a real repository and fails selected operations.
type failingRepo struct {
	cartrepo.Repository
	linesErr        error
	replaceLinesErr error
	replaceSavedErr error
}

func (f *failingRepo) Lines(ctx context.Context) ([]domain.CartLine, error) {
	if f.linesErr != nil {
		return nil, f.linesErr
	}
	return f.Repository.Lines(ctx)
}

func (f *failingRepo) ReplaceLines(ctx context.Context, lines []domain.CartLine) error {
	if f.replaceLinesErr != nil {
		return f.replaceLinesErr
	}
	return f.Repository.ReplaceLines(ctx, lines)
}

func (f *failingRepo) ReplaceSavedItems(ctx context.Context, items []domain.SavedItem) error {
	if f.replaceSavedErr != nil {
		return f.replaceSavedErr
	}
	return f.Repository.ReplaceSavedItems(ctx, items)
}

func newTestService() *Service {
	return New(cartrepo.NewMemory())
}

func product(id int, price float64) domain.Product {
	return domain.Product{ID: id, Name: "p", Price: price, Category: "Tech", Retailer: "r", InStock: true}
}

func TestAddToCartMergesByProductID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }
	if _, err := svc.AddToCart(ctx, product(1, 20), 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	svc.now = func() time.Time { return first.Add(time.Hour) }
	lines, err := svc.AddToCart(ctx, product(1, 20), 2)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}

	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
	if !lines[0].AddedAt.Equal(first) {
		t.Fatalf("merge must keep original addedAt, got %v", lines[0].AddedAt)
	}
}

func TestAddToCartValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, product(1, 10), 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero quantity, got %v", err)
	}
	if _, err := svc.AddToCart(ctx, product(1, -5), 1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}

	lines, err := svc.Items(ctx)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("rejected adds must not change the cart, got %d lines", len(lines))
	}
}

func TestAddToCartStorageFailureLeavesCartUnchanged(t *testing.T) {
	repo := &failingRepo{Repository: cartrepo.NewMemory()}
	svc := New(repo)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, product(1, 10), 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	repo.replaceLinesErr = domain.ErrStorage
	if _, err := svc.AddToCart(ctx, product(2, 5), 1); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected storage failure, got %v", err)
	}
	repo.replaceLinesErr = nil

	lines, err := svc.Items(ctx)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(lines) != 1 || lines[0].ID != 1 {
		t.Fatalf("failed add must leave persisted cart unchanged, got %+v", lines)
	}
}

func TestUpdateQuantityClampsAndDeletes(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, product(1, 10), 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines, err := svc.UpdateQuantity(ctx, 1, 5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity replaced with 5, got %d", lines[0].Quantity)
	}

	for _, n := range []int{0, -3} {
		if _, err := svc.AddToCart(ctx, product(1, 10), 1); err != nil {
			t.Fatalf("re-add: %v", err)
		}
		lines, err = svc.UpdateQuantity(ctx, 1, n)
		if err != nil {
			t.Fatalf("update to %d: %v", n, err)
		}
		if len(lines) != 0 {
			t.Fatalf("quantity %d must delete the line, got %+v", n, lines)
		}
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, product(1, 10), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := svc.UpdateQuantity(ctx, 99, 4)
	if err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	if len(lines) != 1 || lines[0].ID != 1 || lines[0].Quantity != 2 {
		t.Fatalf("unknown id must leave cart unchanged, got %+v", lines)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, product(1, 10), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	first, err := svc.RemoveItem(ctx, 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	second, err := svc.RemoveItem(ctx, 1)
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if len(first) != 0 || len(second) != 0 {
		t.Fatalf("expected empty cart after both removes, got %+v / %+v", first, second)
	}
}

func TestSaveForLaterMutualExclusion(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, product(7, 30), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := svc.SaveForLater(ctx, product(7, 30))
	if err != nil {
		t.Fatalf("save for later: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("saved product must leave the cart, got %+v", lines)
	}

	saved, err := svc.SavedItems(ctx)
	if err != nil {
		t.Fatalf("saved items: %v", err)
	}
	if len(saved) != 1 || saved[0].ID != 7 {
		t.Fatalf("expected exactly one saved entry for id 7, got %+v", saved)
	}
}

func TestSaveForLaterFirstSaveWins(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }
	if _, err := svc.SaveForLater(ctx, product(7, 30)); err != nil {
		t.Fatalf("save: %v", err)
	}

	svc.now = func() time.Time { return first.Add(time.Hour) }
	if _, err := svc.SaveForLater(ctx, product(7, 30)); err != nil {
		t.Fatalf("repeat save: %v", err)
	}

	saved, err := svc.SavedItems(ctx)
	if err != nil {
		t.Fatalf("saved items: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected one saved entry, got %d", len(saved))
	}
	if !saved[0].SavedAt.Equal(first) {
		t.Fatalf("repeat save must not refresh savedAt, got %v", saved[0].SavedAt)
	}
}

func TestSaveForLaterReportsPartialCompletion(t *testing.T) {
	repo := &failingRepo{Repository: cartrepo.NewMemory()}
	svc := New(repo)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, product(7, 30), 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	repo.replaceLinesErr = domain.ErrStorage
	_, err := svc.SaveForLater(ctx, product(7, 30))
	if !errors.Is(err, domain.ErrSaveIncomplete) {
		t.Fatalf("expected ErrSaveIncomplete, got %v", err)
	}
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("partial-completion error must keep the cause, got %v", err)
	}

	saved, err := svc.SavedItems(ctx)
	if err != nil {
		t.Fatalf("saved items: %v", err)
	}
	if len(saved) != 1 || saved[0].ID != 7 {
		t.Fatalf("save step went through and must be visible, got %+v", saved)
	}
}

func TestMoveToCartInvertsSaveForLater(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveForLater(ctx, product(7, 30)); err != nil {
		t.Fatalf("save: %v", err)
	}
	lines, saved, err := svc.MoveToCart(ctx, product(7, 30), 4)
	if err != nil {
		t.Fatalf("move to cart: %v", err)
	}
	if len(lines) != 1 || lines[0].ID != 7 || lines[0].Quantity != 4 {
		t.Fatalf("expected cart line id=7 qty=4, got %+v", lines)
	}
	if len(saved) != 0 {
		t.Fatalf("moved product must leave the saved collection, got %+v", saved)
	}
}

func TestClearCart(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, product(1, 10), 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := svc.ClearCart(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestCheckoutTotalsAndClears(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, product(1, 10), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := svc.AddToCart(ctx, product(2, 5), 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	order, err := svc.Checkout(ctx, lines, map[string]interface{}{"type": "card"}, nil)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Total != 25 {
		t.Fatalf("expected total 25, got %v", order.Total)
	}
	if order.OrderID == "" || order.TrackingNumber == "" {
		t.Fatalf("order missing identifiers: %+v", order)
	}

	after, err := svc.Items(ctx)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("checkout must clear the cart, got %+v", after)
	}

	if _, err := svc.Checkout(ctx, after, nil, nil); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart on empty checkout, got %v", err)
	}
}

func TestCheckoutClearFailureKeepsCart(t *testing.T) {
	repo := &failingRepo{Repository: cartrepo.NewMemory()}
	svc := New(repo)
	ctx := context.Background()

	lines, err := svc.AddToCart(ctx, product(1, 10), 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	repo.replaceLinesErr = domain.ErrStorage
	if _, err := svc.Checkout(ctx, lines, nil, nil); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected storage failure, got %v", err)
	}
	repo.replaceLinesErr = nil

	after, err := svc.Items(ctx)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(after) != 1 {
		t.Fatalf("failed checkout must not lose the cart, got %+v", after)
	}
}

func TestOrderIDsUnique(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		lines, err := svc.AddToCart(ctx, product(1, 10), 1)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		order, err := svc.Checkout(ctx, lines, nil, nil)
		if err != nil {
			t.Fatalf("checkout: %v", err)
		}
		if seen[order.OrderID] {
			t.Fatalf("duplicate order id %s", order.OrderID)
		}
		seen[order.OrderID] = true
	}
}

func TestAddUpdateScenario(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	lines, err := svc.AddToCart(ctx, product(1, 20), 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected [{id:1 qty:1}], got %+v", lines)
	}

	lines, err = svc.AddToCart(ctx, product(1, 20), 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("expected [{id:1 qty:3}], got %+v", lines)
	}

	lines, err = svc.UpdateQuantity(ctx, 1, 0)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestDerivedTotals(t *testing.T) {
	lines := []domain.CartLine{
		{Product: product(1, 10), Quantity: 2},
		{Product: product(2, 5), Quantity: 1},
	}
	if got := domain.TotalItems(lines); got != 3 {
		t.Fatalf("expected 3 total items, got %d", got)
	}
	if got := domain.TotalPrice(lines); got != 25 {
		t.Fatalf("expected total price 25, got %v", got)
	}
}
