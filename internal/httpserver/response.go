package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopstream/internal/domain"
)

// cartView is the cart with its derived aggregates; every cart-mutating
// endpoint returns the full post-mutation state.
type cartView struct {
	Items      []domain.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

type savedView struct {
	Items []domain.SavedItem `json:"items"`
}

// moveView is the MoveToCart result: both collections after the move.
type moveView struct {
	Cart  cartView  `json:"cart"`
	Saved savedView `json:"saved"`
}

type orderView struct {
	Success bool         `json:"success"`
	Order   domain.Order `json:"order"`
}

func toCartView(lines []domain.CartLine) cartView {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartView{
		Items:      lines,
		TotalItems: domain.TotalItems(lines),
		TotalPrice: domain.TotalPrice(lines),
	}
}

func toSavedView(items []domain.SavedItem) savedView {
	if items == nil {
		items = []domain.SavedItem{}
	}
	return savedView{Items: items}
}

// respondError maps the domain error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCart):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrStorage), errors.Is(err, domain.ErrSaveIncomplete):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
