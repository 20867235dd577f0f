package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopstream/internal/domain"
)

type addToCartRequest struct {
	Product  domain.Product `json:"product" binding:"required"`
	Quantity *int           `json:"quantity"`
}

func (r addToCartRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type saveForLaterRequest struct {
	Product domain.Product `json:"product" binding:"required"`
}

type checkoutRequest struct {
	PaymentMethod map[string]interface{} `json:"paymentMethod"`
	ShippingInfo  map[string]interface{} `json:"shippingInfo"`
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := svc.Items(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartView(lines))
	}
}

func getSavedHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.SavedItems(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toSavedView(items))
	}
}

func addToCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		lines, err := svc.AddToCart(c.Request.Context(), req.Product, req.quantity())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartView(lines))
	}
}

func updateQuantityHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		lines, err := svc.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartView(lines))
	}
}

func removeItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		lines, err := svc.RemoveItem(c.Request.Context(), productID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartView(lines))
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := svc.ClearCart(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartView(lines))
	}
}

func saveForLaterHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveForLaterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		lines, err := svc.SaveForLater(c.Request.Context(), req.Product)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartView(lines))
	}
}

func moveToCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		lines, saved, err := svc.MoveToCart(c.Request.Context(), req.Product, req.quantity())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, moveView{Cart: toCartView(lines), Saved: toSavedView(saved)})
	}
}

// checkoutHandler totals whatever is currently in the cart. Payment and
// shipping details pass through opaquely; this layer does not validate them.
func checkoutHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		ctx := c.Request.Context()
		lines, err := svc.Items(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		order, err := svc.Checkout(ctx, lines, req.PaymentMethod, req.ShippingInfo)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView{Success: true, Order: *order})
	}
}
