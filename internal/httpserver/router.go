package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shopstream/internal/domain"
	"shopstream/internal/service/creator"
)

// CartService is the cart engine surface the handlers consume.
type CartService interface {
	Items(ctx context.Context) ([]domain.CartLine, error)
	SavedItems(ctx context.Context) ([]domain.SavedItem, error)
	AddToCart(ctx context.Context, product domain.Product, quantity int) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, productID, quantity int) ([]domain.CartLine, error)
	RemoveItem(ctx context.Context, productID int) ([]domain.CartLine, error)
	SaveForLater(ctx context.Context, product domain.Product) ([]domain.CartLine, error)
	MoveToCart(ctx context.Context, product domain.Product, quantity int) ([]domain.CartLine, []domain.SavedItem, error)
	ClearCart(ctx context.Context) ([]domain.CartLine, error)
	Checkout(ctx context.Context, lines []domain.CartLine, paymentMethod, shippingInfo map[string]interface{}) (*domain.Order, error)
}

// CatalogService is the read-only catalog surface.
type CatalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	ProductByID(ctx context.Context, id int) (*domain.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	ProductsByVideo(ctx context.Context, videoID int) ([]domain.Product, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	Videos(ctx context.Context) ([]domain.Video, error)
	VideoByID(ctx context.Context, id int) (*domain.Video, error)
	VideosByCategory(ctx context.Context, category string) ([]domain.Video, error)
	SearchVideos(ctx context.Context, query string, filters []string) ([]domain.Video, error)
	TrendingVideos(ctx context.Context) ([]domain.Video, error)
}

// CreatorService supplies the creator dashboard data.
type CreatorService interface {
	Metrics(ctx context.Context) (*creator.Metrics, error)
	Earnings(ctx context.Context, timeframe string) ([]creator.EarningsPoint, error)
	Videos(ctx context.Context) ([]creator.VideoStats, error)
	Payouts(ctx context.Context) ([]creator.Payout, error)
}

// Deps carries the services the router needs.
type Deps struct {
	CartSvc    CartService
	CatalogSvc CatalogService
	CreatorSvc CreatorService
}

// buildRouter wires routes for the storefront API. CORS is wide open: the
// consumer is a browser app served from a different origin.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.CartSvc))

	api := router.Group("/api")

	api.GET("/cart", getCartHandler(deps.CartSvc))
	api.POST("/cart/items", addToCartHandler(deps.CartSvc))
	api.PATCH("/cart/items/:productId", updateQuantityHandler(deps.CartSvc))
	api.DELETE("/cart/items/:productId", removeItemHandler(deps.CartSvc))
	api.DELETE("/cart", clearCartHandler(deps.CartSvc))
	api.GET("/saved", getSavedHandler(deps.CartSvc))
	api.POST("/cart/save-for-later", saveForLaterHandler(deps.CartSvc))
	api.POST("/cart/move-to-cart", moveToCartHandler(deps.CartSvc))
	api.POST("/checkout", checkoutHandler(deps.CartSvc))

	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/products/search", searchProductsHandler(deps.CatalogSvc))
	api.GET("/products/featured", featuredProductsHandler(deps.CatalogSvc))
	api.GET("/products/category/:category", productsByCategoryHandler(deps.CatalogSvc))
	api.GET("/products/:id", getProductHandler(deps.CatalogSvc))

	api.GET("/videos", listVideosHandler(deps.CatalogSvc))
	api.GET("/videos/trending", trendingVideosHandler(deps.CatalogSvc))
	api.GET("/videos/:id", getVideoHandler(deps.CatalogSvc))
	api.GET("/videos/:id/products", videoProductsHandler(deps.CatalogSvc))

	api.GET("/creator/metrics", creatorMetricsHandler(deps.CreatorSvc))
	api.GET("/creator/earnings", creatorEarningsHandler(deps.CreatorSvc))
	api.GET("/creator/videos", creatorVideosHandler(deps.CreatorSvc))
	api.GET("/creator/payouts", creatorPayoutsHandler(deps.CreatorSvc))

	return router, nil
}
