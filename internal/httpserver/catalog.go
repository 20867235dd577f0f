package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Products(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		product, err := svc.ProductByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func productsByCategoryHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ProductsByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func searchProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.SearchProducts(c.Request.Context(), c.Query("q"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func featuredProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.FeaturedProducts(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func listVideosHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// /api/videos doubles as search when q or filters are present.
		q := c.Query("q")
		filters := parseFilters(c.Query("filters"))
		category := c.Query("category")

		ctx := c.Request.Context()
		switch {
		case category != "":
			videos, err := svc.VideosByCategory(ctx, category)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, videos)
		case q != "" || len(filters) > 0:
			videos, err := svc.SearchVideos(ctx, q, filters)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, videos)
		default:
			videos, err := svc.Videos(ctx)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, videos)
		}
	}
}

func getVideoHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
			return
		}
		video, err := svc.VideoByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, video)
	}
}

func videoProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
			return
		}
		products, err := svc.ProductsByVideo(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func trendingVideosHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		videos, err := svc.TrendingVideos(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, videos)
	}
}

func parseFilters(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	filters := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.TrimSpace(p); f != "" {
			filters = append(filters, f)
		}
	}
	return filters
}
