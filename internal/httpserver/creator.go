package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func creatorMetricsHandler(svc CreatorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics, err := svc.Metrics(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, metrics)
	}
}

func creatorEarningsHandler(svc CreatorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		points, err := svc.Earnings(c.Request.Context(), c.DefaultQuery("timeframe", "30d"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, points)
	}
}

func creatorVideosHandler(svc CreatorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		videos, err := svc.Videos(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, videos)
	}
}

func creatorPayoutsHandler(svc CreatorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payouts, err := svc.Payouts(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, payouts)
	}
}
