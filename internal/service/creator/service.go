package creator

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Service produces the creator dashboard's demo data. Everything here is
// generated fixture material for the storefront UI; it carries no invariants
// and touches no persisted state.
type Service struct {
	now func() time.Time
}

func New() *Service {
	return &Service{now: time.Now}
}

// Metrics is the dashboard's headline summary.
type Metrics struct {
	TotalEarnings   float64 `json:"totalEarnings"`
	TotalClicks     int     `json:"totalClicks"`
	TotalViews      string  `json:"totalViews"`
	ConversionRate  float64 `json:"conversionRate"`
	ActiveVideos    int     `json:"activeVideos"`
	ProductsTagged  int     `json:"productsTagged"`
	PendingPayout   float64 `json:"pendingPayout"`
	LifetimePayouts float64 `json:"lifetimePayouts"`
}

// EarningsPoint is one day in the earnings series.
type EarningsPoint struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
}

// VideoStats summarizes one of the creator's published videos.
type VideoStats struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Views          string  `json:"views"`
	Earnings       float64 `json:"earnings"`
	ProductsTagged int     `json:"productsTagged"`
	ConversionRate float64 `json:"conversionRate"`
}

// Payout is one row of the payout history.
type Payout struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Method string  `json:"method"`
}

var timeframeDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"1y":  365,
}

func (s *Service) Metrics(_ context.Context) (*Metrics, error) {
	return &Metrics{
		TotalEarnings:   1847.25,
		TotalClicks:     12430,
		TotalViews:      "7.1M",
		ConversionRate:  6.4,
		ActiveVideos:    3,
		ProductsTagged:  26,
		PendingPayout:   312.75,
		LifetimePayouts: 1534.5,
	}, nil
}

// Earnings generates one random data point per day in the timeframe, most
// recent day last. Unknown timeframes fall back to 30 days.
func (s *Service) Earnings(_ context.Context, timeframe string) ([]EarningsPoint, error) {
	days, ok := timeframeDays[timeframe]
	if !ok {
		days = 30
	}

	points := make([]EarningsPoint, 0, days)
	today := s.now()
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		points = append(points, EarningsPoint{
			Date:        day.Format("2006-01-02"),
			Amount:      math.Round((rand.Float64()*100+20)*100) / 100,
			Clicks:      rand.Intn(50) + 10,
			Conversions: rand.Intn(5) + 1,
		})
	}
	return points, nil
}

func (s *Service) Videos(_ context.Context) ([]VideoStats, error) {
	return []VideoStats{
		{ID: 1, Title: "Fashion Haul 2024: Trending Styles You Need", Views: "2.1M", Earnings: 245.5, ProductsTagged: 8, ConversionRate: 6.8},
		{ID: 2, Title: "Latest Tech Review: Must-Have Gadgets", Views: "1.8M", Earnings: 189.25, ProductsTagged: 6, ConversionRate: 5.4},
		{ID: 4, Title: "Beauty Routine: Glowing Skin Secrets", Views: "3.2M", Earnings: 312.75, ProductsTagged: 12, ConversionRate: 7.2},
	}, nil
}

func (s *Service) Payouts(_ context.Context) ([]Payout, error) {
	return []Payout{
		{Date: "2024-03-01", Amount: 486.5, Status: "paid", Method: "bank transfer"},
		{Date: "2024-02-01", Amount: 534.0, Status: "paid", Method: "bank transfer"},
		{Date: "2024-01-01", Amount: 514.0, Status: "paid", Method: "paypal"},
	}, nil
}
