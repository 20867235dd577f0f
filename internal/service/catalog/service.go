package catalog

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"shopstream/internal/domain"
	catalogrepo "shopstream/internal/repository/catalog"
)

const featuredCount = 8

// Service answers read-only queries over the immutable catalog fixture.
// Every return value is a fresh copy; callers can never reach the shared
// fixture through a result.
type Service struct {
	repo catalogrepo.Repository
}

func New(repo catalogrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Products flattens every video's hotspots into one product list, stamping
// each product with the video it came from.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	videos, err := s.repo.Videos(ctx)
	if err != nil {
		return nil, err
	}
	products := []domain.Product{}
	for _, v := range videos {
		for _, p := range v.Products {
			p.VideoID = v.ID
			p.VideoTitle = v.Title
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *Service) ProductByID(ctx context.Context, id int) (*domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
}

func (s *Service) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	matched := []domain.Product{}
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// SearchProducts matches the query as a case-insensitive substring of name,
// category, retailer or brand. An empty query returns everything.
func (s *Service) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return products, nil
	}
	matched := []domain.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Retailer), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// ProductsByVideo returns the hotspots of one video.
func (s *Service) ProductsByVideo(ctx context.Context, videoID int) ([]domain.Product, error) {
	videos, err := s.repo.Videos(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range videos {
		if v.ID == videoID {
			return append([]domain.Product{}, v.Products...), nil
		}
	}
	return nil, fmt.Errorf("video %d: %w", videoID, domain.ErrNotFound)
}

// FeaturedProducts returns a random selection of products for the home page.
func (s *Service) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
	if len(products) > featuredCount {
		products = products[:featuredCount]
	}
	return products, nil
}

// Videos returns every catalog video with its brand analysis summary.
func (s *Service) Videos(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.repo.Videos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		out = append(out, enhance(v))
	}
	return out, nil
}

func (s *Service) VideoByID(ctx context.Context, id int) (*domain.Video, error) {
	videos, err := s.repo.Videos(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range videos {
		if v.ID == id {
			enhanced := enhance(v)
			return &enhanced, nil
		}
	}
	return nil, fmt.Errorf("video %d: %w", id, domain.ErrNotFound)
}

// VideosByCategory returns videos featuring at least one product of the
// category.
func (s *Service) VideosByCategory(ctx context.Context, category string) ([]domain.Video, error) {
	videos, err := s.repo.Videos(ctx)
	if err != nil {
		return nil, err
	}
	matched := []domain.Video{}
	for _, v := range videos {
		for _, p := range v.Products {
			if strings.EqualFold(p.Category, category) {
				matched = append(matched, enhance(v))
				break
			}
		}
	}
	return matched, nil
}

// SearchVideos matches the query against title, creator and product
// name/brand/retailer. Filters, when present, narrow the result to videos
// with a product whose category or brand is in the filter set.
func (s *Service) SearchVideos(ctx context.Context, query string, filters []string) ([]domain.Video, error) {
	videos, err := s.repo.Videos(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	results := []domain.Video{}
	for _, v := range videos {
		if term != "" && !videoMatches(v, term) {
			continue
		}
		if len(filters) > 0 && !videoInFilters(v, filters) {
			continue
		}
		results = append(results, enhance(v))
	}
	return results, nil
}

// TrendingVideos sorts by view count, parsing display strings like "2.1M"
// and "850K".
func (s *Service) TrendingVideos(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.repo.Videos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		out = append(out, enhance(v))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseViews(out[i].Views) > parseViews(out[j].Views)
	})
	return out, nil
}

func videoMatches(v domain.Video, term string) bool {
	if strings.Contains(strings.ToLower(v.Title), term) ||
		strings.Contains(strings.ToLower(v.CreatorName), term) {
		return true
	}
	for _, p := range v.Products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Retailer), term) {
			return true
		}
	}
	return false
}

func videoInFilters(v domain.Video, filters []string) bool {
	for _, p := range v.Products {
		for _, f := range filters {
			if strings.EqualFold(p.Category, f) || strings.EqualFold(p.Brand, f) {
				return true
			}
		}
	}
	return false
}

// enhance deep-copies the video and attaches the brand analysis summary:
// the count of distinct detected brands and the mean confidence rounded to
// one decimal.
func enhance(v domain.Video) domain.Video {
	v.Products = append([]domain.Product{}, v.Products...)

	brands := map[string]bool{}
	confidence := 0.0
	for _, p := range v.Products {
		if p.Brand != "" {
			brands[p.Brand] = true
		}
		confidence += p.BrandConfidence
	}

	v.BrandAnalysisComplete = true
	v.DetectedBrands = len(brands)
	if len(v.Products) > 0 {
		v.AvgBrandConfidence = math.Round(confidence/float64(len(v.Products))*10) / 10
	}
	return v
}

// parseViews turns a display count such as "2.1M", "850K" or "1,200" into a
// comparable number. Unparsable strings sort last.
func parseViews(views string) float64 {
	s := strings.ToUpper(strings.TrimSpace(views))
	s = strings.TrimSuffix(s, " VIEWS")
	s = strings.ReplaceAll(s, ",", "")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "M"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "K")
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return -1
	}
	return n * multiplier
}
