package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shopstream/internal/domain"
)

// CSVImporter reads a flat catalog export (one row per product hotspot,
// video columns repeated on every row) and reassembles the video fixture.
type CSVImporter struct {
	reader *csv.Reader
}

func NewCSVImporter(r io.Reader) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr}
}

// Run parses all rows and returns the videos grouped in first-seen order,
// each with its products in row order.
func (i *CSVImporter) Run() ([]domain.Video, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"videoId", "productId", "name", "price"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var videos []domain.Video
	byID := map[int]int{} // video id -> index into videos

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		videoID, err := intField(record, index, "videoId")
		if err != nil {
			return nil, err
		}

		pos, ok := byID[videoID]
		if !ok {
			videos = append(videos, domain.Video{
				ID:          videoID,
				Title:       field(record, index, "videoTitle"),
				CreatorName: field(record, index, "creatorName"),
				Views:       field(record, index, "views"),
			})
			pos = len(videos) - 1
			byID[videoID] = pos
		}

		product, err := parseProduct(record, index)
		if err != nil {
			return nil, fmt.Errorf("video %d: %w", videoID, err)
		}
		videos[pos].Products = append(videos[pos].Products, product)
	}

	return videos, nil
}

func parseProduct(record []string, index map[string]int) (domain.Product, error) {
	id, err := intField(record, index, "productId")
	if err != nil {
		return domain.Product{}, err
	}

	price, err := strconv.ParseFloat(field(record, index, "price"), 64)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d: bad price: %w", id, err)
	}
	if price < 0 {
		return domain.Product{}, fmt.Errorf("product %d: negative price: %w", id, domain.ErrInvalidInput)
	}

	confidence := 0.0
	if raw := field(record, index, "brandConfidence"); raw != "" {
		confidence, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Product{}, fmt.Errorf("product %d: bad brandConfidence: %w", id, err)
		}
	}

	return domain.Product{
		ID:              id,
		Name:            field(record, index, "name"),
		Price:           price,
		Category:        field(record, index, "category"),
		Retailer:        field(record, index, "retailer"),
		ImageURL:        field(record, index, "imageUrl"),
		InStock:         strings.EqualFold(field(record, index, "inStock"), "true"),
		Brand:           field(record, index, "brand"),
		BrandConfidence: confidence,
	}, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	return index
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func intField(record []string, index map[string]int, name string) (int, error) {
	raw := field(record, index, name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", name, raw, err)
	}
	return n, nil
}
