package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"shopstream/internal/domain"
)

//go:embed fixture/videos.json
var defaultFixture []byte

// DefaultFixture returns the bundled demo catalog as raw JSON.
func DefaultFixture() []byte {
	return append([]byte{}, defaultFixture...)
}

type fileRepo struct {
	videos []domain.Video
}

var _ Repository = (*fileRepo)(nil)

// NewFile loads the catalog fixture from path, or the bundled demo catalog
// when path is empty. The fixture is parsed once; unlike the cart
// collections, a malformed catalog is a deployment error and fails loudly.
func NewFile(path string) (Repository, error) {
	data := defaultFixture
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog fixture: %w", err)
		}
		data = b
	}

	var videos []domain.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("parse catalog fixture: %w", err)
	}
	return &fileRepo{videos: videos}, nil
}

func (r *fileRepo) Videos(_ context.Context) ([]domain.Video, error) {
	return r.videos, nil
}
