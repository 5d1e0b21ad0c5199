package domain

import (
	"context"
	"image"
)

// ImageFetcher retrieves and decodes a raster image from a URL. Fetches are
// anonymous: no credentials or cookies accompany the request.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}
