package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// ImageProcessor shrinks oversized raster images before they are stored.
type ImageProcessor struct {
	maxWidth  int
	maxHeight int
	quality   int
}

// NewImageProcessor: a zero bound disables the limit on that side.
func NewImageProcessor(maxWidth, maxHeight, jpegQuality int) *ImageProcessor {
	return &ImageProcessor{maxWidth: maxWidth, maxHeight: maxHeight, quality: jpegQuality}
}

// Downsize returns the re-encoded image, or the original bytes when the
// image already fits.
func (p *ImageProcessor) Downsize(data []byte, format imaging.Format) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if !p.tooLarge(img) {
		return data, nil
	}

	resized := imaging.Fit(img, p.bound(p.maxWidth, img.Bounds().Dx()), p.bound(p.maxHeight, img.Bounds().Dy()), imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *ImageProcessor) tooLarge(img image.Image) bool {
	b := img.Bounds()
	return (p.maxWidth > 0 && b.Dx() > p.maxWidth) || (p.maxHeight > 0 && b.Dy() > p.maxHeight)
}

func (p *ImageProcessor) bound(limit, actual int) int {
	if limit <= 0 {
		return actual
	}
	return limit
}

func readAll(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
