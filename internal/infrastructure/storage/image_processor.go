package storage

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const thumbnailWidth = 400

// ImageProcessor produces the thumbnail variant stored next to artwork
// originals.
type ImageProcessor struct{}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{}
}

// Thumbnail decodes an image and re-encodes a width-bounded JPEG. Height
// follows the aspect ratio.
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > thumbnailWidth {
		img = imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
