package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService processes series banner images before they are saved next to
// the renamed episodes.
//
// TheTVDB serves banners in varying sizes and formats; ImageService scales
// them down to a manageable size and normalizes them to JPEG.
//
// Example usage:
//
//	svc := NewImageService()
//	data, _ := client.Banner(ctx, series)
//	resized, _ := svc.Resize(ctx, data, 1000)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Resize scales an image down so that neither dimension exceeds max pixels,
// preserving the aspect ratio, and re-encodes it as JPEG. Images already
// within bounds are re-encoded without scaling.
//
// The Catmull-Rom algorithm is used for high-quality downscaling.
func (s *ImageService) Resize(ctx context.Context, data []byte, max int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > max || height > max {
		ratio := float64(width) / float64(height)
		if ratio > 1 {
			width = max
			height = int(float64(max) / ratio)
		} else {
			height = max
			width = int(float64(max) * ratio)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return encodeJPEG(dst)
}

// ToJPEG re-encodes arbitrary image data (JPEG, PNG, ...) as JPEG without
// changing its dimensions. Used when banner resizing is disabled so the
// saved file still has a predictable format.
func (s *ImageService) ToJPEG(ctx context.Context, data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return encodeJPEG(img)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
