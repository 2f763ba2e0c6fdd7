// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging inspects uploaded post images and produces JPEG
// thumbnails for them. Decoding uses the standard image codecs plus
// WebP from golang.org/x/image; scaling uses x/image/draw.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"path"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// ThumbWidth is the default maximum thumbnail width in pixels.
	ThumbWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// MaxPixels caps the number of pixels to prevent memory bombs.
	// 10000x10000 = 100 million pixels, ~400 MB decoded in RGBA.
	MaxPixels = 100_000_000
)

// ErrNotImage is returned when the data is not a supported image format.
var ErrNotImage = errors.New("imaging: unsupported or invalid image")

// ErrTooLarge is returned when an image exceeds MaxPixels.
var ErrTooLarge = errors.New("imaging: image too large")

// Info describes an image without its pixel data.
type Info struct {
	Format string // "jpeg", "png", "gif" or "webp"
	Width  int
	Height int
}

// Extension returns the file extension for the image format.
func (i Info) Extension() string {
	switch i.Format {
	case "jpeg":
		return ".jpg"
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	case "webp":
		return ".webp"
	}
	return ""
}

// ContentType returns the MIME type for the image format.
func (i Info) ContentType() string {
	if i.Format == "" {
		return "application/octet-stream"
	}
	return "image/" + i.Format
}

// Inspect reads the image header and returns its format and dimensions.
func Inspect(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return Info{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, MaxPixels)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// Thumbnail creates a JPEG thumbnail constrained to maxWidth while
// preserving aspect ratio. Images already narrower than maxWidth are
// re-encoded at their own size.
func Thumbnail(src io.ReadSeeker, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		maxWidth = ThumbWidth
	}

	if _, err := Inspect(src); err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	bounds := img.Bounds()
	newWidth, newHeight := bounds.Dx(), bounds.Dy()
	if newWidth > maxWidth {
		ratio := float64(maxWidth) / float64(newWidth)
		newWidth = maxWidth
		newHeight = max(1, int(float64(bounds.Dy())*ratio))
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// ThumbKey derives the thumbnail object key from an original image key:
// "post_images/abc.png" becomes "post_images/abc_thumb.jpg".
func ThumbKey(key string) string {
	return strings.TrimSuffix(key, path.Ext(key)) + "_thumb.jpg"
}
