// Package snapshot writes rendered globe frames to image files
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an output image encoding
type Format uint8

const (
	FormatWebP Format = iota
	FormatPNG
)

func (f Format) String() string {
	switch f {
	case FormatWebP:
		return "webp"
	case FormatPNG:
		return "png"
	}
	return "unknown"
}

// ErrUnknownFormat is returned for file extensions with no encoder
var ErrUnknownFormat = errors.New("unknown image format")

// FormatFromPath picks the encoder by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return FormatWebP, nil
	case ".png":
		return FormatPNG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
		return nil
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
}

// WriteFile encodes img to path, creating parent directories
func WriteFile(path string, img image.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, img, format)
}

// SequencePath returns the numbered file name for frame i of a sequence
func SequencePath(dir, prefix string, i int, format Format) string {
	return filepath.Join(dir, fmt.Sprintf("%s%04d.%s", prefix, i, format))
}
