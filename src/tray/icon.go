package tray

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Bundled fallback icon, used when the external sprite cannot be read.
//
//go:embed assets/tray-icon.png
var bundledIcon []byte

// ErrNoIcon means neither the external file nor the bundled image decoded.
var ErrNoIcon = errors.New("tray icon unavailable")

// Icon is a decoded tray icon, normalized to PNG.
type Icon struct {
	PNG    []byte
	Width  int
	Height int
}

// LoadIcon reads the icon at path, falling back to the bundled image.
func LoadIcon(path string) (Icon, error) {
	return loadIcon(path, bundledIcon)
}

func loadIcon(path string, bundled []byte) (Icon, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			icon, err := decodeIcon(data)
			if err == nil {
				return icon, nil
			}
			log.Printf("tray: cannot decode icon %s: %v", path, err)
		} else {
			log.Printf("tray: cannot read icon %s: %v", path, err)
		}
	}

	icon, err := decodeIcon(bundled)
	if err != nil {
		return Icon{}, fmt.Errorf("%w: bundled icon: %v", ErrNoIcon, err)
	}
	log.Printf("tray: using bundled icon")
	return icon, nil
}

func decodeIcon(data []byte) (Icon, error) {
	if len(data) == 0 {
		return Icon{}, errors.New("empty image")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Icon{}, err
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Icon{}, fmt.Errorf("empty %s image", format)
	}
	if format == "png" {
		return Icon{PNG: data, Width: b.Dx(), Height: b.Dy()}, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Icon{}, fmt.Errorf("re-encode %s icon: %w", format, err)
	}
	return Icon{PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}
