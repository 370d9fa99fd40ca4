// Package texture loads optional floor textures for the renderer.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// Extensions lists the supported formats in lookup priority order. TGA wins
// because it is the only one that reliably carries alpha in exported assets.
var Extensions = []string{".tga", ".png", ".jpg", ".jpeg"}

// Supported reports whether path has a loadable image extension.
func Supported(path string) bool {
	return priority(filepath.Ext(path)) >= 0
}

func priority(ext string) int {
	ext = strings.ToLower(ext)
	for i, e := range Extensions {
		if e == ext {
			return i
		}
	}
	return -1
}

// decoderFor picks the decoder from the extension. The tga package registers
// an empty magic string, so image.Decode would hand it every file.
func decoderFor(ext string) func(io.Reader) (image.Image, error) {
	switch strings.ToLower(ext) {
	case ".tga":
		return tga.Decode
	case ".png":
		return png.Decode
	case ".jpg", ".jpeg":
		return jpeg.Decode
	}
	return nil
}

// LoadTexture reads a TGA, PNG or JPEG file and returns an NRGBA image.
func LoadTexture(path string) (*image.NRGBA, error) {
	decode := decoderFor(filepath.Ext(path))
	if decode == nil {
		return nil, fmt.Errorf("texture: unknown extension: %s", filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
