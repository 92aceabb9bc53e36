package photo

import (
	"image"

	"github.com/disintegration/imaging"
)

// Channels is fixed: a PixelBuffer is always RGB.
const Channels = 3

// PixelBuffer holds row-major RGB samples and nothing else.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

func (b *PixelBuffer) offset(x, y int) int {
	return (y*b.Width + x) * Channels
}

func (b *PixelBuffer) RGB(x, y int) (r, g, bl uint8) {
	i := b.offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

func (b *PixelBuffer) SetRGB(x, y int, r, g, bl uint8) {
	i := b.offset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// NRGBA copies the buffer into a new opaque image.
func (b *PixelBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for i, j := 0, 0; i < len(b.Pix); i, j = i+Channels, j+4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// fromImage samples img into a fresh buffer, dropping alpha.
func fromImage(img image.Image) *PixelBuffer {
	src, ok := img.(*image.NRGBA)
	if !ok || src.Rect.Min != (image.Point{}) || src.Stride != 4*src.Rect.Dx() {
		src = imaging.Clone(img)
	}

	w, h := src.Rect.Dx(), src.Rect.Dy()
	buf := NewPixelBuffer(w, h)
	for i, j := 0, 0; j < len(src.Pix); i, j = i+Channels, j+4 {
		buf.Pix[i] = src.Pix[j]
		buf.Pix[i+1] = src.Pix[j+1]
		buf.Pix[i+2] = src.Pix[j+2]
	}
	return buf
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
