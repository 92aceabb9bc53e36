package photo

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// minCropSide is the smallest width or height a crop may leave behind.
const minCropSide = 200

var smoothKernel = [9]float64{
	1, 1, 1,
	1, 5, 1,
	1, 1, 1,
}

// Uniquify perturbs buf with the tier's randomized transforms and returns the
// result together with the tier's JPEG quality range. buf is not modified.
//
// Stages run in a fixed order: rotation, crop, gaussian noise, per-channel
// shift, then brightness, contrast and sharpness.
func Uniquify(buf *PixelBuffer, tier Tier, r *rand.Rand) (*PixelBuffer, IntRange) {
	img := buf.NRGBA()

	angle := (2*r.Float64() - 1) * tier.RotationDeg
	img = rotate(img, angle)
	img = randomCrop(img, tier.CropPx, r)

	out := fromImage(img)
	addNoiseAndShift(out, tier.NoiseSigma, tier.ColorShift, r)

	adjustBrightness(out, tier.Brightness.Sample(r))
	adjustContrast(out, tier.Contrast.Sample(r))
	adjustSharpness(out, tier.Sharpness.Sample(r))

	return out, tier.Quality
}

// rotate turns img counter-clockwise by angle degrees around its center,
// keeping the frame size and filling uncovered corners with white.
func rotate(img *image.NRGBA, angle float64) *image.NRGBA {
	if angle == 0 {
		return img
	}

	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.White, image.Point{}, draw.Src)

	sin, cos := math.Sincos(angle * math.Pi / 180)
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy()) / 2
	m := f64.Aff3{
		cos, sin, cx - cos*cx - sin*cy,
		-sin, cos, cy + sin*cx - cos*cy,
	}
	draw.CatmullRom.Transform(dst, m, img, bounds, draw.Over, nil)

	return imaging.Clone(dst)
}

func randomCrop(img *image.NRGBA, maxPx int, r *rand.Rand) *image.NRGBA {
	left := r.IntN(maxPx + 1)
	top := r.IntN(maxPx + 1)
	right := r.IntN(maxPx + 1)
	bottom := r.IntN(maxPx + 1)

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w-left-right <= minCropSide || h-top-bottom <= minCropSide {
		return img
	}
	return imaging.Crop(img, image.Rect(left, top, w-right, h-bottom))
}

// addNoiseAndShift adds gaussian noise to every sample and one constant
// offset per channel, clipping only once at the end.
func addNoiseAndShift(b *PixelBuffer, sigma, shift float64, r *rand.Rand) {
	plane := make([]float64, len(b.Pix))
	for i, v := range b.Pix {
		plane[i] = float64(v) + r.NormFloat64()*sigma
	}

	for c := 0; c < Channels; c++ {
		offset := (2*r.Float64() - 1) * shift
		for i := c; i < len(plane); i += Channels {
			plane[i] += offset
		}
	}

	for i, v := range plane {
		b.Pix[i] = clamp8(v)
	}
}

// blend moves every sample of b away from degenerate by factor:
// out = degenerate + factor*(in-degenerate).
func blend(b *PixelBuffer, degenerate func(i int) float64, factor float64) {
	for i, v := range b.Pix {
		d := degenerate(i)
		b.Pix[i] = clamp8(d + factor*(float64(v)-d))
	}
}

func adjustBrightness(b *PixelBuffer, factor float64) {
	blend(b, func(int) float64 { return 0 }, factor)
}

func adjustContrast(b *PixelBuffer, factor float64) {
	mean := math.Floor(meanLuma(b) + 0.5)
	blend(b, func(int) float64 { return mean }, factor)
}

// adjustSharpness blends against a smoothed copy. Border pixels have no
// full neighbourhood and are left as they are.
func adjustSharpness(b *PixelBuffer, factor float64) {
	if b.Width < 3 || b.Height < 3 {
		return
	}

	smooth := imaging.Convolve3x3(b.NRGBA(), smoothKernel, &imaging.ConvolveOptions{Normalize: true})

	blend(b, func(i int) float64 {
		px := i / Channels
		x, y := px%b.Width, px/b.Width
		if x == 0 || y == 0 || x == b.Width-1 || y == b.Height-1 {
			return float64(b.Pix[i])
		}
		return float64(smooth.Pix[px*4+i%Channels])
	}, factor)
}

func meanLuma(b *PixelBuffer) float64 {
	n := b.Width * b.Height
	if n == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < len(b.Pix); i += Channels {
		sum += (299*float64(b.Pix[i]) + 587*float64(b.Pix[i+1]) + 114*float64(b.Pix[i+2])) / 1000
	}
	return sum / float64(n)
}
