package room

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/spatial/r3"
)

const minDistance = 1e-6

// image is one mirrored copy of a source and the number of wall reflections that produced it.
type image struct {
	pos    r3.Vec
	bounce int
}

// images enumerates every image of src up to the configured reflection order. Along each axis
// the image coordinate is (1-2q)s + 2nL with |2n-q| reflections.
func (r *Room) images(src r3.Vec) []image {
	order := r.cfg.MaxOrder
	span := order/2 + 1
	d := r.cfg.Dimensions

	type axisImage struct {
		coord  float64
		bounce int
	}
	axis := func(s, l float64) []axisImage {
		var out []axisImage
		for n := -span; n <= span; n++ {
			for q := 0; q <= 1; q++ {
				b := abs(2*n - q)
				if b > order {
					continue
				}
				out = append(out, axisImage{coord: float64(1-2*q)*s + 2*float64(n)*l, bounce: b})
			}
		}
		return out
	}

	var out []image
	for _, ix := range axis(src.X, d.X) {
		for _, iy := range axis(src.Y, d.Y) {
			if ix.bounce+iy.bounce > order {
				continue
			}
			for _, iz := range axis(src.Z, d.Z) {
				b := ix.bounce + iy.bounce + iz.bounce
				if b > order {
					continue
				}
				out = append(out, image{pos: r3.Vec{X: ix.coord, Y: iy.coord, Z: iz.coord}, bounce: b})
			}
		}
	}
	return out
}

// impulseResponse sums the delayed, attenuated contribution of every image at mic. Each
// contribution is a Hann-windowed sinc centred on its fractional delay, which adds a fixed
// latency of half the filter length.
func (r *Room) impulseResponse(src, mic r3.Vec) ([]float64, error) {
	imgs := r.images(src)
	taps := r.cfg.FractionalLen
	half := (taps - 1) / 2
	hann := window.Hann(taps)
	fs := float64(r.sampleRate)

	type arrival struct {
		delay float64
		gain  float64
	}
	arrivals := make([]arrival, 0, len(imgs))
	maxDelay := 0.0
	for _, img := range imgs {
		dist := r3.Norm(r3.Sub(img.pos, mic))
		if dist < minDistance {
			return nil, fmt.Errorf("%w: distance %g m", ErrCoincident, dist)
		}
		delay := dist / r.cfg.SoundSpeed * fs
		gain := math.Pow(r.beta, float64(img.bounce)) / (4 * math.Pi * dist)
		arrivals = append(arrivals, arrival{delay: delay, gain: gain})
		maxDelay = math.Max(maxDelay, delay)
	}

	rir := make([]float64, int(math.Floor(maxDelay))+taps)
	for _, a := range arrivals {
		whole := math.Floor(a.delay)
		frac := a.delay - whole
		base := int(whole)
		for j := 0; j < taps; j++ {
			rir[base+j] += a.gain * sinc(float64(j-half)-frac) * hann[j]
		}
	}
	return rir, nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
