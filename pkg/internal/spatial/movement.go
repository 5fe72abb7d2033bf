package spatial

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
)

// Sweep rotates every stereo frame of w in place along the movement trajectory.
//
// Frame i sits at t = i*(n/fs)/(n-1) on the path; the path's (x, y, z) value is used as
// extrinsic x-y-z Euler angles. The frame (L, R) is lifted to (L, R, 0), rotated by Rz·Ry·Rx
// and projected back onto its first two axes. Rotation coefficients are computed for a block
// of frames at a time and applied as vector operations.
func Sweep(w types.Waveform, m types.Movement, blockSize int) error {
	if err := validateMovement(m); err != nil {
		return err
	}
	if w.NumChannels() != 2 {
		return fmt.Errorf("spatial: sweep needs stereo input, got %d channels", w.NumChannels())
	}
	n := w.Len()
	if n == 0 {
		return nil
	}
	if blockSize <= 0 {
		blockSize = defaultBlockSize
	}

	var scale float64
	if n > 1 {
		scale = float64(n) / float64(w.SampleRate) / float64(n-1)
	}

	b := newRotationBlock(blockSize)
	for start := 0; start < n; start += blockSize {
		end := start + blockSize
		if end > n {
			end = n
		}
		b.compute(m, start, end-start, scale)
		b.apply(w.Channels[0][start:end], w.Channels[1][start:end])
	}
	return nil
}

// rotationBlock holds the upper-left 2x2 of the rotation matrix for a run of frames.
type rotationBlock struct {
	r00, r01, r10, r11 []float64
	ca, sa, cb, sb     []float64
	cc, sc             []float64
	tmp, left, right   []float64
}

func newRotationBlock(size int) *rotationBlock {
	alloc := func() []float64 { return make([]float64, size) }
	return &rotationBlock{
		r00: alloc(), r01: alloc(), r10: alloc(), r11: alloc(),
		ca: alloc(), sa: alloc(), cb: alloc(), sb: alloc(),
		cc: alloc(), sc: alloc(),
		tmp: alloc(), left: alloc(), right: alloc(),
	}
}

func (b *rotationBlock) compute(m types.Movement, offset, size int, scale float64) {
	ca, sa, cb, sb, cc, sc := b.ca[:size], b.sa[:size], b.cb[:size], b.sb[:size], b.cc[:size], b.sc[:size]
	for i := 0; i < size; i++ {
		t := float64(offset+i) * scale
		theta := 2 * math.Pi * m.Speed * t
		var x, y, z float64
		switch m.Pattern {
		case types.SpiralMovement:
			x, y, z = t*math.Cos(theta), t*math.Sin(theta), t
		default:
			x, y = math.Cos(theta), math.Sin(theta)
		}
		sa[i], ca[i] = math.Sincos(x)
		sb[i], cb[i] = math.Sincos(y)
		sc[i], cc[i] = math.Sincos(z)
	}

	r00, r01, r10, r11, tmp := b.r00[:size], b.r01[:size], b.r10[:size], b.r11[:size], b.tmp[:size]

	floats.MulTo(r00, cc, cb)

	floats.MulTo(r01, sb, sa)
	floats.Mul(r01, cc)
	floats.MulTo(tmp, sc, ca)
	floats.Sub(r01, tmp)

	floats.MulTo(r10, sc, cb)

	floats.MulTo(r11, sb, sa)
	floats.Mul(r11, sc)
	floats.MulTo(tmp, cc, ca)
	floats.Add(r11, tmp)
}

func (b *rotationBlock) apply(l, r []float64) {
	size := len(l)
	nl, nr, tmp := b.left[:size], b.right[:size], b.tmp[:size]

	floats.MulTo(nl, b.r00[:size], l)
	floats.MulTo(tmp, b.r01[:size], r)
	floats.Add(nl, tmp)

	floats.MulTo(nr, b.r10[:size], l)
	floats.MulTo(tmp, b.r11[:size], r)
	floats.Add(nr, tmp)

	copy(l, nl)
	copy(r, nr)
}
