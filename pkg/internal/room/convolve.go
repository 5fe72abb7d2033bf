package room

import "github.com/mjibson/go-dsp/fft"

const minFFTSize = 4096

// Convolve returns the full linear convolution of x and h using overlap-add FFT blocks.
func Convolve(x, h []float64) []float64 {
	if len(x) == 0 || len(h) == 0 {
		return nil
	}
	out := make([]float64, len(x)+len(h)-1)

	nfft := nextPow2(4 * len(h))
	if nfft < minFFTSize {
		nfft = minFFTSize
	}
	block := nfft - len(h) + 1

	hp := make([]float64, nfft)
	copy(hp, h)
	H := fft.FFTReal(hp)

	seg := make([]float64, nfft)
	for start := 0; start < len(x); start += block {
		end := start + block
		if end > len(x) {
			end = len(x)
		}
		for i := range seg {
			seg[i] = 0
		}
		copy(seg, x[start:end])

		X := fft.FFTReal(seg)
		for k := range X {
			X[k] *= H[k]
		}
		y := fft.IFFT(X)

		for i := 0; i < nfft && start+i < len(out); i++ {
			out[start+i] += real(y[i])
		}
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
