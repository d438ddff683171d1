// Package analysis provides frequency analysis of solved trajectories.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of a power-of-two
// length series (radix-2 Cooley-Tukey).
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the magnitude of the first half of the DFT,
// truncating the input to the largest power-of-two prefix and
// removing the mean so the DC bin does not swamp the oscillation.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	n := 1
	for n*2 <= len(data) {
		n *= 2
	}
	trimmed := make([]float64, n)

	mean := 0.0
	for _, v := range data[:n] {
		mean += v
	}
	mean /= float64(n)
	for i := 0; i < n; i++ {
		trimmed[i] = data[i] - mean
	}

	fft := FFT(trimmed)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// DominantPeriod estimates the strongest oscillation period of a
// uniformly sampled series with sample spacing dt.
func DominantPeriod(data []float64, dt float64) (float64, error) {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, fmt.Errorf("series too short for spectrum (%d samples)", len(data))
	}

	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if ps[peak] == 0 {
		return 0, fmt.Errorf("flat series has no dominant period")
	}

	n := len(ps) * 2
	return float64(n) * dt / float64(peak), nil
}
