// SPDX-License-Identifier: MIT
// Package: lvlsig/wavelet

package wavelet

import "math"

// Daubechies-4 analysis filter taps, (1±√3)/(4√2) and (3±√3)/(4√2).
const (
	daubC0 = 0.4829629131445341
	daubC1 = 0.8365163037378079
	daubC2 = 0.2241438680420134
	daubC3 = -0.1294095225512604
)

// Daubechies runs the orthogonal Daubechies-4 pyramid. The only state
// is a pair of scratch buffers reused across calls, which makes a
// *Daubechies cheap to call in a loop but unsafe to share between
// goroutines without external locking.
type Daubechies struct {
	scratch []float64 // per-stage shuffle buffer
	work    []float64 // private copy used by the parent-band statistics
}

// NewDaubechies returns a transformer with empty scratch buffers; they
// grow on first use to the largest series processed.
func NewDaubechies() *Daubechies {
	return &Daubechies{}
}

// Forward decomposes data in place through level cascaded analysis
// stages. After it returns, data[:len(data)>>level] holds the smooth
// (parent) band and the remainder holds the detail bands, coarsest
// last.
//
// Errors:
//   - ErrLevel if level < 1.
//   - ErrShortSeries if len(data) < 2^(level+1).
//   - ErrUnevenLength if len(data) is not divisible by 2^level.
func (d *Daubechies) Forward(data []float64, level int) error {
	if err := checkPyramid(len(data), level); err != nil {
		return err
	}
	d.growScratch(len(data))
	for nn := len(data); level > 0; level-- {
		d.forwardStage(data, nn)
		nn /= 2
	}
	return nil
}

// Inverse reconstructs data in place from a forward decomposition at
// the same level. Inverse(Forward(x, L), L) restores x to floating
// point precision.
//
// Errors: same conditions as Forward.
func (d *Daubechies) Inverse(data []float64, level int) error {
	if err := checkPyramid(len(data), level); err != nil {
		return err
	}
	d.growScratch(len(data))
	for nn := len(data) >> (level - 1); nn <= len(data); nn *= 2 {
		d.inverseStage(data, nn)
	}
	return nil
}

// forwardStage applies one analysis pass over data[:nn], writing the
// smooth half followed by the detail half. The final output pair wraps
// around, coupling the last two samples with the first two.
func (d *Daubechies) forwardStage(data []float64, nn int) {
	half := nn / 2
	i := 0
	for j := 0; j+3 < nn; j += 2 {
		d.scratch[i] = daubC0*data[j] + daubC1*data[j+1] + daubC2*data[j+2] + daubC3*data[j+3]
		d.scratch[i+half] = daubC3*data[j] - daubC2*data[j+1] + daubC1*data[j+2] - daubC0*data[j+3]
		i++
	}
	d.scratch[i] = daubC0*data[nn-2] + daubC1*data[nn-1] + daubC2*data[0] + daubC3*data[1]
	d.scratch[i+half] = daubC3*data[nn-2] - daubC2*data[nn-1] + daubC1*data[0] - daubC0*data[1]
	copy(data[:nn], d.scratch[:nn])
}

// inverseStage applies one synthesis pass over data[:nn], interleaving
// the smooth and detail halves back into time order. The first output
// pair wraps around, mirroring forwardStage.
func (d *Daubechies) inverseStage(data []float64, nn int) {
	half := nn / 2
	d.scratch[0] = daubC2*data[half-1] + daubC1*data[nn-1] + daubC0*data[0] + daubC3*data[half]
	d.scratch[1] = daubC3*data[half-1] - daubC0*data[nn-1] + daubC1*data[0] - daubC2*data[half]
	i := 2
	for j := 0; j < half-1; j++ {
		d.scratch[i] = daubC2*data[j] + daubC1*data[j+half] + daubC0*data[j+1] + daubC3*data[j+half+1]
		d.scratch[i+1] = daubC3*data[j] - daubC0*data[j+half] + daubC1*data[j+1] - daubC2*data[j+half+1]
		i += 2
	}
	copy(data[:nn], d.scratch[:nn])
}

// Mean returns the mean of the parent coefficients of x at level.
// x is left untouched; the decomposition runs on a private copy.
func (d *Daubechies) Mean(x []float64, level int) (float64, error) {
	p, err := d.parents(x, level)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range p {
		sum += v
	}
	return sum / float64(len(p)), nil
}

// Min returns the smallest parent coefficient of x at level.
func (d *Daubechies) Min(x []float64, level int) (float64, error) {
	p, err := d.parents(x, level)
	if err != nil {
		return 0, err
	}
	m := p[0]
	for _, v := range p[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

// Max returns the largest parent coefficient of x at level.
func (d *Daubechies) Max(x []float64, level int) (float64, error) {
	p, err := d.parents(x, level)
	if err != nil {
		return 0, err
	}
	m := p[0]
	for _, v := range p[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// Std returns the population standard deviation of the parent
// coefficients of x at level.
func (d *Daubechies) Std(x []float64, level int) (float64, error) {
	p, err := d.parents(x, level)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range p {
		sum += v
	}
	mean := sum / float64(len(p))
	var ss float64
	for _, v := range p {
		dv := v - mean
		ss += dv * dv
	}
	return math.Sqrt(ss / float64(len(p))), nil
}

// Energy returns the mean of squares of the parent coefficients of x
// at level.
func (d *Daubechies) Energy(x []float64, level int) (float64, error) {
	p, err := d.parents(x, level)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range p {
		sum += v * v
	}
	return sum / float64(len(p)), nil
}

// NLEnergy returns the Teager non-linear energy of the parent band,
// the sum of |p[i]^2 - p[i-1]*p[i+1]| over its interior points.
func (d *Daubechies) NLEnergy(x []float64, level int) (float64, error) {
	p, err := d.parents(x, level)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 1; i < len(p)-1; i++ {
		sum += math.Abs(p[i]*p[i] - p[i-1]*p[i+1])
	}
	return sum, nil
}

// Curve returns the total variation of the parent band, the sum of
// |p[i] - p[i-1]|.
func (d *Daubechies) Curve(x []float64, level int) (float64, error) {
	p, err := d.parents(x, level)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 1; i < len(p); i++ {
		sum += math.Abs(p[i] - p[i-1])
	}
	return sum, nil
}

// parents copies x into the work buffer, decomposes the copy and
// returns a view of its smooth band. Each statistic runs its own
// decomposition rather than sharing one, keeping every call
// self-contained and side-effect-free on caller data.
func (d *Daubechies) parents(x []float64, level int) ([]float64, error) {
	if err := checkPyramid(len(x), level); err != nil {
		return nil, err
	}
	if cap(d.work) < len(x) {
		d.work = make([]float64, len(x))
	}
	d.work = d.work[:len(x)]
	copy(d.work, x)
	if err := d.Forward(d.work, level); err != nil {
		return nil, err
	}
	return d.work[:len(x)>>level], nil
}

// checkPyramid validates the shared level/length preconditions of the
// pyramid operations.
func checkPyramid(n, level int) error {
	if level < 1 {
		return ErrLevel
	}
	if n < 1<<(level+1) {
		return ErrShortSeries
	}
	if n%(1<<level) != 0 {
		return ErrUnevenLength
	}
	return nil
}

// growScratch ensures the stage buffer can hold n samples.
func (d *Daubechies) growScratch(n int) {
	if cap(d.scratch) < n {
		d.scratch = make([]float64, n)
	}
	d.scratch = d.scratch[:n]
}
