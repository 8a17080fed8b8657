// Image difference metrics between the original and the current edit
package metrics

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strings"
)

// Metric defines the interface for difference metrics
type Metric interface {
	// Calculate computes the metric value
	Calculate(original, processed image.Image) (float64, error)

	// GetName returns the short label shown to the user
	GetName() string

	// Format renders a value of this metric
	Format(v float64) string
}

// Evaluator manages and calculates multiple metrics
type Evaluator struct {
	metrics map[string]Metric
}

// NewEvaluator creates an evaluator with MSE and PSNR registered
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}
	e.Register("mse", NewMSE())
	e.Register("psnr", NewPSNR())
	return e
}

// Register registers a metric
func (e *Evaluator) Register(name string, metric Metric) {
	e.metrics[name] = metric
}

// CalculateAll calculates all registered metrics, skipping failures
func (e *Evaluator) CalculateAll(original, processed image.Image) map[string]float64 {
	results := make(map[string]float64)
	for name, metric := range e.metrics {
		if value, err := metric.Calculate(original, processed); err == nil {
			results[name] = value
		}
	}
	return results
}

// Names returns the registered metric names in sorted order
func (e *Evaluator) Names() []string {
	names := make([]string, 0, len(e.metrics))
	for name := range e.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summary renders every metric that could be computed, in name order,
// e.g. "MSE: 12.50, PSNR: 37.16 dB".
func (e *Evaluator) Summary(original, processed image.Image) string {
	results := e.CalculateAll(original, processed)

	parts := make([]string, 0, len(results))
	for _, name := range e.Names() {
		v, ok := results[name]
		if !ok {
			continue
		}
		m := e.metrics[name]
		parts = append(parts, m.GetName()+": "+m.Format(v))
	}
	return strings.Join(parts, ", ")
}

// MSE is the mean squared error over the R, G and B channels (8-bit scale).
// A grayscale image is compared as if R = G = B.
type MSE struct{}

func NewMSE() *MSE { return &MSE{} }

func (m *MSE) GetName() string { return "MSE" }

func (m *MSE) Format(v float64) string { return fmt.Sprintf("%.2f", v) }

func (m *MSE) Calculate(original, processed image.Image) (float64, error) {
	ob, pb := original.Bounds(), processed.Bounds()
	if ob.Dx() != pb.Dx() || ob.Dy() != pb.Dy() {
		return 0, fmt.Errorf("size mismatch: %dx%d vs %dx%d", ob.Dx(), ob.Dy(), pb.Dx(), pb.Dy())
	}
	if ob.Empty() {
		return 0, fmt.Errorf("image is empty")
	}

	var sum float64
	for y := 0; y < ob.Dy(); y++ {
		for x := 0; x < ob.Dx(); x++ {
			a := color.NRGBAModel.Convert(original.At(ob.Min.X+x, ob.Min.Y+y)).(color.NRGBA)
			b := color.NRGBAModel.Convert(processed.At(pb.Min.X+x, pb.Min.Y+y)).(color.NRGBA)
			sum += sq(a.R, b.R) + sq(a.G, b.G) + sq(a.B, b.B)
		}
	}

	return sum / float64(3*ob.Dx()*ob.Dy()), nil
}

func sq(a, b uint8) float64 {
	d := float64(a) - float64(b)
	return d * d
}

// PSNR is the peak signal-to-noise ratio in dB. Identical images give +Inf.
type PSNR struct {
	mse MSE
}

func NewPSNR() *PSNR { return &PSNR{} }

func (p *PSNR) GetName() string { return "PSNR" }

func (p *PSNR) Format(v float64) string {
	if math.IsInf(v, 1) {
		return "identical"
	}
	return fmt.Sprintf("%.2f dB", v)
}

func (p *PSNR) Calculate(original, processed image.Image) (float64, error) {
	mse, err := p.mse.Calculate(original, processed)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(255*255/mse), nil
}
