package analytics

import (
	"fmt"
	"math"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// MinCorrelationPairs is the smallest paired-observation count a Pearson
// coefficient is reported for.
const MinCorrelationPairs = 3

// Correlate computes the Pearson correlation between two named metrics.
// Only sessions carrying both metrics contribute (paired deletion, no
// imputation). Fails with domain.ErrInsufficientData below
// MinCorrelationPairs pairs and with domain.ErrZeroVariance when either
// metric is constant across the pairs.
func Correlate(sessions []domain.SleepSession, metricX, metricY string) (*domain.CorrelationResult, error) {
	defX, err := lookupMetric(metricX)
	if err != nil {
		return nil, err
	}
	defY, err := lookupMetric(metricY)
	if err != nil {
		return nil, err
	}

	xs, ys := pairedValues(sessions, defX, defY)
	r, err := pearson(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("%s vs %s: %w", metricX, metricY, err)
	}

	return &domain.CorrelationResult{
		MetricX:     metricX,
		MetricY:     metricY,
		LabelX:      defX.label,
		LabelY:      defY.label,
		Coefficient: r,
		Pairs:       len(xs),
	}, nil
}

// Matrix computes the pairwise coefficient grid for a metric list. Cells
// that cannot be computed (too few pairs, zero variance) come back nil
// rather than failing the whole grid.
func Matrix(sessions []domain.SleepSession, metrics []string) (*domain.CorrelationMatrix, error) {
	if len(metrics) < 2 {
		return nil, fmt.Errorf("%w: a correlation matrix needs at least two metrics", domain.ErrInvalidInput)
	}

	defs := make([]metricDef, len(metrics))
	labels := make([]string, len(metrics))
	for i, name := range metrics {
		def, err := lookupMetric(name)
		if err != nil {
			return nil, err
		}
		defs[i] = def
		labels[i] = def.label
	}

	out := &domain.CorrelationMatrix{
		Metrics:      append([]string(nil), metrics...),
		Labels:       labels,
		Coefficients: make([][]*float64, len(metrics)),
		Pairs:        make([][]int, len(metrics)),
	}

	for i := range metrics {
		out.Coefficients[i] = make([]*float64, len(metrics))
		out.Pairs[i] = make([]int, len(metrics))
		for j := range metrics {
			xs, ys := pairedValues(sessions, defs[i], defs[j])
			out.Pairs[i][j] = len(xs)
			if r, err := pearson(xs, ys); err == nil {
				v := r
				out.Coefficients[i][j] = &v
			}
		}
	}
	return out, nil
}

// pairedValues extracts the observations where both metrics are present,
// keeping the pairs aligned.
func pairedValues(sessions []domain.SleepSession, defX, defY metricDef) ([]float64, []float64) {
	xs := make([]float64, 0, len(sessions))
	ys := make([]float64, 0, len(sessions))
	for i := range sessions {
		x, okX := defX.extract(&sessions[i])
		y, okY := defY.extract(&sessions[i])
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

// pearson computes the sample Pearson correlation coefficient, rounded to
// four decimals and clamped to [-1, 1] against float drift.
func pearson(xs, ys []float64) (float64, error) {
	n := len(xs)
	if n < MinCorrelationPairs {
		return 0, fmt.Errorf("%w: %d paired observations, need %d",
			domain.ErrInsufficientData, n, MinCorrelationPairs)
	}

	meanX := mean(xs)
	meanY := mean(ys)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, domain.ErrZeroVariance
	}

	r := cov / math.Sqrt(varX*varY)
	r = math.Round(r*10000) / 10000
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r, nil
}
