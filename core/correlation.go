package core

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/apolabs/autoscope/core/agg"
	"github.com/apolabs/autoscope/schema"
)

// Correlation analysis constants.
const (
	minCorrelationPoints = 3
	trendThreshold       = 0.05 // |time correlation| below this is a stable trend
	keyFactorThreshold   = 0.7

	volumeSaturation = 10.0 // points beyond this saturate the volume score

	// Reliability blends interval consistency with volume adequacy;
	// confidence blends volume adequacy with reliability.
	wIntervalConsistency = 0.6
	wVolumeAdequacy      = 0.4

	degradedConfidence  = 0.3
	degradedReliability = 0.3
)

// HistoricalCorrelationEngine maintains a time-ordered series of past
// observations and correlates the automation score against its underlying
// factors. The series is the engine's only mutable state; a mutex
// serializes inserts against analysis so one instance can be shared across
// goroutines.
type HistoricalCorrelationEngine struct {
	mu     sync.Mutex
	points []schema.HistoricalDataPoint
	now    func() time.Time
}

// NewHistoricalCorrelationEngine creates an engine with an empty series.
func NewHistoricalCorrelationEngine() *HistoricalCorrelationEngine {
	return &HistoricalCorrelationEngine{now: time.Now}
}

// AddDataPoint appends an observation and re-sorts the series by timestamp
// ascending. Insertion order never affects analysis results.
func (e *HistoricalCorrelationEngine) AddDataPoint(point schema.HistoricalDataPoint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.points = append(e.points, point)
	sort.SliceStable(e.points, func(i, j int) bool {
		return e.points[i].Timestamp.Before(e.points[j].Timestamp)
	})
}

// Size returns the number of stored observations.
func (e *HistoricalCorrelationEngine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.points)
}

// AnalyzeCorrelation correlates the automation-score series against the
// three factor series over the trailing timeframeMonths window. Fewer than
// three points in the window is not an error: the result degrades to a
// fixed low-confidence shape with a stable trend.
func (e *HistoricalCorrelationEngine) AnalyzeCorrelation(tech *schema.Technology, timeframeMonths int) schema.CorrelationResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	window := e.windowPoints(timeframeMonths)
	if len(window) < minCorrelationPoints {
		return degradedResult(len(window))
	}

	scores := make([]float64, len(window))
	techImpact := make([]float64, len(window))
	adoption := make([]float64, len(window))
	market := make([]float64, len(window))
	timeIndex := make([]float64, len(window))
	for i, p := range window {
		scores[i] = p.AutomationScore
		techImpact[i] = p.TechnologyImpact
		adoption[i] = p.IndustryAdoption
		market[i] = p.MarketGrowth
		timeIndex[i] = float64(i)
	}

	factorCorrelations := map[string]float64{
		schema.FactorTechnologyImpact: pearson(scores, techImpact),
		schema.FactorIndustryAdoption: pearson(scores, adoption),
		schema.FactorMarketGrowth:     pearson(scores, market),
	}

	var absSum float64
	keyFactors := []string{}
	for _, name := range []string{
		schema.FactorTechnologyImpact,
		schema.FactorIndustryAdoption,
		schema.FactorMarketGrowth,
	} {
		r := factorCorrelations[name]
		absSum += math.Abs(r)
		if math.Abs(r) > keyFactorThreshold {
			keyFactors = append(keyFactors, name)
		}
	}

	volume := agg.Saturate(float64(len(window)), volumeSaturation)
	reliability := wIntervalConsistency*intervalConsistency(window) + wVolumeAdequacy*volume
	confidence := wIntervalConsistency*volume + wVolumeAdequacy*reliability

	return schema.CorrelationResult{
		CorrelationScore:   absSum / 3.0,
		FactorCorrelations: factorCorrelations,
		TrendDirection:     trendDirection(pearson(timeIndex, scores)),
		KeyFactors:         keyFactors,
		Reliability:        agg.Clamp01(reliability),
		Confidence:         agg.Clamp01(confidence),
		SampleSize:         len(window),
	}
}

// windowPoints returns the points within the trailing window. The caller
// must hold the mutex.
func (e *HistoricalCorrelationEngine) windowPoints(timeframeMonths int) []schema.HistoricalDataPoint {
	if timeframeMonths <= 0 {
		return nil
	}
	cutoff := e.now().AddDate(0, -timeframeMonths, 0)

	var window []schema.HistoricalDataPoint
	for _, p := range e.points {
		if !p.Timestamp.Before(cutoff) {
			window = append(window, p)
		}
	}
	return window
}

// degradedResult is the defined low-confidence output for thin windows.
func degradedResult(sampleSize int) schema.CorrelationResult {
	return schema.CorrelationResult{
		CorrelationScore:   0,
		FactorCorrelations: map[string]float64{},
		TrendDirection:     schema.TrendStable,
		KeyFactors:         []string{},
		Reliability:        degradedReliability,
		Confidence:         degradedConfidence,
		SampleSize:         sampleSize,
	}
}

// trendDirection classifies the time-index correlation of the score series.
func trendDirection(r float64) schema.TrendDirection {
	switch {
	case r > trendThreshold:
		return schema.TrendIncreasing
	case r < -trendThreshold:
		return schema.TrendDecreasing
	default:
		return schema.TrendStable
	}
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Zero variance in either series yields 0 rather than NaN.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}

	meanX := agg.Mean(xs)
	meanY := agg.Mean(ys)

	var cov, varX, varY float64
	for i := range n {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}

	r := cov / math.Sqrt(varX*varY)
	return math.Max(-1, math.Min(1, r))
}

// intervalConsistency measures how evenly spaced the observations are:
// 1 - stddev(dt)/mean(dt), clamped. Perfectly regular sampling scores 1.
func intervalConsistency(points []schema.HistoricalDataPoint) float64 {
	if len(points) < 2 {
		return 0
	}

	intervals := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		intervals = append(intervals, points[i].Timestamp.Sub(points[i-1].Timestamp).Hours())
	}

	mean := agg.Mean(intervals)
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, iv := range intervals {
		d := iv - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(intervals)))

	return agg.Clamp01(1 - stddev/mean)
}
