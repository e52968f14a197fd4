package pathgeom

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PathSample answers arc-length queries over a polyline. All per-segment
// state is computed once at construction; a PathSample is read-only
// afterwards and safe for concurrent use.
type PathSample struct {
	points []Point
	norms  []float64
	unit   []Vec3
	cum    []float64

	// Length is the total arc length of the polyline.
	Length float64
}

// NewPathSample precomputes segment lengths, unit directions, and
// cumulative arc length for points. The polyline needs at least two
// points to be sampled.
func NewPathSample(points []Point) *PathSample {
	n := len(points) - 1
	if n < 0 {
		n = 0
	}
	ps := &PathSample{
		points: points,
		norms:  make([]float64, n),
		unit:   make([]Vec3, n),
		cum:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		v := points[i+1].Sub(points[i])
		ps.norms[i] = v.Hypot()
		// degenerate segments keep a zero direction instead of
		// dividing by a near-zero length
		if ps.norms[i] > Tol.Zero {
			ps.unit[i] = v.Mul(1 / ps.norms[i])
		}
		ps.Length += ps.norms[i]
		ps.cum[i] = ps.Length
	}
	return ps
}

// Sample returns the point at each queried arc-length distance, in input
// order. Distances at or beyond the total length extrapolate along the
// final segment's direction.
func (ps *PathSample) Sample(distances []float64) []Point {
	resampled := make([]Point, len(distances))
	for i, d := range distances {
		pos := sort.SearchFloat64s(ps.cum, d)
		if pos > len(ps.unit)-1 {
			pos = len(ps.unit) - 1
		}
		var offset float64
		if pos > 0 {
			offset = ps.cum[pos-1]
		}
		// parametric equation for a line
		resampled[i] = ps.points[pos].Translate(ps.unit[pos].Mul(d - offset))
	}
	return resampled
}

// Truncate returns the polyline cut at the given arc-length distance. At
// most one vertex is synthesized, at the exact cut; when the cut falls
// within [Tol.Merge] of an existing vertex that vertex is kept instead.
func (ps *PathSample) Truncate(distance float64) []Point {
	position := sort.SearchFloat64s(ps.cum, distance)
	if position > len(ps.norms)-1 {
		position = len(ps.norms) - 1
	}
	var offset float64
	if position > 0 {
		offset = ps.cum[position-1]
	}
	offset = distance - offset

	var truncated []Point
	if offset < Tol.Merge {
		truncated = append(truncated, ps.points[:position+1]...)
	} else {
		endpoint := ps.points[position].Translate(
			Unitize(ps.points[position+1].Sub(ps.points[position])).Mul(offset))
		truncated = append(truncated, ps.points[:position+1]...)
		truncated = append(truncated, endpoint)
	}

	if d := math.Abs(PolylineLength(truncated) - distance); d > Tol.Merge {
		logger.Warn("truncated length deviates from requested distance",
			zap.Float64("distance", distance),
			zap.Float64("deviation", d))
	}
	return truncated
}

// Resample redistributes the points of a polyline at constant arc-length
// intervals. Exactly one of count and step may be set (non-zero): count
// produces that many evenly spaced points from the start through the
// endpoint, step walks the polyline at that physical spacing, not
// necessarily reaching the endpoint.
//
// With stepRound, a step query is rounded to the equivalent count so the
// spacing shrinks to ≤ step and the endpoint is hit exactly; a step at or
// beyond the total length short-circuits to the first and last input
// points.
//
// The original interior vertices are not preserved, so corners may be
// clipped.
func Resample(points []Point, count int, step float64, stepRound bool) ([]Point, error) {
	if (count > 0) == (step > 0) {
		return nil, ErrResampleArgs
	}
	if len(points) < 2 {
		return nil, errors.Errorf("pathgeom: resample needs at least 2 points, got %d", len(points))
	}

	sampler := NewPathSample(points)
	if step > 0 && stepRound {
		if step >= sampler.Length {
			return []Point{points[0], points[len(points)-1]}, nil
		}
		// count-1 intervals must each be no longer than step
		count = int(math.Ceil(sampler.Length/step)) + 1
		step = 0
	}

	var samples []float64
	if count > 0 {
		samples = make([]float64, count)
		for i := range samples {
			if count > 1 {
				samples[i] = sampler.Length * float64(i) / float64(count-1)
			}
		}
	} else {
		n := int(math.Ceil(sampler.Length / step))
		for i := 0; i < n; i++ {
			if d := float64(i) * step; d < sampler.Length {
				samples = append(samples, d)
			}
		}
	}
	resampled := sampler.Sample(samples)

	if len(resampled) > 0 {
		if d := resampled[0].Distance(points[0]); d > Tol.Merge {
			logger.Warn("resampled start deviates from input start",
				zap.Float64("deviation", d))
		}
		if count > 0 {
			if d := resampled[len(resampled)-1].Distance(points[len(points)-1]); d > Tol.Merge {
				logger.Warn("resampled end deviates from input end",
					zap.Float64("deviation", d))
			}
		}
	}
	return resampled, nil
}
