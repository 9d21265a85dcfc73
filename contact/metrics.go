package contact

import (
	"math"

	"hexcontact/surface"
)

// Metrics summarizes a Result against its A-side patch (§4.3.5).
type Metrics struct {
	TotalArea      float64
	PairedArea     float64
	UnpairedArea   float64
	AvgDistance    float64
	StdDevDistance float64
	MinDistance    float64
	MaxDistance    float64
	AvgNormalAngle float64
}

// ComputeMetrics derives area-weighted and unweighted statistics over a
// detection result and the A-side patch it was computed against.
func ComputeMetrics(result Result, a surface.Patch) Metrics {
	var m Metrics
	for _, area := range a.FaceAreas {
		m.TotalArea += area
	}

	if len(result.Pairs) == 0 {
		m.UnpairedArea = m.TotalArea
		return m
	}

	for _, p := range result.Pairs {
		m.PairedArea += a.FaceAreas[p.FaceA]
	}
	m.UnpairedArea = m.TotalArea - m.PairedArea

	var weightedSum, weightSum, angleSum float64
	m.MinDistance = result.Pairs[0].Distance
	m.MaxDistance = result.Pairs[0].Distance
	for _, p := range result.Pairs {
		w := a.FaceAreas[p.FaceA]
		weightedSum += w * p.Distance
		weightSum += w
		angleSum += p.NormalAngle
		if p.Distance < m.MinDistance {
			m.MinDistance = p.Distance
		}
		if p.Distance > m.MaxDistance {
			m.MaxDistance = p.Distance
		}
	}
	if weightSum > 0 {
		m.AvgDistance = weightedSum / weightSum
	}

	var varianceSum float64
	for _, p := range result.Pairs {
		w := a.FaceAreas[p.FaceA]
		diff := p.Distance - m.AvgDistance
		varianceSum += w * diff * diff
	}
	if weightSum > 0 {
		m.StdDevDistance = math.Sqrt(varianceSum / weightSum)
	}

	m.AvgNormalAngle = angleSum / float64(len(result.Pairs))
	return m
}
