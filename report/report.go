// Package report renders human-readable console summaries of a contact
// result and its derived metrics — a supplementary collaborator, not part
// of the core, grounded on original_source's print_summary routines and
// rendered with gosl/io's colored Pf helpers the way main.go banners its
// run header.
package report

import (
	"github.com/cpmech/gosl/io"

	"hexcontact/contact"
)

const rule = "============================================================"

// WriteContactResult prints a CONTACT DETECTION RESULTS block: pair/unpaired
// counts, distance and angle statistics, and the criteria used.
func WriteContactResult(surfaceAName, surfaceBName string, result contact.Result, m contact.Metrics) {
	io.Pf("\n%s\n", rule)
	io.Pfcyan("CONTACT DETECTION RESULTS\n")
	io.Pf("%s\n\n", rule)
	io.Pf("  Surface A: %s\n", surfaceAName)
	io.Pf("  Surface B: %s\n\n", surfaceBName)
	io.Pf("  Contact Pairs: %d\n", len(result.Pairs))
	io.Pf("  Unpaired A:    %d\n", len(result.UnpairedA))
	io.Pf("  Unpaired B:    %d\n\n", len(result.UnpairedB))

	if len(result.Pairs) > 0 {
		io.Pf("  Distance Statistics:\n")
		io.Pf("    Average: %.6f\n", m.AvgDistance)
		io.Pf("    Min:     %.6f\n", m.MinDistance)
		io.Pf("    Max:     %.6f\n\n", m.MaxDistance)
		io.Pf("  Normal Angle Statistics:\n")
		io.Pf("    Average: %.2f deg\n\n", m.AvgNormalAngle)
	}

	io.Pf("  Criteria:\n")
	io.Pf("    Max Gap:         %.6f\n", result.Criteria.MaxGapDistance)
	io.Pf("    Max Penetration: %.6f\n", result.Criteria.MaxPenetration)
	io.Pf("    Max Angle:       %.2f deg\n", result.Criteria.MaxNormalAngle)
	io.Pf("    Search Mult.:    %.2f\n", result.Criteria.SearchRadiusMultiplier)
}

// WriteSurfaceMetrics prints a SURFACE METRICS block for the named surface.
func WriteSurfaceMetrics(surfaceName string, m contact.Metrics, numPairs, numUnpaired int) {
	io.Pf("\n%s\n", rule)
	io.Pfcyan("SURFACE METRICS: %s\n", surfaceName)
	io.Pf("%s\n\n", rule)

	pairedPct, unpairedPct := 0.0, 0.0
	if m.TotalArea > 0 {
		pairedPct = m.PairedArea / m.TotalArea * 100.0
		unpairedPct = m.UnpairedArea / m.TotalArea * 100.0
	}
	io.Pf("  Total Area:      %.6f\n", m.TotalArea)
	io.Pf("  Paired Area:     %.6f  (%.1f%%)\n", m.PairedArea, pairedPct)
	io.Pf("  Unpaired Area:   %.6f  (%.1f%%)\n\n", m.UnpairedArea, unpairedPct)
	io.Pf("  Contact Pairs:   %d\n", numPairs)
	io.Pf("  Unpaired Faces:  %d\n\n", numUnpaired)

	if numPairs > 0 {
		io.Pf("  Distance Statistics (area-weighted):\n")
		io.Pf("    Average:   %.6f\n", m.AvgDistance)
		io.Pf("    Std Dev:   %.6f\n", m.StdDevDistance)
		io.Pf("    Min:       %.6f\n", m.MinDistance)
		io.Pf("    Max:       %.6f\n\n", m.MaxDistance)
		io.Pf("  Normal Angle:\n")
		io.Pf("    Average:   %.2f deg\n\n", m.AvgNormalAngle)
	}
	io.Pf("%s\n", rule)
}
