// Command hexcontact drives the mesh/surface/contact pipeline from the
// command line: info, skin, contact, and analyze subcommands (supplementing
// a spec the distillation left out the front end for), built in the
// teacher's io.ArgTo*-positional-argument style rather than introducing a
// flag-parsing dependency no repo in the pack carries.
package main

import (
	"os"

	"github.com/cpmech/gosl/io"

	"hexcontact/config"
	"hexcontact/contact"
	"hexcontact/errs"
	"hexcontact/log"
	"hexcontact/mesh"
	"hexcontact/meshio"
	"hexcontact/report"
	"hexcontact/surface"
	"hexcontact/vtuwriter"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		io.PfWhite("\nhexcontact -- hexahedral mesh contact detection\n\n")
		io.Pf("usage: hexcontact <info|skin|contact|analyze> [args...]\n")
		return
	}

	cmd := os.Args[1]
	shiftArgs()

	switch cmd {
	case "info":
		cmdInfo()
	case "skin":
		cmdSkin()
	case "contact":
		cmdContact()
	case "analyze":
		cmdAnalyze()
	default:
		io.PfRed("ERROR: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

// shiftArgs drops the subcommand name from os.Args so io.ArgTo* positional
// helpers index from the subcommand's own argument list, same as main.go
// indexes from the program's.
func shiftArgs() {
	os.Args = append([]string{os.Args[0]}, os.Args[2:]...)
}

func cmdInfo() {
	mshfn, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)

	logger := &log.Console{Verbose: verbose}
	m := mustReadMesh(mshfn)

	io.Pf("\n%v\n", io.ArgsTable(
		"mesh filename", "mshfn", mshfn,
	))
	lo, hi := m.BoundingBox()
	io.Pf("  Nodes:    %d\n", len(m.Nodes))
	io.Pf("  Elements: %d\n", len(m.Elements))
	io.Pf("  Blocks:   %d\n", len(m.Blocks))
	io.Pf("  Bounds:   (%.6f, %.6f, %.6f) -- (%.6f, %.6f, %.6f)\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	for name, idxs := range m.Blocks {
		io.Pf("    %-20s %d elements\n", name, len(idxs))
	}

	patches := mustExtractSurface(m, logger)
	io.Pf("  Surface patches: %d\n", len(patches))
	for _, p := range patches {
		io.Pf("    %-20s %d faces, area=%.6f\n", p.PartName, len(p.Faces), patchArea(p))
	}
}

func cmdSkin() {
	mshfn, _ := io.ArgToFilename(0, "", ".json", true)
	outfn := io.ArgToString(1, "surface")
	part := io.ArgToString(2, "")
	verbose := io.ArgToBool(3, true)

	logger := &log.Console{Verbose: verbose}
	m := mustReadMesh(mshfn)
	patches := mustExtractSurface(m, logger)

	for i, p := range patches {
		if part != "" && !hasPrefix(p.PartName, part+":") {
			continue
		}
		key := io.Sf("%s_%d", outfn, i)
		if err := vtuwriter.WritePatch("", key, p, nil); err != nil {
			io.PfRed("cannot write patch %q:\n%v\n", p.PartName, err)
			os.Exit(1)
		}
		io.Pf("wrote %s.vtu (%s, %d faces)\n", key, p.PartName, len(p.Faces))
	}
}

func cmdContact() {
	mshfn, _ := io.ArgToFilename(0, "", ".json", true)
	partA := io.ArgToString(1, "")
	partB := io.ArgToString(2, "")
	maxGap := io.ArgToFloat(3, 0.005)
	maxPenetration := io.ArgToFloat(4, 0.001)
	maxAngle := io.ArgToFloat(5, 45.0)
	outfn := io.ArgToString(6, "contact")

	logger := &log.Console{Verbose: true}
	m := mustReadMesh(mshfn)

	criteria := contact.Criteria{
		MaxGapDistance:         maxGap,
		MaxPenetration:         maxPenetration,
		MaxNormalAngle:         maxAngle,
		SearchRadiusMultiplier: 2.0,
	}

	a, result, metrics := runContactPair(m, partA, partB, criteria, logger)
	report.WriteContactResult(partA, partB, result, metrics)

	if err := vtuwriter.WritePatch("", outfn, a, &result); err != nil {
		io.PfRed("cannot write result:\n%v\n", err)
		os.Exit(1)
	}
	io.Pf("wrote %s.vtu\n", outfn)
}

func cmdAnalyze() {
	mshfn, _ := io.ArgToFilename(0, "", ".json", true)
	pairsStr := io.ArgToString(1, "")
	outdir := io.ArgToString(2, "output")
	cfgfn := io.ArgToString(3, "")

	logger := &log.Console{Verbose: true}
	m := mustReadMesh(mshfn)

	var cfg config.AnalysisConfig
	var err error
	if cfgfn != "" {
		cfg, err = config.ReadFile("", cfgfn)
	} else {
		cfg, err = config.ParsePairsShorthand(mshfn, outdir, pairsStr, contact.DefaultCriteria())
	}
	if err != nil {
		io.PfRed("cannot build analysis config:\n%v\n", err)
		os.Exit(1)
	}

	for i, pair := range cfg.ContactPairs {
		a, result, metrics := runContactPair(m, pair.SurfaceA, pair.SurfaceB, pair.Criteria, logger)
		report.WriteContactResult(pair.SurfaceA, pair.SurfaceB, result, metrics)

		key := pair.OutputFile
		if key == "" {
			key = io.Sf("%s/pair_%d", outdir, i)
		}
		if err := vtuwriter.WritePatch("", key, a, &result); err != nil {
			io.PfRed("cannot write pair %d:\n%v\n", i, err)
		}
	}
}

// runContactPair extracts both named blocks' surfaces from m, flattens each
// block's patches into a single combined patch, and matches A against B
// under criteria.
func runContactPair(m mesh.Mesh, partA, partB string, criteria contact.Criteria, logger log.Logger) (surface.Patch, contact.Result, contact.Metrics) {
	patches := mustExtractSurface(m, logger)

	a, err := mergeBlockPatch(patches, partA)
	if err != nil {
		io.PfRed("cannot assemble surface %q:\n%v\n", partA, err)
		os.Exit(1)
	}
	b, err := mergeBlockPatch(patches, partB)
	if err != nil {
		io.PfRed("cannot assemble surface %q:\n%v\n", partB, err)
		os.Exit(1)
	}

	result, err := contact.DetectContactPairs(a, b, criteria, logger)
	if err != nil {
		io.PfRed("contact detection failed:\n%v\n", err)
		os.Exit(1)
	}
	metrics := contact.ComputeMetrics(result, a)
	return a, result, metrics
}

// mergeBlockPatch concatenates every locally-planar patch belonging to
// block into one combined patch named after the block, so a multi-patch
// boundary can still be matched as a single surface.
func mergeBlockPatch(patches []surface.Patch, block string) (surface.Patch, error) {
	merged := surface.Patch{PartName: block}
	found := false
	for _, p := range patches {
		if !hasPrefix(p.PartName, block+":") {
			continue
		}
		found = true
		merged.Faces = append(merged.Faces, p.Faces...)
		merged.FaceNormals = append(merged.FaceNormals, p.FaceNormals...)
		merged.FaceCentroids = append(merged.FaceCentroids, p.FaceCentroids...)
		merged.FaceAreas = append(merged.FaceAreas, p.FaceAreas...)
		merged.Nodes = p.Nodes
	}
	if !found {
		return surface.Patch{}, errs.New(errs.ElementBlockNotFound, "no surface patches found for block %q", block)
	}
	return merged, nil
}

func mustReadMesh(fn string) mesh.Mesh {
	m, err := meshio.Read("", fn)
	if err != nil {
		io.PfRed("cannot read mesh:\n%v\n", err)
		os.Exit(1)
	}
	return m
}

func mustExtractSurface(m mesh.Mesh, logger log.Logger) []surface.Patch {
	patches, err := surface.ExtractSurface(m, logger)
	if err != nil {
		io.PfRed("cannot extract surface:\n%v\n", err)
		os.Exit(1)
	}
	return patches
}

func patchArea(p surface.Patch) float64 {
	var total float64
	for _, a := range p.FaceAreas {
		total += a
	}
	return total
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
