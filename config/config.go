// Package config implements the batch analysis configuration surface: a
// JSON file naming an input mesh, an output directory, and the contact
// pairs to run, each optionally overriding the default criteria. It
// follows inp's Data/SetDefault/PostProcess convention of a plain
// JSON-tagged struct plus a defaulting pass run after decode.
package config

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cpmech/gosl/io"

	"hexcontact/contact"
	"hexcontact/errs"
)

// ContactPairConfig names one contact pair and its (optionally overridden)
// criteria.
type ContactPairConfig struct {
	SurfaceA   string           `json:"surface_a"`
	SurfaceB   string           `json:"surface_b"`
	Criteria   contact.Criteria `json:"criteria"`
	OutputFile string           `json:"output_file"`
}

// AnalysisConfig is the top-level batch-run configuration.
type AnalysisConfig struct {
	InputFile       string              `json:"input_file"`
	OutputDir       string              `json:"output_dir"`
	ContactPairs    []ContactPairConfig `json:"contact_pairs"`
	DefaultCriteria contact.Criteria    `json:"default_criteria"`
}

// SetDefault fills in DefaultCriteria when the decoded file left it zeroed,
// and applies it to any pair whose own criteria is zeroed.
func (a *AnalysisConfig) SetDefault() {
	if a.DefaultCriteria == (contact.Criteria{}) {
		a.DefaultCriteria = contact.DefaultCriteria()
	}
	for i := range a.ContactPairs {
		if a.ContactPairs[i].Criteria == (contact.Criteria{}) {
			a.ContactPairs[i].Criteria = a.DefaultCriteria
		}
	}
}

// Validate checks every pair's criteria (§4.3.1).
func (a AnalysisConfig) Validate() error {
	if err := a.DefaultCriteria.Validate(); err != nil {
		return err
	}
	for _, p := range a.ContactPairs {
		if err := p.Criteria.Validate(); err != nil {
			return errs.New(errs.ConfigError, "pair %s:%s: %v", p.SurfaceA, p.SurfaceB, err)
		}
	}
	return nil
}

// ReadFile loads an AnalysisConfig from a JSON file at dir/fn and applies
// defaults, matching inp.ReadMsh's read-then-decode idiom.
func ReadFile(dir, fn string) (AnalysisConfig, error) {
	b, err := io.ReadFile(fullPath(dir, fn))
	if err != nil {
		return AnalysisConfig{}, errs.New(errs.ConfigError, "cannot read config file %q: %v", fn, err)
	}
	var a AnalysisConfig
	if err := json.Unmarshal(b, &a); err != nil {
		return AnalysisConfig{}, errs.New(errs.ConfigError, "cannot parse config file %q: %v", fn, err)
	}
	a.SetDefault()
	if err := a.Validate(); err != nil {
		return AnalysisConfig{}, err
	}
	return a, nil
}

// WriteFile serializes a config to dir/fn as pretty-printed JSON.
func WriteFile(dir, fn string, a AnalysisConfig) error {
	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return errs.New(errs.ConfigError, "cannot serialize config: %v", err)
	}
	return writeBytes(fullPath(dir, fn), b)
}

// ParsePairsShorthand parses the "PartA:PartB,PartC:PartD" CLI shorthand
// into an AnalysisConfig using defaultCriteria for every pair.
func ParsePairsShorthand(inputFile, outputDir, pairsStr string, defaultCriteria contact.Criteria) (AnalysisConfig, error) {
	var pairs []ContactPairConfig
	for _, raw := range strings.Split(pairsStr, ",") {
		parts := strings.Split(strings.TrimSpace(raw), ":")
		if len(parts) != 2 {
			return AnalysisConfig{}, errs.New(errs.ConfigError, "invalid pair format %q: expected 'PartA:PartB'", raw)
		}
		pairs = append(pairs, ContactPairConfig{
			SurfaceA: strings.TrimSpace(parts[0]),
			SurfaceB: strings.TrimSpace(parts[1]),
			Criteria: defaultCriteria,
		})
	}
	return AnalysisConfig{
		InputFile:       inputFile,
		OutputDir:       outputDir,
		ContactPairs:    pairs,
		DefaultCriteria: defaultCriteria,
	}, nil
}

func writeBytes(path string, b []byte) error {
	var buf bytes.Buffer
	buf.Write(b)
	io.WriteFile(path, &buf)
	return nil
}

func fullPath(dir, fn string) string {
	if dir == "" {
		return fn
	}
	return dir + "/" + fn
}
