package detector

import (
	"context"
	"fmt"
	"sort"

	"github.com/dublyo/dockergen/frameworks"
	"github.com/dublyo/dockergen/internal/registry"
	"github.com/dublyo/dockergen/internal/scanner"
)

// Scoring weights
const (
	manifestWeight = 60
	fileWeight     = 15
	maxFileScore   = 40
)

// Detector suggests the framework of a scanned project
type Detector interface {
	Detect(ctx context.Context, scan *scanner.ScanResult) (*DetectionResult, error)
}

// Option configures the detector
type Option func(*detector)

type detector struct {
	registry      *registry.Registry
	minConfidence int
}

// New creates a new detector
func New(r *registry.Registry, opts ...Option) Detector {
	d := &detector{
		registry:      r,
		minConfidence: 50,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithMinConfidence sets the confidence a candidate needs to be reported as detected
func WithMinConfidence(confidence int) Option {
	return func(d *detector) {
		d.minConfidence = confidence
	}
}

// Detect scores every registered framework against the scan
func (d *detector) Detect(ctx context.Context, scan *scanner.ScanResult) (*DetectionResult, error) {
	var candidates []Candidate

	for _, f := range d.registry.Frameworks() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if score, reasons := scoreFramework(f, scan); score > 0 {
			candidates = append(candidates, Candidate{
				Framework:  f.Key,
				Confidence: score,
				Reasons:    reasons,
			})
		}
	}

	// Stable so that registration order breaks ties
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	result := &DetectionResult{Candidates: candidates}
	if len(candidates) == 0 || candidates[0].Confidence < d.minConfidence {
		return result, nil
	}

	best := candidates[0]
	f, _ := d.registry.Get(best.Framework)
	result.Detected = true
	result.Confidence = best.Confidence
	result.Framework = best.Framework
	result.Family = f.Family
	return result, nil
}

func scoreFramework(f frameworks.Framework, scan *scanner.ScanResult) (int, []string) {
	m := f.Markers
	if len(m.Dependencies) == 0 && len(m.Requirements) == 0 && len(m.Files) == 0 {
		return 0, nil
	}

	score := 0
	var reasons []string

	if len(m.Dependencies) > 0 {
		pkg := scan.Metadata.PackageJSON
		for _, dep := range m.Dependencies {
			if !pkg.HasDependency(dep) {
				return 0, nil
			}
		}
		score += manifestWeight
		reasons = append(reasons, fmt.Sprintf("package.json depends on %v", m.Dependencies))
	}

	if len(m.Requirements) > 0 {
		matched := ""
		for _, req := range m.Requirements {
			if scan.Metadata.HasRequirement(req) {
				matched = req
				break
			}
		}
		if matched == "" {
			return 0, nil
		}
		score += manifestWeight
		reasons = append(reasons, fmt.Sprintf("python dependency %s", matched))
	}

	fileScore := 0
	for _, file := range m.Files {
		if scan.HasFile(file) {
			fileScore += fileWeight
			reasons = append(reasons, "found "+file)
		}
	}
	if fileScore > maxFileScore {
		fileScore = maxFileScore
	}
	score += fileScore

	if score > 100 {
		score = 100
	}
	return score, reasons
}
