// Package detector suggests a framework for a project directory.
package detector

import "github.com/dublyo/dockergen/frameworks"

// DetectionResult contains the detection outcome
type DetectionResult struct {
	Detected   bool
	Confidence int // 0-100
	Framework  frameworks.Key
	Family     frameworks.Family

	// All candidates with scores (for debugging)
	Candidates []Candidate
}

// Candidate is a potential match
type Candidate struct {
	Framework  frameworks.Key
	Confidence int
	Reasons    []string
}

// BestCandidate returns the highest scoring candidate, if any
func (r *DetectionResult) BestCandidate() *Candidate {
	if len(r.Candidates) == 0 {
		return nil
	}
	return &r.Candidates[0]
}

// TopCandidates returns the top N candidates
func (r *DetectionResult) TopCandidates(n int) []Candidate {
	if len(r.Candidates) <= n {
		return r.Candidates
	}
	return r.Candidates[:n]
}
