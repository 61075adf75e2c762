// Package grading scores answer text against a question's expected
// concepts. It is a keyword-coverage heuristic, not an understanding
// check: manual review stays possible downstream.
package grading

import "strings"

const defaultPassThreshold = 0.6

type Grader struct {
	passThreshold float64
}

type Option func(*Grader)

func WithPassThreshold(t float64) Option {
	return func(g *Grader) { g.passThreshold = t }
}

func NewGrader(opts ...Option) *Grader {
	g := &Grader{passThreshold: defaultPassThreshold}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Coverage reports the fraction of expected concepts mentioned in the
// answer (case-insensitive substring match). No expected concepts means
// nothing to measure; the denominator never reaches zero.
func Coverage(answer string, expected []string) float64 {
	concepts := nonEmpty(expected)
	if len(concepts) == 0 || strings.TrimSpace(answer) == "" {
		return 0
	}
	low := strings.ToLower(answer)
	found := 0
	for _, c := range concepts {
		if strings.Contains(low, strings.ToLower(c)) {
			found++
		}
	}
	return float64(found) / float64(len(concepts))
}

// Grade returns whether the answer covers enough expected concepts to
// count as correct. graded is false when the question carries no expected
// concepts: such answers are never auto-graded.
func (g *Grader) Grade(answer string, expected []string) (correct, graded bool) {
	if len(nonEmpty(expected)) == 0 {
		return false, false
	}
	return Coverage(answer, expected) >= g.passThreshold, true
}

func nonEmpty(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
