package grading_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithra-tejvarma/GradientIQ/internal/grading"
)

func TestCoverage(t *testing.T) {
	expected := []string{"stack", "queue", "heap"}

	require.InDelta(t, 2.0/3.0, grading.Coverage("A Stack differs from a QUEUE.", expected), 1e-9)
	require.Zero(t, grading.Coverage("", expected))
	require.Zero(t, grading.Coverage("anything", nil))
	require.Zero(t, grading.Coverage("anything", []string{"", "  "}))
	require.Equal(t, 1.0, grading.Coverage("stack queue heap", expected))
}

func TestGrade(t *testing.T) {
	g := grading.NewGrader()
	expected := []string{"stack", "queue", "heap"}

	// Two of three concepts clears the default 0.6 threshold.
	correct, graded := g.Grade("stack and queue", expected)
	require.True(t, graded)
	require.True(t, correct)

	correct, graded = g.Grade("just a stack", expected)
	require.True(t, graded)
	require.False(t, correct)

	// No expected concepts: the answer stays ungraded.
	_, graded = g.Grade("anything at all", nil)
	require.False(t, graded)
	_, graded = g.Grade("anything at all", []string{" "})
	require.False(t, graded)
}

func TestGradeCustomThreshold(t *testing.T) {
	g := grading.NewGrader(grading.WithPassThreshold(1.0))
	expected := []string{"stack", "queue"}

	correct, graded := g.Grade("stack only", expected)
	require.True(t, graded)
	require.False(t, correct)

	correct, _ = g.Grade("stack and queue", expected)
	require.True(t, correct)
}
