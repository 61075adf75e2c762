package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithra-tejvarma/GradientIQ/internal/analysis"
)

func intp(v int) *int { return &v }

func TestBehaviorLowKnowledge(t *testing.T) {
	cfg := analysis.DefaultConfig()

	// Stopped mid-way with low progress.
	r := analysis.AnalyzeBehavior(intp(25), intp(2), 40, cfg)
	require.True(t, r.LowKnowledgeSignal)

	// Very low progress alone, no stop.
	r = analysis.AnalyzeBehavior(intp(10), nil, 40, cfg)
	require.True(t, r.LowKnowledgeSignal)

	// Healthy progress.
	r = analysis.AnalyzeBehavior(intp(85), nil, 40, cfg)
	require.False(t, r.LowKnowledgeSignal)

	// Stopped but progressed past the knowledge floor, and past the
	// low-progress floor on its own.
	r = analysis.AnalyzeBehavior(intp(55), intp(3), 40, cfg)
	require.False(t, r.LowKnowledgeSignal)
}

func TestBehaviorCopySignal(t *testing.T) {
	cfg := analysis.DefaultConfig()

	// Little progress, a stop, yet a long answer: copy-like.
	r := analysis.AnalyzeBehavior(intp(20), intp(1), 150, cfg)
	require.True(t, r.PossibleCopyBehavior)
	require.True(t, r.SuspiciousPause)

	// Same text volume without a stop is not copy-like.
	r = analysis.AnalyzeBehavior(intp(20), nil, 150, cfg)
	require.False(t, r.PossibleCopyBehavior)
	require.False(t, r.SuspiciousPause)

	// Short answers never trip the copy signal.
	r = analysis.AnalyzeBehavior(intp(20), intp(1), 50, cfg)
	require.False(t, r.PossibleCopyBehavior)
}

func TestBehaviorNilMetadataDefaultsToZero(t *testing.T) {
	cfg := analysis.DefaultConfig()
	r := analysis.AnalyzeBehavior(nil, nil, 10, cfg)
	require.Zero(t, r.Progress)
	require.Zero(t, r.StoppedAtStep)
	// Zero progress reads as low knowledge, but no stop means no copy signal.
	require.True(t, r.LowKnowledgeSignal)
	require.False(t, r.PossibleCopyBehavior)
}
