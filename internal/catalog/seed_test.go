package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithra-tejvarma/GradientIQ/internal/catalog"
)

func TestSeedLoadsDemoCatalog(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewInMemoryStore()
	require.NoError(t, catalog.Seed(ctx, store))

	subjects, err := store.ListSubjects(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	require.Equal(t, "Coding", subjects[0].Name)

	for _, s := range subjects {
		topics, err := store.ListTopics(ctx, s.ID)
		require.NoError(t, err)
		require.Len(t, topics, 4)
		for i, topic := range topics {
			require.Equal(t, i, topic.Position)
			questions, err := store.ListQuestions(ctx, topic.ID)
			require.NoError(t, err)
			require.Len(t, questions, 2)
			for _, q := range questions {
				require.NotEmpty(t, q.Text)
				require.NotEmpty(t, q.ExpectedConcepts)
				require.GreaterOrEqual(t, q.DifficultyLevel, 1)
				require.LessOrEqual(t, q.DifficultyLevel, 10)
			}
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewInMemoryStore()
	require.NoError(t, catalog.Seed(ctx, store))
	require.NoError(t, catalog.Seed(ctx, store))

	subjects, err := store.ListSubjects(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 3)
}
