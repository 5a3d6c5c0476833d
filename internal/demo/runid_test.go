package demo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongodemo/internal/demo"
)

func TestRunID(t *testing.T) {
	id := uuid.New()
	ctx := demo.WithRunID(context.Background(), id)

	got, ok := demo.RunIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	attr, ok := demo.RunIDExtractor()(ctx)
	require.True(t, ok)
	assert.Equal(t, "run_id", attr.Key)
	assert.Equal(t, id.String(), attr.Value.String())

	_, ok = demo.RunIDExtractor()(context.Background())
	assert.False(t, ok)
}
