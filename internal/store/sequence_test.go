package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceIsMonotonic(t *testing.T) {
	ctx := context.Background()
	seq := NewSequence(NewMemoryBackend(), Products)

	n, err := seq.Next(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	// A lower floor (records deleted) never rewinds the counter.
	n, err = seq.Next(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	// A higher floor (imported records) jumps ahead.
	n, err = seq.Next(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 21, n)
}

func TestSequenceRecoversFromGarbage(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Write(ctx, SequenceKey(Scenarios), []byte("oops")))

	n, err := NewSequence(backend, Scenarios).Next(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	raw, _, _ := backend.Read(ctx, SequenceKey(Scenarios))
	assert.Equal(t, "5", string(raw))
}
