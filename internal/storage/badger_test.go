package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBadgerStorageForTest(t *testing.T) *BadgerStorage {
	t.Helper()
	s, err := NewBadgerStorage(BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close(context.Background())
	})
	return s
}

func TestBadgerStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newBadgerStorageForTest(t)

	items := sampleItems()
	require.NoError(t, s.Save(ctx, "u1", items))

	loaded, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestBadgerStorageLoadMissingOwner(t *testing.T) {
	ctx := context.Background()
	s := newBadgerStorageForTest(t)

	loaded, err := s.Load(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestBadgerStorageClear(t *testing.T) {
	ctx := context.Background()
	s := newBadgerStorageForTest(t)

	require.NoError(t, s.Save(ctx, "u1", sampleItems()))
	require.NoError(t, s.Clear(ctx, "u1"))

	loaded, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// Clearing a missing key is still a success.
	assert.NoError(t, s.Clear(ctx, "u1"))
}

func TestBadgerStoragePing(t *testing.T) {
	ctx := context.Background()
	s := newBadgerStorageForTest(t)

	assert.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close(ctx))
	assert.Error(t, s.Ping(ctx))
}
