// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

func testStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s, err := NewStore(types.CacheConfig{
		Path: filepath.Join(t.TempDir(), "products.db"),
		TTL:  ttl,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRows() []Row {
	return []Row{
		{Title: "Samsung Galaxy M31", Price: "₹15999", Rating: "4.4", Image: "https://img.example.com/1.jpg"},
		{Title: "Samsung Galaxy S21", Price: "₹69999", Rating: "4.5", Image: "https://img.example.com/2.jpg"},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := testStore(t, DefaultTTL)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "flipkart", "samsung", sampleRows()))

	got, err := s.Get(ctx, "flipkart", "samsung")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Samsung Galaxy M31", got[0].Title)
	assert.Equal(t, "₹69999", got[1].Price)
}

func TestStoreMissIsEmpty(t *testing.T) {
	s := testStore(t, DefaultTTL)

	got, err := s.Get(context.Background(), "flipkart", "nothing cached")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStorePutReplaces(t *testing.T) {
	s := testStore(t, DefaultTTL)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "flipkart", "samsung", sampleRows()))
	require.NoError(t, s.Put(ctx, "flipkart", "samsung", []Row{
		{Title: "Samsung Galaxy A54", Price: "₹30999", Rating: "4.3"},
	}))

	got, err := s.Get(ctx, "flipkart", "samsung")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Samsung Galaxy A54", got[0].Title)
}

func TestStoreKeysAreIndependent(t *testing.T) {
	s := testStore(t, DefaultTTL)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "flipkart", "samsung", sampleRows()))
	require.NoError(t, s.Put(ctx, "amazon", "samsung", sampleRows()[:1]))

	got, err := s.Get(ctx, "amazon", "samsung")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = s.Get(ctx, "flipkart", "samsung")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStoreTTLExpiry(t *testing.T) {
	s := testStore(t, time.Millisecond)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "flipkart", "samsung", sampleRows()))
	time.Sleep(10 * time.Millisecond)

	got, err := s.Get(ctx, "flipkart", "samsung")
	require.NoError(t, err)
	assert.Empty(t, got, "stale rows should read as a miss")
}

func TestStorePurge(t *testing.T) {
	s := testStore(t, time.Millisecond)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "flipkart", "samsung", sampleRows()))
	time.Sleep(10 * time.Millisecond)

	removed, err := s.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Rows)
}

func TestStoreStats(t *testing.T) {
	s := testStore(t, DefaultTTL)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "flipkart", "samsung", sampleRows()))
	require.NoError(t, s.Put(ctx, "amazon", "earphones", sampleRows()[:1]))

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Rows)
	assert.Equal(t, 2, st.Queries)
	assert.Equal(t, 0, st.Expired)
}
