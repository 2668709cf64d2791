package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreSetGetDelete(t *testing.T) {
	kv := MemStore()

	k, v := []byte("config"), []byte("payload")

	has, err := kv.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	got, err := kv.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, kv.Set(k, v))

	has, err = kv.Has(k)
	require.NoError(t, err)
	assert.True(t, has)

	got, err = kv.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	require.NoError(t, kv.Delete(k))

	has, err = kv.Has(k)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMemStoreOverwrite(t *testing.T) {
	kv := MemStore()

	k := []byte("a")
	require.NoError(t, kv.Set(k, []byte("1")))
	require.NoError(t, kv.Set(k, []byte("2")))

	got, err := kv.Get(k)
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestCacheWrapWrite(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))

	// The cache sees its own writes...
	got, err := cache.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
	has, err := cache.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)

	// ...while the parent is untouched until Write.
	has, err = kv.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has)
	got, err = kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	require.NoError(t, cache.Write())

	got, err = kv.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
	has, err = kv.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapDiscard(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("overwritten")))
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	cache.Discard()

	got, err := kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
	has, err := kv.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapReadThrough(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))

	cache := kv.CacheWrap()
	got, err := cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	// Nested wraps read through all layers.
	inner := cache.CacheWrap()
	got, err = inner.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
}

func TestNonAtomicBatchCollectsOps(t *testing.T) {
	out := MemStore()
	batch := NewNonAtomicBatch(out)

	require.NoError(t, batch.Set([]byte("a"), []byte("1")))
	require.NoError(t, batch.Delete([]byte("b")))
	require.Len(t, batch.ShowOps(), 2)
	assert.True(t, batch.ShowOps()[0].IsSetOp())
	assert.False(t, batch.ShowOps()[1].IsSetOp())

	// Nothing is applied before Write.
	has, err := out.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, batch.Write())
	has, err = out.Has([]byte("a"))
	require.NoError(t, err)
	assert.True(t, has)
	assert.Empty(t, batch.ShowOps())
}
