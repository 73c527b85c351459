package pcache

import (
	"fmt"
	"testing"

	"github.com/go-sif/lazyframe/partition"
	"github.com/stretchr/testify/require"
)

func testSeries(t *testing.T, n int) *partition.Series {
	values := make(partition.Int64Array, n)
	for i := range values {
		values[i] = int64(i)
	}
	s, err := partition.NewSeries("x", values, nil)
	require.Nil(t, err)
	return s
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := NewLRU(&LRUConfig{Size: 3})
	require.Nil(t, err)
	defer cache.Destroy()

	for i := 0; i < 3; i++ {
		cache.Add(fmt.Sprintf("k%d", i), int64(i))
	}
	_, ok := cache.Get("k0")
	require.True(t, ok)
	cache.Add("k3", int64(3))

	require.Equal(t, 3, cache.CurrentSize())
	_, ok = cache.Get("k1")
	require.False(t, ok)
	v, ok := cache.Get("k0")
	require.True(t, ok)
	require.Equal(t, int64(0), v)
}

func TestCacheCompressesEvictedPartitions(t *testing.T) {
	cache, err := NewLRU(&LRUConfig{Size: 4, CompressedFraction: 0.5})
	require.Nil(t, err)
	iCache, ok := cache.(*lru)
	require.True(t, ok)

	parts := make([]*partition.Series, 4)
	for i := range parts {
		parts[i] = testSeries(t, i+1)
		cache.Add(fmt.Sprintf("p%d", i), parts[i])
	}
	require.Equal(t, 2, iCache.recentList.Len())
	require.Equal(t, 2, iCache.compressedList.Len())

	v, ok := cache.Get("p0")
	require.True(t, ok)
	require.Equal(t, parts[0].Token(), v.(partition.Partition).Token())
	require.Equal(t, 4, cache.CurrentSize())
}

func TestCacheDropsEvictedScalars(t *testing.T) {
	cache, err := NewLRU(&LRUConfig{Size: 2, CompressedFraction: 0.5})
	require.Nil(t, err)
	cache.Add("a", 1.5)
	cache.Add("b", 2.5)
	require.Equal(t, 1, cache.CurrentSize())
	_, ok := cache.Get("a")
	require.False(t, ok)
}

func TestCacheResize(t *testing.T) {
	cache, err := NewLRU(&LRUConfig{Size: 10})
	require.Nil(t, err)
	iCache := cache.(*lru)
	for i := 0; i < 20; i++ {
		cache.Add(fmt.Sprintf("k%d", i), i)
	}
	require.Equal(t, 10, len(iCache.pmap))
	cache.Resize(5)
	require.Equal(t, 5, len(iCache.pmap))
	require.Equal(t, 5, iCache.recentList.Len())
	_, ok := cache.Get("k19")
	require.True(t, ok)
	_, ok = cache.Get("k14")
	require.False(t, ok)
}

func TestNewLRUValidatesConfig(t *testing.T) {
	_, err := NewLRU(&LRUConfig{Size: 0})
	require.NotNil(t, err)
	_, err = NewLRU(&LRUConfig{Size: 5, CompressedFraction: 1.5})
	require.NotNil(t, err)
}
