package pcache

import (
	"bytes"
	"container/list"
	"fmt"
	"sync"

	"github.com/go-sif/lazyframe/partition"
)

// lru is an LRU cache for task results. Partitions evicted from the
// uncompressed tier are lz4-compressed into a second tier, if it has room.
type lru struct {
	lock            sync.Mutex
	config          *LRUConfig
	serializer      *partition.LZ4Serializer
	pmap            map[string]*list.Element
	compressedPmap  map[string]*list.Element
	recentList      *list.List // back is oldest, front is newest
	compressedList  *list.List // back is oldest, front is newest
	maxUncompressed int
	maxCompressed   int
}

type cachedResult struct {
	key   string
	value interface{}
}

type cachedCompressedPartition struct {
	key   string
	value []byte
}

// LRUConfig configures an LRU ResultCache
type LRUConfig struct {
	Size               int
	CompressedFraction float32 // fraction of Size reserved for compressed partitions
}

// NewLRU produces an LRU ResultCache
func NewLRU(config *LRUConfig) (ResultCache, error) {
	if config.Size < 1 {
		return nil, fmt.Errorf("LRUConfig.Size %d must be at least 1", config.Size)
	}
	if config.CompressedFraction < 0 || config.CompressedFraction > 1 {
		return nil, fmt.Errorf("LRUConfig.CompressedFraction %f must be between 0 and 1", config.CompressedFraction)
	}
	c := &lru{
		config:         config,
		serializer:     partition.NewLZ4Serializer(),
		pmap:           make(map[string]*list.Element),
		compressedPmap: make(map[string]*list.Element),
		recentList:     list.New(),
		compressedList: list.New(),
	}
	c.setLimits(config.Size)
	return c, nil
}

func (c *lru) setLimits(size int) {
	c.maxUncompressed = int(float32(size) * (1 - c.config.CompressedFraction))
	if c.maxUncompressed < 1 && size > 0 {
		c.maxUncompressed = 1
	}
	c.maxCompressed = size - c.maxUncompressed
}

// Destroy empties the cache
func (c *lru) Destroy() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.pmap = make(map[string]*list.Element)
	c.compressedPmap = make(map[string]*list.Element)
	c.recentList.Init()
	c.compressedList.Init()
}

// Add inserts a result into the uncompressed tier, replacing any previous result for key
func (c *lru) Add(key string, value interface{}) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.remove(key)
	c.pmap[key] = c.recentList.PushFront(&cachedResult{key: key, value: value})
	c.evict()
}

// Get returns the result for key, if present. Compressed partitions are
// decompressed and promoted back into the uncompressed tier.
func (c *lru) Get(key string) (interface{}, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if e, ok := c.pmap[key]; ok {
		c.recentList.MoveToFront(e)
		return e.Value.(*cachedResult).value, true
	}
	ce, ok := c.compressedPmap[key]
	if !ok {
		return nil, false
	}
	delete(c.compressedPmap, key)
	c.compressedList.Remove(ce)
	part, err := c.serializer.Decompress(bytes.NewReader(ce.Value.(*cachedCompressedPartition).value))
	if err != nil {
		return nil, false
	}
	c.pmap[key] = c.recentList.PushFront(&cachedResult{key: key, value: part})
	c.evict()
	return part, true
}

// CurrentSize returns the number of results held across both tiers
func (c *lru) CurrentSize() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.recentList.Len() + c.compressedList.Len()
}

// Resize changes the capacity of the cache, evicting results as necessary
func (c *lru) Resize(size int) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if size < 0 {
		size = 0
	}
	c.setLimits(size)
	c.evict()
}

func (c *lru) remove(key string) {
	if e, ok := c.pmap[key]; ok {
		delete(c.pmap, key)
		c.recentList.Remove(e)
	}
	if e, ok := c.compressedPmap[key]; ok {
		delete(c.compressedPmap, key)
		c.compressedList.Remove(e)
	}
}

// evict moves the oldest uncompressed results into the compressed tier, then
// drops the oldest compressed results, until both tiers fit. Must be called with the lock held.
func (c *lru) evict() {
	for c.recentList.Len() > c.maxUncompressed {
		e := c.recentList.Back()
		c.recentList.Remove(e)
		cr := e.Value.(*cachedResult)
		delete(c.pmap, cr.key)
		c.evictToCompressedMemory(cr)
	}
	for c.compressedList.Len() > c.maxCompressed {
		e := c.compressedList.Back()
		c.compressedList.Remove(e)
		delete(c.compressedPmap, e.Value.(*cachedCompressedPartition).key)
	}
}

func (c *lru) evictToCompressedMemory(cr *cachedResult) {
	if c.maxCompressed == 0 {
		return
	}
	part, ok := cr.value.(partition.Partition)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := c.serializer.Compress(&buf, part); err != nil {
		return
	}
	c.compressedPmap[cr.key] = c.compressedList.PushFront(&cachedCompressedPartition{key: cr.key, value: buf.Bytes()})
}
