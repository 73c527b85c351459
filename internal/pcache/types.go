package pcache

// ResultCache is a cache for computed task results, keyed by graph key
type ResultCache interface {
	Destroy()
	Add(key string, value interface{})
	Get(key string) (value interface{}, ok bool) // returns the result for key, if present, marking it as recently used
	CurrentSize() int
	Resize(size int) // evicts least-recently-used results until at most size remain
}
