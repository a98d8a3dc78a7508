package cache

import (
	"fmt"
	"sync"
)

// DefaultSize is the max size of the cache before
// the older items automatically get evicted
const DefaultSize = 256

// item is an item in the cache (doubly linked)
type item[K comparable, V any] struct {
	key        K
	value      V
	prev, next *item[K, V]
}

// Stats counts lookups since the cache was created.
type Stats struct {
	Hits, Misses, Evictions uint64
}

// LRU is a size bounded, least recently used cache. It is safe for
// concurrent use.
type LRU[K comparable, V any] struct {
	size       int               // max num of items
	items      map[K]*item[K, V] // actives items
	head, tail *item[K, V]       // sentinels; head.next is the most recent
	stats      Stats
	mu         sync.Mutex
}

func NewLRU[K comparable, V any](size int) *LRU[K, V] {
	if size < 1 {
		size = DefaultSize
	}
	l := &LRU[K, V]{
		size:  size,
		items: make(map[K]*item[K, V], size),
		head:  new(item[K, V]),
		tail:  new(item[K, V]),
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// evict unlinks and returns the least recently used item
func (l *LRU[K, V]) evict() *item[K, V] {
	i := l.tail.prev
	l.pop(i)
	delete(l.items, i.key)
	l.stats.Evictions++
	return i
}

func (l *LRU[K, V]) pop(i *item[K, V]) {
	i.prev.next = i.next
	i.next.prev = i.prev
}

func (l *LRU[K, V]) push(i *item[K, V]) {
	l.head.next.prev = i
	i.next = l.head.next
	i.prev = l.head
	l.head.next = i
}

func (l *LRU[K, V]) touch(i *item[K, V]) {
	if l.head.next != i {
		l.pop(i)
		l.push(i)
	}
}

func (l *LRU[K, V]) insert(key K, value V) {
	var i *item[K, V]
	if len(l.items) == l.size {
		i = l.evict()
	} else {
		i = new(item[K, V])
	}
	i.key, i.value = key, value
	l.push(i)
	l.items[key] = i
}

// Len returns the current length of the cache
func (l *LRU[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Set inserts or replaces a value for the given key. It returns the
// previous value and whether one was replaced.
func (l *LRU[K, V]) Set(key K, value V) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.items[key]; i != nil {
		prev := i.value
		i.value = value
		l.touch(i)
		return prev, true
	}
	l.insert(key, value)
	return *new(V), false
}

// Get returns a value for the given key (if it exists)
func (l *LRU[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.items[key]
	if i == nil {
		l.stats.Misses++
		return *new(V), false
	}
	l.stats.Hits++
	l.touch(i)
	return i.value, true
}

// GetOrLoad returns the cached value for key, calling load to produce and
// store it on a miss. load runs with the cache locked and must not call
// back into it.
func (l *LRU[K, V]) GetOrLoad(key K, load func(K) V) V {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.items[key]; i != nil {
		l.stats.Hits++
		l.touch(i)
		return i.value
	}
	l.stats.Misses++
	v := load(key)
	l.insert(key, v)
	return v
}

// Del removes and value for the given key (if it exists)
func (l *LRU[K, V]) Del(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.items[key]
	if i == nil {
		return *new(V), false
	}
	delete(l.items, key)
	l.pop(i)
	return i.value, true
}

// Range iterates over all keys and values in the order of most
// recently used to least recently used items.
func (l *LRU[K, V]) Range(iter func(key K, value V) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := l.head.next; i != l.tail; i = i.next {
		if !iter(i.key, i.value) {
			return
		}
	}
}

func (l *LRU[K, V]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

func (l *LRU[K, V]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("lru[size=%d, len=%d, hits=%d, misses=%d, evictions=%d]",
		l.size, len(l.items), l.stats.Hits, l.stats.Misses, l.stats.Evictions)
}
