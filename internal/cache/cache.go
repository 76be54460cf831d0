package cache

import (
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Store is a ristretto cache keyed by ordered key parts. A side index of the
// stored keys makes prefix invalidation possible.
type Store struct {
	cache *ristretto.Cache

	mu    sync.Mutex
	index map[string][]string
}

func New(maxEntriesPow2 int) (*Store, error) {
	maxCost := max(1, int64(1)<<maxEntriesPow2)
	numCounters := max(1, maxCost*10) // ristretto recommends ~10x the expected entry count

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        numCounters,
		MaxCost:            maxCost,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache, index: make(map[string][]string)}, nil
}

func (s *Store) Get(key []string) (any, bool) {
	return s.cache.Get(Hash(key))
}

// Set stores value under key. A ttl of zero keeps the entry until it is
// invalidated or evicted for space.
func (s *Store) Set(key []string, value any, ttl time.Duration) bool {
	h := Hash(key)
	if !s.cache.SetWithTTL(h, value, 1, max(0, ttl)) {
		return false
	}
	s.cache.Wait()

	s.mu.Lock()
	s.index[h] = slices.Clone(key)
	s.mu.Unlock()
	return true
}

func (s *Store) Delete(key []string) {
	h := Hash(key)
	s.cache.Del(h)

	s.mu.Lock()
	delete(s.index, h)
	s.mu.Unlock()
}

// InvalidatePrefix removes every entry whose key starts with prefix and
// returns how many were removed. An empty prefix matches everything.
func (s *Store) InvalidatePrefix(prefix []string) int {
	s.mu.Lock()
	var matched []string
	for h, key := range s.index {
		if HasPrefix(key, prefix) {
			matched = append(matched, h)
			delete(s.index, h)
		}
	}
	s.mu.Unlock()

	for _, h := range matched {
		s.cache.Del(h)
	}
	return len(matched)
}

// GC forgets index entries whose values ristretto has expired or evicted.
func (s *Store) GC() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for h := range s.index {
		if _, ok := s.cache.GetTTL(h); !ok {
			delete(s.index, h)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.index)
}

func (s *Store) Close() {
	s.cache.Close()
}

func (s *Store) Stats() (hits, misses uint64, ratio float64) {
	metrics := s.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}

// Hash serializes key parts so that ["a","b"] and ["a,b"] never collide.
func Hash(key []string) string {
	b, err := json.Marshal(key)
	if err != nil {
		return strings.Join(key, "\x00")
	}
	return string(b)
}

func HasPrefix(key, prefix []string) bool {
	if len(prefix) > len(key) {
		return false
	}
	return slices.Equal(key[:len(prefix)], prefix)
}
