package vitals

import (
	"errors"
	"sync"
)

const (
	EntryPaint                  = "paint"
	EntryLargestContentfulPaint = "largest-contentful-paint"
	EntryLayoutShift            = "layout-shift"
)

var ErrUnsupported = errors.New("performance observer not supported")

// Entry is one performance entry as reported by the browser.
type Entry struct {
	EntryType      string  `json:"entry_type"`
	Name           string  `json:"name"`
	StartTime      float64 `json:"start_time"`
	Duration       float64 `json:"duration"`
	Value          float64 `json:"value"`
	HadRecentInput bool    `json:"had_recent_input"`
}

// Source delivers batches of entries of one type to fn until stop is called.
type Source interface {
	Observe(entryType string, fn func([]Entry)) (stop func(), err error)
}

// Unsupported is the source of a client without PerformanceObserver.
type Unsupported struct{}

func (Unsupported) Observe(string, func([]Entry)) (func(), error) {
	return nil, ErrUnsupported
}

// Bus is an in-process Source fed by Publish. Delivery is synchronous and
// in subscription order.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[string][]subscriber
}

type subscriber struct {
	id int
	fn func([]Entry)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string][]subscriber)}
}

func (b *Bus) Observe(entryType string, fn func([]Entry)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.subs[entryType] = append(b.subs[entryType], subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(entryType, id) })
	}, nil
}

func (b *Bus) Publish(entryType string, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	b.mu.RLock()
	subs := append([]subscriber(nil), b.subs[entryType]...)
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(entries)
	}
}

func (b *Bus) remove(entryType string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[entryType]
	for i, s := range subs {
		if s.id == id {
			b.subs[entryType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[entryType]) == 0 {
		delete(b.subs, entryType)
	}
}
