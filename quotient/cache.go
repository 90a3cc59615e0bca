package quotient

import (
	"sync"

	"github.com/jonathanmweiss/go-rings/algebra"
)

// Cache hands out one canonical *Ring per (source ring, modulus) pair. It is
// safe for concurrent use.
type Cache[E algebra.Element[E]] struct {
	sync.Locker
	rings map[string][]*Ring[E]
}

func NewCache[E algebra.Element[E]]() *Cache[E] {
	return &Cache[E]{
		Locker: &sync.Mutex{},
		rings:  make(map[string][]*Ring[E]),
	}
}

// Get returns the cached source/(modulus), creating it on first use.
func (c *Cache[E]) Get(source algebra.Ring[E], modulus E) (*Ring[E], error) {
	c.Lock()
	defer c.Unlock()

	// moduli are not comparable keys, so rings are bucketed by source ring.
	key := source.String()
	for _, r := range c.rings[key] {
		if r.modulus.Equals(modulus) {
			return r, nil
		}
	}

	r, err := New(source, modulus)
	if err != nil {
		return nil, err
	}

	c.rings[key] = append(c.rings[key], r)

	return r, nil
}

// Len returns the number of cached rings.
func (c *Cache[E]) Len() int {
	c.Lock()
	defer c.Unlock()

	n := 0
	for _, rs := range c.rings {
		n += len(rs)
	}

	return n
}
