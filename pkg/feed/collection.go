package feed

import "sync"

// MergeOrder controls where novel records land relative to existing ones.
type MergeOrder int

const (
	// MergePrepend places each batch's novel records, in batch order, ahead
	// of everything already held (newest first).
	MergePrepend MergeOrder = iota
	// MergeAppend places novel records after everything already held.
	MergeAppend
)

func (o MergeOrder) String() string {
	if o == MergeAppend {
		return "append"
	}
	return "prepend"
}

// Record is anything that can be deduplicated by a stable identifier.
type Record interface {
	RecordID() string
}

// Collection is an ordered, id-deduplicated, size-capped set of records.
// It is safe for concurrent use.
type Collection[T Record] struct {
	mu       sync.RWMutex
	order    MergeOrder
	maxItems int
	items    []T
	ids      map[string]struct{}
}

// NewCollection returns an empty collection. maxItems <= 0 means unbounded.
func NewCollection[T Record](order MergeOrder, maxItems int) *Collection[T] {
	return &Collection[T]{
		order:    order,
		maxItems: maxItems,
		ids:      make(map[string]struct{}),
	}
}

// Merge adds the records of batch whose id is not already present and
// returns how many were added. Within a batch the first occurrence of an id
// wins. Records with an empty id are dropped.
func (c *Collection[T]) Merge(batch []T) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	novel := make([]T, 0, len(batch))
	for _, r := range batch {
		id := r.RecordID()
		if id == "" {
			continue
		}
		if _, ok := c.ids[id]; ok {
			continue
		}
		c.ids[id] = struct{}{}
		novel = append(novel, r)
	}
	if len(novel) == 0 {
		return 0
	}

	if c.order == MergePrepend {
		c.items = append(novel, c.items...)
	} else {
		c.items = append(c.items, novel...)
	}
	c.evict()
	return len(novel)
}

// evict drops the oldest-positioned records once the cap is exceeded.
func (c *Collection[T]) evict() {
	if c.maxItems <= 0 || len(c.items) <= c.maxItems {
		return
	}
	excess := len(c.items) - c.maxItems

	var dropped []T
	if c.order == MergePrepend {
		dropped = c.items[c.maxItems:]
		c.items = c.items[:c.maxItems:c.maxItems]
	} else {
		dropped = c.items[:excess]
		c.items = append([]T(nil), c.items[excess:]...)
	}
	for _, r := range dropped {
		delete(c.ids, r.RecordID())
	}
}

// Items returns a snapshot of the records in collection order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Len returns the number of records held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Contains reports whether a record with id is held.
func (c *Collection[T]) Contains(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.ids[id]
	return ok
}
