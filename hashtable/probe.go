package hashtable

import (
	"fmt"
	"strings"
)

type entry[V any] struct {
	key   string
	value V
}

// ProbeTable is a bounded open-addressing hash table keyed by string,
// with linear probing. It starts at the first capacity of its size
// schedule and grows to the next entry whenever the load factor
// exceeds one half. Growth past the last schedule entry is a silent
// no-op; once that last table fills up, Set fails with ErrTableFull.
type ProbeTable[V any] struct {
	slots     []*entry[V]
	sizes     []int
	sizeIndex int
	count     int
	hashFunc  HashFunc
}

type Option[V any] func(t *ProbeTable[V])

// WithSizes overrides the capacity schedule. Mainly used by tests to
// exercise small-capacity edge cases.
func WithSizes[V any](sizes []int) Option[V] {
	return func(t *ProbeTable[V]) {
		t.sizes = sizes
	}
}

// WithHashFunc overrides the default polynomial hash.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *ProbeTable[V]) {
		t.hashFunc = f
	}
}

// NewProbeTable returns an empty table sized at the first entry of its
// schedule.
func NewProbeTable[V any](opts ...Option[V]) *ProbeTable[V] {
	t := &ProbeTable[V]{
		sizes:    DefaultTableSizes,
		hashFunc: PolynomialHash,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.slots = make([]*entry[V], t.sizes[t.sizeIndex])

	return t
}

// probe finds the slot for key, walking forward with wrap-around from
// the home slot. With isInsert it stops at the first empty slot;
// without, an empty slot means the key is absent.
func (t *ProbeTable[V]) probe(key string, isInsert bool) (int, error) {
	pos := t.hashFunc(key, len(t.slots))

	for range t.slots {
		s := t.slots[pos]
		if s == nil {
			if isInsert {
				return pos, nil
			}
			return 0, fmt.Errorf("probe %q: %w", key, ErrKeyNotFound)
		}
		if s.key == key {
			return pos, nil
		}
		pos = (pos + 1) % len(t.slots)
	}

	if isInsert {
		return 0, fmt.Errorf("probe %q: %w", key, ErrTableFull)
	}
	return 0, fmt.Errorf("probe %q: %w", key, ErrKeyNotFound)
}

// Get returns the value stored under key.
func (t *ProbeTable[V]) Get(key string) (V, error) {
	pos, err := t.probe(key, false)
	if err != nil {
		var zero V
		return zero, err
	}

	return t.slots[pos].value, nil
}

// Set inserts or overwrites the value under key. An insert that tips
// the load factor over one half grows the table.
func (t *ProbeTable[V]) Set(key string, value V) error {
	pos, err := t.probe(key, true)
	if err != nil {
		tracer().Errorf("probe table full at size %d, schedule exhausted", len(t.slots))
		return err
	}

	if t.slots[pos] == nil {
		t.count++
	}
	t.slots[pos] = &entry[V]{key: key, value: value}

	if 2*t.count > len(t.slots) {
		t.rehash()
	}
	return nil
}

// Delete removes key and re-inserts every entry of the probe cluster
// that follows the freed slot. Skipping that step would orphan entries
// whose probe chain ran through the hole.
func (t *ProbeTable[V]) Delete(key string) error {
	pos, err := t.probe(key, false)
	if err != nil {
		return err
	}

	t.slots[pos] = nil
	t.count--

	pos = (pos + 1) % len(t.slots)
	for t.slots[pos] != nil {
		moved := t.slots[pos]
		t.slots[pos] = nil
		newPos, _ := t.probe(moved.key, true)
		t.slots[newPos] = moved
		pos = (pos + 1) % len(t.slots)
	}

	return nil
}

// Contains reports whether key is in the table.
func (t *ProbeTable[V]) Contains(key string) bool {
	_, err := t.probe(key, false)
	return err == nil
}

// rehash grows to the next schedule capacity and re-inserts every
// entry under the new size's hash. A no-op once the schedule is
// exhausted.
func (t *ProbeTable[V]) rehash() {
	if t.sizeIndex+1 >= len(t.sizes) {
		tracer().Debugf("probe table at final size %d, not growing", len(t.slots))
		return
	}

	old := t.slots
	t.sizeIndex++
	t.slots = make([]*entry[V], t.sizes[t.sizeIndex])
	t.count = 0
	tracer().Infof("probe table rehash: %d -> %d slots", len(old), len(t.slots))

	for _, e := range old {
		if e == nil {
			continue
		}
		pos, _ := t.probe(e.key, true)
		t.slots[pos] = e
		t.count++
	}
}

// Len returns the number of entries.
func (t *ProbeTable[V]) Len() int {
	return t.count
}

// TableSize returns the current capacity, as opposed to Len.
func (t *ProbeTable[V]) TableSize() int {
	return len(t.slots)
}

// IsEmpty reports whether the table holds no entries.
func (t *ProbeTable[V]) IsEmpty() bool {
	return t.count == 0
}

// Keys returns every key in slot order.
func (t *ProbeTable[V]) Keys() []string {
	keys := make([]string, 0, t.count)
	for _, e := range t.slots {
		if e != nil {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Values returns every value in slot order.
func (t *ProbeTable[V]) Values() []V {
	values := make([]V, 0, t.count)
	for _, e := range t.slots {
		if e != nil {
			values = append(values, e.value)
		}
	}
	return values
}

func (t *ProbeTable[V]) String() string {
	var sb strings.Builder
	for _, e := range t.slots {
		if e != nil {
			fmt.Fprintf(&sb, "(%s, %v)\n", e.key, e.value)
		}
	}
	return sb.String()
}
