package hashtable

import (
	"fmt"
	"strings"
)

type outerEntry[V any] struct {
	key string
	sub *ProbeTable[V]
}

// DoubleKeyTable maps a (key1, key2) pair to a value. The outer level
// is a linear-probe table over key1 whose slots hold one sub-table
// each; every sub-table is a ProbeTable over key2 with its own size
// schedule. Len counts distinct key1 groups, not (key1, key2) pairs.
type DoubleKeyTable[V any] struct {
	slots      []*outerEntry[V]
	sizes      []int
	innerSizes []int
	sizeIndex  int
	count      int
	outerHash  HashFunc
	innerHash  HashFunc
}

type DoubleOption[V any] func(d *DoubleKeyTable[V])

// WithOuterSizes overrides the outer capacity schedule.
func WithOuterSizes[V any](sizes []int) DoubleOption[V] {
	return func(d *DoubleKeyTable[V]) {
		d.sizes = sizes
	}
}

// WithInnerSizes overrides the schedule handed to every sub-table.
func WithInnerSizes[V any](sizes []int) DoubleOption[V] {
	return func(d *DoubleKeyTable[V]) {
		d.innerSizes = sizes
	}
}

// WithOuterHashFunc overrides hashing of key1.
func WithOuterHashFunc[V any](f HashFunc) DoubleOption[V] {
	return func(d *DoubleKeyTable[V]) {
		d.outerHash = f
	}
}

// WithInnerHashFunc overrides hashing of key2 inside the sub-tables.
func WithInnerHashFunc[V any](f HashFunc) DoubleOption[V] {
	return func(d *DoubleKeyTable[V]) {
		d.innerHash = f
	}
}

// NewDoubleKeyTable returns an empty table. Unless overridden, the
// outer table and the sub-tables share DefaultTableSizes and the
// polynomial hash.
func NewDoubleKeyTable[V any](opts ...DoubleOption[V]) *DoubleKeyTable[V] {
	d := &DoubleKeyTable[V]{
		sizes:     DefaultTableSizes,
		outerHash: PolynomialHash,
		innerHash: PolynomialHash,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.innerSizes == nil {
		d.innerSizes = d.sizes
	}
	d.slots = make([]*outerEntry[V], d.sizes[d.sizeIndex])

	return d
}

func (d *DoubleKeyTable[V]) newSubTable() *ProbeTable[V] {
	return NewProbeTable(
		WithSizes[V](d.innerSizes),
		WithHashFunc[V](d.innerHash),
	)
}

// probeOuter finds the outer slot for key1, linear probing with
// wrap-around. With isInsert the first empty slot is acceptable.
func (d *DoubleKeyTable[V]) probeOuter(key1 string, isInsert bool) (int, error) {
	pos := d.outerHash(key1, len(d.slots))

	for range d.slots {
		s := d.slots[pos]
		if s == nil {
			if isInsert {
				return pos, nil
			}
			return 0, fmt.Errorf("probe %q: %w", key1, ErrKeyNotFound)
		}
		if s.key == key1 {
			return pos, nil
		}
		pos = (pos + 1) % len(d.slots)
	}

	if isInsert {
		return 0, fmt.Errorf("probe %q: %w", key1, ErrTableFull)
	}
	return 0, fmt.Errorf("probe %q: %w", key1, ErrKeyNotFound)
}

// Get returns the value stored under (key1, key2).
func (d *DoubleKeyTable[V]) Get(key1, key2 string) (V, error) {
	pos, err := d.probeOuter(key1, false)
	if err != nil {
		var zero V
		return zero, err
	}

	return d.slots[pos].sub.Get(key2)
}

// Set inserts or overwrites the value under (key1, key2). The group
// count rises only when key1's sub-table goes from empty to occupied;
// the outer table grows when more than half its slots hold groups.
func (d *DoubleKeyTable[V]) Set(key1, key2 string, value V) error {
	pos, err := d.probeOuter(key1, true)
	if err != nil {
		tracer().Errorf("double-key table outer level full, schedule exhausted")
		return err
	}

	if d.slots[pos] == nil {
		d.slots[pos] = &outerEntry[V]{key: key1, sub: d.newSubTable()}
	}
	sub := d.slots[pos].sub

	if sub.IsEmpty() {
		d.count++
	}
	if err := sub.Set(key2, value); err != nil {
		return err
	}

	if 2*d.count > len(d.slots) {
		d.rehash()
	}
	return nil
}

// Delete removes (key1, key2). When that empties key1's sub-table the
// whole group is dropped and the following outer cluster is
// re-probed, moving entire (key1, sub-table) pairs.
func (d *DoubleKeyTable[V]) Delete(key1, key2 string) error {
	pos, err := d.probeOuter(key1, false)
	if err != nil {
		return err
	}

	sub := d.slots[pos].sub
	if err := sub.Delete(key2); err != nil {
		return err
	}
	if !sub.IsEmpty() {
		return nil
	}

	d.slots[pos] = nil
	d.count--

	pos = (pos + 1) % len(d.slots)
	for d.slots[pos] != nil {
		moved := d.slots[pos]
		d.slots[pos] = nil
		newPos, _ := d.probeOuter(moved.key, true)
		d.slots[newPos] = moved
		pos = (pos + 1) % len(d.slots)
	}

	return nil
}

// Contains reports whether (key1, key2) is in the table.
func (d *DoubleKeyTable[V]) Contains(key1, key2 string) bool {
	_, err := d.Get(key1, key2)
	return err == nil
}

// rehash grows the outer table to the next schedule capacity,
// re-probing every (key1, sub-table) pair under the new size. Any
// sub-table past half load is grown on the way through. Growth past
// the end of the schedule silently does nothing; the behavior is kept
// for compatibility with the system this table replaces.
func (d *DoubleKeyTable[V]) rehash() {
	if d.sizeIndex+1 >= len(d.sizes) {
		tracer().Debugf("double-key table at final outer size %d, not growing", len(d.slots))
		return
	}

	old := d.slots
	d.sizeIndex++
	d.slots = make([]*outerEntry[V], d.sizes[d.sizeIndex])
	d.count = 0
	tracer().Infof("double-key table rehash: %d -> %d outer slots", len(old), len(d.slots))

	for _, e := range old {
		if e == nil {
			continue
		}
		if 2*e.sub.Len() > e.sub.TableSize() {
			e.sub.rehash()
		}
		pos, _ := d.probeOuter(e.key, true)
		d.slots[pos] = e
		d.count++
	}
}

// Len returns the number of key1 groups with at least one entry.
func (d *DoubleKeyTable[V]) Len() int {
	return d.count
}

// TableSize returns the current outer capacity.
func (d *DoubleKeyTable[V]) TableSize() int {
	return len(d.slots)
}

// Keys returns every key1 in outer slot order.
func (d *DoubleKeyTable[V]) Keys() []string {
	keys := make([]string, 0, d.count)
	for _, e := range d.slots {
		if e != nil {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// KeysOf returns every key2 stored under key1.
func (d *DoubleKeyTable[V]) KeysOf(key1 string) ([]string, error) {
	pos, err := d.probeOuter(key1, false)
	if err != nil {
		return nil, err
	}
	return d.slots[pos].sub.Keys(), nil
}

// Values returns every value in the table, scanning the outer slots
// in order and each sub-table in slot order.
func (d *DoubleKeyTable[V]) Values() []V {
	var values []V
	for _, e := range d.slots {
		if e != nil {
			values = append(values, e.sub.Values()...)
		}
	}
	return values
}

// ValuesOf returns every value stored under key1.
func (d *DoubleKeyTable[V]) ValuesOf(key1 string) ([]V, error) {
	pos, err := d.probeOuter(key1, false)
	if err != nil {
		return nil, err
	}
	return d.slots[pos].sub.Values(), nil
}

func (d *DoubleKeyTable[V]) String() string {
	var sb strings.Builder
	for _, e := range d.slots {
		if e == nil {
			continue
		}
		for _, key2 := range e.sub.Keys() {
			v, _ := e.sub.Get(key2)
			fmt.Fprintf(&sb, "%s, %s: %v\n", e.key, key2, v)
		}
	}
	return sb.String()
}
