package hashtable

import (
	"fmt"
	"strings"

	"github.com/Ckaii/hacknet/sorting"
)

// infiniteTableSize is the fixed node width: 26 character slots plus
// one overflow slot for keys shorter than the node's level.
const infiniteTableSize = 27

type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotLeaf
	slotChild
)

type infSlot[V any] struct {
	kind  slotKind
	key   string
	value V
	child *InfiniteHashTable[V]
}

// Item is one key/value leaf of an InfiniteHashTable.
type Item[V any] struct {
	Key   string
	Value V
}

// InfiniteHashTable maps a string key to a value without probing: a
// colliding slot is replaced by a nested table one level deeper,
// discriminating on the next key character. Nesting depth is bounded
// by the key length plus the overflow slot, so distinct finite keys
// always separate.
type InfiniteHashTable[V any] struct {
	slots [infiniteTableSize]infSlot[V]
	count int
	level int
}

// NewInfiniteHashTable returns an empty root node.
func NewInfiniteHashTable[V any]() *InfiniteHashTable[V] {
	return &InfiniteHashTable[V]{}
}

// hash routes by the character at position level, or to the overflow
// slot when the key is too short to have one.
func (t *InfiniteHashTable[V]) hash(key string) int {
	if t.level < len(key) {
		return int(key[t.level]) % (infiniteTableSize - 1)
	}
	return infiniteTableSize - 1
}

// Get returns the value stored under key.
func (t *InfiniteHashTable[V]) Get(key string) (V, error) {
	pos := t.hash(key)
	s := &t.slots[pos]

	switch s.kind {
	case slotChild:
		return s.child.Get(key)
	case slotLeaf:
		if s.key == key {
			return s.value, nil
		}
	}

	var zero V
	return zero, fmt.Errorf("infinite table %q: %w", key, ErrKeyNotFound)
}

// Set inserts or overwrites the value under key. A collision between
// two different keys spawns a child node one level deeper holding
// both.
func (t *InfiniteHashTable[V]) Set(key string, value V) {
	pos := t.hash(key)
	s := &t.slots[pos]

	switch s.kind {
	case slotEmpty:
		*s = infSlot[V]{kind: slotLeaf, key: key, value: value}
		t.count++

	case slotChild:
		known := s.child.Contains(key)
		s.child.Set(key, value)
		if !known {
			t.count++
		}

	case slotLeaf:
		if s.key == key {
			s.value = value
			return
		}
		child := &InfiniteHashTable[V]{level: t.level + 1}
		child.Set(s.key, s.value)
		child.Set(key, value)
		tracer().Debugf("collision on %q/%q at level %d, nesting", s.key, key, t.level)
		*s = infSlot[V]{kind: slotChild, child: child}
		t.count++
	}
}

// Delete removes key. A child node emptied by the removal is cleared;
// a child left holding exactly one leaf collapses back into a plain
// leaf at this level.
func (t *InfiniteHashTable[V]) Delete(key string) error {
	pos := t.hash(key)
	s := &t.slots[pos]

	switch s.kind {
	case slotChild:
		before := s.child.Len()
		if err := s.child.Delete(key); err != nil {
			return err
		}
		t.count -= before - s.child.Len()

		switch s.child.Len() {
		case 0:
			*s = infSlot[V]{}
		case 1:
			remaining := s.child.Items()[0]
			*s = infSlot[V]{kind: slotLeaf, key: remaining.Key, value: remaining.Value}
		}
		return nil

	case slotLeaf:
		if s.key == key {
			*s = infSlot[V]{}
			t.count--
			return nil
		}
	}

	return fmt.Errorf("infinite table %q: %w", key, ErrKeyNotFound)
}

// Contains reports whether key is in the table.
func (t *InfiniteHashTable[V]) Contains(key string) bool {
	_, err := t.Get(key)
	return err == nil
}

// Len returns the number of leaves reachable from this node.
func (t *InfiniteHashTable[V]) Len() int {
	return t.count
}

// Items returns every leaf of the subtree, flattened in slot order.
func (t *InfiniteHashTable[V]) Items() []Item[V] {
	items := make([]Item[V], 0, t.count)
	for i := range t.slots {
		s := &t.slots[i]
		switch s.kind {
		case slotLeaf:
			items = append(items, Item[V]{Key: s.key, Value: s.value})
		case slotChild:
			items = append(items, s.child.Items()...)
		}
	}
	return items
}

// Path returns the sequence of slot indices walked from the root to
// the leaf holding key.
func (t *InfiniteHashTable[V]) Path(key string) ([]int, error) {
	var positions []int

	cur := t
	for {
		pos := cur.hash(key)
		positions = append(positions, pos)

		s := &cur.slots[pos]
		if s.kind == slotChild {
			cur = s.child
			continue
		}
		if s.kind == slotLeaf && s.key == key {
			return positions, nil
		}
		return nil, fmt.Errorf("infinite table %q: %w", key, ErrKeyNotFound)
	}
}

// SortedKeys returns every key in the table in ascending order.
func (t *InfiniteHashTable[V]) SortedKeys() []string {
	keys := make([]string, 0, t.count)
	for _, item := range t.Items() {
		keys = append(keys, item.Key)
	}
	return sorting.Mergesort(keys, func(k string) string { return k })
}

func (t *InfiniteHashTable[V]) String() string {
	var sb strings.Builder
	for _, item := range t.Items() {
		fmt.Fprintf(&sb, "(%s, %v)\n", item.Key, item.Value)
	}
	return sb.String()
}
