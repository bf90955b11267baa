package hashtable

import (
	"github.com/Ckaii/hacknet/sorting"
)

// GroupedValues returns the table's values partitioned by key1, with
// groups ordered by ascending key1. Each group keeps its sub-table's
// slot order.
func (d *DoubleKeyTable[V]) GroupedValues() [][]V {
	keys := sorting.Mergesort(d.Keys(), func(k string) string { return k })

	groups := make([][]V, 0, len(keys))
	for _, key1 := range keys {
		values, err := d.ValuesOf(key1)
		if err != nil {
			continue
		}
		groups = append(groups, values)
	}
	return groups
}
