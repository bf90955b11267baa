package hashtable

// Stats is a point-in-time snapshot of a table's occupancy, mainly a
// testing and debugging aid.
type Stats struct {
	Size       int
	TableSize  int
	SizeIndex  int
	LoadFactor float64
}

// Stats reports the table's current occupancy.
func (t *ProbeTable[V]) Stats() Stats {
	return Stats{
		Size:       t.count,
		TableSize:  len(t.slots),
		SizeIndex:  t.sizeIndex,
		LoadFactor: float64(t.count) / float64(len(t.slots)),
	}
}

// Stats reports the outer level's occupancy; Size counts key1 groups.
func (d *DoubleKeyTable[V]) Stats() Stats {
	return Stats{
		Size:       d.count,
		TableSize:  len(d.slots),
		SizeIndex:  d.sizeIndex,
		LoadFactor: float64(d.count) / float64(len(d.slots)),
	}
}
