package computer

import (
	"strings"

	"github.com/Ckaii/hacknet/sorting"
)

// Organiser maintains a ranked ordering over its computers. Ranks are
// assigned after a stable sort by (hacking difficulty, risk factor,
// name) and looked up in logarithmic time through a materialized rank
// list.
type Organiser struct {
	computers []*Computer
	ranks     []int
}

// NewOrganiser returns an empty organiser.
func NewOrganiser() *Organiser {
	return &Organiser{}
}

// compareComputers orders by hacking difficulty, then risk factor,
// then name.
func compareComputers(a, b *Computer) int {
	if a.HackingDifficulty != b.HackingDifficulty {
		if a.HackingDifficulty < b.HackingDifficulty {
			return -1
		}
		return 1
	}
	if a.RiskFactor != b.RiskFactor {
		if a.RiskFactor < b.RiskFactor {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

// AddComputers registers a batch of computers, re-sorts the whole
// collection and re-assigns every rank.
func (o *Organiser) AddComputers(computers []*Computer) {
	o.computers = append(o.computers, computers...)
	o.computers = sorting.MergesortFunc(o.computers, compareComputers)

	o.ranks = make([]int, len(o.computers))
	for i, c := range o.computers {
		c.Rank = i
		o.ranks[i] = i
	}
}

// CurPosition returns the current position of c in the ranked order.
func (o *Organiser) CurPosition(c *Computer) (int, error) {
	known := false
	for _, have := range o.computers {
		if have == c {
			known = true
			break
		}
	}
	if !known {
		return 0, ErrUnknownComputer
	}

	return sorting.BinarySearch(o.ranks, c.Rank), nil
}
