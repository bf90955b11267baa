package computer

import (
	"errors"

	"github.com/Ckaii/hacknet/sorting"
)

// ErrUnknownComputer is returned when an operation references a
// computer that was never added (or has been removed).
var ErrUnknownComputer = errors.New("unknown computer")

// Manager keeps a flat collection of computers and answers grouping
// and filtering queries over it.
type Manager struct {
	computers []*Computer
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers a computer.
func (m *Manager) Add(c *Computer) {
	m.computers = append(m.computers, c)
}

// Remove unregisters a computer previously added.
func (m *Manager) Remove(c *Computer) error {
	for i, have := range m.computers {
		if have == c {
			m.computers = append(m.computers[:i], m.computers[i+1:]...)
			return nil
		}
	}
	return ErrUnknownComputer
}

// Edit replaces an existing computer with a new one.
func (m *Manager) Edit(old, updated *Computer) error {
	if err := m.Remove(old); err != nil {
		return err
	}
	m.Add(updated)
	return nil
}

// Computers returns the managed collection in insertion order.
func (m *Manager) Computers() []*Computer {
	return m.computers
}

// WithDifficulty returns every computer whose hacking difficulty is
// exactly diff, in insertion order.
func (m *Manager) WithDifficulty(diff int) []*Computer {
	var matched []*Computer
	for _, c := range m.computers {
		if c.HackingDifficulty == diff {
			matched = append(matched, c)
		}
	}
	return matched
}

// GroupByDifficulty partitions the collection by hacking difficulty,
// one group per distinct value, ordered by ascending difficulty.
func (m *Manager) GroupByDifficulty() [][]*Computer {
	if len(m.computers) == 0 {
		return nil
	}

	seen := make(map[int]struct{})
	var difficulties []int
	for _, c := range m.computers {
		if _, ok := seen[c.HackingDifficulty]; ok {
			continue
		}
		seen[c.HackingDifficulty] = struct{}{}
		difficulties = append(difficulties, c.HackingDifficulty)
	}
	difficulties = sorting.Mergesort(difficulties, func(d int) int { return d })

	groups := make([][]*Computer, 0, len(difficulties))
	for _, diff := range difficulties {
		groups = append(groups, m.WithDifficulty(diff))
	}
	return groups
}
