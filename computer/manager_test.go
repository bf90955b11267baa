package computer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_AddRemove(t *testing.T) {
	m := NewManager()

	a := &Computer{Name: "alpha", HackingDifficulty: 10}
	b := &Computer{Name: "bravo", HackingDifficulty: 20}

	m.Add(a)
	m.Add(b)
	assert.Equal(t, []*Computer{a, b}, m.Computers())

	require.NoError(t, m.Remove(a))
	assert.Equal(t, []*Computer{b}, m.Computers())

	assert.ErrorIs(t, m.Remove(a), ErrUnknownComputer)
}

func TestManager_Edit(t *testing.T) {
	m := NewManager()

	old := &Computer{Name: "alpha", HackingDifficulty: 10}
	updated := &Computer{Name: "alpha", HackingDifficulty: 15}

	m.Add(old)
	require.NoError(t, m.Edit(old, updated))
	assert.Equal(t, []*Computer{updated}, m.Computers())

	assert.ErrorIs(t, m.Edit(old, updated), ErrUnknownComputer)
}

func TestManager_WithDifficulty(t *testing.T) {
	m := NewManager()

	a := &Computer{Name: "alpha", HackingDifficulty: 20}
	b := &Computer{Name: "bravo", HackingDifficulty: 30}
	c := &Computer{Name: "charlie", HackingDifficulty: 20}

	m.Add(a)
	m.Add(b)
	m.Add(c)

	assert.Equal(t, []*Computer{a, c}, m.WithDifficulty(20))
	assert.Equal(t, []*Computer{b}, m.WithDifficulty(30))
	assert.Empty(t, m.WithDifficulty(99))
}

func TestManager_GroupByDifficulty(t *testing.T) {
	m := NewManager()

	a := &Computer{Name: "alpha", HackingDifficulty: 40}
	b := &Computer{Name: "bravo", HackingDifficulty: 20}
	c := &Computer{Name: "charlie", HackingDifficulty: 20}
	d := &Computer{Name: "delta", HackingDifficulty: 30}

	for _, comp := range []*Computer{a, b, c, d} {
		m.Add(comp)
	}

	groups := m.GroupByDifficulty()
	require.Len(t, groups, 3)

	// Ascending difficulty: [20, 20], [30], [40].
	assert.Equal(t, []*Computer{b, c}, groups[0])
	assert.Equal(t, []*Computer{d}, groups[1])
	assert.Equal(t, []*Computer{a}, groups[2])
}

func TestManager_GroupByDifficulty_Empty(t *testing.T) {
	assert.Empty(t, NewManager().GroupByDifficulty())
}
