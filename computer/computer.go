// Package computer defines the record type stored throughout hacknet
// and two façades over a collection of records: Manager for grouping
// and filtering, Organiser for rank assignment and rank lookup.
package computer

import "fmt"

// Computer is a target machine on the network. Rank is the only
// mutable field by convention; Organiser assigns it after sorting.
type Computer struct {
	Name              string
	HackingDifficulty int
	RiskFactor        float64
	HackedValue       float64
	Rank              int
}

func (c *Computer) String() string {
	return fmt.Sprintf("%s (difficulty=%d, risk=%.2f, value=%.2f)",
		c.Name, c.HackingDifficulty, c.RiskFactor, c.HackedValue)
}
