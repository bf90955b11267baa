package route

import (
	"math"

	"github.com/Ckaii/hacknet/computer"
)

// BranchDecision is the outcome a virus returns at a split.
type BranchDecision int

const (
	TakeTop BranchDecision = iota
	TakeBottom
	Stop
)

func (d BranchDecision) String() string {
	switch d {
	case TakeTop:
		return "top"
	case TakeBottom:
		return "bottom"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// VirusType decides which branch to follow at every split and
// accumulates the computers visited along the way. The set of
// variants is fixed; all of them embed virusBase for the
// accumulation.
type VirusType interface {
	AddComputer(c *computer.Computer)
	Computers() []*computer.Computer
	SelectBranch(top, bottom Route) BranchDecision
}

type virusBase struct {
	computers []*computer.Computer
}

func (b *virusBase) AddComputer(c *computer.Computer) {
	b.computers = append(b.computers, c)
}

func (b *virusBase) Computers() []*computer.Computer {
	return b.computers
}

// TopVirus always takes the top branch.
type TopVirus struct {
	virusBase
}

func (v *TopVirus) SelectBranch(top, bottom Route) BranchDecision {
	return TakeTop
}

// BottomVirus always takes the bottom branch.
type BottomVirus struct {
	virusBase
}

func (v *BottomVirus) SelectBranch(top, bottom Route) BranchDecision {
	return TakeBottom
}

// LazyVirus peeks at the first computer on each branch and takes the
// easier one, stopping on a tie. A branch without an immediate
// computer is preferred over one with.
type LazyVirus struct {
	virusBase
}

func (v *LazyVirus) SelectBranch(top, bottom Route) BranchDecision {
	topSeries, topOK := top.Store().(Series)
	botSeries, botOK := bottom.Store().(Series)

	if topOK && botOK {
		switch {
		case topSeries.Computer.HackingDifficulty < botSeries.Computer.HackingDifficulty:
			return TakeTop
		case topSeries.Computer.HackingDifficulty > botSeries.Computer.HackingDifficulty:
			return TakeBottom
		default:
			return Stop
		}
	}
	if topOK {
		return TakeBottom
	}
	return TakeTop
}

// RiskAverseVirus scores each branch's first computer and prefers low
// risk: a zero-risk computer wins outright (lower difficulty breaking
// a double-zero tie), otherwise the higher of difficulty and half the
// hacked value, divided by the risk factor, decides. Remaining ties
// go to the lower risk factor, then to a stop.
type RiskAverseVirus struct {
	virusBase
}

func (v *RiskAverseVirus) SelectBranch(top, bottom Route) BranchDecision {
	topSeries, topOK := top.Store().(Series)
	botSeries, botOK := bottom.Store().(Series)

	if topOK && botOK {
		tc, bc := topSeries.Computer, botSeries.Computer

		if tc.RiskFactor == 0 && bc.RiskFactor == 0 {
			if tc.HackingDifficulty < bc.HackingDifficulty {
				return TakeTop
			}
			if tc.HackingDifficulty > bc.HackingDifficulty {
				return TakeBottom
			}
		}
		if tc.RiskFactor == 0 {
			return TakeTop
		}
		if bc.RiskFactor == 0 {
			return TakeBottom
		}

		topScore := math.Max(float64(tc.HackingDifficulty), tc.HackedValue/2) / tc.RiskFactor
		botScore := math.Max(float64(bc.HackingDifficulty), bc.HackedValue/2) / bc.RiskFactor

		if topScore > botScore {
			return TakeTop
		}
		if topScore < botScore {
			return TakeBottom
		}

		if tc.RiskFactor < bc.RiskFactor {
			return TakeTop
		}
		if tc.RiskFactor > bc.RiskFactor {
			return TakeBottom
		}
		return Stop
	}

	// A lone series faces a split: look inside the split's own
	// alternatives before committing.
	if topOK {
		if sp, ok := bottom.Store().(Split); ok {
			return v.SelectBranch(sp.Top, sp.Bottom)
		}
		return TakeTop
	}
	if botOK {
		if sp, ok := top.Store().(Split); ok {
			return v.SelectBranch(sp.Top, sp.Bottom)
		}
		return TakeTop
	}
	return TakeTop
}

// FancyCalc is the postfix expression FancyVirus evaluates to derive
// its hacked-value threshold.
const FancyCalc = "7 3 + 8 - 2 * 2 /"

// FancyVirus compares each branch's hacked value against a threshold
// computed from FancyCalc: below the threshold takes the top branch,
// above it takes the bottom one, anything else stops. A branch
// without an immediate computer is preferred over one with.
type FancyVirus struct {
	virusBase
}

func (v *FancyVirus) SelectBranch(top, bottom Route) BranchDecision {
	topSeries, topOK := top.Store().(Series)
	botSeries, botOK := bottom.Store().(Series)

	if topOK && botOK {
		threshold, err := EvalPostfix(FancyCalc)
		if err != nil {
			tracer().Errorf("fancy virus threshold: %v", err)
			return Stop
		}

		if topSeries.Computer.HackedValue < threshold {
			return TakeTop
		}
		if botSeries.Computer.HackedValue > threshold {
			return TakeBottom
		}
		return Stop
	}
	if topOK {
		return TakeBottom
	}
	return TakeTop
}
