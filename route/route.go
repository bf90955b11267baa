package route

import (
	"errors"

	"github.com/Ckaii/hacknet/computer"
)

// ErrEmptySeries is returned when a removal is attempted on a series
// that holds no computer.
var ErrEmptySeries = errors.New("no computer to remove")

// Store is the content of a route: a Series, a Split, or nil for an
// empty route.
type Store interface {
	isStore()
}

// Series is one computer followed by the rest of the route.
//
//	--computer--following--
type Series struct {
	Computer  *computer.Computer
	Following Route
}

// Split is a fork into two parallel branches, rejoined by a following
// route.
//
//	   _____top______
//	  /              \
//	-<                >-following-
//	  \____bottom____/
type Split struct {
	Top       Route
	Bottom    Route
	Following Route
}

func (Series) isStore() {}
func (Split) isStore()  {}

// Route is a persistent branching sequence of computers.
type Route struct {
	store Store
}

// New returns a route wrapping the given store. New(nil) is the empty
// route, as is the zero value.
func New(store Store) Route {
	return Route{store: store}
}

// Store returns the route's content; nil for an empty route.
func (r Route) Store() Store {
	return r.store
}

// IsEmpty reports whether the route holds nothing.
func (r Route) IsEmpty() bool {
	return r.store == nil
}

// AddComputerBefore returns a new route with c in series before
// everything currently in the route.
func (r Route) AddComputerBefore(c *computer.Computer) Route {
	return Route{store: Series{Computer: c, Following: r}}
}

// AddEmptyBranchBefore returns a new route with an empty split before
// everything currently in the route.
func (r Route) AddEmptyBranchBefore() Route {
	return Route{store: Split{Following: r}}
}

// Computers returns every computer on the route, visiting splits
// top, bottom, then following.
func (r Route) Computers() []*computer.Computer {
	switch s := r.store.(type) {
	case Split:
		all := s.Top.Computers()
		all = append(all, s.Bottom.Computers()...)
		return append(all, s.Following.Computers()...)
	case Series:
		return append([]*computer.Computer{s.Computer}, s.Following.Computers()...)
	default:
		return nil
	}
}

// RemoveComputer returns the store resulting from removing the
// computer at the head of this series.
func (s Series) RemoveComputer() (Store, error) {
	if s.Computer == nil {
		return nil, ErrEmptySeries
	}
	return s.Following.store, nil
}

// AddComputerBefore returns the store resulting from adding c in
// series before the current computer.
func (s Series) AddComputerBefore(c *computer.Computer) Store {
	return Series{Computer: c, Following: Route{store: s}}
}

// AddComputerAfter returns the store resulting from adding c after
// the current computer but before the following route.
func (s Series) AddComputerAfter(c *computer.Computer) Store {
	return Series{
		Computer:  s.Computer,
		Following: Route{store: Series{Computer: c, Following: s.Following}},
	}
}

// AddEmptyBranchBefore returns the store resulting from adding an
// empty split whose following path is this series.
func (s Series) AddEmptyBranchBefore() Store {
	return Split{Following: Route{store: s}}
}

// AddEmptyBranchAfter returns the store resulting from adding an
// empty split after the current computer but before the following
// route.
func (s Series) AddEmptyBranchAfter() Store {
	return Series{
		Computer:  s.Computer,
		Following: Route{store: Split{Following: s.Following}},
	}
}

// RemoveBranch returns the store resulting from dropping both
// branches, leaving just the rejoining route.
func (s Split) RemoveBranch() Store {
	return s.Following.store
}

// FollowPath walks the route, handing every split to the virus and
// feeding it every computer along the chosen path. The walk is
// iterative; continuations after a split are kept on an explicit
// stack so deep routes cannot exhaust the call stack.
func (r Route) FollowPath(v VirusType) {
	var pending []Store

	store := r.store
	for {
		switch s := store.(type) {
		case Split:
			decision := v.SelectBranch(s.Top, s.Bottom)
			tracer().Debugf("split reached, decision %v", decision)
			pending = append(pending, s.RemoveBranch())
			switch decision {
			case TakeTop:
				store = s.Top.store
			case TakeBottom:
				store = s.Bottom.store
			default:
				return
			}

		case Series:
			v.AddComputer(s.Computer)
			if !s.Following.IsEmpty() {
				store = s.Following.store
			} else if len(pending) > 0 {
				store = pending[len(pending)-1]
				pending = pending[:len(pending)-1]
			} else {
				return
			}

		default:
			if len(pending) == 0 {
				return
			}
			store = pending[len(pending)-1]
			pending = pending[:len(pending)-1]
		}
	}
}
