// Command hacknet is a small demo driver: it loads a sample network
// of computers into the hash tables, prints the groupings and walks a
// branching route with every traversal policy.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/Ckaii/hacknet/computer"
	"github.com/Ckaii/hacknet/hashtable"
	"github.com/Ckaii/hacknet/route"
)

type options struct {
	Difficulty int  `short:"d" long:"difficulty" description:"Only list computers with this hacking difficulty" default:"-1"`
	SkipRoutes bool `long:"skip-routes" description:"Do not run the route traversal demo"`
}

func sampleComputers() []*computer.Computer {
	return []*computer.Computer{
		{Name: "alpha", HackingDifficulty: 40, RiskFactor: 0.5, HackedValue: 12},
		{Name: "bravo", HackingDifficulty: 20, RiskFactor: 0.0, HackedValue: 4},
		{Name: "charlie", HackingDifficulty: 20, RiskFactor: 1.5, HackedValue: 9},
		{Name: "delta", HackingDifficulty: 30, RiskFactor: 2.0, HackedValue: 1},
	}
}

func run(opts *options) error {
	computers := sampleComputers()

	manager := computer.NewManager()
	for _, c := range computers {
		manager.Add(c)
	}

	if opts.Difficulty >= 0 {
		for _, c := range manager.WithDifficulty(opts.Difficulty) {
			fmt.Println(c)
		}
		return nil
	}

	fmt.Println("groups by difficulty:")
	for _, group := range manager.GroupByDifficulty() {
		for _, c := range group {
			fmt.Printf("  %v\n", c)
		}
	}

	organiser := computer.NewOrganiser()
	organiser.AddComputers(computers)
	fmt.Println("ranked:")
	for _, c := range computers {
		pos, err := organiser.CurPosition(c)
		if err != nil {
			return err
		}
		fmt.Printf("  %-8s rank %d\n", c.Name, pos)
	}

	table := hashtable.NewDoubleKeyTable[*computer.Computer]()
	for _, c := range computers {
		owner := fmt.Sprintf("net%d", c.HackingDifficulty/20)
		if err := table.Set(owner, c.Name, c); err != nil {
			return err
		}
	}
	fmt.Printf("double-key table: %d networks\n", table.Len())

	names := hashtable.NewInfiniteHashTable[*computer.Computer]()
	for _, c := range computers {
		names.Set(c.Name, c)
	}
	fmt.Printf("names sorted: %v\n", names.SortedKeys())

	if opts.SkipRoutes {
		return nil
	}

	// series(alpha, split(series(bravo), series(charlie), series(delta)))
	branched := route.New(route.Series{
		Computer: computers[0],
		Following: route.New(route.Split{
			Top:       route.Route{}.AddComputerBefore(computers[1]),
			Bottom:    route.Route{}.AddComputerBefore(computers[2]),
			Following: route.Route{}.AddComputerBefore(computers[3]),
		}),
	})

	viruses := map[string]route.VirusType{
		"top":    &route.TopVirus{},
		"bottom": &route.BottomVirus{},
		"lazy":   &route.LazyVirus{},
		"risk":   &route.RiskAverseVirus{},
		"fancy":  &route.FancyVirus{},
	}
	for name, v := range viruses {
		branched.FollowPath(v)
		fmt.Printf("virus %-6s visited:", name)
		for _, c := range v.Computers() {
			fmt.Printf(" %s", c.Name)
		}
		fmt.Println()
	}

	return nil
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	if err := run(&opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
