// Command schedcheck schedules the system groups of a YAML plan file and
// prints each group's order, or the cycle diagnostics when a group fails.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/l1jgo/engine/internal/core/system"
	"github.com/l1jgo/engine/internal/plan"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: schedcheck <plan.yaml>...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		ok, err := check(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func check(path string) (bool, error) {
	p, err := plan.Load(path)
	if err != nil {
		return false, err
	}
	out := message.NewPrinter(language.English)
	orders := p.Schedule()

	out.Printf("%s: %d groups\n", path, len(orders))
	for _, o := range orders {
		if o.Err != nil {
			out.Printf("  \033[31m✗\033[0m %s\n", o.Name)
			var cerr *system.CycleError
			if errors.As(o.Err, &cerr) {
				for _, s := range cerr.Stuck {
					out.Printf("      %s waits for %v\n", s.Key, s.WaitingFor)
				}
			} else {
				out.Printf("      %v\n", o.Err)
			}
			continue
		}
		out.Printf("  \033[32m✓\033[0m %s (%d systems)\n", o.Name, len(o.Order))
		for i, k := range o.Order {
			out.Printf("      %2d. %s\n", i+1, k)
		}
	}
	return !plan.Failed(orders), nil
}
