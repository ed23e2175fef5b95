// SPDX-License-Identifier: MIT

// Command degrees finds how many co-starring movies separate two people.
//
//	degrees search "Kevin Bacon" "Tom Cruise" --data small
//	degrees batch pairs.csv --strategy bfs
//	degrees serve --addr :8080
//	degrees bench --people 5000 --movies 3000 --cast 4
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
