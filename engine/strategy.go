// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"strings"
)

// Strategy names a search algorithm.
type Strategy string

const (
	// StrategyBFS is unidirectional breadth-first search.
	StrategyBFS Strategy = "bfs"
	// StrategyBidirectional searches from both ends; the default.
	StrategyBidirectional Strategy = "bidirectional"
	// StrategyDFS finds some path depth-first; not necessarily shortest.
	StrategyDFS Strategy = "dfs"
)

// DefaultStrategy is used when none is configured.
const DefaultStrategy = StrategyBidirectional

// Strategies lists every known strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyBFS, StrategyBidirectional, StrategyDFS}
}

// ParseStrategy accepts a strategy name in any case. "bidir" is accepted
// as shorthand for "bidirectional"; the empty string selects the default.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultStrategy, nil
	case "bfs":
		return StrategyBFS, nil
	case "bidirectional", "bidir":
		return StrategyBidirectional, nil
	case "dfs":
		return StrategyDFS, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Shortest reports whether the strategy guarantees a shortest path.
func (s Strategy) Shortest() bool {
	return s == StrategyBFS || s == StrategyBidirectional
}
