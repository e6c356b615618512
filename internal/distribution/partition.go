// Package distribution implements the deterministic item-to-agent
// partition used when splitting an uploaded list across the active
// agent pool.
package distribution

// AgentFor returns the pool position that owns global item index i when
// n items are split across the given number of agents.
//
// The first base*agents items (base = n/agents) are assigned in
// contiguous blocks of size base; the remaining n mod agents items go
// round-robin one per agent starting from pool position 0. Net effect:
// the first n mod agents agents receive base+1 items, the rest base.
// When base is 0 this degenerates to the first n agents receiving one
// item each, with no special casing.
func AgentFor(i, n, agents int) int {
	base := n / agents
	if base > 0 && i < base*agents {
		return i / base
	}
	return i - base*agents
}

// Counts returns the number of items each pool position receives.
func Counts(n, agents int) []int {
	base := n / agents
	remainder := n % agents
	counts := make([]int, agents)
	for i := range counts {
		counts[i] = base
		if i < remainder {
			counts[i]++
		}
	}
	return counts
}

// Split partitions item indices 0..n-1 into per-agent ordered lists.
// Every index appears in exactly one list, and each list is ascending.
// Pool order is the caller's: whatever order the active-agent query
// returned, which is load-bearing for reproducibility.
func Split(n, agents int) [][]int {
	out := make([][]int, agents)
	for i := 0; i < n; i++ {
		a := AgentFor(i, n, agents)
		out[a] = append(out[a], i)
	}
	return out
}
