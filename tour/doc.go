// Package tour finds the shortest walk that starts at a fixed node and visits
// every goal node, by brute force over goal orderings.
//
// Search proceeds in two phases:
//
//  1. Pairwise table. For every ordered pair (from, to) of distinct nodes
//     drawn from {start} ∪ goals, a bidirectional BFS (package bfs) computes a
//     minimum-hop path. Pairs without a path are absent from the table.
//  2. Orderings. Every permutation of the goals is tried in generation order
//     (see Permutations). The tour [start, p1, …, pk] is stitched from the
//     table's segments; the shared endpoint of consecutive segments appears
//     once. A tour with a missing segment is invalid. The shortest valid tour
//     wins; a strictly shorter tour is needed to replace the current best, so
//     among equal lengths the first one generated is kept.
//
// The trace lists every valid tour's path as tour-test steps (Attempt is the
// permutation's 1-based generation index), then the winner as tour-best steps.
//
// Complexity: O(k² · (V + E)) for the table plus O(k! · k · L) for the
// orderings, where k is the goal count and L the stitched path length.
// Factorial growth makes this practical only for small k; WithMaxGoals turns
// an oversized request into ErrTooManyGoals instead of a long computation.
package tour
