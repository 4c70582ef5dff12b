// Package builder generates random general graphs for path-search
// visualisation.
//
// Two policies are provided:
//
//   - Circular: nodeCount nodes evenly spaced on a circle. A random spanning
//     tree is built first, so the graph is always connected, then extra random
//     edges are added towards a target average degree.
//   - Proximity: nodeCount nodes scattered uniformly in a padded rectangle.
//     Each node connects to its nearest neighbours within a radius, subject to
//     a per-node degree cap; a repair pass gives every isolated node one edge.
//
// RandomGraph picks the policy from the fields of a Spec, mirroring callers
// that configure generation with a single options object.
//
// Node IDs are "n0", "n1", … in creation order. All randomness flows through
// an rng.Source: WithSeed selects the deterministic LCG so that identical seed
// and parameters reproduce identical node positions and edge lists.
//
// FindOppositeCornerNodes picks the two nodes closest to the top-left and
// bottom-right corners, a convenient default start/goal pair for clouds.
package builder
