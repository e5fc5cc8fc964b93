// Package queue implements the passive queue of spec.md §4.H: a
// min-heap over candidate overlaps, ordered best-first by score, with
// orphan passives (whose rules have since been retired) discarded
// lazily on dequeue rather than eagerly tracked.
package queue

// Passive is the compact record spec.md §3 describes: enough to
// re-derive the overlap it names without storing the overlap itself.
type Passive struct {
	Score    int
	Rule1ID  int
	Rule2ID  int
	Position int
}
