package queue

import "container/heap"

// item is one heap slot: a Passive plus the insertion sequence number
// used to break score ties (spec.md §5: "ties broken by insertion
// order").
type item struct {
	passive Passive
	seq     int
}

// passivePQ implements container/heap's interface, the way
// katalvlaran-lvlath's dijkstra.nodePQ does for its shortest-path
// frontier: a plain slice with Less/Swap/Push/Pop, ordered here by
// (score, insertion order) instead of path distance.
type passivePQ []item

func (pq passivePQ) Len() int { return len(pq) }
func (pq passivePQ) Less(i, j int) bool {
	if pq[i].passive.Score != pq[j].passive.Score {
		return pq[i].passive.Score < pq[j].passive.Score
	}
	return pq[i].seq < pq[j].seq
}
func (pq passivePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *passivePQ) Push(x interface{}) {
	*pq = append(*pq, x.(item))
}
func (pq *passivePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// Queue is the passive min-heap of spec.md §4.H.
type Queue struct {
	pq     passivePQ
	nextSeq int
}

// New returns an empty Queue.
func New() *Queue {
	q := &Queue{}
	heap.Init(&q.pq)
	return q
}

// Insert attaches every passive in ps to the heap, all owned by one
// parent rule (spec.md: "insert(rule_id, [passives])").
func (q *Queue) Insert(passives []Passive) {
	for _, p := range passives {
		heap.Push(&q.pq, item{passive: p, seq: q.nextSeq})
		q.nextSeq++
	}
}

// RemoveMin pops the lowest-score passive, or reports false if empty.
func (q *Queue) RemoveMin() (Passive, bool) {
	if q.pq.Len() == 0 {
		return Passive{}, false
	}
	it := heap.Pop(&q.pq).(item)
	return it.passive, true
}

// Len reports how many passives remain queued.
func (q *Queue) Len() int { return q.pq.Len() }

// MapMaybe applies f to every queued passive, dropping any for which f
// returns false (spec.md: "map_maybe(f)"), and rebuilds heap order.
func (q *Queue) MapMaybe(f func(Passive) (Passive, bool)) {
	kept := make(passivePQ, 0, len(q.pq))
	for _, it := range q.pq {
		if np, ok := f(it.passive); ok {
			kept = append(kept, item{passive: np, seq: it.seq})
		}
	}
	q.pq = kept
	heap.Init(&q.pq)
}
