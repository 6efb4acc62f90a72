package pathfind

// pathItem is a partial-path state held in the open set, ordered by fCost
// ascending with insertion order as a deterministic tie-breaker.
type pathItem struct {
	nodeID            int64
	path              []int64
	gCost             float64
	fCost             float64
	pathLengthKm      float64
	trafficLightCount int
	seq               int64
}

// pathPQ is a min-heap of *pathItem ordered by (fCost, seq) ascending.
type pathPQ []*pathItem

func (pq pathPQ) Len() int { return len(pq) }

func (pq pathPQ) Less(i, j int) bool {
	if pq[i].fCost != pq[j].fCost {
		return pq[i].fCost < pq[j].fCost
	}

	return pq[i].seq < pq[j].seq
}

func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }

func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
