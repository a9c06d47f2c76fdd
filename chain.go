package parallel

// wayEdge is one end of a way seen from a vertex: the way and the vertex at
// its other end.
type wayEdge struct {
	way int
	to  int
}

// spanningPath orders the nodes of ways into a single sequence. Each way is
// an undirected edge between its first and last node; the edges must form
// one simple path or one simple cycle. A cycle is closed by repeating its
// start node at the end.
func spanningPath(ways []CopiedWay) ([]int, error) {
	if len(ways) == 0 {
		return nil, &TopologyError{Reason: "no ways", Vertex: -1, Way: -1}
	}

	adj := make(map[int][]wayEdge, len(ways)+1)
	for i, w := range ways {
		if len(w.Nodes) < 2 {
			return nil, &TopologyError{Reason: "way has fewer than two vertices", Vertex: -1, Way: i}
		}
		a, b := w.Nodes[0], w.Nodes[len(w.Nodes)-1]
		adj[a] = append(adj[a], wayEdge{way: i, to: b})
		adj[b] = append(adj[b], wayEdge{way: i, to: a})
	}

	// Visit endpoints in way order so errors and the start are deterministic.
	start := -1
	for _, w := range ways {
		for _, v := range [2]int{w.Nodes[0], w.Nodes[len(w.Nodes)-1]} {
			switch deg := len(adj[v]); {
			case deg > 2:
				return nil, &TopologyError{Reason: "branching vertex", Vertex: v, Way: -1}
			case deg == 1 && start < 0:
				start = v
			}
		}
	}
	if start < 0 {
		start = ways[0].Nodes[0]
	}

	used := make([]bool, len(ways))
	order := []int{start}
	cur := start
	for {
		next, ok := nextEdge(adj[cur], used)
		if !ok {
			break
		}
		used[next.way] = true
		nodes := ways[next.way].Nodes
		if nodes[0] == cur {
			order = append(order, nodes[1:]...)
		} else {
			for i := len(nodes) - 2; i >= 0; i-- {
				order = append(order, nodes[i])
			}
		}
		cur = next.to
	}

	for i, u := range used {
		if !u {
			return nil, &TopologyError{Reason: "ways are not connected", Vertex: -1, Way: i}
		}
	}
	return order, nil
}

func nextEdge(edges []wayEdge, used []bool) (wayEdge, bool) {
	for _, e := range edges {
		if !used[e.way] {
			return e, true
		}
	}
	return wayEdge{}, false
}
