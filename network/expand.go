package network

// Synthetic line markers carried by edges of the expanded graph.
const (
	TransferLine = "Transfer"
	startLine    = "Start"
	endLine      = "End"
)

// expNode identifies a node of the line-aware auxiliary graph: a
// (station, line) pair for stations with outgoing service, a bare station
// for dead ends, or one of the two virtual terminals.
type expNode struct {
	station int
	line    string
	virtual byte // 0 regular, 1 virtual start, 2 virtual end
}

type expEdge struct {
	to     expNode
	line   string
	weight float64
}

type expandedGraph struct {
	adj   map[expNode][]expEdge
	start expNode
	end   expNode
}

// expandLineAware builds the auxiliary graph in which line identity is part
// of node identity, so that a transfer penalty applies exactly when the
// incoming and outgoing lines differ.
//
// Every station is replaced by one node per line it serves outward, with
// penalty-weighted transfer edges between each pair of lines at the same
// station. On a congestion-weighted graph the transfer edge additionally
// pays the station's stored congestion penalty (which already embeds the
// hub multiplier). Travel edges are copied between same-line nodes; a
// virtual start and end node with zero-weight connectors let the search
// begin and finish on any line serving the terminals.
func expandLineAware(g *Graph, startID, endID int, opts RouteOptions) *expandedGraph {
	linesAt := map[int]map[string]bool{}
	for id, edges := range g.Out {
		for _, e := range edges {
			if linesAt[id] == nil {
				linesAt[id] = map[string]bool{}
			}
			linesAt[id][e.Line] = true
		}
	}

	ex := &expandedGraph{adj: map[expNode][]expEdge{}}
	addEdge := func(from expNode, e expEdge) {
		ex.adj[from] = append(ex.adj[from], e)
	}

	// Transfer edges between distinct lines at each station.
	for id, lines := range linesAt {
		penalty := opts.TransferPenalty
		if g.Weighted {
			if n, ok := g.Nodes[id]; ok {
				penalty += n.CongestionPenalty
			}
		}
		for from := range lines {
			for to := range lines {
				if from == to {
					continue
				}
				addEdge(expNode{station: id, line: from}, expEdge{
					to:     expNode{station: id, line: to},
					line:   TransferLine,
					weight: penalty,
				})
			}
		}
	}

	// Travel edges between same-line nodes. An edge whose destination has
	// outgoing service but not on this line is dropped, matching how the
	// network is built from per-line schedule chains.
	for id, edges := range g.Out {
		for _, e := range edges {
			if linesAt[id] == nil || !linesAt[id][e.Line] {
				continue
			}
			from := expNode{station: id, line: e.Line}
			if destLines, ok := linesAt[e.ToID]; ok {
				if destLines[e.Line] {
					addEdge(from, expEdge{
						to:     expNode{station: e.ToID, line: e.Line},
						line:   e.Line,
						weight: e.Weight,
					})
				}
			} else {
				// Dead-end station keeps its plain identity.
				addEdge(from, expEdge{
					to:     expNode{station: e.ToID},
					line:   e.Line,
					weight: e.Weight,
				})
			}
		}
	}

	// Virtual terminals: the traveler has not committed to a line yet.
	if lines, ok := linesAt[startID]; ok {
		ex.start = expNode{station: startID, virtual: 1}
		for line := range lines {
			addEdge(ex.start, expEdge{
				to:     expNode{station: startID, line: line},
				line:   startLine,
				weight: 0,
			})
		}
	} else {
		ex.start = expNode{station: startID}
	}

	if lines, ok := linesAt[endID]; ok {
		ex.end = expNode{station: endID, virtual: 2}
		for line := range lines {
			addEdge(expNode{station: endID, line: line}, expEdge{
				to:     ex.end,
				line:   endLine,
				weight: 0,
			})
		}
	} else {
		ex.end = expNode{station: endID}
	}

	return ex
}
