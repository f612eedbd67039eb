package network

// Node is a station in the transport network. Congestion attributes are zero
// on the base graph and filled in on weighted copies by ApplyCongestion.
type Node struct {
	ID             int
	Name           string
	Latitude       float64
	Longitude      float64
	HasCoordinates bool

	CrowdLevel        float64
	CongestionPenalty float64
	IsTransfer        bool
}

// Edge is a directed connection between two stations on a single line.
// TravelTime keeps the schedule-derived minutes; Weight is what the route
// search minimizes and equals TravelTime on the base graph.
type Edge struct {
	FromID     int
	ToID       int
	Line       string
	TravelTime float64
	Weight     float64
}

// Graph is a directed multigraph over stations. Parallel edges between the
// same station pair are distinguished by Line.
type Graph struct {
	Nodes map[int]*Node
	Out   map[int][]*Edge

	// Weighted marks graphs produced by ApplyCongestion.
	Weighted bool
}

func NewGraph() *Graph {
	return &Graph{
		Nodes: map[int]*Node{},
		Out:   map[int][]*Edge{},
	}
}

func (g *Graph) HasNode(id int) bool {
	_, ok := g.Nodes[id]
	return ok
}

func (g *Graph) AddNode(n *Node) {
	g.Nodes[n.ID] = n
}

func (g *Graph) AddEdge(e *Edge) {
	g.Out[e.FromID] = append(g.Out[e.FromID], e)
}

func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

func (g *Graph) EdgeCount() int {
	count := 0
	for _, edges := range g.Out {
		count += len(edges)
	}
	return count
}

// StationName returns the node's name, falling back to "Station {id}" for
// placeholder nodes synthesized during ingestion.
func (g *Graph) StationName(id int) string {
	if n, ok := g.Nodes[id]; ok && n.Name != "" {
		return n.Name
	}
	return placeholderName(id)
}

// Clone returns a deep copy sharing no nodes or edges with the receiver.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		Nodes:    make(map[int]*Node, len(g.Nodes)),
		Out:      make(map[int][]*Edge, len(g.Out)),
		Weighted: g.Weighted,
	}
	for id, n := range g.Nodes {
		c := *n
		out.Nodes[id] = &c
	}
	for id, edges := range g.Out {
		copied := make([]*Edge, len(edges))
		for i, e := range edges {
			c := *e
			copied[i] = &c
		}
		out.Out[id] = copied
	}
	return out
}
