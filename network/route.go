package network

import (
	"container/heap"
	"fmt"
	"log"
	"math"
)

// RouteOptions tunes the line-aware route search.
type RouteOptions struct {
	// TransferPenalty is the minutes charged for changing lines at a station.
	TransferPenalty float64
}

func DefaultRouteOptions() RouteOptions {
	return RouteOptions{TransferPenalty: 5.0}
}

// Segment is one leg of an itinerary between two distinct stations.
type Segment struct {
	FromStationID   int     `json:"from_station_id"`
	FromStationName string  `json:"from_station_name"`
	ToStationID     int     `json:"to_station_id"`
	ToStationName   string  `json:"to_station_name"`
	Line            string  `json:"transport_id"`
	TravelTimeMins  float64 `json:"travel_time_mins"`
	IsTransfer      bool    `json:"is_transfer"`
}

// RouteInfo describes a computed itinerary. On failure Error is set and the
// remaining fields are zero.
type RouteInfo struct {
	StationNames        []string  `json:"station_names,omitempty"`
	NumStations         int       `json:"num_stations,omitempty"`
	TravelTimeMins      float64   `json:"travel_time_mins,omitempty"`
	TravelTimeFormatted string    `json:"travel_time_formatted,omitempty"`
	Segments            []Segment `json:"segments,omitempty"`
	NumTransfers        int       `json:"num_transfers"`
	Error               string    `json:"error,omitempty"`
}

func routeError(format string, args ...any) ([]int, float64, RouteInfo) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("route: %s", msg)
	return nil, math.Inf(1), RouteInfo{Error: msg}
}

// FindRoute computes the optimal station-level itinerary between two
// stations, expanding the graph so that a transfer penalty applies only on
// genuine line changes. It returns the reduced station path, its total cost
// in minutes and the itinerary detail; failures are reported through
// RouteInfo.Error with an infinite cost, never through a panic.
func FindRoute(g *Graph, startID, endID int, opts RouteOptions) (path []int, cost float64, info RouteInfo) {
	defer func() {
		if r := recover(); r != nil {
			path, cost, info = routeError("error finding route: %v", r)
		}
	}()

	if !g.HasNode(startID) {
		return routeError("start station %d not found in network", startID)
	}
	if !g.HasNode(endID) {
		return routeError("end station %d not found in network", endID)
	}

	ex := expandLineAware(g, startID, endID, opts)
	expPath, expEdges, cost, ok := shortestPath(ex)
	if !ok {
		return routeError("no path found between %d and %d", startID, endID)
	}

	// Collapse auxiliary nodes back to station ids; a transfer produces an
	// immediately repeated station which is deduplicated here.
	path = make([]int, 0, len(expPath))
	for _, n := range expPath {
		if n.virtual != 0 {
			continue
		}
		if len(path) == 0 || path[len(path)-1] != n.station {
			path = append(path, n.station)
		}
	}

	info = RouteInfo{
		StationNames:        make([]string, len(path)),
		NumStations:         len(path),
		TravelTimeMins:      cost,
		TravelTimeFormatted: formatMinutes(cost),
	}
	for i, id := range path {
		info.StationNames[i] = g.StationName(id)
	}

	// Segment reconstruction walks the unreduced path; same-station hops
	// (transfers) emit no segment, but a later leg on a new line marks the
	// change.
	currentLine := ""
	for i := 0; i+1 < len(expPath); i++ {
		from, to := expPath[i], expPath[i+1]
		if from.virtual != 0 || to.virtual != 0 {
			continue
		}
		if from.station == to.station {
			continue
		}
		edge := expEdges[i]
		isTransfer := currentLine != "" && edge.line != currentLine && edge.line != endLine
		if isTransfer {
			info.NumTransfers++
		}
		if edge.line != startLine && edge.line != endLine && edge.line != TransferLine {
			currentLine = edge.line
		}
		info.Segments = append(info.Segments, Segment{
			FromStationID:   from.station,
			FromStationName: g.StationName(from.station),
			ToStationID:     to.station,
			ToStationName:   g.StationName(to.station),
			Line:            edge.line,
			TravelTimeMins:  edge.weight,
			IsTransfer:      isTransfer,
		})
	}

	return path, cost, info
}

func formatMinutes(mins float64) string {
	if mins >= 60 {
		return fmt.Sprintf("%dh %dmin", int(mins)/60, int(mins)%60)
	}
	return fmt.Sprintf("%dmin", int(mins))
}

//
// Dijkstra over the expanded graph.
//

type pqItem struct {
	node     expNode
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// shortestPath runs Dijkstra from the expanded start to the expanded end.
// All weights are non-negative (travel times are floored at one minute and
// penalties at zero). It returns the node sequence, the edge taken into
// each node after the first, and the total cost.
func shortestPath(ex *expandedGraph) ([]expNode, []expEdge, float64, bool) {
	dist := map[expNode]float64{ex.start: 0}
	prev := map[expNode]expNode{}
	prevEdge := map[expNode]expEdge{}
	visited := map[expNode]bool{}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{node: ex.start, priority: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.node
		if visited[current] {
			continue
		}
		visited[current] = true
		if current == ex.end {
			break
		}
		for _, e := range ex.adj[current] {
			if visited[e.to] {
				continue
			}
			tentative := dist[current] + e.weight
			if old, ok := dist[e.to]; !ok || tentative < old {
				dist[e.to] = tentative
				prev[e.to] = current
				prevEdge[e.to] = e
				heap.Push(pq, &pqItem{node: e.to, priority: tentative})
			}
		}
	}

	cost, reached := dist[ex.end]
	if !reached || !visited[ex.end] {
		return nil, nil, math.Inf(1), false
	}

	nodes := []expNode{ex.end}
	edges := []expEdge{}
	for nodes[len(nodes)-1] != ex.start {
		tail := nodes[len(nodes)-1]
		edges = append(edges, prevEdge[tail])
		nodes = append(nodes, prev[tail])
	}
	// Reverse into start-to-end order.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return nodes, edges, cost, true
}
