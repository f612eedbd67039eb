package network

// CongestionOptions tunes how predicted passenger load inflates edge weights.
type CongestionOptions struct {
	// WeightFactor scales how much a destination's penalty affects edges.
	WeightFactor float64
	// BasePenalty is the minutes added at a fully crowded station.
	BasePenalty float64
	// TransferMultiplier inflates the penalty at multi-line hubs.
	TransferMultiplier float64
}

func DefaultCongestionOptions() CongestionOptions {
	return CongestionOptions{
		WeightFactor:       0.1,
		BasePenalty:        5.0,
		TransferMultiplier: 2.0,
	}
}

// ApplyCongestion rescales edge weights from per-station load predictions
// and returns a new weighted graph; the input graph is never touched, so
// queries may keep reading it while the copy is built.
//
// Predictions are min-max normalized to [0,1] (all-equal input maps every
// station to 0.5). A node's penalty is BasePenalty times its normalized
// load, doubled per TransferMultiplier at stations served by more than one
// line. Each edge then pays WeightFactor times the penalty of its
// destination: boarding a crowded station queues, leaving one does not.
func ApplyCongestion(g *Graph, predictions map[int]float64, opts CongestionOptions) *Graph {
	normalized := normalizeLoads(predictions)
	transfer := transferStations(g)

	out := g.Clone()
	out.Weighted = true

	for id, n := range out.Nodes {
		crowd := normalized[id]
		penalty := opts.BasePenalty * crowd
		if transfer[id] {
			penalty *= opts.TransferMultiplier
		}
		n.CrowdLevel = crowd
		n.CongestionPenalty = penalty
		n.IsTransfer = transfer[id]
	}

	for _, edges := range out.Out {
		for _, e := range edges {
			destPenalty := 0.0
			if dest, ok := out.Nodes[e.ToID]; ok {
				destPenalty = dest.CongestionPenalty
			}
			e.Weight = e.TravelTime + opts.WeightFactor*destPenalty
		}
	}
	return out
}

func normalizeLoads(predictions map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(predictions))
	if len(predictions) == 0 {
		return out
	}
	first := true
	var min, max float64
	for _, v := range predictions {
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	for id, v := range predictions {
		if min == max {
			out[id] = 0.5
		} else {
			out[id] = (v - min) / (max - min)
		}
	}
	return out
}

// transferStations flags every node touched, in either direction, by edges
// of more than one distinct line.
func transferStations(g *Graph) map[int]bool {
	linesAt := map[int]map[string]bool{}
	touch := func(id int, line string) {
		if linesAt[id] == nil {
			linesAt[id] = map[string]bool{}
		}
		linesAt[id][line] = true
	}
	for _, edges := range g.Out {
		for _, e := range edges {
			touch(e.FromID, e.Line)
			touch(e.ToID, e.Line)
		}
	}
	out := map[int]bool{}
	for id, lines := range linesAt {
		if len(lines) > 1 {
			out[id] = true
		}
	}
	return out
}
