package transportwatcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/theoremus-urban-solutions/transport-watcher/config"
	"github.com/theoremus-urban-solutions/transport-watcher/lines"
	"github.com/theoremus-urban-solutions/transport-watcher/network"
	"github.com/theoremus-urban-solutions/transport-watcher/storage"
)

const (
	GraphTypeBase     = "base"
	GraphTypeWeighted = "weighted"
)

// ServiceOptions carries the routing and persistence parameters. Zero
// values fall back to the config defaults at load time, so a service built
// from OptionsFromConfig always has usable numbers.
type ServiceOptions struct {
	TransferPenalty    float64
	WeightFactor       float64
	BasePenalty        float64
	TransferMultiplier float64

	MaxWalkDistanceKM float64
	WalkingSpeedKMH   float64

	BaseNetworkPath     string
	WeightedNetworkPath string

	CacheSize int
	CacheTTL  time.Duration
}

func OptionsFromConfig() ServiceOptions {
	g := config.Config.Graph
	return ServiceOptions{
		TransferPenalty:     g.TransferPenalty,
		WeightFactor:        g.WeightFactor,
		BasePenalty:         g.BasePenalty,
		TransferMultiplier:  g.TransferMultiplier,
		MaxWalkDistanceKM:   g.MaxWalkDistanceKM,
		WalkingSpeedKMH:     g.WalkingSpeedKMH,
		BaseNetworkPath:     g.BaseNetworkPath,
		WeightedNetworkPath: g.WeightedNetworkPath,
	}
}

// RouteResult is the full door-to-door answer: walk to the network, ride
// it, walk from it.
type RouteResult struct {
	Departure *network.AccessPoint `json:"departure"`
	Arrival   *network.AccessPoint `json:"arrival"`

	OptimalPath []int             `json:"optimal_path"`
	RouteInfo   network.RouteInfo `json:"route_info"`

	NetworkTimeMins    float64 `json:"network_time_mins"`
	TotalTimeMins      float64 `json:"total_time_mins"`
	TotalTimeFormatted string  `json:"total_time_formatted"`

	GraphType string                `json:"graph_type"`
	Lines     map[string]lines.Info `json:"lines,omitempty"`
}

// GraphStats describes one loaded graph snapshot.
type GraphStats struct {
	Nodes    int  `json:"nodes"`
	Edges    int  `json:"edges"`
	Weighted bool `json:"weighted"`
}

// GraphInfo reports which snapshots are currently available.
type GraphInfo struct {
	Base         *GraphStats `json:"base"`
	Weighted     *GraphStats `json:"weighted"`
	CachedRoutes int         `json:"cached_routes"`
}

// GraphService owns the two graph snapshots and answers route queries
// against them. Snapshots are replaced wholesale via atomic pointers, so
// readers never observe a half-built graph.
type GraphService struct {
	opts  ServiceOptions
	repo  *storage.Repository
	lines *lines.Table
	cache *RouteCache

	base     atomic.Pointer[network.Graph]
	weighted atomic.Pointer[network.Graph]
}

func NewGraphService(repo *storage.Repository, lineTable *lines.Table, opts ServiceOptions) *GraphService {
	return &GraphService{
		opts:  opts,
		repo:  repo,
		lines: lineTable,
		cache: NewRouteCache(opts.CacheSize, opts.CacheTTL),
	}
}

// SetBaseGraph installs a base snapshot directly. Used by tests and by
// the build pipeline before a first save.
func (s *GraphService) SetBaseGraph(g *network.Graph) {
	s.base.Store(g)
}

func (s *GraphService) SetWeightedGraph(g *network.Graph) {
	s.weighted.Store(g)
	s.cache.Purge()
}

// LoadGraphs reads the persisted snapshots from disk. The base graph is
// required; a missing weighted graph only disables weighted routing.
func (s *GraphService) LoadGraphs() error {
	if s.opts.BaseNetworkPath == "" {
		return fmt.Errorf("base network path: %w", ErrNotConfigured)
	}
	base, err := network.LoadGraph(s.opts.BaseNetworkPath)
	if err != nil {
		return fmt.Errorf("load base graph: %w", err)
	}
	s.base.Store(base)
	log.Printf("base graph loaded: %d stations, %d edges", base.NodeCount(), base.EdgeCount())

	if s.opts.WeightedNetworkPath == "" {
		return nil
	}
	weighted, err := network.LoadGraph(s.opts.WeightedNetworkPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("no weighted graph at %s, weighted routing disabled until next update", s.opts.WeightedNetworkPath)
			return nil
		}
		return fmt.Errorf("load weighted graph: %w", err)
	}
	s.weighted.Store(weighted)
	log.Printf("weighted graph loaded: %d stations, %d edges", weighted.NodeCount(), weighted.EdgeCount())
	return nil
}

// RebuildBaseGraph derives travel times from the stored schedules and
// replaces the base snapshot. The old snapshot serves queries until the
// new one is complete.
func (s *GraphService) RebuildBaseGraph(ctx context.Context) error {
	if s.repo == nil {
		return fmt.Errorf("database: %w", ErrNotConfigured)
	}
	stations, err := s.repo.FetchStations(ctx)
	if err != nil {
		return fmt.Errorf("fetch stations: %w", err)
	}
	schedules, err := s.repo.FetchSchedules(ctx)
	if err != nil {
		return fmt.Errorf("fetch schedules: %w", err)
	}
	rows := network.ComputeTravelTimes(schedules)
	g := network.BuildNetwork(stations, rows)
	s.base.Store(g)
	s.cache.Purge()
	log.Printf("base graph rebuilt: %d stations, %d edges from %d schedule rows",
		g.NodeCount(), g.EdgeCount(), len(schedules))

	if s.opts.BaseNetworkPath != "" {
		if err := network.SaveGraph(g, s.opts.BaseNetworkPath); err != nil {
			return err
		}
	}
	return nil
}

// UpdateWeightedGraph recomputes congestion penalties from the latest
// stored predictions and swaps in a fresh weighted snapshot.
func (s *GraphService) UpdateWeightedGraph(ctx context.Context) error {
	base := s.base.Load()
	if base == nil {
		return fmt.Errorf("base graph not loaded: %w", ErrNotConfigured)
	}
	if s.repo == nil {
		return fmt.Errorf("database: %w", ErrNotConfigured)
	}
	predictions, err := s.repo.LatestPredictions(ctx)
	if err != nil {
		return fmt.Errorf("fetch predictions: %w", err)
	}
	opts := network.CongestionOptions{
		WeightFactor:       s.opts.WeightFactor,
		BasePenalty:        s.opts.BasePenalty,
		TransferMultiplier: s.opts.TransferMultiplier,
	}
	weighted := network.ApplyCongestion(base, predictions, opts)
	s.weighted.Store(weighted)
	s.cache.Purge()
	log.Printf("weighted graph updated from %d station predictions", len(predictions))

	if s.opts.WeightedNetworkPath != "" {
		if err := network.SaveGraph(weighted, s.opts.WeightedNetworkPath); err != nil {
			return err
		}
	}
	return nil
}

// pickGraph chooses the snapshot for a query. useWeighted nil means
// "weighted if available"; an explicit true also degrades to base when no
// weighted snapshot exists, and the result's graph_type tells the caller
// which one actually served.
func (s *GraphService) pickGraph(useWeighted *bool) (*network.Graph, string) {
	wantWeighted := useWeighted == nil || *useWeighted
	if wantWeighted {
		if g := s.weighted.Load(); g != nil {
			return g, GraphTypeWeighted
		}
	}
	return s.base.Load(), GraphTypeBase
}

// FindOptimalRoute answers a door-to-door query between two coordinate
// points.
func (s *GraphService) FindOptimalRoute(start, end Coordinates, useWeighted *bool) (*RouteResult, error) {
	g, graphType := s.pickGraph(useWeighted)
	if g == nil {
		return nil, fmt.Errorf("graph not loaded: %w", ErrNotConfigured)
	}

	key := routeKey(start, end, graphType)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	departure := network.FindNearestStation(start.Latitude, start.Longitude, g,
		s.opts.MaxWalkDistanceKM, s.opts.WalkingSpeedKMH)
	if departure == nil {
		return nil, fmt.Errorf("departure point: %w", ErrNoStationInRange)
	}
	arrival := network.FindNearestStation(end.Latitude, end.Longitude, g,
		s.opts.MaxWalkDistanceKM, s.opts.WalkingSpeedKMH)
	if arrival == nil {
		return nil, fmt.Errorf("arrival point: %w", ErrNoStationInRange)
	}

	routeOpts := network.RouteOptions{TransferPenalty: s.opts.TransferPenalty}
	path, cost, info := s.findRoute(g, departure.StationID, arrival.StationID, routeOpts)
	if info.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, info.Error)
	}

	total := departure.WalkingDuration + cost + arrival.WalkingDuration
	res := &RouteResult{
		Departure:          departure,
		Arrival:            arrival,
		OptimalPath:        path,
		RouteInfo:          info,
		NetworkTimeMins:    cost,
		TotalTimeMins:      total,
		TotalTimeFormatted: formatDuration(total),
		GraphType:          graphType,
		Lines:              s.lineDetails(info),
	}
	s.cache.Set(key, res)
	return res, nil
}

// findRoute handles the degenerate same-station case: walking to and from
// one station means no network leg at all.
func (s *GraphService) findRoute(g *network.Graph, fromID, toID int, opts network.RouteOptions) ([]int, float64, network.RouteInfo) {
	if fromID == toID {
		name := g.StationName(fromID)
		return []int{fromID}, 0, network.RouteInfo{
			StationNames:        []string{name},
			NumStations:         1,
			TravelTimeFormatted: "0min",
		}
	}
	return network.FindRoute(g, fromID, toID, opts)
}

// lineDetails resolves display metadata for every line the route rides.
func (s *GraphService) lineDetails(info network.RouteInfo) map[string]lines.Info {
	if len(info.Segments) == 0 {
		return nil
	}
	out := make(map[string]lines.Info)
	for _, seg := range info.Segments {
		if seg.Line == "" || seg.Line == network.TransferLine {
			continue
		}
		if _, seen := out[seg.Line]; seen {
			continue
		}
		if li, ok := s.lines.Lookup(seg.Line); ok {
			out[seg.Line] = li
		} else {
			out[seg.Line] = lines.Info{Name: seg.Line}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Info summarizes the loaded snapshots for the info endpoint.
func (s *GraphService) Info() GraphInfo {
	var gi GraphInfo
	if g := s.base.Load(); g != nil {
		gi.Base = &GraphStats{Nodes: g.NodeCount(), Edges: g.EdgeCount(), Weighted: g.Weighted}
	}
	if g := s.weighted.Load(); g != nil {
		gi.Weighted = &GraphStats{Nodes: g.NodeCount(), Edges: g.EdgeCount(), Weighted: g.Weighted}
	}
	gi.CachedRoutes = s.cache.Len()
	return gi
}

// Ready reports whether the service can answer route queries at all.
func (s *GraphService) Ready() bool {
	return s.base.Load() != nil || s.weighted.Load() != nil
}

func formatDuration(mins float64) string {
	whole := int(math.Round(mins))
	if whole >= 60 {
		return fmt.Sprintf("%dh %dmin", whole/60, whole%60)
	}
	return fmt.Sprintf("%dmin", whole)
}
