package transportwatcher

import "net/http"

type healthResponse struct {
	Status        string `json:"status"`
	GraphLoaded   bool   `json:"graph_loaded"`
	WeightedReady bool   `json:"weighted_ready"`
	Database      string `json:"database,omitempty"`
}

// handleHealth reports degraded (503) until a routable graph snapshot is
// loaded, so orchestrators hold traffic during startup.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", GraphLoaded: s.svc.Ready()}
	info := s.svc.Info()
	resp.WeightedReady = info.Weighted != nil

	if s.repo != nil {
		if err := s.repo.Health(r.Context()); err != nil {
			resp.Database = "unreachable"
		} else {
			resp.Database = "ok"
		}
	}

	status := http.StatusOK
	if !resp.GraphLoaded {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
